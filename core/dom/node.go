package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// node is the goquery-backed Node. sel always wraps exactly one html.Node.
type node struct {
	sel *goquery.Selection
}

func wrap(sel *goquery.Selection) []Node {
	out := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, node{sel: s})
	})
	return out
}

func wrapRaw(n *html.Node) Node {
	return node{sel: goquery.NewDocumentFromNode(n).Selection}
}

func (n node) raw() *html.Node {
	if len(n.sel.Nodes) == 0 {
		return nil
	}
	return n.sel.Nodes[0]
}

func (n node) Tag() string {
	if r := n.raw(); r != nil && r.Type == html.ElementNode {
		return r.Data
	}
	return ""
}

func (n node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n node) HasClass(class string) bool {
	return n.sel.HasClass(class)
}

func (n node) Text() string {
	return collectText(n.raw(), " ", nil)
}

func (n node) CompactText() string {
	return collectText(n.raw(), "", nil)
}

func (n node) TextExcluding(selector string) string {
	return collectText(n.raw(), " ", compile(selector))
}

func (n node) Find(selector string) []Node {
	return wrap(n.sel.FindMatcher(compile(selector)))
}

func (n node) First(selector string) (Node, bool) {
	found := n.sel.FindMatcher(compile(selector)).First()
	if found.Length() == 0 {
		return nil, false
	}
	return node{sel: found}, true
}

func (n node) Children(selector string) []Node {
	if selector == "" {
		return wrap(n.sel.Children())
	}
	return wrap(n.sel.ChildrenMatcher(compile(selector)))
}

func (n node) Closest(selector string) (Node, bool) {
	found := n.sel.Parent().ClosestMatcher(compile(selector))
	if found.Length() == 0 {
		return nil, false
	}
	return node{sel: found.First()}, true
}

func (n node) NextSibling() (Node, bool) {
	next := n.sel.Next()
	if next.Length() == 0 {
		return nil, false
	}
	return node{sel: next}, true
}

func (n node) FindNext(selector string) (Node, bool) {
	start := n.raw()
	if start == nil {
		return nil, false
	}
	m := compile(selector)
	for cur := following(start); cur != nil; cur = following(cur) {
		if cur.Type == html.ElementNode && m.Match(cur) {
			return wrapRaw(cur), true
		}
	}
	return nil, false
}

func (n node) Is(selector string) bool {
	r := n.raw()
	return r != nil && r.Type == html.ElementNode && compile(selector).Match(r)
}

func (n node) HTML() string {
	out, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	return out
}

// following returns the next node in document order.
func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.NextSibling != nil {
			return cur.NextSibling
		}
	}
	return nil
}

// collectText joins the stripped text strings under n with sep, skipping
// script/style bodies and any subtree matched by skip.
func collectText(n *html.Node, sep string, skip func(*html.Node) bool) string {
	if n == nil {
		return ""
	}
	var parts []string
	var walk func(*html.Node, bool)
	walk = func(cur *html.Node, root bool) {
		switch cur.Type {
		case html.TextNode:
			if t := strings.Join(strings.Fields(cur.Data), " "); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			switch cur.Data {
			case "script", "style", "noscript":
				return
			}
			if !root && skip != nil && skip(cur) {
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c, false)
		}
	}
	walk(n, true)
	return strings.Join(parts, sep)
}
