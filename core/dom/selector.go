package dom

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// selectors caches compiled CSS selectors. Extractors use a small fixed
// set of selector strings, so the cache stays tiny.
var selectors sync.Map // string → cascadia.Selector

// noMatch is used for selectors that fail to compile; it matches nothing.
var noMatch cascadia.Selector = func(*html.Node) bool { return false }

// compile returns the cached selector for sel.
func compile(sel string) cascadia.Selector {
	if cached, ok := selectors.Load(sel); ok {
		return cached.(cascadia.Selector)
	}
	compiled, err := cascadia.Compile(sel)
	if err != nil {
		compiled = noMatch
	}
	actual, _ := selectors.LoadOrStore(sel, compiled)
	return actual.(cascadia.Selector)
}
