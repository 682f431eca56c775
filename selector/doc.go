// Package selector builds CSS selector strings from typed fragments.
//
// A selector is assembled with a fluent Builder. Fragments belong to one of
// six categories which must be appended in non-decreasing order:
//
//	element < id < class < attribute < pseudo-class < pseudo-element
//
// Element, id and pseudo-element may appear at most once. The first misuse
// of a chain is recorded and reported by Err or Render, the rejected fragment
// is never applied and the rest of the chain is ignored.
//
// # Usage
//
//	sel := selector.FromElement("a").ID("x").Class("c1").Attr("href").PseudoClass("hover")
//	s, err := sel.Render() // "a#x.c1[href]:hover"
//
//	nav := selector.Combine(selector.FromElement("nav"), selector.Child, sel)
//	nav.String() // "nav > a#x.c1[href]:hover"
//
// Combined selectors are render-only, they cannot be extended with more
// fragments.
package selector
