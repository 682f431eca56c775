package selector

import (
	"strings"
)

// Renderer is anything that produces selector text.
type Renderer interface {
	String() string
}

// Fragment is a single accepted piece of a selector.
type Fragment struct {
	Category Category
	Value    string
}

// String returns the fragment as it appears in rendered selector.
func (f Fragment) String() string {
	return f.Category.Prefix() + f.Value + f.Category.Suffix()
}

// Builder accumulates selector fragments. Methods return the same builder
// so calls could be chained. A Builder must not be used from multiple
// goroutines while it is being built.
type Builder struct {
	element    string
	hasElement bool
	id         string
	hasID      bool

	classes        []string
	attributes     []string
	pseudoClasses  []string
	pseudoElements []string

	last Category // rank of the most recently accepted fragment, 0 when empty
	err  error    // first usage error of the chain
}

// New returns empty builder.
func New() *Builder {
	return &Builder{}
}

// Element sets element (tag) name.
func (b *Builder) Element(v string) *Builder {
	return b.chain(CategoryElement, v)
}

// ID sets element id.
func (b *Builder) ID(v string) *Builder {
	return b.chain(CategoryID, v)
}

// Class adds class name.
func (b *Builder) Class(v string) *Builder {
	return b.chain(CategoryClass, v)
}

// Attr adds attribute selector, v is used verbatim inside brackets, for
// example "href" or `lang="en"`.
func (b *Builder) Attr(v string) *Builder {
	return b.chain(CategoryAttribute, v)
}

// PseudoClass adds pseudo-class name without leading colon.
func (b *Builder) PseudoClass(v string) *Builder {
	return b.chain(CategoryPseudoClass, v)
}

// PseudoElement sets pseudo-element name without leading colons.
func (b *Builder) PseudoElement(v string) *Builder {
	return b.chain(CategoryPseudoElement, v)
}

// chain applies fragment unless chain already failed, remembering the first
// failure.
func (b *Builder) chain(c Category, v string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.Append(c, v); err != nil {
		b.err = err
	}
	return b
}

// Append adds a fragment of category c. On error builder state is left
// unchanged. Unlike chained methods Append does not look at or record chain
// error.
func (b *Builder) Append(c Category, v string) error {
	if !c.IsValid() {
		return ErrInvalidCategory
	}
	if b.occupied(c) {
		return &DuplicateFragmentError{Category: c, Value: v}
	}
	if c < b.last {
		return &OrderError{Category: c, Value: v, Last: b.last}
	}

	switch c {
	case CategoryElement:
		b.element, b.hasElement = v, true
	case CategoryID:
		b.id, b.hasID = v, true
	case CategoryClass:
		b.classes = append(b.classes, v)
	case CategoryAttribute:
		b.attributes = append(b.attributes, v)
	case CategoryPseudoClass:
		b.pseudoClasses = append(b.pseudoClasses, v)
	case CategoryPseudoElement:
		b.pseudoElements = append(b.pseudoElements, v)
	}
	b.last = c
	return nil
}

// occupied reports whether singleton category c already has a value.
func (b *Builder) occupied(c Category) bool {
	switch c {
	case CategoryElement:
		return b.hasElement
	case CategoryID:
		return b.hasID
	case CategoryPseudoElement:
		return len(b.pseudoElements) > 0
	default:
		return false
	}
}

// Err returns the first error of the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Fragments returns accepted fragments in rendering order.
func (b *Builder) Fragments() []Fragment {
	var frags []Fragment
	if b.hasElement {
		frags = append(frags, Fragment{Category: CategoryElement, Value: b.element})
	}
	if b.hasID {
		frags = append(frags, Fragment{Category: CategoryID, Value: b.id})
	}
	for _, group := range []struct {
		c      Category
		values []string
	}{
		{CategoryClass, b.classes},
		{CategoryAttribute, b.attributes},
		{CategoryPseudoClass, b.pseudoClasses},
		{CategoryPseudoElement, b.pseudoElements},
	} {
		for _, v := range group.values {
			frags = append(frags, Fragment{Category: group.c, Value: v})
		}
	}
	return frags
}

// String renders accepted fragments. Empty builder renders as empty string.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, f := range b.Fragments() {
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Render returns rendered selector together with chain error.
func (b *Builder) Render() (string, error) {
	return b.String(), b.err
}
