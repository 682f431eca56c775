package selector

// FromElement starts selector with element name.
func FromElement(v string) *Builder { return New().Element(v) }

// FromID starts selector with id.
func FromID(v string) *Builder { return New().ID(v) }

// FromClass starts selector with class name.
func FromClass(v string) *Builder { return New().Class(v) }

// FromAttr starts selector with attribute.
func FromAttr(v string) *Builder { return New().Attr(v) }

// FromPseudoClass starts selector with pseudo-class.
func FromPseudoClass(v string) *Builder { return New().PseudoClass(v) }

// FromPseudoElement starts selector with pseudo-element.
func FromPseudoElement(v string) *Builder { return New().PseudoElement(v) }

// From starts selector with fragment of category c. Unlike category specific
// constructors it may fail, but only on invalid category.
func From(c Category, v string) (*Builder, error) {
	b := New()
	if err := b.Append(c, v); err != nil {
		return nil, err
	}
	return b, nil
}
