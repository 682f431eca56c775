package selector

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a kind of selector fragment. Its value is the rank used to
// enforce fragment order.
type Category int

const (
	CategoryElement       Category = iota + 1 // a
	CategoryID                                // #x
	CategoryClass                             // .c
	CategoryAttribute                         // [href]
	CategoryPseudoClass                       // :hover
	CategoryPseudoElement                     // ::before
)

// ErrInvalidCategory is returned for unknown category names and values.
var ErrInvalidCategory = errors.New("not a valid Category")

var categoryNames = [...]string{
	CategoryElement:       "element",
	CategoryID:            "id",
	CategoryClass:         "class",
	CategoryAttribute:     "attribute",
	CategoryPseudoClass:   "pseudo-class",
	CategoryPseudoElement: "pseudo-element",
}

// CategoryNames returns the category names in rank order.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryNames)-1)
	for c := CategoryElement; c <= CategoryPseudoElement; c++ {
		names = append(names, categoryNames[c])
	}
	return names
}

// IsValid reports whether c is one of the defined categories.
func (c Category) IsValid() bool {
	return c >= CategoryElement && c <= CategoryPseudoElement
}

func (c Category) String() string {
	if c.IsValid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Prefix returns the text written before a fragment of this category.
func (c Category) Prefix() string {
	switch c {
	case CategoryID:
		return "#"
	case CategoryClass:
		return "."
	case CategoryAttribute:
		return "["
	case CategoryPseudoClass:
		return ":"
	case CategoryPseudoElement:
		return "::"
	default:
		return ""
	}
}

// Suffix returns the text written after a fragment of this category.
func (c Category) Suffix() string {
	if c == CategoryAttribute {
		return "]"
	}
	return ""
}

// ParseCategory converts a category name to Category. Matching is case
// insensitive, "attr" is accepted as a short form of "attribute".
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "attr" {
		return CategoryAttribute, nil
	}
	for c := CategoryElement; c <= CategoryPseudoElement; c++ {
		if categoryNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%s is %w", name, ErrInvalidCategory)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%d is %w", int(c), ErrInvalidCategory)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
