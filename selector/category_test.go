package selector_test

import (
	"errors"
	"slices"
	"testing"

	"csel/selector"
)

func TestCategory_RankOrder(t *testing.T) {
	order := []selector.Category{
		selector.CategoryElement,
		selector.CategoryID,
		selector.CategoryClass,
		selector.CategoryAttribute,
		selector.CategoryPseudoClass,
		selector.CategoryPseudoElement,
	}
	for i, c := range order {
		if int(c) != i+1 {
			t.Errorf("%v rank = %d, want %d", c, int(c), i+1)
		}
	}
	want := []string{"element", "id", "class", "attribute", "pseudo-class", "pseudo-element"}
	if got := selector.CategoryNames(); !slices.Equal(got, want) {
		t.Errorf("CategoryNames() = %v, want %v", got, want)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    selector.Category
		wantErr bool
	}{
		{"element", selector.CategoryElement, false},
		{"ID", selector.CategoryID, false},
		{" class ", selector.CategoryClass, false},
		{"attr", selector.CategoryAttribute, false},
		{"attribute", selector.CategoryAttribute, false},
		{"pseudo-class", selector.CategoryPseudoClass, false},
		{"pseudo-element", selector.CategoryPseudoElement, false},
		{"pseudo", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := selector.ParseCategory(tt.in)
		if tt.wantErr {
			if !errors.Is(err, selector.ErrInvalidCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCategory_Text(t *testing.T) {
	data, err := selector.CategoryPseudoClass.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	var c selector.Category
	if err := c.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if c != selector.CategoryPseudoClass {
		t.Errorf("got %v, want %v", c, selector.CategoryPseudoClass)
	}
	if _, err := selector.Category(9).MarshalText(); err == nil {
		t.Error("MarshalText() of invalid category must fail")
	}
	if s := selector.Category(9).String(); s != "Category(9)" {
		t.Errorf("String() = %q", s)
	}
}
