package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultIndent is used for property declarations when Stylesheet.Indent is
// empty.
const DefaultIndent = "  "

// cssEscapeComment makes s safe to put inside CSS comment.
func cssEscapeComment(s string) string {
	// Fast path: nothing to escape.
	if !strings.Contains(s, "*/") {
		return s
	}
	return strings.ReplaceAll(s, "*/", "* /")
}

// Rule is a single CSS rule (selector + properties).
type Rule struct {
	Name       string            // Optional, written as comment before the rule
	Selector   string            // Rendered selector text
	Properties map[string]string // Property name -> raw value
}

// GetProperty returns the value for a property and whether it is set.
func (r Rule) GetProperty(name string) (string, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules  []Rule
	Indent string // Property indent, DefaultIndent if empty
}

// Add appends rule to the stylesheet.
func (s *Stylesheet) Add(r Rule) {
	s.Rules = append(s.Rules, r)
}

// RulesBySelector returns all rules with the given selector text.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in rule order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	indent := s.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i], indent)
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	if rule.Name != "" {
		n, err := fmt.Fprintf(w, "/* %s */\n", cssEscapeComment(rule.Name))
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties, indent)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]string, indent string) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "%s%s: %s;\n", indent, name, props[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
