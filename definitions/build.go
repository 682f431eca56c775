package definitions

import (
	"fmt"
	"strconv"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csel/selector"
)

// Built is a successfully built definition.
type Built struct {
	Name       string
	Selector   string
	Properties map[string]string
	Fragments  []selector.Fragment // empty for combined selectors
	Combine    *Combine            // nil unless selector was combined
}

// Builder turns definition sets into selectors.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a new definitions builder.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("definitions")}
}

// Build builds all definitions in file order. Errors are collected for every
// failed definition, successfully built ones are returned regardless.
func (b *Builder) Build(set *Set) ([]Built, error) {
	var (
		err    error
		result = make([]Built, 0, len(set.Selectors))
		known  = make(map[string]selector.Renderer, len(set.Selectors))
		failed = make(map[string]bool)
	)

	// explicit names are never given to unnamed definitions
	explicit := make(map[string]bool, len(set.Selectors))
	for _, d := range set.Selectors {
		if d.Name != "" {
			explicit[d.Name] = true
		}
	}
	taken := func(name string) bool {
		_, exists := known[name]
		return exists || failed[name] || explicit[name]
	}

	for i, d := range set.Selectors {
		if d.Name != "" {
			if _, exists := known[d.Name]; exists || failed[d.Name] {
				err = multierr.Append(err, fmt.Errorf("definition %s: duplicate name", label(i, d.Name)))
				continue
			}
		}

		sel, frags, er := b.buildOne(d, known, failed)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("definition %s: %w", label(i, d.Name), er))
			if d.Name != "" {
				failed[d.Name] = true
			}
			continue
		}

		name := d.Name
		if name == "" {
			name = deriveName(sel.String(), i, taken)
		}
		known[name] = sel

		built := Built{
			Name:       name,
			Selector:   sel.String(),
			Properties: d.Properties,
			Fragments:  frags,
			Combine:    d.Combine,
		}
		result = append(result, built)
		b.log.Debug("Selector built", zap.String("name", built.Name), zap.String("selector", built.Selector), zap.Int("fragments", len(frags)))
	}
	return result, err
}

func (b *Builder) buildOne(d Definition, known map[string]selector.Renderer, failed map[string]bool) (selector.Renderer, []selector.Fragment, error) {
	if d.Combine != nil {
		left, err := lookup(d.Combine.Left, known, failed)
		if err != nil {
			return nil, nil, err
		}
		right, err := lookup(d.Combine.Right, known, failed)
		if err != nil {
			return nil, nil, err
		}
		return selector.Combine(left, d.Combine.Combinator, right), nil, nil
	}

	sb := selector.New()
	for j, p := range d.Parts {
		if err := sb.Append(p.Category, p.Value); err != nil {
			return nil, nil, fmt.Errorf("part %d: %w", j+1, err)
		}
	}
	return sb, sb.Fragments(), nil
}

func lookup(name string, known map[string]selector.Renderer, failed map[string]bool) (selector.Renderer, error) {
	if sel, ok := known[name]; ok {
		return sel, nil
	}
	if failed[name] {
		return nil, fmt.Errorf("reference to failed definition %q", name)
	}
	return nil, fmt.Errorf("reference to unknown definition %q", name)
}

// deriveName makes name for unnamed definition from its selector text,
// adding numeric suffix when name is already taken.
func deriveName(text string, i int, taken func(string) bool) string {
	base := slug.Make(text)
	if base == "" {
		base = "selector-" + strconv.Itoa(i+1)
	}
	name := base
	for n := 2; ; n++ {
		if !taken(name) {
			return name
		}
		name = base + "-" + strconv.Itoa(n)
	}
}
