// Package render builds selectors from definitions and writes them out.
package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csel/config"
	"csel/css"
	"csel/definitions"
)

// Options control rendering, normally they come from configuration and may
// be overwritten by command line flags.
type Options struct {
	Format config.OutputFmt
	Strict bool
	Sort   bool
	Indent string
}

// OptionsFromConfig extracts rendering options from program configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Format: cfg.Output.Format,
		Strict: cfg.Output.Strict,
		Sort:   cfg.Output.Sort,
		Indent: cfg.Output.Indent,
	}
}

// Process reads definitions from src and writes rendered selectors to dst.
// Selectors which were built successfully are written even when some
// definitions failed, all failures are returned together.
func Process(log *zap.Logger, src io.Reader, dst io.Writer, opts Options) error {
	if log == nil {
		log = zap.NewNop()
	}

	set, err := definitions.Load(src)
	if err != nil {
		return err
	}

	built, err := definitions.NewBuilder(log).Build(set)
	if err != nil {
		log.Warn("Some definitions were not built", zap.Int("built", len(built)), zap.Int("total", len(set.Selectors)))
	}

	linter := css.NewLinter(log)
	for _, b := range built {
		warnings := linter.Lint(b.Selector)
		if len(warnings) == 0 {
			continue
		}
		if opts.Strict {
			err = multierr.Append(err, fmt.Errorf("selector %s (%q): %v", b.Name, b.Selector, warnings))
			continue
		}
		log.Warn("Suspicious selector", zap.String("name", b.Name), zap.String("selector", b.Selector), zap.Strings("warnings", warnings))
	}

	if opts.Sort {
		slices.SortStableFunc(built, func(a, b definitions.Built) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			default:
				return 0
			}
		})
	}

	if er := Write(log, dst, built, opts); er != nil {
		err = multierr.Append(err, er)
	}
	return err
}

// Write outputs built selectors in requested format.
func Write(log *zap.Logger, dst io.Writer, built []definitions.Built, opts Options) error {
	if log == nil {
		log = zap.NewNop()
	}

	switch opts.Format {
	case config.OutputFmtList:
		for _, b := range built {
			if _, err := fmt.Fprintf(dst, "%s\t%s\n", b.Name, b.Selector); err != nil {
				return fmt.Errorf("unable to write selector list: %w", err)
			}
		}
	case config.OutputFmtStylesheet:
		sheet := &css.Stylesheet{Indent: opts.Indent}
		for _, b := range built {
			rule := css.Rule{Name: b.Name, Selector: b.Selector, Properties: b.Properties}
			checkOverrides(log, sheet, rule)
			sheet.Add(rule)
		}
		if _, err := sheet.WriteTo(dst); err != nil {
			return fmt.Errorf("unable to write stylesheet: %w", err)
		}
	case config.OutputFmtTree:
		if err := writeTree(dst, built); err != nil {
			return fmt.Errorf("unable to write selector tree: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %s", opts.Format)
	}
	return nil
}

// checkOverrides reports properties which rule sets differently from earlier
// rules with the same selector, the later rule wins in a browser.
func checkOverrides(log *zap.Logger, sheet *css.Stylesheet, rule css.Rule) {
	for _, prev := range sheet.RulesBySelector(rule.Selector) {
		for name, value := range rule.Properties {
			if old, ok := prev.GetProperty(name); ok && old != value {
				log.Warn("Property is overridden by later rule",
					zap.String("selector", rule.Selector),
					zap.String("property", name),
					zap.String("from", prev.Name), zap.String("value", old),
					zap.String("by", rule.Name), zap.String("new value", value))
			}
		}
	}
}
