package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csel/config"
	"csel/selector"
	"csel/state"
)

// Run is "render" command action: SOURCE [DESTINATION]. DESTINATION without
// extension gets one matching output format.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no definitions source has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	opts := OptionsFromConfig(env.Cfg)
	if cmd.IsSet("to") {
		if opts.Format, err = config.ParseOutputFmt(cmd.String("to")); err != nil {
			return fmt.Errorf("unable to use requested output format: %w", err)
		}
	}
	if cmd.IsSet("strict") {
		opts.Strict = cmd.Bool("strict")
	}
	if cmd.IsSet("sort") {
		opts.Sort = cmd.Bool("sort")
	}

	src := cmd.Root().Reader
	if src == nil {
		src = os.Stdin
	}
	srcName := cmd.Args().Get(0)
	if srcName != "-" {
		f, er := os.Open(srcName)
		if er != nil {
			return fmt.Errorf("unable to open definitions: %w", er)
		}
		defer f.Close()
		src = f
	}

	var dst io.Writer = cmd.Root().Writer
	dstName := cmd.Args().Get(1)
	if dstName != "" {
		if filepath.Ext(dstName) == "" {
			dstName += opts.Format.Ext()
		}
		f, er := os.Create(dstName)
		if er != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dstName, er)
		}
		defer func() {
			if er := f.Close(); er != nil && err == nil {
				err = fmt.Errorf("unable to close destination file '%s': %w", dstName, er)
			}
		}()
		dst = f
	} else {
		dstName = "STDOUT"
	}

	env.Log.Debug("Rendering selectors", zap.String("source", srcName), zap.String("destination", dstName), zap.Stringer("format", opts.Format))
	return Process(env.Log, src, dst, opts)
}

// Build is "build" command action, it makes a single selector from flags.
func Build(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	sb := selector.New()
	if cmd.IsSet("element") {
		sb.Element(cmd.String("element"))
	}
	if cmd.IsSet("id") {
		sb.ID(cmd.String("id"))
	}
	for _, v := range cmd.StringSlice("class") {
		sb.Class(v)
	}
	for _, v := range cmd.StringSlice("attr") {
		sb.Attr(v)
	}
	for _, v := range cmd.StringSlice("pseudo-class") {
		sb.PseudoClass(v)
	}
	if cmd.IsSet("pseudo-element") {
		sb.PseudoElement(cmd.String("pseudo-element"))
	}

	text, err := sb.Render()
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}

	strict := env.Cfg.Output.Strict
	if cmd.IsSet("strict") {
		strict = cmd.Bool("strict")
	}
	if warnings := env.Linter().Lint(text); len(warnings) > 0 {
		if strict {
			return fmt.Errorf("selector %q: %v", text, warnings)
		}
		env.Log.Warn("Suspicious selector", zap.String("selector", text), zap.Strings("warnings", warnings))
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, text)
	return err
}
