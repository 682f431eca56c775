package render_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"csel/config"
	"csel/definitions"
	"csel/render"
	"csel/selector"
	"csel/state"
)

const defs = `
selectors:
  - name: item10
    parts:
      - class: item
      - class: ten
  - name: item2
    parts:
      - element: li
      - class: two
    properties:
      margin: "0"
      color: red
  - name: list
    combine: [item2, ">", item10]
`

func TestProcess_List(t *testing.T) {
	var out bytes.Buffer
	err := render.Process(zaptest.NewLogger(t), strings.NewReader(defs), &out, render.Options{Format: config.OutputFmtList})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := "item10\t.item.ten\nitem2\tli.two\nlist\tli.two > .item.ten\n"
	if out.String() != want {
		t.Errorf("output =\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestProcess_SortNatural(t *testing.T) {
	var out bytes.Buffer
	err := render.Process(nil, strings.NewReader(defs), &out, render.Options{Format: config.OutputFmtList, Sort: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var names []string
	for _, l := range lines {
		names = append(names, strings.SplitN(l, "\t", 2)[0])
	}
	if strings.Join(names, ",") != "item2,item10,list" {
		t.Errorf("names in natural order = %v", names)
	}
}

func TestProcess_Stylesheet(t *testing.T) {
	var out bytes.Buffer
	err := render.Process(nil, strings.NewReader(defs), &out, render.Options{Format: config.OutputFmtStylesheet, Indent: "\t"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := `/* item10 */
.item.ten {
}

/* item2 */
li.two {
	color: red;
	margin: 0;
}

/* list */
li.two > .item.ten {
}
`
	if out.String() != want {
		t.Errorf("output =\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestProcess_Tree(t *testing.T) {
	var out bytes.Buffer
	err := render.Process(nil, strings.NewReader(defs), &out, render.Options{Format: config.OutputFmtTree})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := `item10 ".item.ten"
  class: "item"
  class: "ten"
item2 "li.two"
  element: "li"
  class: "two"
list "li.two > .item.ten"
  left: "item2"
  combinator: ">"
  right: "item10"
`
	if out.String() != want {
		t.Errorf("output =\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestProcess_PartialFailure(t *testing.T) {
	data := `
selectors:
  - name: bad
    parts:
      - pseudo-element: after
      - class: x
  - name: good
    parts:
      - id: main
`
	var out bytes.Buffer
	err := render.Process(nil, strings.NewReader(data), &out, render.Options{Format: config.OutputFmtList})
	if !errors.Is(err, selector.ErrOrder) {
		t.Fatalf("expected order error, got %v", err)
	}
	if out.String() != "good\t#main\n" {
		t.Errorf("good selectors must still be written, got %q", out.String())
	}
}

func TestProcess_Strict(t *testing.T) {
	data := `
selectors:
  - name: digits
    parts:
      - class: 5col
`
	var out bytes.Buffer
	if err := render.Process(nil, strings.NewReader(data), &out, render.Options{Format: config.OutputFmtList}); err != nil {
		t.Fatalf("non strict Process() error = %v", err)
	}

	out.Reset()
	err := render.Process(nil, strings.NewReader(data), &out, render.Options{Format: config.OutputFmtList, Strict: true})
	if err == nil || !strings.Contains(err.Error(), "digits") {
		t.Errorf("strict Process() error = %v, want lint failure", err)
	}
}

func TestProcess_LoadError(t *testing.T) {
	var out bytes.Buffer
	if err := render.Process(nil, strings.NewReader("selectors: 5"), &out, render.Options{}); err == nil {
		t.Error("expected load error")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on load error, got %q", out.String())
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	if err := render.Write(nil, &bytes.Buffer{}, nil, render.Options{Format: config.OutputFmt(42)}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWrite_StylesheetOverrideWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	built := []definitions.Built{
		{Name: "first", Selector: "p", Properties: map[string]string{"color": "red", "margin": "0"}},
		{Name: "second", Selector: "p", Properties: map[string]string{"color": "blue", "margin": "0"}},
		{Name: "other", Selector: "a", Properties: map[string]string{"color": "green"}},
	}

	var out bytes.Buffer
	if err := render.Write(zap.New(core), &out, built, render.Options{Format: config.OutputFmtStylesheet}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries := logs.FilterMessage("Property is overridden by later rule").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 override warning, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["property"] != "color" || fields["from"] != "first" || fields["by"] != "second" {
		t.Errorf("unexpected warning fields: %v", fields)
	}
	if strings.Count(out.String(), "p {") != 2 {
		t.Errorf("both rules must still be written:\n%s", out.String())
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Format: config.OutputFmtStylesheet, Strict: true, Sort: true, Indent: "   "}}
	opts := render.OptionsFromConfig(cfg)
	want := render.Options{Format: config.OutputFmtStylesheet, Strict: true, Sort: true, Indent: "   "}
	if opts != want {
		t.Errorf("OptionsFromConfig() = %+v, want %+v", opts, want)
	}
}

// runApp executes commands the same way cmd/csel wires them.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runAppWithInput(t, nil, args...)
}

func runAppWithInput(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = &config.Config{Version: 1, Output: config.OutputConfig{Format: config.OutputFmtList, Indent: "  "}}
	env.Log = zaptest.NewLogger(t)

	var out bytes.Buffer
	app := &cli.Command{
		Name:   "csel",
		Reader: in,
		Writer: &out,
		Commands: []*cli.Command{
			{Name: "build", Action: render.Build, Flags: render.BuildFlags()},
			{Name: "render", Action: render.Run, Flags: render.RunFlags()},
		},
	}
	err := app.Run(ctx, append([]string{"csel"}, args...))
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	out, err := runApp(t, "build",
		"--element", "a", "--id", "x", "--class", "c1", "--class", "c2",
		"--attr", "href", "--pseudo-class", "hover", "--pseudo-element", "before")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if out != "a#x.c1.c2[href]:hover::before\n" {
		t.Errorf("build output = %q", out)
	}
}

func TestBuildCommand_Strict(t *testing.T) {
	if _, err := runApp(t, "build", "--id", "1st", "--strict"); err == nil {
		t.Error("expected strict lint failure")
	}
	out, err := runApp(t, "build", "--id", "1st")
	if err != nil {
		t.Fatalf("non strict build error = %v", err)
	}
	if out != "#1st\n" {
		t.Errorf("build output = %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "defs.yaml")
	dst := filepath.Join(dir, "out.css")
	if err := os.WriteFile(src, []byte(defs), 0644); err != nil {
		t.Fatalf("unable to write definitions: %v", err)
	}

	if _, err := runApp(t, "render", "--to", "stylesheet", "--sort", src, dst); err != nil {
		t.Fatalf("render error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("destination not written: %v", err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "/* item2 */\nli.two {\n  color: red;\n") {
		t.Errorf("unexpected stylesheet:\n%s", got)
	}
}

func TestRenderCommand_Stdin(t *testing.T) {
	out, err := runAppWithInput(t, strings.NewReader(defs), "render", "--sort", "-")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if out != "item2\tli.two\nitem10\t.item.ten\nlist\tli.two > .item.ten\n" {
		t.Errorf("render output = %q", out)
	}
}

func TestRenderCommand_DestinationExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "defs.yaml")
	if err := os.WriteFile(src, []byte(defs), 0644); err != nil {
		t.Fatalf("unable to write definitions: %v", err)
	}

	tests := []struct {
		format string
		dst    string
		want   string
	}{
		{"stylesheet", "styles", "styles.css"},
		{"list", "names", "names.txt"},
		{"tree", "explain", "explain.txt"},
		{"stylesheet", "keep.scss", "keep.scss"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if _, err := runApp(t, "render", "--to", tt.format, src, filepath.Join(dir, tt.dst)); err != nil {
				t.Fatalf("render error = %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.want)); err != nil {
				t.Errorf("expected destination %s: %v", tt.want, err)
			}
		})
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	if _, err := runApp(t, "render"); err == nil {
		t.Error("expected error without source")
	}
	if _, err := runApp(t, "render", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing source")
	}
	if _, err := runApp(t, "render", "--to", "html", "whatever.yaml"); !errors.Is(err, config.ErrInvalidOutputFmt) {
		t.Errorf("expected ErrInvalidOutputFmt, got %v", err)
	}
}
