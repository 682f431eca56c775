package render

import (
	"strings"

	cli "github.com/urfave/cli/v3"

	"csel/config"
)

// BuildFlags returns flags understood by Build.
func BuildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "element", Aliases: []string{"e"}, Usage: "element (tag) `NAME`"},
		&cli.StringFlag{Name: "id", Aliases: []string{"i"}, Usage: "element `ID`"},
		&cli.StringSliceFlag{Name: "class", Aliases: []string{"c"}, Usage: "class `NAME`, may be repeated"},
		&cli.StringSliceFlag{Name: "attr", Aliases: []string{"a"}, Usage: "attribute `EXPR` without brackets, may be repeated"},
		&cli.StringSliceFlag{Name: "pseudo-class", Aliases: []string{"pc"}, Usage: "pseudo-class `NAME` without colon, may be repeated"},
		&cli.StringFlag{Name: "pseudo-element", Aliases: []string{"pe"}, Usage: "pseudo-element `NAME` without colons"},
		&cli.BoolFlag{Name: "strict", Usage: "fail when selector looks suspicious"},
	}
}

// RunFlags returns flags understood by Run.
func RunFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "to", Value: config.OutputFmtList.String(),
			Usage: "output `TYPE` (supported types: " + strings.Join(config.OutputFmtNames(), ", ") + ")"},
		&cli.BoolFlag{Name: "strict", Usage: "fail when any selector looks suspicious"},
		&cli.BoolFlag{Name: "sort", Usage: "order output by definition name"},
	}
}
