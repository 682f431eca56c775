package selector

// Combinator expresses structural relationship between two selectors. Any
// string is accepted and written as is.
type Combinator string

const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// Combined is a render-only selector produced by Combine.
type Combined struct {
	text string
}

// Combine renders left and right immediately and joins them with c
// surrounded by single spaces. Later changes to left or right builders do
// not affect the result.
func Combine(left Renderer, c Combinator, right Renderer) *Combined {
	return &Combined{text: left.String() + " " + string(c) + " " + right.String()}
}

func (c *Combined) String() string {
	return c.text
}
