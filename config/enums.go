package config

// Specification of requested output type.
// ENUM(list, stylesheet, tree)
type OutputFmt int

// Ext returns file extension for output of this type.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtList, OutputFmtTree:
		return ".txt"
	case OutputFmtStylesheet:
		return ".css"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
