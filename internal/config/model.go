package config

// Model is the unified, format-agnostic representation of a complete unit
// definition source. Every loader translates its own syntax into this model
// before the graph is populated.
type Model struct {
	Units     []*UnitDecl
	Relations []*RelationDecl
}

// UnitDecl declares a single unit: a short identifier used on the command
// line and a longer descriptive name used in listings.
type UnitDecl struct {
	ID       string
	LongName string
	Pos      Position
}

// RelationDecl declares a conversion relation between two previously
// declared units. With Invert false a value in From units is multiplied by
// Factor to obtain To units; with Invert true the Factor is divided by the
// value instead.
type RelationDecl struct {
	From   string
	Factor float64
	To     string
	Invert bool
	Pos    Position
}

// Position locates a declaration inside its definition source for error
// reporting. Line is 1-based; 0 means the loader could not attribute one.
type Position struct {
	File string
	Line int
}
