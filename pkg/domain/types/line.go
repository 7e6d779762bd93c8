package types

// LineStyle controls how a chart line is drawn
type LineStyle string

const (
	// LineStyleSolid draws points connected by a line
	LineStyleSolid LineStyle = "solid"
	// LineStyleDotted draws points only, without a connecting line
	LineStyleDotted LineStyle = "dotted"
)

// String returns the string representation
func (s LineStyle) String() string {
	return string(s)
}

// IsValid checks if the style is known
func (s LineStyle) IsValid() bool {
	switch s {
	case LineStyleSolid, LineStyleDotted:
		return true
	default:
		return false
	}
}

// LineKind identifies the dataset a line is computed from
type LineKind string

const (
	LineKindDeaths LineKind = "deaths"
	LineKindJabs   LineKind = "jabs"
)

// String returns the string representation
func (k LineKind) String() string {
	return string(k)
}

// IsValid checks if the kind is known
func (k LineKind) IsValid() bool {
	switch k {
	case LineKindDeaths, LineKindJabs:
		return true
	default:
		return false
	}
}

// AxisID is the identifier of a chart y axis
type AxisID string

const (
	AxisDeaths AxisID = "y-axis-deaths"
	AxisJabs   AxisID = "y-axis-jabs"
)

// String returns the string representation
func (id AxisID) String() string {
	return string(id)
}
