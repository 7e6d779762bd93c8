package types

// AgeGroup is a canonical age band label used by the vaccination dataset
type AgeGroup string

const (
	AgeGroup0to17  AgeGroup = "0-17"
	AgeGroup18to24 AgeGroup = "18-24"
	AgeGroup25to29 AgeGroup = "25-29"
	AgeGroup30to34 AgeGroup = "30-34"
	AgeGroup35to39 AgeGroup = "35-39"
	AgeGroup40to44 AgeGroup = "40-44"
	AgeGroup45to49 AgeGroup = "45-49"
	AgeGroup50to54 AgeGroup = "50-54"
	AgeGroup55to59 AgeGroup = "55-59"
	AgeGroup60to64 AgeGroup = "60-64"
	AgeGroup65to69 AgeGroup = "65-69"
	AgeGroup70to74 AgeGroup = "70-74"
	AgeGroup75to79 AgeGroup = "75-79"
	AgeGroup80Plus AgeGroup = "80+"
)

// AgeGroups returns every canonical age group in ascending order
func AgeGroups() []AgeGroup {
	return []AgeGroup{
		AgeGroup0to17,
		AgeGroup18to24,
		AgeGroup25to29,
		AgeGroup30to34,
		AgeGroup35to39,
		AgeGroup40to44,
		AgeGroup45to49,
		AgeGroup50to54,
		AgeGroup55to59,
		AgeGroup60to64,
		AgeGroup65to69,
		AgeGroup70to74,
		AgeGroup75to79,
		AgeGroup80Plus,
	}
}

// String returns the string representation
func (g AgeGroup) String() string {
	return string(g)
}

// IsValid checks if the label is one of the canonical age groups
func (g AgeGroup) IsValid() bool {
	switch g {
	case AgeGroup0to17, AgeGroup18to24, AgeGroup25to29, AgeGroup30to34,
		AgeGroup35to39, AgeGroup40to44, AgeGroup45to49, AgeGroup50to54,
		AgeGroup55to59, AgeGroup60to64, AgeGroup65to69, AgeGroup70to74,
		AgeGroup75to79, AgeGroup80Plus:
		return true
	default:
		return false
	}
}
