package model

import "github.com/secmon-lab/vaxchart/pkg/domain/types"

// MortalityCutoff is the last day excluded from the mortality dataset.
// Only records dated strictly after it are charted.
var MortalityCutoff = types.NewDate(2020, 9, 1)

// DefaultLinesConfig returns the built-in chart: cumulative first doses per
// age band followed by daily and 7-day average deaths per age band.
func DefaultLinesConfig() *LinesConfig {
	return &LinesConfig{
		Lines: []LineConfig{
			jabs("💉 TOTAL", 6, false),
			jabs("💉 80+", 0, true, types.AgeGroup80Plus),
			jabs("💉 70+", 1, true, types.AgeGroup70to74, types.AgeGroup75to79),
			jabs("💉 60+", 2, true, types.AgeGroup60to64, types.AgeGroup65to69),
			jabs("💉 50+", 3, true, types.AgeGroup50to54, types.AgeGroup55to59),
			jabs("💉 40+", 4, true, types.AgeGroup40to44, types.AgeGroup45to49),
			jabs("💉 40-", 5, true,
				types.AgeGroup0to17,
				types.AgeGroup18to24,
				types.AgeGroup25to29,
				types.AgeGroup30to34,
				types.AgeGroup35to39,
			),
			deathsPerDay("✖ 80+ [per day]", 0, intPtr(80), nil),
			deathsWeekly("✖ 80+ [7 days avg]", 0, true, intPtr(80), nil),
			deathsPerDay("✖ 70+ [per day]", 1, intPtr(70), intPtr(80)),
			deathsWeekly("✖ 70+ [7 days avg]", 1, true, intPtr(70), intPtr(80)),
			deathsPerDay("✖ 60+ [per day]", 2, intPtr(60), intPtr(70)),
			deathsWeekly("✖ 60+ [7 days avg]", 2, true, intPtr(60), intPtr(70)),
			deathsPerDay("✖ 50+ [per day]", 3, intPtr(50), intPtr(60)),
			deathsWeekly("✖ 50+ [7 days avg]", 3, true, intPtr(50), intPtr(60)),
			deathsPerDay("✖ 40+ [per day]", 4, intPtr(40), intPtr(50)),
			deathsWeekly("✖ 40+ [7 days avg]", 4, true, intPtr(40), intPtr(50)),
			deathsPerDay("✖ 40- [per day]", 5, intPtr(0), intPtr(40)),
			deathsWeekly("✖ 40- [7 days avg]", 5, true, intPtr(0), intPtr(40)),
			deathsPerDay("✖ Total [per day]", 6, nil, nil),
			deathsWeekly("✖ Total [7 days avg]", 6, false, nil, nil),
		},
	}
}

// DefaultLines builds the built-in line set
func DefaultLines() []Line {
	lines, err := DefaultLinesConfig().Build()
	if err != nil {
		panic("invalid built-in line configuration: " + err.Error())
	}
	return lines
}

func jabs(label string, palette int, enabled bool, groups ...types.AgeGroup) LineConfig {
	return LineConfig{
		Kind:      types.LineKindJabs,
		Label:     label,
		Palette:   intPtr(palette),
		Enabled:   boolPtr(enabled),
		AgeGroups: groups,
	}
}

func deathsPerDay(label string, palette int, ageMin, ageMax *int) LineConfig {
	return LineConfig{
		Kind:    types.LineKindDeaths,
		Label:   label,
		Palette: intPtr(palette),
		Enabled: boolPtr(false),
		Style:   types.LineStyleDotted,
		Days:    intPtr(1),
		AgeMin:  ageMin,
		AgeMax:  ageMax,
	}
}

func deathsWeekly(label string, palette int, enabled bool, ageMin, ageMax *int) LineConfig {
	return LineConfig{
		Kind:    types.LineKindDeaths,
		Label:   label,
		Palette: intPtr(palette),
		Enabled: boolPtr(enabled),
		Days:    intPtr(7),
		AgeMin:  ageMin,
		AgeMax:  ageMax,
	}
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
