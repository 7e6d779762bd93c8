package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/types"
)

// Palette is the fixed color palette of the chart
var Palette = []string{
	"#e41a1c",
	"#377eb8",
	"#4daf4a",
	"#984ea3",
	"#ff7f00",
	"#ffff33",
	"#a65628",
	"#f781bf",
}

// LineConfig describes one line in a YAML line configuration
type LineConfig struct {
	Kind      types.LineKind   `yaml:"kind"`                 // deaths or jabs
	Label     string           `yaml:"label"`                // Legend label
	Color     string           `yaml:"color,omitempty"`      // Explicit color, overrides palette
	Palette   *int             `yaml:"palette,omitempty"`    // Index into Palette
	Enabled   *bool            `yaml:"enabled,omitempty"`    // Visible on load, default true
	Style     types.LineStyle  `yaml:"style,omitempty"`      // solid (default) or dotted
	Days      *int             `yaml:"days,omitempty"`       // Averaging window, deaths only, default 1
	AgeMin    *int             `yaml:"age_min,omitempty"`    // Inclusive lower age, deaths only
	AgeMax    *int             `yaml:"age_max,omitempty"`    // Exclusive upper age, deaths only
	AgeGroups []types.AgeGroup `yaml:"age_groups,omitempty"` // Age groups, jabs only
}

// Validate validates the line configuration
func (c *LineConfig) Validate() error {
	if c.Label == "" {
		return goerr.New("line label is required")
	}
	if !c.Kind.IsValid() {
		return goerr.New("unknown line kind", goerr.V("kind", c.Kind))
	}
	if c.Style != "" && !c.Style.IsValid() {
		return goerr.New("unknown line style", goerr.V("style", c.Style))
	}
	if c.Palette != nil && (*c.Palette < 0 || *c.Palette >= len(Palette)) {
		return goerr.New("palette index out of range",
			goerr.V("palette", *c.Palette),
			goerr.V("size", len(Palette)))
	}

	switch c.Kind {
	case types.LineKindDeaths:
		if len(c.AgeGroups) > 0 {
			return goerr.New("age_groups is not allowed on a deaths line")
		}
		if c.Days != nil && *c.Days < 1 {
			return goerr.New("days must be at least 1", goerr.V("days", *c.Days))
		}
		if err := c.ageRange().Validate(); err != nil {
			return err
		}
	case types.LineKindJabs:
		if c.AgeMin != nil || c.AgeMax != nil {
			return goerr.New("age_min and age_max are not allowed on a jabs line")
		}
		if c.Days != nil {
			return goerr.New("days is not allowed on a jabs line")
		}
		for _, g := range c.AgeGroups {
			if !g.IsValid() {
				return goerr.New("unknown age group", goerr.V("age_group", g))
			}
		}
	}

	return nil
}

func (c *LineConfig) ageRange() AgeRange {
	var r AgeRange
	if c.AgeMin != nil {
		r.Min = *c.AgeMin
	}
	if c.AgeMax != nil {
		r.Max = *c.AgeMax
	}
	return r
}

func (c *LineConfig) options() []LineOption {
	color := c.Color
	if color == "" && c.Palette != nil {
		color = Palette[*c.Palette]
	}

	opts := []LineOption{WithColor(color)}
	if c.Enabled != nil {
		opts = append(opts, WithEnabled(*c.Enabled))
	}
	if c.Style != "" {
		opts = append(opts, WithStyle(c.Style))
	}
	return opts
}

// Build creates the line described by the configuration
func (c *LineConfig) Build() (Line, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Kind {
	case types.LineKindDeaths:
		var filter Predicate[MortalityRecord]
		if c.AgeMin != nil || c.AgeMax != nil {
			filter = c.ageRange()
		}
		days := 1
		if c.Days != nil {
			days = *c.Days
		}
		return NewDeathsLine(c.Label, days, filter, c.options()...), nil

	case types.LineKindJabs:
		var filter Predicate[VaccinationRecord]
		if len(c.AgeGroups) > 0 {
			set, err := NewAgeGroupSet(c.AgeGroups...)
			if err != nil {
				return nil, err
			}
			filter = set
		}
		return NewJabsLine(c.Label, filter, c.options()...), nil
	}

	return nil, goerr.New("unknown line kind", goerr.V("kind", c.Kind))
}

// LinesConfig is an ordered set of line configurations
type LinesConfig struct {
	Lines []LineConfig `yaml:"lines"`
}

// Validate validates every line
func (c *LinesConfig) Validate() error {
	if len(c.Lines) == 0 {
		return goerr.New("at least one line is required", goerr.T(TagInvalidConfig))
	}

	for i := range c.Lines {
		if err := c.Lines[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid line at index",
				goerr.V("index", i),
				goerr.V("label", c.Lines[i].Label),
				goerr.T(TagInvalidConfig))
		}
	}
	return nil
}

// Build creates the lines in configured order
func (c *LinesConfig) Build() ([]Line, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(c.Lines))
	for i := range c.Lines {
		line, err := c.Lines[i].Build()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build line",
				goerr.V("index", i),
				goerr.V("label", c.Lines[i].Label),
				goerr.T(TagInvalidConfig))
		}
		lines = append(lines, line)
	}
	return lines, nil
}
