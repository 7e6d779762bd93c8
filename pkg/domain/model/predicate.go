package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/types"
)

// Predicate decides whether a record contributes to a line
type Predicate[R any] interface {
	Match(record R) bool
}

// AcceptAll matches every record
type AcceptAll[R any] struct{}

// Match always returns true
func (AcceptAll[R]) Match(R) bool {
	return true
}

// AgeRange matches mortality records with Min <= age < Max.
// Max of 0 leaves the range open above.
type AgeRange struct {
	Min int
	Max int
}

// Match tests the record age against the range
func (r AgeRange) Match(record MortalityRecord) bool {
	if record.Age < r.Min {
		return false
	}
	return r.Max == 0 || record.Age < r.Max
}

// Validate validates the range bounds
func (r AgeRange) Validate() error {
	if r.Min < 0 {
		return goerr.New("age range minimum must not be negative",
			goerr.V("min", r.Min))
	}
	if r.Max != 0 && r.Max <= r.Min {
		return goerr.New("age range maximum must be greater than minimum",
			goerr.V("min", r.Min),
			goerr.V("max", r.Max))
	}
	return nil
}

// LogValue returns structured log value
func (r AgeRange) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("min", r.Min),
		slog.Int("max", r.Max),
	)
}

// AgeGroupSet matches vaccination records whose age group is one of the
// canonical groups in the set
type AgeGroupSet struct {
	groups map[types.AgeGroup]struct{}
}

// NewAgeGroupSet creates a set from canonical age groups
func NewAgeGroupSet(groups ...types.AgeGroup) (AgeGroupSet, error) {
	if len(groups) == 0 {
		return AgeGroupSet{}, goerr.New("at least one age group is required")
	}

	set := AgeGroupSet{groups: make(map[types.AgeGroup]struct{}, len(groups))}
	for _, g := range groups {
		if !g.IsValid() {
			return AgeGroupSet{}, goerr.New("unknown age group",
				goerr.V("age_group", g))
		}
		set.groups[g] = struct{}{}
	}
	return set, nil
}

// Match tests membership of the record age group
func (s AgeGroupSet) Match(record VaccinationRecord) bool {
	if !record.AgeGroup.IsValid() {
		return false
	}
	_, ok := s.groups[record.AgeGroup]
	return ok
}

// Groups returns the members in canonical order
func (s AgeGroupSet) Groups() []types.AgeGroup {
	var result []types.AgeGroup
	for _, g := range types.AgeGroups() {
		if _, ok := s.groups[g]; ok {
			result = append(result, g)
		}
	}
	return result
}

// LogValue returns structured log value
func (s AgeGroupSet) LogValue() slog.Value {
	names := make([]string, 0, len(s.groups))
	for _, g := range s.Groups() {
		names = append(names, g.String())
	}
	return slog.StringValue(strings.Join(names, ","))
}
