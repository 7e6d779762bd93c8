package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/types"
)

var validate = validator.New()

// RawMortality is one entry of the mortality dataset as published
type RawMortality struct {
	Date string  `json:"datum" validate:"required"`
	Age  *int    `json:"vek" validate:"required"`
	Sex  *string `json:"pohlavi" validate:"required"`
}

// RawVaccination is one entry of the vaccination dataset as published
type RawVaccination struct {
	Date        string  `json:"datum" validate:"required"`
	AgeGroup    *string `json:"vekova_skupina" validate:"required"`
	FirstDoses  *int    `json:"prvnich_davek" validate:"required,gte=0"`
	SecondDoses *int    `json:"druhych_davek" validate:"required,gte=0"`
}

// MortalityRecord is a single death incident
type MortalityRecord struct {
	Date types.Date
	Age  int
	Sex  string
}

// VaccinationRecord is the number of doses given to one age group on one day
type VaccinationRecord struct {
	Date        types.Date
	AgeGroup    types.AgeGroup
	FirstDoses  int
	SecondDoses int
}

// ParseMortality converts a raw entry into a MortalityRecord
func ParseMortality(raw RawMortality) (MortalityRecord, error) {
	if err := validate.Struct(raw); err != nil {
		return MortalityRecord{}, goerr.Wrap(err, "invalid mortality record",
			goerr.V("date", raw.Date),
			goerr.T(TagParse))
	}

	date, err := types.ParseDate(raw.Date)
	if err != nil {
		return MortalityRecord{}, goerr.Wrap(err, "invalid mortality record date",
			goerr.T(TagParse))
	}

	return MortalityRecord{
		Date: date,
		Age:  *raw.Age,
		Sex:  *raw.Sex,
	}, nil
}

// ParseVaccination converts a raw entry into a VaccinationRecord.
// The age group label is kept as published; unknown labels are not an error
// here, they simply never match an age group filter.
func ParseVaccination(raw RawVaccination) (VaccinationRecord, error) {
	if err := validate.Struct(raw); err != nil {
		return VaccinationRecord{}, goerr.Wrap(err, "invalid vaccination record",
			goerr.V("date", raw.Date),
			goerr.T(TagParse))
	}

	date, err := types.ParseDate(raw.Date)
	if err != nil {
		return VaccinationRecord{}, goerr.Wrap(err, "invalid vaccination record date",
			goerr.T(TagParse))
	}

	return VaccinationRecord{
		Date:        date,
		AgeGroup:    types.AgeGroup(*raw.AgeGroup),
		FirstDoses:  *raw.FirstDoses,
		SecondDoses: *raw.SecondDoses,
	}, nil
}
