package model

import "github.com/secmon-lab/vaxchart/pkg/domain/types"

// Buckets groups records of one kind by calendar day. A date key exists only
// once a record has been added for it; Get on a missing date returns nil,
// which reads as an empty bucket.
type Buckets[R any] map[types.Date][]R

// Add appends the record to the bucket of the given date
func (b Buckets[R]) Add(date types.Date, record R) {
	b[date] = append(b[date], record)
}

// Get returns the records of the given date in insertion order
func (b Buckets[R]) Get(date types.Date) []R {
	return b[date]
}

// Has reports whether any record was added for the date
func (b Buckets[R]) Has(date types.Date) bool {
	_, ok := b[date]
	return ok
}

// Dates returns the bucket keys in no particular order
func (b Buckets[R]) Dates() []types.Date {
	dates := make([]types.Date, 0, len(b))
	for d := range b {
		dates = append(dates, d)
	}
	return dates
}

// Len returns the total number of records over all dates
func (b Buckets[R]) Len() int {
	n := 0
	for _, records := range b {
		n += len(records)
	}
	return n
}

// MortalityBuckets holds mortality records by date
type MortalityBuckets = Buckets[MortalityRecord]

// VaccinationBuckets holds vaccination records by date
type VaccinationBuckets = Buckets[VaccinationRecord]

// NewMortalityBuckets buckets records dated strictly after cutoff; earlier
// records are dropped. It returns the buckets and the number dropped.
func NewMortalityBuckets(records []MortalityRecord, cutoff types.Date) (MortalityBuckets, int) {
	buckets := make(MortalityBuckets)
	dropped := 0
	for _, r := range records {
		if !r.Date.After(cutoff) {
			dropped++
			continue
		}
		buckets.Add(r.Date, r)
	}
	return buckets, dropped
}

// NewVaccinationBuckets buckets every record
func NewVaccinationBuckets(records []VaccinationRecord) VaccinationBuckets {
	buckets := make(VaccinationBuckets)
	for _, r := range records {
		buckets.Add(r.Date, r)
	}
	return buckets
}
