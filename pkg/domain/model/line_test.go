package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
	"github.com/secmon-lab/vaxchart/pkg/domain/types"
)

func day(n int) types.Date {
	return types.NewDate(2021, time.January, n)
}

func deaths(date types.Date, ages ...int) []model.MortalityRecord {
	records := make([]model.MortalityRecord, 0, len(ages))
	for _, age := range ages {
		records = append(records, model.MortalityRecord{Date: date, Age: age, Sex: "M"})
	}
	return records
}

func mortalityBuckets(records ...[]model.MortalityRecord) model.MortalityBuckets {
	buckets := make(model.MortalityBuckets)
	for _, set := range records {
		for _, r := range set {
			buckets.Add(r.Date, r)
		}
	}
	return buckets
}

func TestDeathsLine_Compute(t *testing.T) {
	// day 2 has records but none of them match the 80+ filter
	data := mortalityBuckets(
		deaths(day(1), 85, 90, 40),
		deaths(day(2), 30),
		deaths(day(3), 80, 81, 82, 99),
	)
	axis := types.NewDateAxis(data.Dates())
	old := model.AgeRange{Min: 80}

	t.Run("window of one is the daily count", func(t *testing.T) {
		line := model.NewDeathsLine("80+", 1, old)
		line.Compute(axis, data)

		gt.Equal(t, line.Values(), map[types.Date]float64{
			day(1): 2,
			day(2): 0,
			day(3): 4,
		})
	})

	t.Run("window of three averages over the full window", func(t *testing.T) {
		line := model.NewDeathsLine("80+", 3, old)
		line.Compute(axis, data)

		v, ok := line.Value(day(3))
		gt.True(t, ok)
		gt.Equal(t, v, 2.0)

		// trailing days before day 1 are absent and still count in the denominator
		v, ok = line.Value(day(1))
		gt.True(t, ok)
		gt.Equal(t, v, 2.0/3.0)
	})

	t.Run("axis dates without records get no value", func(t *testing.T) {
		gap := mortalityBuckets(deaths(day(1), 50), deaths(day(4), 50, 51))
		gapAxis := types.NewDateAxis(gap.Dates(), []types.Date{day(2), day(3)})

		line := model.NewDeathsLine("total", 2, nil)
		line.Compute(gapAxis, gap)

		_, ok := line.Value(day(2))
		gt.False(t, ok)
		_, ok = line.Value(day(3))
		gt.False(t, ok)

		v, _ := line.Value(day(4))
		gt.Equal(t, v, 1.0)
		v, _ = line.Value(day(1))
		gt.Equal(t, v, 0.5)
	})

	t.Run("window sums absent days as zero", func(t *testing.T) {
		sparse := mortalityBuckets(deaths(day(1), 50, 60), deaths(day(5), 70))
		sparseAxis := types.NewDateAxis(sparse.Dates())

		line := model.NewDeathsLine("total", 7, nil)
		line.Compute(sparseAxis, sparse)

		v, _ := line.Value(day(5))
		gt.Equal(t, v, 3.0/7.0)
	})

	t.Run("compute is idempotent", func(t *testing.T) {
		line := model.NewDeathsLine("80+", 7, old)
		line.Compute(axis, data)
		first := line.Values()
		line.Compute(axis, data)
		gt.Equal(t, line.Values(), first)
	})

	t.Run("window below one behaves as one", func(t *testing.T) {
		line := model.NewDeathsLine("80+", 0, old)
		gt.Equal(t, line.Days(), 1)
	})
}

func TestJabsLine_Compute(t *testing.T) {
	jab := func(date types.Date, group types.AgeGroup, first int) model.VaccinationRecord {
		return model.VaccinationRecord{Date: date, AgeGroup: group, FirstDoses: first, SecondDoses: 100}
	}

	t.Run("running total of first doses", func(t *testing.T) {
		data := model.NewVaccinationBuckets([]model.VaccinationRecord{
			jab(day(1), types.AgeGroup80Plus, 5),
			jab(day(2), types.AgeGroup80Plus, 3),
		})
		axis := types.NewDateAxis(data.Dates())

		line := model.NewJabsLine("total", nil)
		line.Compute(axis, data)

		gt.Equal(t, line.Render(axis).Data, []float64{5, 8})
	})

	t.Run("every axis date gets a value", func(t *testing.T) {
		data := model.NewVaccinationBuckets([]model.VaccinationRecord{
			jab(day(2), types.AgeGroup80Plus, 4),
			jab(day(4), types.AgeGroup70to74, 6),
			jab(day(4), types.AgeGroup80Plus, 1),
		})
		axis := types.NewDateAxis(data.Dates(), []types.Date{day(1), day(3), day(5)})

		set, err := model.NewAgeGroupSet(types.AgeGroup80Plus)
		gt.NoError(t, err)
		line := model.NewJabsLine("80+", set)
		line.Compute(axis, data)

		gt.Equal(t, len(line.Values()), len(axis))
		gt.Equal(t, line.Render(axis).Data, []float64{0, 4, 4, 5, 5})

		prev := -1.0
		for _, d := range axis {
			v, ok := line.Value(d)
			gt.True(t, ok)
			gt.True(t, v >= prev)
			prev = v
		}
	})

	t.Run("unknown age group never matches", func(t *testing.T) {
		data := model.NewVaccinationBuckets([]model.VaccinationRecord{
			jab(day(1), "unknown", 10),
		})
		axis := types.NewDateAxis(data.Dates())

		set, err := model.NewAgeGroupSet(types.AgeGroups()...)
		gt.NoError(t, err)
		line := model.NewJabsLine("all groups", set)
		line.Compute(axis, data)

		gt.Equal(t, line.Render(axis).Data, []float64{0})
	})

	t.Run("compute is idempotent", func(t *testing.T) {
		data := model.NewVaccinationBuckets([]model.VaccinationRecord{
			jab(day(1), types.AgeGroup80Plus, 5),
		})
		axis := types.NewDateAxis(data.Dates())

		line := model.NewJabsLine("total", nil)
		line.Compute(axis, data)
		line.Compute(axis, data)
		gt.Equal(t, line.Values(), map[types.Date]float64{day(1): 5})
	})
}

func TestLine_Render(t *testing.T) {
	axis := types.DateAxis{day(1), day(2), day(3)}

	t.Run("deaths line defaults", func(t *testing.T) {
		data := mortalityBuckets(deaths(day(1), 50), deaths(day(3), 50, 60))
		line := model.NewDeathsLine("✖ Total", 1, nil, model.WithColor("#a65628"))
		line.Compute(axis, data)

		ds := line.Render(axis)
		gt.Equal(t, ds.Data, []float64{1, 0, 2})
		gt.Equal(t, ds.BorderColor, "#a65628")
		gt.Equal(t, ds.Label, "✖ Total")
		gt.False(t, ds.Fill)
		gt.False(t, ds.Hidden)
		gt.Equal(t, ds.YAxisID, "y-axis-deaths")
		gt.Equal(t, len(ds.BorderDash), 0)
		gt.True(t, ds.ShowLine)
	})

	t.Run("dotted hidden deaths line", func(t *testing.T) {
		line := model.NewDeathsLine("per day", 1, nil,
			model.WithEnabled(false),
			model.WithStyle(types.LineStyleDotted),
		)

		ds := line.Render(axis)
		gt.Equal(t, ds.Data, []float64{0, 0, 0})
		gt.True(t, ds.Hidden)
		gt.False(t, ds.ShowLine)
	})

	t.Run("jabs line is dashed on its own axis", func(t *testing.T) {
		line := model.NewJabsLine("💉", nil)
		ds := line.Render(axis)

		gt.Equal(t, ds.YAxisID, "y-axis-jabs")
		gt.Equal(t, ds.BorderDash, []int{10, 10})
		gt.True(t, ds.ShowLine)
		gt.Equal(t, line.Kind(), types.LineKindJabs)
	})
}
