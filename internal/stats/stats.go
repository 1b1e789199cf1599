// Package stats holds the aggregate kernels behind the chart views:
// histogram binning, five-number summaries, and grouped counts and means
// over the merged shot table.
package stats

import (
	"sort"

	"github.com/antigravity/golfshots/internal/models"
)

// fullShotLies are the lies kept by the distance views. Putting (Green) and
// anything unrecognized is excluded because it skews the distance scale.
var fullShotLies = map[models.Lie]bool{
	models.LieTeeBox:  true,
	models.LieFairway: true,
	models.LieRough:   true,
	models.LieBunker:  true,
}

// lieOrder fixes the box-plot category order.
var lieOrder = []models.Lie{models.LieTeeBox, models.LieFairway, models.LieRough, models.LieBunker}

// NonPuttingYards returns the yards of every shot played from a tee box,
// fairway, rough or bunker, in table order.
func NonPuttingYards(shots []models.MergedShot) []float64 {
	var yards []float64
	for _, s := range shots {
		if fullShotLies[s.Lie] {
			yards = append(yards, s.Yards)
		}
	}
	return yards
}

// Bin is one histogram bucket over [Low, High).
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram buckets values into the given number of equal-width bins
// spanning [min, max]. The top bin is closed so the maximum is counted.
// All-equal input collapses to a single bin. Empty input yields nil.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins < 1 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []Bin{{Low: lo, High: hi, Count: len(values)}}
	}
	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// FiveNumber is the box-plot summary of a sample.
type FiveNumber struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// quantile interpolates linearly between order statistics (the convention
// pandas and plotly use). sorted must be ascending and non-empty.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	i := int(pos)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Summarize computes the five-number summary of values. ok is false for an
// empty sample.
func Summarize(values []float64) (FiveNumber, bool) {
	if len(values) == 0 {
		return FiveNumber{}, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return FiveNumber{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, true
}

// LieSummary pairs a lie with the distance summary of its shots.
type LieSummary struct {
	Lie     models.Lie
	Summary FiveNumber
}

// SummarizeYardsByLie groups non-putting shots by lie and summarizes yards
// per group. Lies appear in the fixed tee-to-bunker order, present lies only.
func SummarizeYardsByLie(shots []models.MergedShot) []LieSummary {
	grouped := make(map[models.Lie][]float64)
	for _, s := range shots {
		if fullShotLies[s.Lie] {
			grouped[s.Lie] = append(grouped[s.Lie], s.Yards)
		}
	}
	var out []LieSummary
	for _, lie := range lieOrder {
		if summary, ok := Summarize(grouped[lie]); ok {
			out = append(out, LieSummary{Lie: lie, Summary: summary})
		}
	}
	return out
}

// HoleCount is the number of shots recorded on one hole.
type HoleCount struct {
	Hole  int
	Count int
}

// CountByHole counts shots per hole, ordered by ascending hole number.
func CountByHole(shots []models.MergedShot) []HoleCount {
	counts := make(map[int]int)
	for _, s := range shots {
		counts[s.HoleNumber]++
	}
	holes := make([]int, 0, len(counts))
	for h := range counts {
		holes = append(holes, h)
	}
	sort.Ints(holes)
	out := make([]HoleCount, 0, len(holes))
	for _, h := range holes {
		out = append(out, HoleCount{Hole: h, Count: counts[h]})
	}
	return out
}

// ClubTypeAverage is the mean distance for one club-type name.
type ClubTypeAverage struct {
	Name  string
	Yards float64
}

// minFullSwingYards screens out chips and pitches that would drag down a
// club type's average.
const minFullSwingYards = 30

// AverageYardsByClubType averages full-swing distances (tee box, fairway or
// rough, longer than 30 yards) per club-type name, names sorted.
func AverageYardsByClubType(shots []models.MergedShot) []ClubTypeAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range shots {
		if s.Lie != models.LieTeeBox && s.Lie != models.LieFairway && s.Lie != models.LieRough {
			continue
		}
		if s.Yards <= minFullSwingYards {
			continue
		}
		sums[s.Name] += s.Yards
		counts[s.Name]++
	}
	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]ClubTypeAverage, 0, len(names))
	for _, name := range names {
		out = append(out, ClubTypeAverage{Name: name, Yards: sums[name] / float64(counts[name])})
	}
	return out
}
