// Package charts turns the merged shot table into renderable chart pages.
// Each view has a stable name used in URLs, a display title, and a builder
// that reports false instead of producing an empty chart.
package charts

import (
	"fmt"
	"io"
	"strconv"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/antigravity/golfshots/internal/db"
	"github.com/antigravity/golfshots/internal/stats"
)

// Chart is a renderable chart page.
type Chart interface {
	Render(w io.Writer) error
}

// View is one named chart over the snapshot.
type View struct {
	Name  string
	Title string
	Build func(snap *db.Snapshot) (Chart, bool)
}

const histogramBins = 50

var views = []View{
	{
		Name:  "shot_distance_distribution_overall",
		Title: "Overall Shot Distance Distribution",
		Build: buildDistanceDistribution,
	},
	{
		Name:  "shot_distance_by_lie",
		Title: "Shot Distance by Lie Type",
		Build: buildDistanceByLie,
	},
	{
		Name:  "shots_per_hole",
		Title: "Number of Shots Per Hole",
		Build: buildShotsPerHole,
	},
	{
		Name:  "distance_by_club_type",
		Title: "Average Distance by Club Type",
		Build: buildDistanceByClubType,
	},
}

// Views lists every available view in display order.
func Views() []View {
	return views
}

// Lookup finds a view by its URL name.
func Lookup(name string) (View, bool) {
	for _, v := range views {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

func buildDistanceDistribution(snap *db.Snapshot) (Chart, bool) {
	bins := stats.Histogram(stats.NonPuttingYards(snap.Merged), histogramBins)
	if len(bins) == 0 {
		return nil, false
	}
	labels := make([]string, 0, len(bins))
	data := make([]opts.BarData, 0, len(bins))
	for _, b := range bins {
		labels = append(labels, fmt.Sprintf("%.0f", b.Low))
		data = append(data, opts.BarData{Value: b.Count})
	}
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Overall Shot Distance Distribution"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "Distance (yards)"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Number of Shots"}),
	)
	bar.SetXAxis(labels).AddSeries("Shots", data)
	return bar, true
}

func buildDistanceByLie(snap *db.Snapshot) (Chart, bool) {
	summaries := stats.SummarizeYardsByLie(snap.Merged)
	if len(summaries) == 0 {
		return nil, false
	}
	labels := make([]string, 0, len(summaries))
	data := make([]opts.BoxPlotData, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, string(s.Lie))
		data = append(data, opts.BoxPlotData{Value: []float64{
			s.Summary.Min, s.Summary.Q1, s.Summary.Median, s.Summary.Q3, s.Summary.Max,
		}})
	}
	box := echarts.NewBoxPlot()
	box.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Shot Distance by Lie Type"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "Lie Type"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Distance (yards)"}),
	)
	box.SetXAxis(labels).AddSeries("Distance", data)
	return box, true
}

func buildShotsPerHole(snap *db.Snapshot) (Chart, bool) {
	counts := stats.CountByHole(snap.Merged)
	if len(counts) == 0 {
		return nil, false
	}
	labels := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, strconv.Itoa(c.Hole))
		data = append(data, opts.BarData{Value: c.Count})
	}
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Number of Shots Per Hole"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "Hole Number"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Number of Shots"}),
	)
	bar.SetXAxis(labels).AddSeries("Shot Count", data)
	return bar, true
}

func buildDistanceByClubType(snap *db.Snapshot) (Chart, bool) {
	averages := stats.AverageYardsByClubType(snap.Merged)
	if len(averages) == 0 {
		return nil, false
	}
	labels := make([]string, 0, len(averages))
	data := make([]opts.BarData, 0, len(averages))
	for _, a := range averages {
		labels = append(labels, a.Name)
		data = append(data, opts.BarData{Value: a.Yards})
	}
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Average Distance by Club Type"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "Club Type"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Average Distance (yards)"}),
	)
	bar.SetXAxis(labels).AddSeries("Average Yards", data)
	return bar, true
}
