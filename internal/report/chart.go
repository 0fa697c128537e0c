package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	colorProfit = "#22c55e"
	colorLoss   = "#ef4444"
)

// RenderChart writes an HTML page with PnL per symbol and the venue split.
func RenderChart(w io.Writer, r *Report) error {
	if r == nil {
		return fmt.Errorf("chart: nil report")
	}
	page := components.NewPage()
	page.PageTitle = "Position Analysis"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(symbolChart(r), venueChart(r))
	return page.Render(w)
}

// WriteChartFile renders the chart to path, creating parent directories.
func WriteChartFile(path string, r *Report) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("chart path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderChart(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func symbolChart(r *Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros, Width: "900px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "PnL by symbol",
			Subtitle: fmt.Sprintf("%d open positions, %s", r.TotalPositions, r.GeneratedAt.Format("2006-01-02 15:04:05")),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Name: r.QuoteCurrency}),
	)
	xAxis := make([]string, 0, len(r.Symbols))
	data := make([]opts.BarData, 0, len(r.Symbols))
	for _, s := range r.Symbols {
		color := colorProfit
		if s.PnL < 0 {
			color = colorLoss
		}
		xAxis = append(xAxis, s.Symbol)
		data = append(data, opts.BarData{
			Name:      s.Symbol,
			Value:     s.PnL,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}
	bar.SetXAxis(xAxis).AddSeries("PnL", data)
	return bar
}

func venueChart(r *Report) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros, Width: "480px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Open positions by venue"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	data := make([]opts.PieData, 0, len(r.Venues))
	for _, v := range r.Venues {
		data = append(data, opts.PieData{Name: v.Venue, Value: v.Count})
	}
	pie.AddSeries("venues", data)
	return pie
}
