package util

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"daylight-server/config"
	"daylight-server/models"
)

// RenderMonthlyHours renders the daylight-vs-lit-hours line chart for one or
// two cities as HTML to the given writer. The Y axis keeps a fixed range so
// charts from different runs stay visually comparable.
func RenderMonthlyHours(result *models.ComparisonResult, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Daylight vs Lit Hours",
			Width:     "1000px",
			Height:    "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Daylight vs Lit Hours by Month",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Hours",
			Min:  config.CHART_HOURS_AXIS_MIN,
			Max:  config.CHART_HOURS_AXIS_MAX,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(monthNames(result.City1.Monthly))
	addCitySeries(line, result.City1)
	if result.City2 != nil {
		addCitySeries(line, *result.City2)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// PlotMonthlyHours writes the monthly hours chart to an HTML file.
func PlotMonthlyHours(result *models.ComparisonResult, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderMonthlyHours(result, f); err != nil {
		return err
	}

	log.Printf("[Plotter] Monthly hours chart generated: %s", outputPath)
	return nil
}

func addCitySeries(line *charts.Line, report models.CityReport) {
	daylight := make([]opts.LineData, len(report.Monthly))
	lit := make([]opts.LineData, len(report.Monthly))
	for i, m := range report.Monthly {
		daylight[i] = opts.LineData{Value: m.DaylightHours}
		lit[i] = opts.LineData{Value: m.LitHoursNight}
	}

	name := report.City.DisplayName()
	line.AddSeries(name+" daylight", daylight,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	line.AddSeries(name+" lit", lit,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
}

func monthNames(months []models.MonthlyAggregate) []string {
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.MonthName
	}
	return names
}
