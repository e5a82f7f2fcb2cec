package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskquest/internal/api"
	"taskquest/internal/config"
	"taskquest/internal/domain"
	"taskquest/internal/services"
)

var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true)
	chartLabelStyle = lipgloss.NewStyle().Faint(true)
	chartTodayStyle = lipgloss.NewStyle().Bold(true)
	chartBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// ChartCommand handles the chart command
type ChartCommand struct {
	api          api.API
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewChartCommand creates a new chart command handler
func NewChartCommand(app *App) *ChartCommand {
	return &ChartCommand{
		api:          app.api,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the chart command
func (c *ChartCommand) Execute(ctx context.Context) error {
	series, err := c.api.WeeklyPoints(ctx, timeNow())
	if err != nil {
		return c.errorHandler.Handle("load weekly points", err)
	}

	fmt.Print(renderChart(series, c.config.Chart.Width, c.config.Chart.MinBarFraction))
	return nil
}

// renderChart renders the series as a horizontal bar chart, oldest day at
// the top, today at the bottom.
func renderChart(series domain.DailyPointsSeries, width int, minFraction float64) string {
	fractions := services.BarFractions(series, minFraction)

	var b strings.Builder
	b.WriteString(chartTitleStyle.Render("Points earned, last 7 days"))
	b.WriteString("\n\n")

	for i, bucket := range series {
		label := chartLabelStyle.Render(bucket.DayLabel)
		if i == len(series)-1 {
			label = chartTodayStyle.Render(bucket.DayLabel)
		}

		bar := strings.Repeat("█", barLength(fractions[i], width))
		b.WriteString(fmt.Sprintf("%s  %s %d\n", label, chartBarStyle.Render(bar), bucket.Points))
	}

	b.WriteString(fmt.Sprintf("\nTotal: %d points\n", series.TotalPoints()))
	return b.String()
}

// barLength converts a height fraction into a number of bar cells
func barLength(fraction float64, width int) int {
	n := int(fraction*float64(width) + 0.5)
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}
