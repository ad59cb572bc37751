package report

import (
	"bytes"
	"errors"
	"fmt"

	"bizbot/internal/stats"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData means there is no revenue in the range and nothing to draw.
var ErrNoData = errors.New("no data to plot")

// DailyChart renders orders revenue per day as a PNG bar chart.
func DailyChart(points []stats.DayPoint) ([]byte, error) {
	bars := make([]chart.Value, 0, len(points))
	hasData := false
	for _, p := range points {
		if p.Revenue != 0 {
			hasData = true
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%d)", p.Day.Format("02.01"), p.Orders),
			Value: float64(p.Revenue),
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(180),
			},
		})
	}
	if !hasData {
		return nil, ErrNoData
	}

	graph := chart.BarChart{
		Title: "Выручка за 7 дней",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    900,
		Height:   500,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f₽", v.(float64))
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render daily chart: %w", err)
	}
	return buffer.Bytes(), nil
}
