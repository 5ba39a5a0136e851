package report

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"github.com/zappabad/goldencross/internal/strategy"
)

// RenderChart draws the price path with both moving averages as a PNG line
// chart. Days without a full window use the chart library's null value so
// the average lines start where the data does.
func RenderChart(ledger []strategy.LedgerRecord, title string) ([]byte, error) {
	if len(ledger) < 2 {
		return nil, errors.New("report: need at least 2 days to chart")
	}

	price := make([]float64, len(ledger))
	sma7 := make([]float64, len(ledger))
	sma30 := make([]float64, len(ledger))
	labels := make([]string, len(ledger))
	null := charts.GetNullValue()

	for i, entry := range ledger {
		price[i] = entry.Price
		labels[i] = fmt.Sprintf("D%d", entry.Day)
		sma7[i], sma30[i] = null, null
		if entry.SMA7OK {
			sma7[i] = entry.SMA7
		}
		if entry.SMA30OK {
			sma30[i] = entry.SMA30
		}
	}

	painter, err := charts.LineRender([][]float64{price, sma7, sma30},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 10,
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"Price", "SMA 7", "SMA 30"},
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("report: render chart: %w", err)
	}
	return painter.Bytes()
}
