// Package chart projects quote batches into the shape the browser's
// charting library expects. Pure functions, recomputed per response,
// nothing persisted.
package chart

import "github.com/finwise-ai/finchat/internal/domain"

var palette = []string{
	"#3b82f6", // blue
	"#10b981", // green
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // violet
	"#14b8a6", // teal
}

// Project builds a chart-ready series from a quote batch. Labels come from
// the first entry with history; error-tagged entries and entries without
// history are skipped. Dataset order follows batch order, which follows the
// user's input order, keeping label alignment deterministic. Returns nil
// when nothing is chartable.
func Project(results []domain.QuoteResult) *domain.ChartSeries {
	var labels []string
	for _, r := range results {
		if r.Failed() || len(r.History) == 0 {
			continue
		}
		labels = make([]string, 0, len(r.History))
		for _, p := range r.History {
			labels = append(labels, p.Date)
		}
		break
	}
	if labels == nil {
		return nil
	}

	series := &domain.ChartSeries{Labels: labels}
	for i, r := range results {
		if r.Failed() || len(r.History) == 0 {
			continue
		}
		values := make([]float64, 0, len(r.History))
		for _, p := range r.History {
			values = append(values, p.Close)
		}
		label := r.DisplayName
		if label == "" {
			label = r.Symbol
		}
		series.Datasets = append(series.Datasets, domain.ChartDataset{
			Label:  label,
			Values: values,
			Color:  palette[i%len(palette)],
		})
	}
	return series
}
