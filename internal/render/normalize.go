// Package render normalizes Prometheus API result payloads into a flat row
// model and renders rows as aligned tables, label lists, or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/promq-io/promq/internal/promapi"
)

// Row is the presentation unit shared by every renderer. Exactly one row is
// produced per series, label, or list entry of the source payload.
//
// Value carries the raw decimal string from the wire for single-point
// results and list entries; Min/Max/Points summarize matrix series.
type Row struct {
	Labels    promapi.LabelSet
	Metric    string
	Value     string
	Timestamp string
	Min       string
	Max       string
	Points    int
}

// UnsupportedResultTypeError reports a query payload whose resultType is not
// one of vector, scalar, string, or matrix. Unknown shapes are a hard stop,
// never an empty result.
type UnsupportedResultTypeError struct {
	ResultType string
}

func (e *UnsupportedResultTypeError) Error() string {
	return fmt.Sprintf("unsupported result type %q", e.ResultType)
}

// NormalizeQueryData maps a query result payload onto rows, dispatching on
// the payload's declared resultType.
func NormalizeQueryData(data *promapi.QueryData) ([]Row, error) {
	switch data.ResultType {
	case promapi.ResultTypeVector:
		var samples []promapi.VectorSample
		if err := json.Unmarshal(data.Result, &samples); err != nil {
			return nil, fmt.Errorf("failed to decode vector result: %w", err)
		}

		rows := make([]Row, 0, len(samples))
		for _, s := range samples {
			rows = append(rows, Row{
				Labels:    s.Metric,
				Metric:    s.Metric.PromText(),
				Value:     s.Value.Value,
				Timestamp: s.Value.TimestampString(),
			})
		}
		return rows, nil

	case promapi.ResultTypeScalar, promapi.ResultTypeString:
		var pair promapi.SamplePair
		if err := json.Unmarshal(data.Result, &pair); err != nil {
			return nil, fmt.Errorf("failed to decode %s result: %w", data.ResultType, err)
		}

		return []Row{{
			Value:     pair.Value,
			Timestamp: pair.TimestampString(),
		}}, nil

	case promapi.ResultTypeMatrix:
		var series []promapi.MatrixSeries
		if err := json.Unmarshal(data.Result, &series); err != nil {
			return nil, fmt.Errorf("failed to decode matrix result: %w", err)
		}

		rows := make([]Row, 0, len(series))
		for _, s := range series {
			row := Row{
				Labels: s.Metric,
				Metric: s.Metric.PromText(),
				Points: len(s.Values),
			}
			row.Min, row.Max = minMax(s.Values)
			rows = append(rows, row)
		}
		return rows, nil

	default:
		return nil, &UnsupportedResultTypeError{ResultType: data.ResultType}
	}
}

// NormalizeStrings maps a label-name or label-value list onto rows.
func NormalizeStrings(values []string) []Row {
	rows := make([]Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, Row{Value: v})
	}
	return rows
}

// NormalizeSeries maps a series list onto rows, one per label set.
func NormalizeSeries(sets []promapi.LabelSet) []Row {
	rows := make([]Row, 0, len(sets))
	for _, s := range sets {
		rows = append(rows, Row{Labels: s})
	}
	return rows
}

// minMax returns the smallest and largest sample values of a series as
// their raw strings. Strict comparisons keep the first occurrence on ties.
func minMax(values []promapi.SamplePair) (string, string) {
	var minRaw, maxRaw string
	var minVal, maxVal float64

	for _, p := range values {
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		if minRaw == "" || v < minVal {
			minVal, minRaw = v, p.Value
		}
		if maxRaw == "" || v > maxVal {
			maxVal, maxRaw = v, p.Value
		}
	}

	return minRaw, maxRaw
}
