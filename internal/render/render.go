package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/promq-io/promq/internal/promapi"
)

// Table renders rows as an aligned fixed-width table.
//
// Column widths are computed once over the full row set as the larger of
// the header length and the widest cell, so content is never truncated.
// Columns are separated by exactly two spaces and the header uses the same
// padding as the data rows. An empty row set renders "No data".
func Table(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return "No data"
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeTableLine(&sb, headers, widths)
	for _, row := range rows {
		sb.WriteByte('\n')
		writeTableLine(&sb, row, widths)
	}
	return sb.String()
}

func writeTableLine(sb *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(sb, "%-*s", widths[i], cell)
	}
}

// ResultTable renders normalized query rows with columns chosen by the
// result type. The result type must already have passed NormalizeQueryData.
func ResultTable(rows []Row, resultType string) string {
	switch resultType {
	case promapi.ResultTypeVector:
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, []string{r.Metric, r.Value, r.Timestamp})
		}
		return Table([]string{"METRIC", "VALUE", "TIMESTAMP"}, cells)

	case promapi.ResultTypeMatrix:
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, []string{r.Metric, r.Min, r.Max, strconv.Itoa(r.Points)})
		}
		return Table([]string{"METRIC", "MIN", "MAX", "POINTS"}, cells)

	case promapi.ResultTypeScalar:
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, []string{r.Value, r.Timestamp})
		}
		return Table([]string{"VALUE", "TIMESTAMP"}, cells)

	default: // string
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, []string{r.Value})
		}
		return Table([]string{"VALUE"}, cells)
	}
}

// TargetsTable renders active scrape targets.
func TargetsTable(targets []promapi.Target) string {
	cells := make([][]string, 0, len(targets))
	for _, t := range targets {
		cells = append(cells, []string{t.ScrapeURL, t.Health, t.Job(), t.LastScrape, t.LastError})
	}
	return Table([]string{"ENDPOINT", "STATE", "JOB", "LAST SCRAPE", "ERROR"}, cells)
}

// List renders rows one per line: label rows as {k1="v1", k2="v2"} in their
// preserved order, plain rows as the bare value. The summary line, when
// non-empty, is appended last; it is derived from the row count alone.
func List(rows []Row, summary string) string {
	lines := make([]string, 0, len(rows)+1)
	for _, r := range rows {
		if len(r.Labels) > 0 {
			lines = append(lines, r.Labels.String())
		} else {
			lines = append(lines, r.Value)
		}
	}
	if summary != "" {
		lines = append(lines, summary)
	}
	return strings.Join(lines, "\n")
}

// JSON renders v with two-space indentation for machine consumption.
// Callers pass non-nil empty slices so empty results render as [].
func JSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// LabelSets extracts the label sets of rows for JSON rendering.
// The result is never nil.
func LabelSets(rows []Row) []promapi.LabelSet {
	sets := make([]promapi.LabelSet, 0, len(rows))
	for _, r := range rows {
		sets = append(sets, r.Labels)
	}
	return sets
}

// Values extracts the plain values of rows for JSON rendering.
// The result is never nil.
func Values(rows []Row) []string {
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Value)
	}
	return values
}
