package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promq-io/promq/internal/promapi"
)

func TestTableEmpty(t *testing.T) {
	assert.Equal(t, "No data", Table([]string{"METRIC", "VALUE"}, nil))
}

func TestTableWidths(t *testing.T) {
	out := Table(
		[]string{"METRIC", "VALUE"},
		[][]string{
			{`up{job="a-rather-long-job-name"}`, "1"},
			{"up", "0.0001"},
		},
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	// Every line is padded to the same total printed width.
	for _, line := range lines[1:] {
		assert.Equal(t, len(lines[0]), len(line), "line %q", line)
	}

	// Columns grow to the widest cell, nothing is truncated.
	assert.Contains(t, lines[1], `up{job="a-rather-long-job-name"}`)
	assert.Contains(t, lines[2], "0.0001")

	// Exactly two spaces separate the columns.
	assert.Equal(t, `up{job="a-rather-long-job-name"}  1     `, lines[1])
}

func TestTableHeaderUsesSamePadding(t *testing.T) {
	out := Table([]string{"A"}, [][]string{{"wide-cell"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A        ", lines[0])
	assert.Equal(t, "wide-cell", lines[1])
}

func TestResultTableVector(t *testing.T) {
	rows, err := NormalizeQueryData(queryData(t, "vector",
		`[{"metric":{"__name__":"up","job":"prometheus"},"value":[1700000000,"1"]}]`))
	require.NoError(t, err)

	out := ResultTable(rows, "vector")
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "prometheus")
	assert.Contains(t, out, "1700000000")
}

func TestResultTableMatrix(t *testing.T) {
	rows, err := NormalizeQueryData(queryData(t, "matrix",
		`[{"metric":{"__name__":"x"},"values":[[1,"1"],[2,"3"]]}]`))
	require.NoError(t, err)

	out := ResultTable(rows, "matrix")
	assert.Contains(t, out, "MIN")
	assert.Contains(t, out, "MAX")
	assert.Contains(t, out, "POINTS")
	assert.Contains(t, out, "2")
}

func TestListSeries(t *testing.T) {
	var sets []promapi.LabelSet
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"__name__":"up","job":"prometheus"},{"__name__":"up","job":"node"}]`), &sets))

	out := List(NormalizeSeries(sets), "Total: 2 series")

	assert.Equal(t, "{__name__=\"up\", job=\"prometheus\"}\n{__name__=\"up\", job=\"node\"}\nTotal: 2 series", out)
}

func TestListPlainValues(t *testing.T) {
	out := List(NormalizeStrings([]string{"job", "instance"}), "Total: 2 labels")
	assert.Equal(t, "job\ninstance\nTotal: 2 labels", out)
}

func TestListEmpty(t *testing.T) {
	out := List(nil, "Total: 0 labels")
	assert.Equal(t, "Total: 0 labels", out)
}

func TestJSONEmpty(t *testing.T) {
	out, err := JSON(LabelSets(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestJSONDeterministic(t *testing.T) {
	var sets []promapi.LabelSet
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"__name__":"up","job":"prometheus"}]`), &sets))

	first, err := JSON(LabelSets(NormalizeSeries(sets)))
	require.NoError(t, err)
	second, err := JSON(LabelSets(NormalizeSeries(sets)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJSONSeriesRoundTrip(t *testing.T) {
	var sets []promapi.LabelSet
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"__name__":"up","job":"prometheus"},{"__name__":"up","job":"node"}]`), &sets))

	out, err := JSON(LabelSets(NormalizeSeries(sets)))
	require.NoError(t, err)

	// Round-trips through standard JSON parsing as plain objects in order.
	var parsed []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "prometheus", parsed[0]["job"])
	assert.Equal(t, "node", parsed[1]["job"])

	// Key order is preserved in the serialized text itself.
	assert.Less(t, strings.Index(out, "__name__"), strings.Index(out, "job"))
}

func TestJSONMatrixRoundTrip(t *testing.T) {
	payload := `{"resultType":"matrix","result":[
		{"metric":{"__name__":"a"},"values":[[1,"1"]]},
		{"metric":{"__name__":"b"},"values":[[1,"2"],[2,"3"]]}]}`

	var data promapi.QueryData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))

	out, err := JSON(&data)
	require.NoError(t, err)

	var parsed struct {
		ResultType string `json:"resultType"`
		Result     []struct {
			Values [][]interface{} `json:"values"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "matrix", parsed.ResultType)
	require.Len(t, parsed.Result, 2)
	assert.Len(t, parsed.Result[1].Values, 2)
}

func TestTargetsTable(t *testing.T) {
	var labels promapi.LabelSet
	require.NoError(t, json.Unmarshal([]byte(`{"job":"prometheus","instance":"localhost:9090"}`), &labels))

	out := TargetsTable([]promapi.Target{{
		Labels:     labels,
		ScrapeURL:  "http://localhost:9090/metrics",
		Health:     "up",
		LastScrape: "2024-06-01T12:00:00Z",
	}})

	assert.Contains(t, out, "ENDPOINT")
	assert.Contains(t, out, "http://localhost:9090/metrics")
	assert.Contains(t, out, "prometheus")
}

func TestTargetsTableEmpty(t *testing.T) {
	assert.Equal(t, "No data", TargetsTable(nil))
}
