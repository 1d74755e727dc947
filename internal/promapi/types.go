package promapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Result types returned by the query endpoints.
const (
	ResultTypeVector = "vector"
	ResultTypeScalar = "scalar"
	ResultTypeString = "string"
	ResultTypeMatrix = "matrix"
)

// APIResponse is the envelope every v1 API endpoint returns.
type APIResponse struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data,omitempty"`
	ErrorType string          `json:"errorType,omitempty"`
	Error     string          `json:"error,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// QueryData is the data payload of /api/v1/query and /api/v1/query_range.
// Result stays raw until the result type is known.
type QueryData struct {
	ResultType string          `json:"resultType"`
	Result     json.RawMessage `json:"result"`
}

// Label is a single name/value pair.
type Label struct {
	Name  string
	Value string
}

// LabelSet is an ordered set of labels identifying one time series.
//
// The API returns label objects with a meaningful key order (__name__
// first); a plain map would lose it, so the set is kept as a slice and
// (un)marshaled by hand.
type LabelSet []Label

// UnmarshalJSON decodes a JSON object into labels in document order.
func (ls *LabelSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("label set: expected JSON object, got %v", tok)
	}

	out := LabelSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("label set: expected string key, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("label %q: %w", name, err)
		}

		out = append(out, Label{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*ls = out
	return nil
}

// MarshalJSON encodes the labels as a JSON object in their stored order.
func (ls LabelSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range ls {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(l.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(l.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value of the named label, or "" if absent.
func (ls LabelSet) Get(name string) string {
	for _, l := range ls {
		if l.Name == name {
			return l.Value
		}
	}
	return ""
}

// String renders the set as {k1="v1", k2="v2"} in stored order.
func (ls LabelSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, l := range ls {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%q", l.Name, l.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// PromText renders the set in PromQL selector form: the __name__ value
// followed by the remaining labels in braces, e.g. up{job="prometheus"}.
func (ls LabelSet) PromText() string {
	name := ""
	rest := make(LabelSet, 0, len(ls))
	for _, l := range ls {
		if l.Name == "__name__" {
			name = l.Value
			continue
		}
		rest = append(rest, l)
	}

	if len(rest) == 0 {
		if name == "" {
			return "{}"
		}
		return name
	}
	return name + rest.String()
}

// SamplePair is one [timestamp, value] pair.
//
// The value stays the raw decimal string from the wire; the API encodes
// sample values as strings to avoid float precision loss and the CLI
// keeps that contract through to the output.
type SamplePair struct {
	Timestamp float64
	Value     string
}

// UnmarshalJSON decodes the two-element [timestamp, "value"] array form.
func (p *SamplePair) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) != 2 {
		return fmt.Errorf("sample pair: expected 2 elements, got %d", len(items))
	}
	if err := json.Unmarshal(items[0], &p.Timestamp); err != nil {
		return fmt.Errorf("sample timestamp: %w", err)
	}
	if err := json.Unmarshal(items[1], &p.Value); err != nil {
		return fmt.Errorf("sample value: %w", err)
	}
	return nil
}

// TimestampString formats the sample timestamp without exponent notation.
func (p SamplePair) TimestampString() string {
	return strconv.FormatFloat(p.Timestamp, 'f', -1, 64)
}

// VectorSample is one element of a vector result.
type VectorSample struct {
	Metric LabelSet   `json:"metric"`
	Value  SamplePair `json:"value"`
}

// MatrixSeries is one series of a matrix result.
type MatrixSeries struct {
	Metric LabelSet     `json:"metric"`
	Values []SamplePair `json:"values"`
}

// TargetsData is the data payload of /api/v1/targets.
type TargetsData struct {
	ActiveTargets []Target `json:"activeTargets"`
}

// Target describes one active scrape target.
type Target struct {
	Labels     LabelSet `json:"labels"`
	ScrapePool string   `json:"scrapePool"`
	ScrapeURL  string   `json:"scrapeUrl"`
	Health     string   `json:"health"`
	LastScrape string   `json:"lastScrape"`
	LastError  string   `json:"lastError"`
}

// Job returns the job label of the target, or the scrape pool as fallback.
func (t Target) Job() string {
	if job := t.Labels.Get("job"); job != "" {
		return job
	}
	return t.ScrapePool
}
