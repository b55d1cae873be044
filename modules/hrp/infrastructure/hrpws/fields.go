package hrpws

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	codeNameDelimiter   = ": "
	annotationDelimiter = " ("
	jobClassDelimiter   = " - "
	employmentProgram   = "Employment Program"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseDate parses the date and time formats HRP emits. The input offset
// is kept; values without a zone are read as UTC. A nil or blank input
// yields nil.
func ParseDate(text *string) (*time.Time, error) {
	if text == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*text)
	if v == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, &ParseError{Field: "date", Value: v}
}

// SplitCodeName splits "CODE: Name (annotation)" into its code and name.
// Without ": " the code is empty. Anything from the first " (" of the
// name on is dropped.
func SplitCodeName(composite string) (string, string) {
	code := ""
	name := strings.TrimSpace(composite)
	if before, after, found := strings.Cut(name, codeNameDelimiter); found {
		code = strings.TrimSpace(before)
		name = after
	}
	if before, _, found := strings.Cut(name, annotationDelimiter); found {
		name = before
	}
	return code, strings.TrimSpace(name)
}

// ExtractJobClass picks the classification in the "Employment Program"
// group, or failing that the first one whose name has a " - " separator,
// and returns its cleaned label.
func ExtractJobClass(summaries gjson.Result) *string {
	if !summaries.IsArray() {
		return nil
	}
	entries := summaries.Array()
	for _, entry := range entries {
		if entry.Get("JobClassificationGroup.Name").String() != employmentProgram {
			continue
		}
		if label := cleanJobClass(entry.Get("JobClassification.Name").String()); label != "" {
			return &label
		}
	}
	for _, entry := range entries {
		raw := entry.Get("JobClassification.Name").String()
		if !strings.Contains(raw, jobClassDelimiter) {
			continue
		}
		if label := cleanJobClass(raw); label != "" {
			return &label
		}
	}
	return nil
}

func cleanJobClass(raw string) string {
	if _, after, found := strings.Cut(raw, jobClassDelimiter); found {
		raw = after
	}
	if before, _, found := strings.Cut(raw, annotationDelimiter); found {
		raw = before
	}
	return strings.TrimSpace(raw)
}

// DecodeBody turns a response body into a JSON document. A leading byte
// order mark is dropped first.
func DecodeBody(body []byte) (gjson.Result, error) {
	body = bytes.TrimPrefix(body, utf8BOM)
	if !gjson.ValidBytes(body) {
		value := string(body)
		if len(value) > 64 {
			value = value[:64] + "..."
		}
		return gjson.Result{}, &ParseError{Field: "body", Value: value, Err: errors.New("invalid json")}
	}
	return gjson.ParseBytes(body), nil
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

func optString(r gjson.Result) *string {
	if !present(r) {
		return nil
	}
	s := r.String()
	return &s
}

func dateField(obj gjson.Result, key string) (*time.Time, error) {
	t, err := ParseDate(optString(obj.Get(key)))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Field = key
		}
		return nil, err
	}
	return t, nil
}

func decimalField(obj gjson.Result, key string) (*decimal.Decimal, error) {
	r := obj.Get(key)
	if !present(r) {
		return nil, nil
	}
	raw := strings.TrimSpace(r.String())
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &ParseError{Field: key, Value: raw, Err: err}
	}
	return &d, nil
}

func floatField(obj gjson.Result, key string) (*float64, error) {
	d, err := decimalField(obj, key)
	if err != nil || d == nil {
		return nil, err
	}
	f := d.InexactFloat64()
	return &f, nil
}

// listOrObject normalizes fields that HRP sends either as one object or as a list of them.
func listOrObject(r gjson.Result) []gjson.Result {
	switch {
	case r.IsArray():
		return r.Array()
	case r.IsObject():
		return []gjson.Result{r}
	default:
		return nil
	}
}

// typedIDValue returns the Value of the first IDs entry with the given Type.
func typedIDValue(ids gjson.Result, idType string) *string {
	for _, id := range ids.Array() {
		if id.Get("Type").String() == idType {
			return optString(id.Get("Value"))
		}
	}
	return nil
}
