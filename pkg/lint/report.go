package lint

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Bucket holds the issues reported under one label, in first-insertion order.
type Bucket struct {
	// Label is the localized rule label the bucket is keyed by.
	Label string

	issues []Issue
	index  map[string]int // issue key -> position in issues
}

func newBucket(label string) *Bucket {
	return &Bucket{
		Label: label,
		index: make(map[string]int),
	}
}

// Issues returns the bucket's issues in key order.
func (b *Bucket) Issues() []Issue {
	return b.issues
}

// Len returns the number of distinct keys in the bucket.
func (b *Bucket) Len() int {
	return len(b.issues)
}

// Get returns the text recorded under key.
func (b *Bucket) Get(key string) (string, bool) {
	pos, ok := b.index[key]
	if !ok {
		return "", false
	}
	return b.issues[pos].Text, true
}

func (b *Bucket) set(issue Issue) {
	if pos, ok := b.index[issue.Key]; ok {
		b.issues[pos] = issue
		return
	}
	b.index[issue.Key] = len(b.issues)
	b.issues = append(b.issues, issue)
}

// Report is an ordered mapping of label to ordered mapping of issue key to
// offending text.
//
// Buckets appear in the order their label was first added and keys keep the
// order they were first set. Setting an existing key replaces its issue in
// place. The zero value is not usable; call NewReport.
type Report struct {
	buckets []*Bucket
	byLabel map[string]*Bucket
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		byLabel: make(map[string]*Bucket),
	}
}

// Add records issue under its label and key.
func (r *Report) Add(issue Issue) {
	bucket, ok := r.byLabel[issue.Label]
	if !ok {
		bucket = newBucket(issue.Label)
		r.byLabel[issue.Label] = bucket
		r.buckets = append(r.buckets, bucket)
	}
	bucket.set(issue)
}

// Merge adds every issue of other, bucket by bucket, in other's order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	for _, bucket := range other.buckets {
		for _, issue := range bucket.issues {
			r.Add(issue)
		}
	}
}

// IsEmpty returns true if the report holds no issues.
func (r *Report) IsEmpty() bool {
	return len(r.buckets) == 0
}

// Len returns the total number of issues across all buckets.
func (r *Report) Len() int {
	total := 0
	for _, bucket := range r.buckets {
		total += len(bucket.issues)
	}
	return total
}

// Buckets returns the report's buckets in label insertion order.
func (r *Report) Buckets() []*Bucket {
	return r.buckets
}

// Bucket returns the bucket for label.
func (r *Report) Bucket(label string) (*Bucket, bool) {
	bucket, ok := r.byLabel[label]
	return bucket, ok
}

// Issues returns every issue, bucket by bucket.
func (r *Report) Issues() []Issue {
	out := make([]Issue, 0, r.Len())
	for _, bucket := range r.buckets {
		out = append(out, bucket.issues...)
	}
	return out
}

// Counts returns the number of issues per severity.
func (r *Report) Counts() map[string]int {
	counts := make(map[string]int)
	for _, bucket := range r.buckets {
		for _, issue := range bucket.issues {
			counts[string(issue.Severity)]++
		}
	}
	return counts
}

// MarshalJSON encodes the report as a nested JSON object that preserves
// bucket and key order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, bucket := range r.buckets {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := WriteJSONString(&buf, bucket.Label); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, issue := range bucket.issues {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := WriteJSONString(&buf, issue.Key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := WriteJSONString(&buf, issue.Text); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// WriteJSONString appends s as a JSON string literal. Only quotes,
// backslashes and control characters are escaped: HTML characters and the
// line and paragraph separators U+2028 and U+2029 are written as-is.
func WriteJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding %q: %w", s, err)
	}
	buf.Write(unescapeSeparators(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'})))
	return nil
}

// unescapeSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into raw characters. Escaped backslashes are copied in
// pairs so a literal "\\u2028" in the text is left alone.
func unescapeSeparators(encoded []byte) []byte {
	if !bytes.Contains(encoded, []byte(`\u202`)) {
		return encoded
	}

	out := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		if encoded[i] != '\\' || i+1 >= len(encoded) {
			out = append(out, encoded[i])
			continue
		}
		switch rest := encoded[i+1:]; {
		case bytes.HasPrefix(rest, []byte("u2028")):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(rest, []byte("u2029")):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, encoded[i], encoded[i+1])
			i++
		}
	}
	return out
}
