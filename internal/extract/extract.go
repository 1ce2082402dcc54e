// Package extract turns MARC records into identity and document rows.
//
// Extraction is best effort: missing or malformed values degrade to nil
// column by column, they never fail the record.
package extract

import (
	"strings"

	"github.com/emrgen/cataviz/internal/marc"
)

// Field tags carrying names in document records.
var (
	PersonTags    = []string{"700", "701", "702", "703"}
	CorporateTags = []string{"710", "711", "712", "713"}

	PersonSubjectTags    = []string{"600"}
	CorporateSubjectTags = []string{"601"}
)

// non sorting markers around leading articles, and other stray characters
var junk = strings.NewReplacer(
	"\u0088", "",
	"\u0089", "",
	"\u0098", "",
	"\u009c", "",
)

func clean(s string) string {
	return strings.TrimSpace(junk.Replace(s))
}

// subfield returns the cleaned value of a subfield, absent when empty.
func subfield(f *marc.Field, code byte) (string, bool) {
	v, ok := f.Subfield(code)
	if !ok {
		return "", false
	}
	v = clean(v)
	return v, v != ""
}

func optional(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

func ptr[T any](v T) *T {
	return &v
}
