package extract

import (
	"testing"

	"github.com/emrgen/cataviz/internal/marc"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"123 p. ; in-8°", intp(8)},
		{"123 p. ; in-12 ; 24 cm", intp(12)},
		{"XII-345 p. ; In-12", intp(12)},
		{"2 vol. in-fol.", intp(2)},
		{"gr. fol.", intp(1)},
		{"VIII-96 p. : fig. ; 8°", intp(8)},
		{"9 cm", intp(32)},
		{"15 cm", intp(16)},
		{"18 cm", intp(12)},
		{"24 cm", intp(8)},
		{"28 cm", intp(4)},
		{"35 cm", intp(2)},
		{"1 vol.", nil},
		{"in-999", nil},
		{"Berlin 1850", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, format(tt.text))
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"123 p. ; in-8°", intp(123)},
		{"XII-345 p.", intp(345)},
		{"12345 p.", intp(pagesError)},
		{"10000 p.", intp(pagesError)},
		{"9999 p.", intp(9999)},
		{"1 pièce", intp(1)},
		{"1 placard", intp(1)},
		{"1 vol.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, pages(tt.text))
		})
	}
}

func TestPhysicalDescription(t *testing.T) {
	rec := marc.NewRecord("").
		AddDataField("210", ' ', ' ', "a", "Paris", "d", "1750", "e", "in-4")
	phys := physicalDescription(rec)
	assert.Equal(t, intp(4), phys.format)
	assert.Nil(t, phys.pages)

	rec.AddDataField("215", ' ', ' ', "a", "48 p.", "d", "in-12")
	phys = physicalDescription(rec)
	assert.Equal(t, intp(12), phys.format)
	assert.Equal(t, intp(48), phys.pages)
}

func TestShelfMark(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		ok     bool
		want   mark
	}{
		{
			name:   "holding subfield",
			values: []string{"5", "FR-751131015:8-LB39-1234"},
			ok:     true,
			want:   mark{format: intp(8), letter: "LB", number: intp(39)},
		},
		{
			name:   "folio",
			values: []string{"a", "FOL-T29-4"},
			ok:     true,
			want:   mark{format: intp(2), letter: "T", number: intp(29)},
		},
		{
			name:   "reserve without format",
			values: []string{"a", "RES-Z-123"},
			ok:     true,
			want:   mark{letter: "Z"},
		},
		{
			name:   "theta class",
			values: []string{"a", "8-THETA-12"},
			ok:     true,
			want:   mark{format: intp(8), letter: "TH"},
		},
		{
			name:   "not a classified mark",
			values: []string{"a", "NUMM-1234"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := marc.NewRecord("").AddDataField("930", ' ', ' ', tt.values...)
			got, ok := shelfMark(rec)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShelfMark_OverridesFormat(t *testing.T) {
	rec := marc.NewRecord("").
		AddDataField("215", ' ', ' ', "a", "96 p.", "d", "in-4").
		AddDataField("930", ' ', ' ', "a", "NUMM-1").
		AddDataField("930", ' ', ' ', "a", "16-Y2-12345")
	doc := extractDoc(rec, "post1970")
	assert.Equal(t, intp(16), doc.Format)
	assert.Equal(t, strp("Y"), doc.ShelfLetter)
	assert.Equal(t, intp(2), doc.ShelfNumber)
}
