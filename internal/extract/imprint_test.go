package extract

import (
	"testing"

	"github.com/emrgen/cataviz/internal/marc"
	"github.com/stretchr/testify/assert"
)

func TestImprint(t *testing.T) {
	tests := []struct {
		name         string
		rec          *marc.Record
		place        *string
		placeKey     *string
		publisher    *string
		publisherKey *string
	}{
		{
			name:         "transcribed address",
			rec:          marc.NewRecord("").AddDataField("210", ' ', ' ', "r", "A Paris, chez Pierre Prault, 1732"),
			place:        strp("Paris"),
			placeKey:     strp("paris"),
			publisher:    strp("Pierre Prault"),
			publisherKey: strp("pierre prault"),
		},
		{
			name: "explicit subfields override the address",
			rec: marc.NewRecord("").
				AddDataField("210", ' ', ' ', "r", "A Paris, chez Prault", "a", "[Amsterdam]", "c", "M.-M. Rey"),
			place:        strp("Amsterdam"),
			placeKey:     strp("amsterdam"),
			publisher:    strp("M.-M. Rey"),
			publisherKey: strp("m m rey"),
		},
		{
			name: "place of publication field",
			rec: marc.NewRecord("").
				AddDataField("210", ' ', ' ', "a", "Paris").
				AddDataField("620", ' ', ' ', "a", "France", "d", "Lyon"),
			place:    strp("Lyon"),
			placeKey: strp("lyon"),
		},
		{
			name:     "second place dropped",
			rec:      marc.NewRecord("").AddDataField("210", ' ', ' ', "a", "À Paris et à Lyon"),
			place:    strp("Paris"),
			placeKey: strp("paris"),
		},
		{
			name:      "missing markers kept verbatim",
			rec:       marc.NewRecord("").AddDataField("210", ' ', ' ', "a", "[S.l.]", "c", "[s.n.]"),
			place:     strp("[S.l.]"),
			publisher: strp("[s.n.]"),
		},
		{
			name: "nothing",
			rec:  marc.NewRecord("").AddDataField("210", ' ', ' ', "d", "1750"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := imprintOf(tt.rec)
			assert.Equal(t, tt.place, got.place)
			assert.Equal(t, tt.placeKey, got.placeKey)
			assert.Equal(t, tt.publisher, got.publisher)
			assert.Equal(t, tt.publisherKey, got.publisherKey)
		})
	}
}
