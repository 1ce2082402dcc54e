package extract

import (
	"testing"

	"github.com/emrgen/cataviz/internal/dates"
	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func extractDoc(rec *marc.Record, era model.Era) *model.Document {
	return NewDocumentExtractor(dates.DefaultWindow).Extract(rec, era, "P1187_1.UTF8")
}

func TestExtract_Document(t *testing.T) {
	rec := marc.NewRecord("").
		AddControlField("003", "https://catalogue.bnf.fr/ark:/12148/cb30000001x").
		AddDataField("100", ' ', ' ', "a", "20230101d1732    m  y0frey50      ba").
		AddDataField("101", '1', ' ', "a", "fre", "c", "eng").
		AddDataField("102", ' ', ' ', "a", "FR").
		AddDataField("181", ' ', ' ', "c", "txt", "2", "rdacontent").
		AddDataField("200", '1', ' ', "a", "Candide", "e", "ou l'optimisme").
		AddDataField("210", ' ', ' ', "a", "Paris", "c", "Prault", "d", "1759").
		AddDataField("215", ' ', ' ', "a", "123 p.", "d", "in-8°").
		AddDataField("700", ' ', '1', "3", "11928016", "a", "Voltaire", "4", "070").
		AddDataField("701", ' ', '1', "a", "Rousseau", "b", "Jean-Jacques").
		AddDataField("710", '0', '2', "a", "Académie française").
		AddDataField("856", '4', ' ', "u", "https://gallica.bnf.fr/ark:/12148/bpt6k1")

	doc := extractDoc(rec, model.EraPost1970)

	assert.Equal(t, "Candide", doc.Title)
	assert.Equal(t, strp("ou l'optimisme"), doc.Description)
	assert.Equal(t, intp(1732), doc.Year)
	assert.Equal(t, intp(123), doc.Pages)
	assert.Equal(t, intp(8), doc.Format)
	assert.Equal(t, strp("fre"), doc.Language)
	require.NotNil(t, doc.IsTranslation)
	assert.True(t, *doc.IsTranslation)
	assert.Equal(t, strp("eng"), doc.OriginalLanguage)
	assert.Equal(t, strp("FR"), doc.Country)
	assert.Equal(t, strp("txt"), doc.ContentType)
	assert.Equal(t, strp("Paris"), doc.Place)
	assert.Equal(t, strp("paris"), doc.PlaceKey)
	assert.Equal(t, strp("Prault"), doc.Publisher)
	assert.Equal(t, strp("prault"), doc.PublisherKey)
	assert.Equal(t, strp("https://gallica.bnf.fr/ark:/12148/bpt6k1"), doc.DigitalURL)
	assert.Equal(t, strp("Voltaire, Rousseau… (3)"), doc.Byline)
	require.NotNil(t, doc.PrimaryContributorID)
	assert.Equal(t, int64(11928016), *doc.PrimaryContributorID)
	assert.Equal(t, model.EraPost1970, doc.Era)
	assert.Equal(t, "P1187_1.UTF8", doc.SourceFile)
	assert.Equal(t, "https://catalogue.bnf.fr/ark:/12148/cb30000001x", doc.SourceURL)
}

func TestExtract_EmptyRecord(t *testing.T) {
	doc := extractDoc(marc.NewRecord(""), model.EraPost1970)

	assert.Equal(t, model.UntitledTitle, doc.Title)
	assert.Nil(t, doc.Description)
	assert.Nil(t, doc.Year)
	assert.Nil(t, doc.Pages)
	assert.Nil(t, doc.Format)
	assert.Nil(t, doc.Place)
	assert.Nil(t, doc.Language)
	assert.Nil(t, doc.Byline)
	assert.Nil(t, doc.PrimaryContributorID)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		rec  *marc.Record
		want string
	}{
		{
			name: "uniform title first",
			rec: marc.NewRecord("").
				AddDataField("200", '1', ' ', "a", "Le Mondain").
				AddDataField("500", '1', '0', "a", "Mondain"),
			want: "Mondain",
		},
		{
			name: "title proper",
			rec:  marc.NewRecord("").AddDataField("200", '1', ' ', "a", "\u0098Le \u009cMondain"),
			want: "Le Mondain",
		},
		{
			name: "part title",
			rec:  marc.NewRecord("").AddDataField("200", '1', ' ', "i", "Tome second"),
			want: "Tome second",
		},
		{
			name: "placeholder",
			rec:  marc.NewRecord("").AddDataField("200", '1', ' ', "e", "poème"),
			want: model.UntitledTitle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, title(tt.rec))
		})
	}
}

func TestDescription(t *testing.T) {
	rec := marc.NewRecord("").
		AddDataField("200", '1', ' ', "a", "Candide", "e", "@suivi de", "h", "2", "i", "\u0098La \u009csuite")
	assert.Equal(t, strp("suivi de, 2, La suite"), description(rec))

	assert.Nil(t, description(marc.NewRecord("").AddDataField("200", '1', ' ', "a", "Candide")))
}

func TestYear(t *testing.T) {
	x := NewDocumentExtractor(dates.DefaultWindow)
	tests := []struct {
		name string
		rec  *marc.Record
		want *int
	}{
		{
			name: "coded year",
			rec:  marc.NewRecord("").AddDataField("100", ' ', ' ', "a", "19950101d1750    m  y0frey50      ba"),
			want: intp(1750),
		},
		{
			name: "coded year outside window",
			rec: marc.NewRecord("").
				AddDataField("100", ' ', ' ', "a", "19950101d9999    m  y0frey50      ba").
				AddDataField("210", ' ', ' ', "d", "[ca 1761]"),
			want: intp(1761),
		},
		{
			name: "production field first",
			rec: marc.NewRecord("").
				AddDataField("210", ' ', ' ', "d", "1800").
				AddDataField("214", ' ', '0', "d", "1790"),
			want: intp(1790),
		},
		{
			name: "transcribed address",
			rec:  marc.NewRecord("").AddDataField("210", ' ', ' ', "d", "s.d.", "r", "A Paris, chez Prault, 1732"),
			want: intp(1732),
		},
		{
			name: "unknown digits",
			rec:  marc.NewRecord("").AddDataField("210", ' ', ' ', "d", "[17..]"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, x.year(tt.rec))
		})
	}
}

func TestLanguage(t *testing.T) {
	lang := languageOf(marc.NewRecord(""), model.EraPre1970)
	assert.Equal(t, strp("fre"), lang.language)
	assert.Nil(t, lang.translation)

	lang = languageOf(marc.NewRecord(""), model.EraPost1970)
	assert.Nil(t, lang.language)

	lang = languageOf(marc.NewRecord("").AddDataField("101", '0', ' ', "a", "LAT"), model.EraPost1970)
	assert.Equal(t, strp("lat"), lang.language)
	assert.Equal(t, false, *lang.translation)
	assert.Nil(t, lang.original)

	lang = languageOf(marc.NewRecord("").AddDataField("101", '2', ' ', "a", "fre"), model.EraPre1970)
	assert.Equal(t, true, *lang.translation)
}

func TestByline(t *testing.T) {
	rec := marc.NewRecord("").AddDataField("700", ' ', '1', "a", "Voltaire")
	assert.Equal(t, strp("Voltaire"), byline(rec))

	rec.AddDataField("702", ' ', '1', "a", "Diderot", "b", "Denis")
	assert.Equal(t, strp("Voltaire & Diderot"), byline(rec))

	rec = marc.NewRecord("").
		AddDataField("710", '0', '2', "a", "Académie française").
		AddDataField("701", ' ', '1', "a", "Fontenelle")
	assert.Equal(t, strp("Fontenelle & Académie française"), byline(rec))
}

func TestPrimaryContributor(t *testing.T) {
	rec := marc.NewRecord("").
		AddDataField("700", ' ', '1', "a", "Anonyme").
		AddDataField("701", ' ', '1', "3", "11928016", "a", "Voltaire")
	assert.Nil(t, primaryContributor(rec))

	rec = marc.NewRecord("").
		AddDataField("710", '0', '2', "3", "12345678", "a", "Académie française")
	require.NotNil(t, primaryContributor(rec))
	assert.Equal(t, int64(12345678), *primaryContributor(rec))

	rec.AddDataField("702", ' ', '1', "3", "11928016", "a", "Voltaire")
	assert.Equal(t, int64(11928016), *primaryContributor(rec))
}
