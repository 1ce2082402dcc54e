package extract

import (
	"strconv"
	"strings"

	"github.com/emrgen/cataviz/internal/dates"
	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
)

// DocumentExtractor builds document rows from bibliographic records.
type DocumentExtractor struct {
	window dates.Window
}

// NewDocumentExtractor creates an extractor keeping publication years inside
// window.
func NewDocumentExtractor(window dates.Window) *DocumentExtractor {
	return &DocumentExtractor{window: window}
}

// Extract never fails, every attribute it cannot read is left nil.
func (x *DocumentExtractor) Extract(rec *marc.Record, era model.Era, file string) *model.Document {
	doc := &model.Document{
		Title:      title(rec),
		Era:        era,
		SourceFile: file,
	}
	if url, ok := rec.ControlValue("003"); ok {
		doc.SourceURL = strings.TrimSpace(url)
	}
	doc.Description = description(rec)
	doc.Year = x.year(rec)

	phys := physicalDescription(rec)
	doc.Pages = phys.pages
	doc.Format = phys.format
	if sm, ok := shelfMark(rec); ok {
		doc.ShelfLetter = &sm.letter
		doc.ShelfNumber = sm.number
		if sm.format != nil {
			doc.Format = sm.format
		}
	}

	imp := imprintOf(rec)
	doc.Place, doc.PlaceKey = imp.place, imp.placeKey
	doc.Publisher, doc.PublisherKey = imp.publisher, imp.publisherKey

	lang := languageOf(rec, era)
	doc.Language = lang.language
	doc.IsTranslation = lang.translation
	doc.OriginalLanguage = lang.original

	doc.Country = optional(recordSubfield(rec, "102", 'a'))
	doc.ContentType = contentType(rec)
	doc.DigitalURL = optional(recordSubfield(rec, "856", 'u'))

	doc.Byline = byline(rec)
	doc.PrimaryContributorID = primaryContributor(rec)
	return doc
}

func recordSubfield(rec *marc.Record, tag string, code byte) (string, bool) {
	f, ok := rec.Field(tag)
	if !ok {
		return "", false
	}
	return subfield(f, code)
}

// title prefers the uniform title (500$a) over the title proper.
func title(rec *marc.Record) string {
	if v, ok := recordSubfield(rec, "500", 'a'); ok {
		return v
	}
	if v, ok := recordSubfield(rec, "200", 'a'); ok {
		return v
	}
	if v, ok := recordSubfield(rec, "200", 'i'); ok {
		return v
	}
	return model.UntitledTitle
}

// description joins the other title information, the part number and the part
// title of 200.
func description(rec *marc.Record) *string {
	f, ok := rec.Field("200")
	if !ok {
		return nil
	}
	var parts []string
	for _, code := range []byte{'e', 'h', 'i'} {
		for _, v := range f.SubfieldValues(code) {
			v = strings.TrimSpace(strings.ReplaceAll(clean(v), "@", ""))
			if v != "" {
				parts = append(parts, v)
			}
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return ptr(strings.Join(parts, ", "))
}

func (x *DocumentExtractor) year(rec *marc.Record) *int {
	if general, ok := rec.Subfield("100", 'a'); ok && len(general) >= 13 {
		if year := x.window.Year(general[9:13]); year != nil {
			return year
		}
	}
	f, ok := publicationField(rec)
	if !ok {
		return nil
	}
	if d, ok := f.Subfield('d'); ok {
		if year := x.window.Search(d); year != nil {
			return year
		}
	}
	if r, ok := f.Subfield('r'); ok {
		return x.window.Search(r)
	}
	return nil
}

// publicationField prefers 214 (production) over 210 (publication).
func publicationField(rec *marc.Record) (*marc.Field, bool) {
	if f, ok := rec.Field("214"); ok {
		return f, true
	}
	return rec.Field("210")
}

func contentType(rec *marc.Record) *string {
	for _, f := range rec.Fields("181") {
		if source, _ := f.Subfield('2'); strings.TrimSpace(source) != "rdacontent" {
			continue
		}
		if v, ok := subfield(f, 'c'); ok {
			return &v
		}
	}
	return nil
}

// byline lists contributor names, persons first: "A", "A & B" or
// "A, B… (N)".
func byline(rec *marc.Record) *string {
	var names []string
	add := func(tags []string, kind model.IdentityKind) {
		for _, f := range rec.Fields(tags...) {
			if name, ok := DisplayName(f, kind); ok {
				names = append(names, name)
			}
		}
	}
	add(PersonTags, model.KindPerson)
	add(CorporateTags, model.KindCorporateBody)

	switch len(names) {
	case 0:
		return nil
	case 1:
		return ptr(names[0])
	case 2:
		return ptr(names[0] + " & " + names[1])
	default:
		return ptr(names[0] + ", " + names[1] + "… (" + strconv.Itoa(len(names)) + ")")
	}
}

// primaryContributor is the authority number of the first contributor field,
// persons before corporate bodies.
func primaryContributor(rec *marc.Record) *int64 {
	fields := rec.Fields(PersonTags...)
	if len(fields) == 0 {
		fields = rec.Fields(CorporateTags...)
	}
	if len(fields) == 0 {
		return nil
	}
	ref, ok := fields[0].Subfield('3')
	if !ok {
		return nil
	}
	number, ok := marc.AuthorityNumber(ref)
	if !ok {
		return nil
	}
	return &number
}
