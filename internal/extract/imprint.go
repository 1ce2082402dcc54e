package extract

import (
	"regexp"
	"strings"

	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/normalize"
)

var (
	addressSeparator = regexp.MustCompile(`\s*[,:;]\s*`)
	// "s.l.", "sine loco", "[S.l.]"
	noPlacePattern = regexp.MustCompile(`(?i)^\[?\s*(?:s\.\s?l\.|sine loco|sans lieu|n\.\s?p\.)`)
	// "s.n.", "sine nomine", "[s.n.]"
	noPublisherPattern = regexp.MustCompile(`(?i)^\[?\s*(?:s\.\s?n\.|sine nomine|sans nom)`)
	placeArticle       = regexp.MustCompile(`(?i)^(?:à|a|au|aux|en|in|im|zu|te|tot)\s+`)
	publisherArticle   = regexp.MustCompile(`(?i)^(?:chez|apud|bey|bei)\s+`)
	secondPlace        = regexp.MustCompile(`(?i)\s+(?:et|and|und|&)(?:\s+.*)?$`)
	brackets           = strings.NewReplacer("[", "", "]", "", "(", "", ")", "")
)

type imprint struct {
	place        *string
	placeKey     *string
	publisher    *string
	publisherKey *string
}

// imprintOf reads place and publisher of the production (214) or publication
// (210) field. The transcribed address ($r) gives a first guess which $a and
// $c, or a 620 place of publication, override.
func imprintOf(rec *marc.Record) imprint {
	var place, publisher string
	f, hasPublication := publicationField(rec)
	if hasPublication {
		if r, ok := subfield(f, 'r'); ok {
			parts := addressSeparator.Split(r, 3)
			place = parts[0]
			if len(parts) > 1 {
				publisher = parts[1]
			}
		}
		if v, ok := subfield(f, 'a'); ok {
			place = v
		}
		if v, ok := subfield(f, 'c'); ok {
			publisher = v
		}
	}
	if v, ok := recordSubfield(rec, "620", 'd'); ok {
		place = v
	}

	var res imprint
	res.place, res.placeKey = cleanName(place, noPlacePattern, placeArticle, true)
	res.publisher, res.publisherKey = cleanName(publisher, noPublisherPattern, publisherArticle, false)
	return res
}

// cleanName strips brackets and a leading article. Missing place or publisher
// markers are kept verbatim without a search key.
func cleanName(raw string, missing, article *regexp.Regexp, single bool) (*string, *string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if missing.MatchString(raw) {
		return &raw, nil
	}

	value := strings.TrimSpace(brackets.Replace(raw))
	value = article.ReplaceAllString(value, "")
	if single {
		value = secondPlace.ReplaceAllString(value, "")
	}
	value = strings.TrimRight(value, " ,:;")
	if value == "" {
		return nil, nil
	}
	key := normalize.Key(value)
	if key == "" {
		return &value, nil
	}
	return &value, &key
}
