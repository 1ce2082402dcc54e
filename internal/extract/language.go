package extract

import (
	"strings"

	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
)

// catalogued before 1970, records of the legacy era omit the language of
// French texts
const legacyLanguage = "fre"

type language struct {
	language    *string
	translation *bool
	original    *string
}

// languageOf reads 101: $a text language, $c original language, first
// indicator 0 original text, 1 translation, 2 contains translations.
func languageOf(rec *marc.Record, era model.Era) language {
	var res language
	f, ok := rec.Field("101")
	if ok {
		if v, ok := subfield(f, 'a'); ok {
			res.language = ptr(strings.ToLower(v))
		}
	}
	if res.language == nil {
		if era == model.EraPre1970 {
			res.language = ptr(legacyLanguage)
		}
		return res
	}

	switch f.Indicator1 {
	case '0':
		res.translation = ptr(false)
	case '1', '2':
		res.translation = ptr(true)
	}
	if v, ok := subfield(f, 'c'); ok {
		res.original = ptr(strings.ToLower(v))
		res.translation = ptr(true)
	}
	return res
}
