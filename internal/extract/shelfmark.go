package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/emrgen/cataviz/internal/marc"
)

var (
	holdingPattern = regexp.MustCompile(`^FR-\d{9}:\s*(.*)$`)
	// [RES[-P|G|M]-][FORMAT-]CLASS[SUBCLASS]-NUMBER
	markPattern = regexp.MustCompile(`^(?:RES[ \-]*(?:[PGM][ \-]+)?)?(?:(\d+|FOL)-)?(THETA|[A-Z]{1,2})(\d*)-`)
)

type mark struct {
	format *int
	letter string
	number *int
}

// shelfMark parses the first holding (930) whose call number follows the
// library classification, e.g. 8-LB39-1234 or FOL-T29-4.
func shelfMark(rec *marc.Record) (mark, bool) {
	for _, f := range rec.Fields("930") {
		for _, value := range callNumbers(f) {
			if m, ok := parseMark(value); ok {
				return m, true
			}
		}
	}
	return mark{}, false
}

func callNumbers(f *marc.Field) []string {
	var values []string
	if v, ok := subfield(f, 'a'); ok {
		values = append(values, v)
	}
	if v, ok := subfield(f, '5'); ok {
		if m := holdingPattern.FindStringSubmatch(v); m != nil {
			values = append(values, m[1])
		}
	}
	return values
}

func parseMark(value string) (mark, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if m := holdingPattern.FindStringSubmatch(value); m != nil {
		value = m[1]
	}
	sm := markPattern.FindStringSubmatch(value)
	if sm == nil {
		return mark{}, false
	}

	res := mark{letter: sm[2]}
	if res.letter == "THETA" {
		res.letter = "TH"
	}
	switch sm[1] {
	case "":
	case "FOL":
		res.format = ptr(2)
	default:
		res.format = fold(sm[1])
	}
	if sm[3] != "" {
		if n, err := strconv.Atoi(sm[3]); err == nil {
			res.number = &n
		}
	}
	return res, true
}
