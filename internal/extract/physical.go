package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/emrgen/cataviz/internal/marc"
)

// pages above maxPages are reading errors, stored as pagesError
const (
	maxPages   = 9999
	pagesError = 1000
)

// largest plausible sheet fold
const maxFormat = 128

var (
	pagesPattern   = regexp.MustCompile(`(?i)(\d+)\s*p\.`)
	sheetPattern   = regexp.MustCompile(`(?i)pi[eè]ce|placard`)
	inFoldPattern  = regexp.MustCompile(`(?i)\bin[ \-]*(\d+)`)
	inFolioPattern = regexp.MustCompile(`(?i)\bin[ \-]*fol`)
	grFolioPattern = regexp.MustCompile(`(?i)\bgr\.?[ \-]*fol`)
	degreePattern  = regexp.MustCompile(`(\d+)\s*°`)
	heightPattern  = regexp.MustCompile(`(?i)(\d+)\s*cm`)
)

// fold of a volume by height: below limit cm gives format
var heightFolds = []struct {
	limit  int
	format int
}{
	{10, 32},
	{16, 16},
	{20, 12},
	{25, 8},
	{30, 4},
}

type physical struct {
	pages  *int
	format *int
}

// physicalDescription reads 215, or 210 when a record has no dedicated
// physical description.
func physicalDescription(rec *marc.Record) physical {
	f, ok := rec.Field("215")
	if !ok {
		if f, ok = rec.Field("210"); !ok {
			return physical{}
		}
	}
	text := clean(f.Text())
	return physical{pages: pages(text), format: format(text)}
}

func pages(text string) *int {
	if m := pagesPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		if n > maxPages {
			n = pagesError
		}
		return &n
	}
	if sheetPattern.MatchString(text) {
		return ptr(1)
	}
	return nil
}

// format returns the fold of the sheet, 2 for a folio, 4 for a quarto and so
// on. The first rule matching wins.
func format(text string) *int {
	if m := inFoldPattern.FindStringSubmatch(text); m != nil {
		if n := fold(m[1]); n != nil {
			return n
		}
	}
	if inFolioPattern.MatchString(text) {
		return ptr(2)
	}
	if grFolioPattern.MatchString(text) {
		return ptr(1)
	}
	if m := degreePattern.FindStringSubmatch(text); m != nil {
		if n := fold(m[1]); n != nil {
			return n
		}
	}
	if m := heightPattern.FindStringSubmatch(text); m != nil {
		cm, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		for _, b := range heightFolds {
			if cm < b.limit {
				return ptr(b.format)
			}
		}
		return ptr(2)
	}
	return nil
}

func fold(digits string) *int {
	n, err := strconv.Atoi(strings.TrimLeft(digits, "0"))
	if err != nil || n < 1 || n > maxFormat {
		return nil
	}
	return &n
}
