package marc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// http://catalogue.bnf.fr/ark:/12148/cb15037139g
	arkPattern    = regexp.MustCompile(`ark:/\d+/cb(\d{8})`)
	suffixPattern = regexp.MustCompile(`(\d{8})[0-9a-z]?\s*$`)
)

// ControlNumber extracts the 8 digit authority number from a URL shaped
// control identifier.
func ControlNumber(url string) (int64, bool) {
	m := arkPattern.FindStringSubmatch(url)
	if m == nil {
		m = suffixPattern.FindStringSubmatch(url)
	}
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// AuthorityNumber parses a $3 link to an authority record. Only the first 8
// characters count, some records repeat the number in the same subfield.
func AuthorityNumber(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if len(value) > 8 {
		value = value[:8]
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
