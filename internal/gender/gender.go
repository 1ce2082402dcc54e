// Package gender infers the gender of a person from an explicit sex code or,
// failing that, from the first given name.
package gender

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/emrgen/cataviz/internal/normalize"
	"github.com/gobuffalo/packr"
)

// Gender of a person. The values are stored as is.
type Gender int

const (
	Unknown Gender = iota
	Male
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// sex code of the authority record, first position of 120$a
var codes = map[byte]Gender{
	'a': Female,
	'b': Male,
}

var tokenSeparator = regexp.MustCompile(`[ \-]`)

// Resolver maps codes and given names to a gender.
type Resolver struct {
	names map[string]Gender
}

// New creates a resolver on a first name table. Keys are normalized.
func New(names map[string]Gender) *Resolver {
	table := make(map[string]Gender, len(names))
	for name, g := range names {
		table[normalize.Key(name)] = g
	}
	return &Resolver{names: table}
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
	defaultErr      error
)

// Default returns the resolver on the packaged first name table.
func Default() (*Resolver, error) {
	defaultOnce.Do(func() {
		box := packr.NewBox("./data")
		var tsv string
		tsv, defaultErr = box.FindString("givens.tsv")
		if defaultErr != nil {
			defaultErr = fmt.Errorf("gender: loading first names: %w", defaultErr)
			return
		}
		var names map[string]Gender
		names, defaultErr = ParseTable(tsv)
		if defaultErr == nil {
			defaultResolver = New(names)
		}
	})
	return defaultResolver, defaultErr
}

// ParseTable reads "name<TAB>M|F" lines, # starts a comment.
func ParseTable(tsv string) (map[string]Gender, error) {
	names := make(map[string]Gender)
	scanner := bufio.NewScanner(strings.NewReader(tsv))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cols := strings.Split(text, "\t")
		if len(cols) != 2 {
			return nil, fmt.Errorf("gender: line %d: expected 2 columns, got %d", line, len(cols))
		}
		switch strings.TrimSpace(cols[1]) {
		case "M":
			names[cols[0]] = Male
		case "F":
			names[cols[0]] = Female
		default:
			return nil, fmt.Errorf("gender: line %d: unknown gender %q", line, cols[1])
		}
	}
	return names, scanner.Err()
}

// FromCode maps an explicit sex code.
func (r *Resolver) FromCode(code string) Gender {
	if code == "" {
		return Unknown
	}
	return codes[code[0]]
}

// FromGiven looks up the first token of the given names. Many historical
// first names are not in the table, they resolve to Unknown.
func (r *Resolver) FromGiven(given string) Gender {
	token := tokenSeparator.Split(strings.TrimSpace(given), 2)[0]
	if token == "" {
		return Unknown
	}
	return r.names[normalize.Key(token)]
}

// Resolve prefers the explicit code and falls back to the given name.
func (r *Resolver) Resolve(code, given string) Gender {
	if g := r.FromCode(code); g != Unknown {
		return g
	}
	return r.FromGiven(given)
}
