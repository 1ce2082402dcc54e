// Package dates resolves years from free text catalogue date lines and
// fixed column date codes.
package dates

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// age at death must lie strictly between these bounds
	minAge = 10
	maxAge = 120
)

var (
	birthPattern = regexp.MustCompile(`^[^\-\d]*(\d{3,4})\b`)
	deathPattern = regexp.MustCompile(`-[^\d]*(\d{3,4})\b`)
	firstDigit   = regexp.MustCompile(`\d`)
	codedYear    = regexp.MustCompile(`^-?\d+$`)
)

// Lifespan holds the birth and death years of a person. Age is set only when
// both years are known and the pair is plausible.
type Lifespan struct {
	Birth *int
	Death *int
	Age   *int
}

// Plausible reports whether a person born in birth and dead in death could
// have lived that long.
func Plausible(birth, death int) bool {
	age := death - birth
	return age > minAge && age < maxAge
}

// checked computes the age, or drops both years when the pair is implausible.
// One bad year makes the other one suspect too.
func (l Lifespan) checked() Lifespan {
	if l.Birth == nil || l.Death == nil {
		return Lifespan{Birth: l.Birth, Death: l.Death}
	}
	if !Plausible(*l.Birth, *l.Death) {
		return Lifespan{}
	}
	return Lifespan{Birth: l.Birth, Death: l.Death, Age: ptr(*l.Death - *l.Birth)}
}

// ParseDateline extracts years from a date line like "1732-1799",
// "av. 500-450" or "né en 1700". A leading "av." (before Christ) negates
// both years. No plausibility check is applied.
func ParseDateline(raw string) Lifespan {
	sign := 1
	if before := strings.Index(raw, "av."); before >= 0 {
		if loc := firstDigit.FindStringIndex(raw); loc == nil || before < loc[0] {
			sign = -1
		}
	}

	var l Lifespan
	if m := birthPattern.FindStringSubmatch(raw); m != nil {
		l.Birth = signed(m[1], sign)
	}
	if m := deathPattern.FindStringSubmatch(raw); m != nil {
		l.Death = signed(m[1], sign)
	}
	return l
}

// ResolveDateline parses a date line and applies the age check.
func ResolveDateline(raw string) Lifespan {
	return ParseDateline(raw).checked()
}

// ParseCoded reads a fixed column date code: birth year in columns 0-4,
// death year in columns 10-14.
func ParseCoded(coded string) Lifespan {
	return Lifespan{
		Birth: codedColumn(coded, 0, 5),
		Death: codedColumn(coded, 10, 15),
	}
}

// Resolve combines the free text date line with the coded date field. The
// coded field is consulted only when the date line gives no usable age;
// years it provides replace those of the date line.
func Resolve(dateline string, coded string, hasCoded bool) Lifespan {
	l := ResolveDateline(dateline)
	if l.Age != nil || !hasCoded {
		return l
	}
	c := ParseCoded(coded)
	if c.Birth != nil {
		l.Birth = c.Birth
	}
	if c.Death != nil {
		l.Death = c.Death
	}
	return l.checked()
}

func codedColumn(coded string, from, to int) *int {
	if len(coded) <= from {
		return nil
	}
	if len(coded) < to {
		to = len(coded)
	}
	s := strings.TrimSpace(coded[from:to])
	if !codedYear.MatchString(s) {
		return nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &year
}

func signed(digits string, sign int) *int {
	year, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return ptr(sign * year)
}

func ptr(v int) *int {
	return &v
}
