package dates

import (
	"regexp"
	"strconv"
)

// candidate publication years, "?" and "." stand for unknown digits: [17..]
var yearRun = regexp.MustCompile(`\d[\d?.]{3}`)

// Window bounds plausible publication years, both bounds excluded.
type Window struct {
	Min int
	Max int
}

// DefaultWindow keeps years of printed books.
var DefaultWindow = Window{Min: 1400, Max: 2030}

// Contains reports whether year is strictly inside the window.
func (w Window) Contains(year int) bool {
	return year > w.Min && year < w.Max
}

// Year parses s as a year and keeps it only inside the window.
func (w Window) Year(s string) *int {
	year, err := strconv.Atoi(s)
	if err != nil || !w.Contains(year) {
		return nil
	}
	return &year
}

// Search returns the first 4 character run of text that is a year inside the
// window. Runs with filler characters ("17..", "1?50") are not guessed.
func (w Window) Search(text string) *int {
	for _, run := range yearRun.FindAllString(text, -1) {
		if year := w.Year(run); year != nil {
			return year
		}
	}
	return nil
}
