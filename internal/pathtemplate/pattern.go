package pathtemplate

import (
	"fmt"
	"strings"
	"time"
)

// Date patterns in templates use the letter conventions operators know from
// other tooling (yyyy, MM, dd, ...). They are converted to Go reference
// layouts before formatting. Uppercase Y is normalized to y first so nobody
// trips over week-based-year semantics.
var patternRuns = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"y":    "2006",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"a":    "PM",
	"z":    "MST",
	"XXX":  "-07:00",
	"XX":   "-0700",
	"X":    "Z07",
	"Z":    "-0700",
}

// convertPattern translates a letter pattern into a Go time layout. It fails
// on unknown pattern letters and on literal digits, because digits inside a
// Go layout would themselves be interpreted as format directives.
func convertPattern(pattern string) (string, error) {
	pattern = strings.ReplaceAll(pattern, "Y", "y")

	var layout strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !isPatternLetter(r) {
			if r >= '0' && r <= '9' {
				return "", fmt.Errorf("literal digit %q in pattern %q", r, pattern)
			}
			layout.WriteRune(r)
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		run := string(runes[i:j])
		mapped, ok := patternRuns[run]
		if !ok {
			return "", fmt.Errorf("unsupported pattern run %q in %q", run, pattern)
		}
		layout.WriteString(mapped)
		i = j
	}
	return layout.String(), nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// formatInstant renders t in loc using an operator-facing pattern.
func formatInstant(t time.Time, loc *time.Location, pattern string) (string, error) {
	layout, err := convertPattern(pattern)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(layout), nil
}
