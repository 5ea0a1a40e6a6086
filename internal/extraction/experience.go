package extraction

import (
	"regexp"
	"strconv"
)

var (
	// Explicit tenure claims: "6 years", "6+ yrs".
	explicitYearsRe = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)\b`)
	// Employment date ranges: "2018 - Present", "2016 – 2021".
	dateRangeRe = regexp.MustCompile(`(\d{4})\s*[-–]\s*(?:[Pp]resent|\d{4})`)
)

// ExperienceYears estimates years of professional experience from the text.
// Explicit "N years" mentions win, taking the maximum found; failing that,
// the span from the earliest date-range start to currentYear is used. Zero
// means no experience signal at all. Unparsable tokens are skipped, never
// fatal.
func ExperienceYears(text string, currentYear int) float64 {
	maxYears := 0
	for _, m := range explicitYearsRe.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > maxYears {
			maxYears = years
		}
	}
	if maxYears > 0 {
		return float64(maxYears)
	}

	earliest := 0
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if earliest == 0 || start < earliest {
			earliest = start
		}
	}
	if earliest > 0 && earliest <= currentYear {
		return float64(currentYear - earliest)
	}

	return 0
}
