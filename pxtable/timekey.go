package pxtable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Frequency is the observation frequency detected from a period key.
type Frequency int

const (
	FrequencyUnknown Frequency = iota
	FrequencyAnnual
	FrequencyQuarterly
	FrequencyMonthly
)

func (f Frequency) String() string {
	switch f {
	case FrequencyAnnual:
		return "annual"
	case FrequencyQuarterly:
		return "quarterly"
	case FrequencyMonthly:
		return "monthly"
	}
	return "unknown"
}

var (
	reQuarter = regexp.MustCompile(`^(\d{4})[QK]([1-4])$`)
	reMonthM  = regexp.MustCompile(`^(\d{4})M(\d{1,2})$`)
	reMonth   = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	reDay     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reYear    = regexp.MustCompile(`^\d{4}$`)
)

// NormalizeTimeKey maps a provider-specific period code to a canonical
// ISO calendar-day string and the frequency it encodes. Recognised shapes are
// tried in priority order, first match wins:
//
//	2021Q3 / 2021K3 -> 2021-07-01, quarterly
//	2021M07         -> 2021-07-01, monthly
//	2021-07         -> 2021-07-01, monthly
//	2021-07-01      -> unchanged, frequency unknown (already canonical)
//	2021            -> 2021-01-01, annual
//
// Anything else is returned unchanged with FrequencyUnknown. Malformed or
// locale-specific keys degrade rather than abort, so partial tables remain
// usable; normalizing an already-canonical key is a no-op.
func NormalizeTimeKey(raw string) (string, Frequency) {
	key := strings.TrimSpace(raw)

	if m := reQuarter.FindStringSubmatch(key); m != nil {
		q, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-01", m[1], (q-1)*3+1), FrequencyQuarterly
	}
	if m := reMonthM.FindStringSubmatch(key); m != nil {
		if month, _ := strconv.Atoi(m[2]); month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%02d-01", m[1], month), FrequencyMonthly
		}
		return raw, FrequencyUnknown
	}
	if m := reMonth.FindStringSubmatch(key); m != nil {
		if month, _ := strconv.Atoi(m[2]); month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%s-01", m[1], m[2]), FrequencyMonthly
		}
		return raw, FrequencyUnknown
	}
	if reDay.MatchString(key) {
		return key, FrequencyUnknown
	}
	if reYear.MatchString(key) {
		return key + "-01-01", FrequencyAnnual
	}
	return raw, FrequencyUnknown
}

// timeTokens are substrings that mark a variable as the time dimension when
// the provider has not flagged one. Covers the English and Finnish
// vocabularies seen in PxWeb tables.
var timeTokens = []string{
	"year", "time", "quarter", "month",
	"vuosi", "aika", "kuukausi", "neljännes",
}

var reLeadingYear = regexp.MustCompile(`^\d{4}`)

// InferTimeIndex scans variables in declaration order and returns the index
// of the first whose code contains a known time token (case-insensitive) or
// whose first coded value starts with a four-digit year. Returns -1 when no
// variable matches; callers must then fail with ErrNoTimeDimension rather
// than guess.
func InferTimeIndex(vars []Variable) int {
	for i := range vars {
		code := strings.ToLower(vars[i].Code)
		for _, token := range timeTokens {
			if strings.Contains(code, token) {
				return i
			}
		}
		if len(vars[i].Values) > 0 && reLeadingYear.MatchString(vars[i].Values[0]) {
			return i
		}
	}
	return -1
}
