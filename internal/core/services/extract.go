package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// extractor pulls profile signals and per-turn context out of free
// text. All matching is heuristic and case-insensitive; it only ever
// adds signals, it never removes profile state.
type extractor struct {
	catalogue driven.FactCatalogue
}

func newExtractor(catalogue driven.FactCatalogue) *extractor {
	return &extractor{catalogue: catalogue}
}

var (
	nationalityRe = regexp.MustCompile(`(?:i am from|i'm from|my nationality is|i am a citizen of|citizen of|my passport is from) (\p{Ll}[\p{Ll} ]{1,30})`)
	residenceRe   = regexp.MustCompile(`(?:i live in|i'm living in|i am living in|based in|residing in) (\p{Ll}[\p{Ll} ]{1,30})`)
	workYearsRe   = regexp.MustCompile(`(\d{1,2})\+? years? of (?:work |professional )?experience`)
	passportRe    = regexp.MustCompile(`passport (?:expires|expiry|valid until|valid till)(?: on| is)? ([a-z0-9, /-]{4,20})`)
	languagesRe   = regexp.MustCompile(`i speak ([\p{Ll}, ]+?)(?:\.|,? and i|$)`)
	visitedRe     = regexp.MustCompile(`(?:i have been to|i've been to|i visited|i have visited) ([\p{Ll}, ]+?)(?:\.|$)`)
)

// countryOccurrence is one catalogued country mentioned in a message.
type countryOccurrence struct {
	pos    int
	name   string
	code   string
	origin bool // preceded by "from", i.e. where the user comes from
}

// turnContext extracts the destination, goal and comparison set from
// one message.
func (e *extractor) turnContext(text string) domain.TurnContext {
	lowered := strings.ToLower(text)
	tc := domain.TurnContext{Goal: detectGoal(lowered)}

	for _, occ := range e.countryMentions(lowered) {
		if occ.origin {
			continue
		}
		if tc.Destination == "" {
			tc.Destination = occ.name
			tc.DestinationCode = occ.code
			continue
		}
		tc.CompareWith = append(tc.CompareWith, occ.name)
	}
	return tc
}

// profileSignals extracts a partial profile update from one message.
func (e *extractor) profileSignals(text string) domain.ProfileUpdate {
	lowered := strings.ToLower(text)
	var u domain.ProfileUpdate

	if m := nationalityRe.FindStringSubmatch(lowered); m != nil {
		u.Nationality = titleWords(trimCountryPhrase(m[1]))
	}
	if m := residenceRe.FindStringSubmatch(lowered); m != nil {
		u.Residence = titleWords(trimCountryPhrase(m[1]))
	}
	if m := workYearsRe.FindStringSubmatch(lowered); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			u.WorkYears = &years
		}
	}
	if m := passportRe.FindStringSubmatch(lowered); m != nil {
		if expiry, ok := parseLooseDate(strings.TrimSpace(m[1])); ok {
			u.PassportExpiry = &expiry
		}
	}
	if m := languagesRe.FindStringSubmatch(lowered); m != nil {
		u.Languages = splitList(m[1])
	}
	if m := visitedRe.FindStringSubmatch(lowered); m != nil {
		u.TravelHistory = splitList(m[1])
	}

	u.Education = detectEducation(lowered)
	if goal := detectGoal(lowered); goal != "" {
		u.SelectedGoals = []string{goal}
	}
	switch {
	case strings.Contains(lowered, "i am employed"), strings.Contains(lowered, "i have a job"), strings.Contains(lowered, "i work as"):
		u.WorkStatus = "employed"
	case strings.Contains(lowered, "i am unemployed"), strings.Contains(lowered, "i don't have a job"):
		u.WorkStatus = "unemployed"
	case strings.Contains(lowered, "i am a student"), strings.Contains(lowered, "i'm a student"):
		u.WorkStatus = "student"
	}

	return u
}

// countryMentions finds catalogued country names in the lowered text,
// ordered by position of first appearance.
func (e *extractor) countryMentions(lowered string) []countryOccurrence {
	if e.catalogue == nil {
		return nil
	}

	var occs []countryOccurrence
	for _, entry := range e.catalogue.All() {
		name := strings.ToLower(entry.CountryName)
		pos := strings.Index(lowered, name)
		if pos < 0 {
			continue
		}
		occs = append(occs, countryOccurrence{
			pos:    pos,
			name:   entry.CountryName,
			code:   entry.Code,
			origin: precededByFrom(lowered, pos),
		})
	}

	sort.Slice(occs, func(i, j int) bool { return occs[i].pos < occs[j].pos })
	return occs
}

// precededByFrom reports whether the mention at pos reads as an origin
// ("from Japan") rather than a destination.
func precededByFrom(lowered string, pos int) bool {
	start := pos - 8
	if start < 0 {
		start = 0
	}
	return strings.Contains(lowered[start:pos], "from ")
}

// detectGoal maps message text to a visa goal, first match wins.
func detectGoal(lowered string) string {
	switch {
	case strings.Contains(lowered, "work"), strings.Contains(lowered, "job"), strings.Contains(lowered, "employment"):
		return "work"
	case strings.Contains(lowered, "study"), strings.Contains(lowered, "student"), strings.Contains(lowered, "university"), strings.Contains(lowered, "degree"):
		return "study"
	case strings.Contains(lowered, "family"), strings.Contains(lowered, "spouse"), strings.Contains(lowered, "partner visa"):
		return "family"
	case strings.Contains(lowered, "permanent residen"), strings.Contains(lowered, "residency"), strings.Contains(lowered, "settle"):
		return "residency"
	case strings.Contains(lowered, "tourism"), strings.Contains(lowered, "tourist"), strings.Contains(lowered, "holiday"), strings.Contains(lowered, "vacation"), strings.Contains(lowered, "visit"):
		return "tourism"
	default:
		return ""
	}
}

// detectEducation maps message text to an education level.
func detectEducation(lowered string) string {
	switch {
	case strings.Contains(lowered, "phd"), strings.Contains(lowered, "doctorate"):
		return "PhD"
	case strings.Contains(lowered, "master"):
		return "Master"
	case strings.Contains(lowered, "bachelor"):
		return "Bachelor"
	case strings.Contains(lowered, "high school"):
		return "High school"
	default:
		return ""
	}
}

// parseLooseDate accepts the date spellings people actually type.
func parseLooseDate(s string) (time.Time, bool) {
	layouts := []string{
		"2006-01-02",
		"02/01/2006",
		"January 2, 2006",
		"January 2 2006",
		"2 January 2006",
		"January 2006",
		"Jan 2006",
		"01/2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, titleWords(s)); err == nil {
			return t, true
		}
		// Lower-cased month names need the original casing restored.
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// trimCountryPhrase cuts the match at the first conjunction so
// "germany and i have" extracts just "germany".
func trimCountryPhrase(s string) string {
	for _, stop := range []string{" and ", " but ", " so ", " to ", " for "} {
		if i := strings.Index(s, stop); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// splitList splits "english, german and hindi" into title-cased items.
func splitList(s string) []string {
	s = strings.ReplaceAll(s, " and ", ",")
	parts := strings.Split(s, ",")

	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, titleWords(p))
	}
	return out
}

// titleWords capitalises the first letter of each word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
