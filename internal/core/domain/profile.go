package domain

import "time"

// UserProfile is the single mutable profile for the local user.
// Exactly one logical instance exists per device; it is created on
// first access and mutated only through the profile service's merge.
type UserProfile struct {
	// Nationality is the user's citizenship (country name or code).
	Nationality string `json:"nationality,omitempty"`

	// Residence is the country the user currently lives in.
	Residence string `json:"residence,omitempty"`

	// Education is the highest completed education level.
	Education string `json:"education,omitempty"`

	// WorkYears is the total years of professional experience.
	WorkYears int `json:"workYears,omitempty"`

	// Finances is a free-form description of available funds.
	Finances string `json:"finances,omitempty"`

	// PassportExpiry is the passport expiry date, if known.
	PassportExpiry *time.Time `json:"passportExpiry,omitempty"`

	// WorkStatus is the current employment situation.
	WorkStatus string `json:"workStatus,omitempty"`

	// CurrentVisa is the visa the user currently holds, if any.
	CurrentVisa string `json:"currentVisa,omitempty"`

	// Languages lists languages with an optional proficiency note.
	Languages []string `json:"languages,omitempty"`

	// TravelHistory lists countries previously visited.
	TravelHistory []string `json:"travelHistory,omitempty"`

	// SelectedGoals lists immigration goals the user has expressed
	// (e.g., "work", "study", "residency").
	SelectedGoals []string `json:"selectedGoals,omitempty"`

	// SavedDocumentIDs references artifacts the user has saved.
	SavedDocumentIDs []string `json:"savedDocumentIds,omitempty"`

	// LastSeen is the last time the profile was touched.
	LastSeen time.Time `json:"lastSeen"`
}

// ProfileUpdate is a partial profile: every field is optional. Merge
// semantics are field-level precedence - a set, non-empty value
// replaces the existing one; an unset field preserves it; list fields
// append and de-duplicate, never replace wholesale.
type ProfileUpdate struct {
	Nationality    string     `json:"nationality,omitempty"`
	Residence      string     `json:"residence,omitempty"`
	Education      string     `json:"education,omitempty"`
	WorkYears      *int       `json:"workYears,omitempty"`
	Finances       string     `json:"finances,omitempty"`
	PassportExpiry *time.Time `json:"passportExpiry,omitempty"`
	WorkStatus     string     `json:"workStatus,omitempty"`
	CurrentVisa    string     `json:"currentVisa,omitempty"`

	Languages        []string `json:"languages,omitempty"`
	TravelHistory    []string `json:"travelHistory,omitempty"`
	SelectedGoals    []string `json:"selectedGoals,omitempty"`
	SavedDocumentIDs []string `json:"savedDocumentIds,omitempty"`
}

// IsZero reports whether the update carries no signal at all.
func (u *ProfileUpdate) IsZero() bool {
	return u.Nationality == "" && u.Residence == "" && u.Education == "" &&
		u.WorkYears == nil && u.Finances == "" && u.PassportExpiry == nil &&
		u.WorkStatus == "" && u.CurrentVisa == "" &&
		len(u.Languages) == 0 && len(u.TravelHistory) == 0 &&
		len(u.SelectedGoals) == 0 && len(u.SavedDocumentIDs) == 0
}

// Merge applies the update onto the profile in place using field-level
// precedence. Scalar fields: non-empty update wins, unset preserves.
// List fields: append + de-duplicate.
func (p *UserProfile) Merge(u ProfileUpdate) {
	if u.Nationality != "" {
		p.Nationality = u.Nationality
	}
	if u.Residence != "" {
		p.Residence = u.Residence
	}
	if u.Education != "" {
		p.Education = u.Education
	}
	if u.WorkYears != nil {
		p.WorkYears = *u.WorkYears
	}
	if u.Finances != "" {
		p.Finances = u.Finances
	}
	if u.PassportExpiry != nil {
		t := *u.PassportExpiry
		p.PassportExpiry = &t
	}
	if u.WorkStatus != "" {
		p.WorkStatus = u.WorkStatus
	}
	if u.CurrentVisa != "" {
		p.CurrentVisa = u.CurrentVisa
	}

	p.Languages = appendUnique(p.Languages, u.Languages)
	p.TravelHistory = appendUnique(p.TravelHistory, u.TravelHistory)
	p.SelectedGoals = appendUnique(p.SelectedGoals, u.SelectedGoals)
	p.SavedDocumentIDs = appendUnique(p.SavedDocumentIDs, u.SavedDocumentIDs)
}

// PassportValidAt reports whether the passport satisfies the six-month
// validity rule at the given date. The boundary is inclusive and uses
// calendar-month arithmetic (month field + 6 with year rollover), not
// elapsed seconds.
func (p *UserProfile) PassportValidAt(today time.Time) bool {
	if p.PassportExpiry == nil {
		return false
	}
	cutoff := today.AddDate(0, 6, 0)
	return !p.PassportExpiry.Before(cutoff)
}

// appendUnique appends items from add that are not already in dst,
// preserving order of first appearance.
func appendUnique(dst, add []string) []string {
	if len(add) == 0 {
		return dst
	}
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range add {
		if v == "" || seen[v] {
			continue
		}
		dst = append(dst, v)
		seen[v] = true
	}
	return dst
}
