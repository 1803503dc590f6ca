package domain

// FactEntry is a curated set of short, citable statements about a
// single country's visa and immigration rules. Entries are loaded once
// from the bundled catalogue and are immutable afterwards; identity is
// the ISO-style Code.
type FactEntry struct {
	// Code is the unique country code (e.g., "US", "DE").
	Code string `json:"code"`

	// CountryName is the human-readable country name.
	CountryName string `json:"countryName"`

	// OfficialSiteURL is the authoritative government source for the
	// statements in this entry. Used for citations.
	OfficialSiteURL string `json:"officialSiteURL"`

	// Statements are short atomic facts, one retrievable unit each.
	Statements []string `json:"statements"`

	// VisaTypes lists the visa categories this country offers.
	VisaTypes []VisaType `json:"visaTypes,omitempty"`

	// VisaFreePolicy summarises visa-free or visa-on-arrival access.
	VisaFreePolicy string `json:"visaFreePolicy,omitempty"`

	// Checklist holds the baseline document checklist for applications.
	Checklist []string `json:"checklist,omitempty"`

	// Fees maps visa category to an indicative fee description.
	Fees map[string]string `json:"fees,omitempty"`

	// ProcessingTime is an indicative processing duration.
	ProcessingTime string `json:"processingTime,omitempty"`

	// Restrictions lists notable caveats (quotas, bans, caps).
	Restrictions []string `json:"restrictions,omitempty"`
}

// VisaType describes one visa category offered by a country.
type VisaType struct {
	// Name is the category name (e.g., "Skilled Worker", "Student").
	Name string `json:"name"`

	// Purpose is what the visa is for (work, study, tourism, family).
	Purpose string `json:"purpose"`

	// Duration is the typical validity period.
	Duration string `json:"duration,omitempty"`

	// Notes carries any extra qualifier.
	Notes string `json:"notes,omitempty"`
}

// HasStatements reports whether the entry carries any retrievable text.
func (f *FactEntry) HasStatements() bool {
	return len(f.Statements) > 0
}
