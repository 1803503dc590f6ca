package domain

// RetrievedFact is one ranked, deduplicated retrieval hit after the
// retriever's post-processing.
type RetrievedFact struct {
	// Statement is the retrieved fact text.
	Statement string

	// CountryCode and CountryName identify the originating entry.
	CountryCode string
	CountryName string

	// SourceURL is the official source backing the statement.
	SourceURL string

	// Score is the cosine similarity of the hit.
	Score float64
}

// TurnContext carries per-message signals extracted from the user's
// text before tool dispatch.
type TurnContext struct {
	// Destination is the destination country mentioned in the message,
	// if any (country name as catalogued).
	Destination string

	// DestinationCode is the catalogue code for Destination.
	DestinationCode string

	// Goal is the visa goal mentioned (work, study, tourism, family,
	// residency), if any.
	Goal string

	// CompareWith lists additional countries mentioned, for the
	// comparison tool.
	CompareWith []string
}
