package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserProfile_Merge_ScalarPrecedence tests non-empty wins, unset preserves
func TestUserProfile_Merge_ScalarPrecedence(t *testing.T) {
	p := UserProfile{
		Nationality: "India",
		Residence:   "India",
		Education:   "Bachelor",
	}

	p.Merge(ProfileUpdate{
		Residence: "Germany",
		// Nationality and Education unset: must be preserved
	})

	assert.Equal(t, "India", p.Nationality)
	assert.Equal(t, "Germany", p.Residence)
	assert.Equal(t, "Bachelor", p.Education)
}

// TestUserProfile_Merge_WorkYears tests pointer-typed numeric field
func TestUserProfile_Merge_WorkYears(t *testing.T) {
	p := UserProfile{WorkYears: 3}

	p.Merge(ProfileUpdate{})
	assert.Equal(t, 3, p.WorkYears, "unset WorkYears must preserve")

	five := 5
	p.Merge(ProfileUpdate{WorkYears: &five})
	assert.Equal(t, 5, p.WorkYears)

	zero := 0
	p.Merge(ProfileUpdate{WorkYears: &zero})
	assert.Equal(t, 0, p.WorkYears, "explicit zero must overwrite")
}

// TestUserProfile_Merge_ListsAppendDedupe tests list merge semantics
func TestUserProfile_Merge_ListsAppendDedupe(t *testing.T) {
	p := UserProfile{
		TravelHistory: []string{"France", "Japan"},
		Languages:     []string{"English"},
	}

	p.Merge(ProfileUpdate{
		TravelHistory: []string{"Japan", "Canada"},
		Languages:     []string{"German", "English"},
	})

	assert.Equal(t, []string{"France", "Japan", "Canada"}, p.TravelHistory)
	assert.Equal(t, []string{"English", "German"}, p.Languages)
}

// TestUserProfile_Merge_EmptyStringsSkipped tests that empty values never clobber
func TestUserProfile_Merge_EmptyStringsSkipped(t *testing.T) {
	p := UserProfile{Nationality: "Brazil"}
	p.Merge(ProfileUpdate{Nationality: "", TravelHistory: []string{""}})

	assert.Equal(t, "Brazil", p.Nationality)
	assert.Empty(t, p.TravelHistory)
}

// TestUserProfile_PassportValidAt tests the six-month calendar rule
func TestUserProfile_PassportValidAt(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   bool
	}{
		{
			name:   "exactly six months out is valid (inclusive boundary)",
			expiry: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "one day short of six months is invalid",
			expiry: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "well beyond six months is valid",
			expiry: time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "already expired is invalid",
			expiry: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := tt.expiry
			p := UserProfile{PassportExpiry: &expiry}
			assert.Equal(t, tt.want, p.PassportValidAt(today))
		})
	}
}

// TestUserProfile_PassportValidAt_NoExpiry tests missing expiry
func TestUserProfile_PassportValidAt_NoExpiry(t *testing.T) {
	p := UserProfile{}
	assert.False(t, p.PassportValidAt(time.Now()))
}

// TestProfileUpdate_IsZero tests zero-signal detection
func TestProfileUpdate_IsZero(t *testing.T) {
	assert.True(t, (&ProfileUpdate{}).IsZero())

	u := ProfileUpdate{Residence: "Spain"}
	assert.False(t, u.IsZero())

	n := 2
	u = ProfileUpdate{WorkYears: &n}
	assert.False(t, u.IsZero())
}

// TestUserProfile_Merge_PassportCopied tests the expiry pointer is not shared
func TestUserProfile_Merge_PassportCopied(t *testing.T) {
	expiry := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	p := UserProfile{}
	p.Merge(ProfileUpdate{PassportExpiry: &expiry})

	require.NotNil(t, p.PassportExpiry)
	expiry = expiry.AddDate(1, 0, 0)
	assert.Equal(t, 2030, p.PassportExpiry.Year())
}
