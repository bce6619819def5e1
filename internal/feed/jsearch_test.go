package feed

import "testing"

// Provider shapes must be mapped into the canonical Listing before any
// identity logic sees them.
func TestMapJSearchJob(t *testing.T) {
	l := mapJSearchJob(jsearchJob{
		JobID:       "abc-123",
		Title:       "Backend Intern",
		Employer:    "Acme",
		City:        "Paris",
		Country:     "FR",
		Description: "Go backend work",
		SalaryMin:   30000,
		SalaryMax:   40000,
		ApplyLink:   "https://example.com/apply",
	})

	if l.Source != SourceJSearch {
		t.Errorf("Source = %q, want %q", l.Source, SourceJSearch)
	}
	if l.SourceJobID != "abc-123" {
		t.Errorf("SourceJobID = %q, want \"abc-123\"", l.SourceJobID)
	}
	if l.Location != "Paris, FR" {
		t.Errorf("Location = %q, want \"Paris, FR\"", l.Location)
	}
}

func TestMapJSearchJob_LocationFallbacks(t *testing.T) {
	cases := []struct {
		city, country, want string
	}{
		{"Paris", "FR", "Paris, FR"},
		{"Paris", "", "Paris"},
		{"", "FR", "FR"},
		{"", "", ""},
	}
	for _, c := range cases {
		l := mapJSearchJob(jsearchJob{City: c.city, Country: c.country})
		if l.Location != c.want {
			t.Errorf("city=%q country=%q: Location = %q, want %q", c.city, c.country, l.Location, c.want)
		}
	}
}
