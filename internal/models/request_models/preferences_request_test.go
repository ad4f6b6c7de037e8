package request_models

import (
	"errors"
	"testing"
	"time"

	"voyageai/pkg/utils"
)

func TestTripPreferencesValidate(t *testing.T) {
	cases := []struct {
		name    string
		prefs   TripPreferences
		wantErr bool
	}{
		{"zero value", TripPreferences{}, false},
		{"valid range", TripPreferences{BudgetMin: 1000, BudgetMax: 3000}, false},
		{"valid dates", TripPreferences{StartDate: "2026-07-01", EndDate: "2026-07-14"}, false},
		{"same day trip", TripPreferences{StartDate: "2026-07-01", EndDate: "2026-07-01"}, false},
		{"negative min", TripPreferences{BudgetMin: -1, BudgetMax: 100}, true},
		{"negative max", TripPreferences{BudgetMax: -5}, true},
		{"inverted budget", TripPreferences{BudgetMin: 500, BudgetMax: 100}, true},
		{"inverted dates", TripPreferences{StartDate: "2026-07-14", EndDate: "2026-07-01"}, true},
		{"garbage start date", TripPreferences{StartDate: "next tuesday"}, true},
		{"garbage end date", TripPreferences{EndDate: "07/14/2026"}, true},
	}

	for _, tc := range cases {
		err := tc.prefs.Validate()
		if tc.wantErr && !errors.Is(err, utils.ErrMalformedPreferences) {
			t.Fatalf("%s: expected ErrMalformedPreferences, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestTravelStart(t *testing.T) {
	prefs := TripPreferences{StartDate: "2026-07-01"}
	start := prefs.TravelStart()
	if start == nil {
		t.Fatal("expected parsed start date, got nil")
	}
	if start.Month() != time.July {
		t.Fatalf("expected July, got %s", start.Month())
	}

	if (TripPreferences{}).TravelStart() != nil {
		t.Fatal("expected nil start for empty dates")
	}
	if (TripPreferences{StartDate: "garbage"}).TravelStart() != nil {
		t.Fatal("expected nil start for unparseable date")
	}
}
