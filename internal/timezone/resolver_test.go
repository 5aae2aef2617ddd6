package timezone

import (
	"errors"
	"testing"
	"time"
)

// Rome: CET in winter (+3600), CEST in summer (+7200).
const (
	romeLat = 41.9028
	romeLng = 12.4964
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	return r
}

func TestResolveComputesDSTDependentOffset(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name       string
		local      time.Time
		wantOffset int
		wantUTC    time.Time
	}{
		{
			name:       "winter",
			local:      time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
			wantOffset: 3600,
			wantUTC:    time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			name:       "summer",
			local:      time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
			wantOffset: 7200,
			wantUTC:    time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utc, offset, err := r.Resolve(romeLat, romeLng, tt.local)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
			if !utc.Equal(tt.wantUTC) {
				t.Errorf("utc = %s, want %s", utc, tt.wantUTC)
			}
		})
	}
}

func TestResolveLocalizeRoundTrip(t *testing.T) {
	r := newTestResolver(t)

	local := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	utc, offset, err := r.Resolve(romeLat, romeLng, local)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	back := Localize(utc, offset)
	if back.Year() != local.Year() || back.Month() != local.Month() || back.Day() != local.Day() ||
		back.Hour() != local.Hour() || back.Minute() != local.Minute() {
		t.Errorf("round trip = %s, want wall clock %s", back, local)
	}
}

// noZoneFinder stands in for a finder that cannot place the coordinate. The
// default tzf data never returns "" (open ocean falls back to Etc/GMT zones),
// so the error path is exercised through the finder seam.
type noZoneFinder struct{}

func (noZoneFinder) GetTimezoneName(lng, lat float64) string { return "" }

func TestResolveNoTimezoneFound(t *testing.T) {
	r := &Resolver{finder: noZoneFinder{}}

	_, _, err := r.Resolve(-48.87, -123.39, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNoTimezone) {
		t.Fatalf("err = %v, want ErrNoTimezone", err)
	}
}

func TestResolveOpenOceanFallsBackToEtcZone(t *testing.T) {
	r := newTestResolver(t)

	// Middle of the South Pacific: no country zone, but the default data
	// still covers it with an Etc/GMT zone on a whole-hour offset.
	_, offset, err := r.Resolve(-48.87, -123.39, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if offset%3600 != 0 {
		t.Errorf("offset = %d, want a whole-hour offset", offset)
	}
}

func TestLocalizeNegativeOffset(t *testing.T) {
	utc := time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)
	local := Localize(utc, -5*3600)
	if local.Hour() != 2 {
		t.Errorf("hour = %d, want 2", local.Hour())
	}
}
