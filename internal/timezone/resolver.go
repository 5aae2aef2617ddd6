package timezone

import (
	"errors"
	"fmt"
	"time"

	"github.com/ringsaturn/tzf"
)

// ErrNoTimezone is returned when a coordinate cannot be resolved to an IANA
// timezone (e.g. open ocean).
var ErrNoTimezone = errors.New("no timezone found for coordinate")

// finder is the slice of tzf.F the resolver needs. The longitude-first
// argument order is tzf's.
type finder interface {
	GetTimezoneName(lng, lat float64) string
}

// Resolver converts between a user's local wall-clock time and UTC, using
// timezone lookup by coordinate. The offset is a function of both place and
// moment (DST), so it is computed per date-time, never cached per user.
type Resolver struct {
	finder finder
}

func NewResolver() (*Resolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	return &Resolver{finder: finder}, nil
}

// Resolve interprets local as a naive wall-clock date-time at the given
// coordinate and returns the equivalent UTC instant together with the signed
// UTC offset (in seconds) in effect there at that moment. The year, month,
// day, hour and minute of local are used; its own location is ignored.
func (r *Resolver) Resolve(latitude, longitude float64, local time.Time) (time.Time, int, error) {
	name := r.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return time.Time{}, 0, ErrNoTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	localDT := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), 0, 0, loc)
	_, offset := localDT.Zone()

	return localDT.UTC(), offset, nil
}

// Localize shifts a stored UTC instant by a stored offset for display in the
// user's local terms.
func Localize(utc time.Time, offsetSeconds int) time.Time {
	return utc.UTC().Add(time.Duration(offsetSeconds) * time.Second)
}
