package usecase

import (
	"context"
	"time"
)

// location loads the draft timezone, falling back to the resolver's home
// zone and finally UTC.
func (uc *implUseCase) location(ctx context.Context, tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
		uc.l.Warnf(ctx, "unknown timezone %q, using home zone", tz)
	}

	if loc, err := time.LoadLocation(uc.resolver.HomeZone()); err == nil {
		return loc
	}
	return time.UTC
}
