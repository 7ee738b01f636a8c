package geo

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/logging"
)

// Geocoding resolves an address to a position.
type Geocoding interface {
	Geocode(ctx context.Context, address string) (Location, error)
}

// IPLocating resolves the caller's own position.
type IPLocating interface {
	Locate(ctx context.Context) (Location, error)
}

var (
	_ Geocoding  = (*Geocoder)(nil)
	_ IPLocating = (*IPLocator)(nil)
)

// Request is the location part of a search.
type Request struct {
	RawLocation string
	AutoDetect  bool
}

// Resolver turns a Request into coordinates. Failures are logged and
// reported only as absence.
type Resolver struct {
	geocoder Geocoding
	locator  IPLocating
	logger   *zap.Logger
}

func NewResolver(geocoder Geocoding, locator IPLocating, logger *zap.Logger) *Resolver {
	return &Resolver{geocoder: geocoder, locator: locator, logger: logging.OrNop(logger)}
}

// Resolve returns the position for req and whether one was found. Auto-detect
// takes priority over typed text; an empty address makes no network call.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Location, bool) {
	switch {
	case req.AutoDetect:
		return r.autoDetect(ctx)
	case strings.TrimSpace(req.RawLocation) != "":
		return r.geocode(ctx, strings.TrimSpace(req.RawLocation))
	default:
		return Location{}, false
	}
}

func (r *Resolver) autoDetect(ctx context.Context) (Location, bool) {
	if r.locator == nil {
		r.logger.Warn("location auto-detect unavailable: no ip locator configured")
		return Location{}, false
	}
	loc, err := r.locator.Locate(ctx)
	if err != nil {
		r.logger.Warn("location auto-detect failed", zap.Error(err))
		return Location{}, false
	}
	r.logger.Debug("location auto-detected", zap.Stringer("location", loc))
	return loc, true
}

func (r *Resolver) geocode(ctx context.Context, address string) (Location, bool) {
	if r.geocoder == nil {
		r.logger.Warn("geocoding unavailable: no geocoder configured", zap.String("address", address))
		return Location{}, false
	}
	loc, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		r.logger.Warn("geocoding failed", zap.String("address", address), zap.Error(err))
		return Location{}, false
	}
	r.logger.Debug("address geocoded", zap.String("address", address), zap.Stringer("location", loc))
	return loc, true
}
