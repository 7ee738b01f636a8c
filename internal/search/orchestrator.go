package search

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/events"
	"github.com/five82/eventscout/internal/geo"
	"github.com/five82/eventscout/internal/logging"
)

// Phase is the lifecycle state of one search.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseResolving
	PhaseQuerying
	PhaseRendered
	PhaseAborted
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseResolving:
		return "resolving location"
	case PhaseQuerying:
		return "searching"
	case PhaseRendered:
		return "done"
	case PhaseAborted:
		return "invalid input"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Busy reports whether the search is waiting on the network.
func (p Phase) Busy() bool {
	return p == PhaseResolving || p == PhaseQuerying
}

// LocationResolver resolves the location part of the criteria.
type LocationResolver interface {
	Resolve(ctx context.Context, req geo.Request) (geo.Location, bool)
}

// EventSearcher runs the backend search.
type EventSearcher interface {
	SearchEvents(ctx context.Context, query url.Values) (backend.SearchResult, error)
}

// Search carries one submission through the phases.
type Search struct {
	ID          string
	Criteria    Criteria
	Phase       Phase
	Location    geo.Location
	HasLocation bool
	Query       url.Values
}

// Outcome is the terminal result of a search: Rendered with a (possibly
// empty) list, or Failed with Err set.
type Outcome struct {
	Search
	Events []events.Summary
	Shape  backend.Shape
	Err    error
}

// HTTPError returns the backend status error, if that is why the search failed.
func (o Outcome) HTTPError() (*backend.HTTPError, bool) {
	var httpErr *backend.HTTPError
	if errors.As(o.Err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// ErrorText is the inline message for a failed search.
func (o Outcome) ErrorText() string {
	if o.Err == nil {
		return ""
	}
	if httpErr, ok := o.HTTPError(); ok {
		return "Search failed: " + httpErr.Summary()
	}
	return "Search failed: " + o.Err.Error()
}

// Orchestrator sequences validate, resolve, build and fetch. Each step is a
// separate call so the caller can run the blocking ones off its event loop
// and discard superseded results between them.
type Orchestrator struct {
	resolver LocationResolver
	builder  *Builder
	searcher EventSearcher
	logger   *zap.Logger
}

func NewOrchestrator(resolver LocationResolver, builder *Builder, searcher EventSearcher, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		builder:  builder,
		searcher: searcher,
		logger:   logging.OrNop(logger),
	}
}

// Begin assigns a search id and validates. On a constraint violation the
// search is Aborted and the *ValidationError is returned; otherwise it moves
// to Resolving.
func (o *Orchestrator) Begin(c Criteria) (Search, error) {
	s := Search{ID: uuid.NewString(), Criteria: c, Phase: PhaseValidating}
	if err := Validate(c); err != nil {
		s.Phase = PhaseAborted
		o.logger.Info("search rejected", zap.String("search_id", s.ID), zap.Error(err))
		return s, err
	}
	o.logger.Info("search submitted",
		zap.String("search_id", s.ID),
		zap.String("keyword", c.Keyword),
		zap.String("category", c.Category),
		zap.Bool("auto_detect", c.AutoDetect))
	s.Phase = PhaseResolving
	return s, nil
}

// Resolve looks up the location and advances to Querying. It never fails.
func (o *Orchestrator) Resolve(ctx context.Context, s Search) Search {
	if o.resolver != nil {
		s.Location, s.HasLocation = o.resolver.Resolve(ctx, s.Criteria.LocationRequest())
	}
	if s.HasLocation {
		o.logger.Debug("search location resolved", zap.String("search_id", s.ID), zap.Stringer("location", s.Location))
	} else {
		o.logger.Debug("searching without location", zap.String("search_id", s.ID))
	}
	s.Phase = PhaseQuerying
	return s
}

// Query builds the query, runs the fetch and returns the terminal outcome.
// A JSON object in none of the accepted shapes renders as an empty list; a
// body that is not JSON at all fails the search.
func (o *Orchestrator) Query(ctx context.Context, s Search) Outcome {
	var loc *geo.Location
	if s.HasLocation {
		l := s.Location
		loc = &l
	}
	s.Query = o.builder.Build(s.Criteria, loc)
	log := o.logger.With(zap.String("search_id", s.ID))

	result, err := o.searcher.SearchEvents(ctx, s.Query)
	switch {
	case errors.Is(err, backend.ErrUnrecognizedPayload):
		log.Warn("search payload not recognized, showing no results", zap.Error(err))
		s.Phase = PhaseRendered
		return Outcome{Search: s, Events: []events.Summary{}}
	case err != nil:
		log.Warn("search failed", zap.String("query", s.Query.Encode()), zap.Error(err))
		s.Phase = PhaseFailed
		return Outcome{Search: s, Err: err}
	}
	s.Phase = PhaseRendered
	log.Info("search completed",
		zap.Int("results", len(result.Events)),
		zap.Stringer("shape", result.Shape))
	return Outcome{Search: s, Events: events.Summaries(result.Events), Shape: result.Shape}
}
