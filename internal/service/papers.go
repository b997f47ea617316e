package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bluele/gcache"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/paper"
	"github.com/bluelatex/blue-web/internal/domain/prefs"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/observability/metrics"
	"github.com/bluelatex/blue-web/internal/observability/statsd"
	"github.com/bluelatex/blue-web/internal/ports"
)

const (
	defaultViewCapacity = 1024
	defaultViewTTL      = 30 * time.Minute
)

// PaperListConfig tunes the per-session view registry and date handling.
type PaperListConfig struct {
	ViewCapacity int
	ViewTTL      time.Duration
	// OverwriteDates stamps every loaded paper with the retrieval time,
	// ignoring backend dates.
	OverwriteDates bool
	Now            func() time.Time
	// Clock drives view expiry; tests pass gcache.NewFakeClock().
	Clock gcache.Clock
}

// PaperListServiceOptions groups dependencies for PaperListService.
type PaperListServiceOptions struct {
	Backend     ports.PaperBackend // Required
	Preferences *PreferenceService // Required
	Config      PaperListConfig
	Metrics     statsd.Sink
	Logger      *slog.Logger
}

// PaperListService is the paper list view-model. Each browser session holds
// one paper.List in a bounded LRU registry so filters and deletes act on the
// collection loaded by the last visit.
type PaperListService struct {
	backend   ports.PaperBackend
	prefs     *PreferenceService
	views     gcache.Cache
	overwrite bool
	now       func() time.Time
	metrics   statsd.Sink
	logger    *slog.Logger
	messages  Messages
}

// NewPaperListService constructs a PaperListService.
func NewPaperListService(opts PaperListServiceOptions) *PaperListService {
	if opts.Backend == nil {
		panic("PaperListServiceOptions.Backend is required")
	}
	if opts.Preferences == nil {
		panic("PaperListServiceOptions.Preferences is required")
	}

	capacity := opts.Config.ViewCapacity
	if capacity <= 0 {
		capacity = defaultViewCapacity
	}
	ttl := opts.Config.ViewTTL
	if ttl <= 0 {
		ttl = defaultViewTTL
	}
	now := opts.Config.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	builder := gcache.New(capacity).LRU().Expiration(ttl).
		LoaderFunc(func(any) (any, error) {
			return paper.NewList(prefs.Default().Sort()), nil
		})
	if opts.Config.Clock != nil {
		builder = builder.Clock(opts.Config.Clock)
	}

	return &PaperListService{
		backend:   opts.Backend,
		prefs:     opts.Preferences,
		views:     builder.Build(),
		overwrite: opts.Config.OverwriteDates,
		now:       now,
		metrics:   opts.Metrics,
		logger:    logger,
	}
}

// View returns the list held for a session, creating an empty one on first use.
func (s *PaperListService) View(sessionID string) *paper.List {
	v, err := s.views.Get(sessionID)
	if err != nil {
		// The loader never fails; keep the caller working on a detached list.
		s.logger.Error("paper view registry failed", "error", err)
		return paper.NewList(prefs.Default().Sort())
	}
	metrics.EmitViewRegistrySize(s.metrics, s.views.Len(false))
	return v.(*paper.List)
}

// Forget drops the list held for a session.
func (s *PaperListService) Forget(sessionID string) {
	s.views.Remove(sessionID)
}

// Load fetches the user's papers and replaces the held collection. A load
// superseded by a newer one is discarded. On failure the collection is kept
// and a message is recorded on sess.
func (s *PaperListService) Load(ctx context.Context, sess *domainauth.Session) (*paper.List, error) {
	list := s.View(sess.ID)
	gen := list.Begin()

	papers, err := s.backend.UserPapers(ctx, ports.CredentialsFor(*sess), sess.UserName)
	if err != nil {
		s.messages.Fail(sess, OpListPapers, err)
		return list, fmt.Errorf("list papers: %w", err)
	}

	retrieved := s.now()
	for i := range papers {
		if s.overwrite || papers[i].Date.IsZero() {
			papers[i].Date = retrieved
		}
	}
	if !list.Commit(gen, papers) {
		s.logger.DebugContext(ctx, "discarded superseded paper load", "user", sess.UserName)
	}
	return list, nil
}

// SetDateFilter selects the date bucket of the session's list.
func (s *PaperListService) SetDateFilter(sessionID string, b paper.DateBucket) {
	s.View(sessionID).SetDateFilter(b)
}

// SetRoleFilter selects the role filter of the session's list.
func (s *PaperListService) SetRoleFilter(sessionID string, r paper.RoleFilter) {
	s.View(sessionID).SetRoleFilter(r)
}

// Delete deletes a paper on the backend and, once acknowledged, removes it
// from the held collection. A 401 also clears the session's user; the caller
// saves the session.
func (s *PaperListService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	ok, err := s.backend.Delete(ctx, ports.CredentialsFor(*sess), id)
	if err != nil {
		s.messages.Fail(sess, OpDeletePaper, err)
		if apperrors.StatusOf(err) == http.StatusUnauthorized {
			sess.ClearUser()
		}
		return false, fmt.Errorf("delete paper %s: %w", id, err)
	}
	if ok {
		s.View(sess.ID).Remove(id)
		s.logger.InfoContext(ctx, "paper deleted", "user", sess.UserName, "paper_id", id)
	}
	return ok, nil
}

// Sort persists the ordering for the profile, then reorders the session's list.
func (s *PaperListService) Sort(ctx context.Context, sessionID, profileID string, sort paper.Sort) error {
	if err := s.prefs.SetSort(ctx, profileID, sort); err != nil {
		return err
	}
	s.View(sessionID).SetSort(sort)
	return nil
}

// SetStyle persists the display style for the profile.
func (s *PaperListService) SetStyle(ctx context.Context, profileID string, style paper.Style) error {
	return s.prefs.SetStyle(ctx, profileID, style)
}

// Listing is a rendered snapshot of a session's list.
type Listing struct {
	Papers []paper.Paper
	Total  int
	Filter paper.Filter
	Sort   paper.Sort
	Style  paper.Style
	Loaded bool
}

// Snapshot applies the profile's stored ordering and returns the visible papers.
func (s *PaperListService) Snapshot(ctx context.Context, sessionID, profileID string) Listing {
	p := s.prefs.Get(ctx, profileID)
	list := s.View(sessionID)
	list.SetSort(p.Sort())
	return Listing{
		Papers: list.Visible(s.now()),
		Total:  list.Len(),
		Filter: list.Filter(),
		Sort:   list.Sort(),
		Style:  p.Style,
		Loaded: list.Loaded(),
	}
}
