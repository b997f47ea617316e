package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bluelatex/blue-web/internal/domain/paper"
	"github.com/bluelatex/blue-web/internal/domain/prefs"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

// PreferenceServiceOptions groups dependencies for PreferenceService.
type PreferenceServiceOptions struct {
	Store  ports.PreferenceStore // Required
	Logger *slog.Logger
}

// PreferenceService reads and writes the paper list preferences of a browser profile.
type PreferenceService struct {
	store  ports.PreferenceStore
	logger *slog.Logger
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(opts PreferenceServiceOptions) *PreferenceService {
	if opts.Store == nil {
		panic("PreferenceServiceOptions.Store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{store: opts.Store, logger: logger}
}

// Get returns the stored preferences, or the defaults when the store fails.
// A broken store degrades the list display; it never blocks it.
func (s *PreferenceService) Get(ctx context.Context, profileID string) prefs.Preferences {
	if profileID == "" {
		return prefs.Default()
	}
	values, err := s.store.GetAll(ctx, profileID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read preferences", "profile", profileID, "error", err)
		return prefs.Default()
	}
	return prefs.FromValues(values)
}

// SetSort persists the sort predicate and direction.
func (s *PreferenceService) SetSort(ctx context.Context, profileID string, sort paper.Sort) error {
	if !paper.ValidSortField(sort.Field) {
		return apperrors.ValidationField("sort", fmt.Sprintf("unknown sort field %q", sort.Field))
	}
	p := prefs.Preferences{SortField: sort.Field, SortDescending: sort.Descending}
	values := p.Values()
	delete(values, prefs.KeyStyle)
	return s.set(ctx, profileID, values)
}

// SetStyle persists the display style.
func (s *PreferenceService) SetStyle(ctx context.Context, profileID string, style paper.Style) error {
	if style != paper.StyleList && style != paper.StyleGrid {
		return apperrors.ValidationField("style", fmt.Sprintf("unknown style %q", style))
	}
	return s.set(ctx, profileID, map[string]string{prefs.KeyStyle: string(style)})
}

func (s *PreferenceService) set(ctx context.Context, profileID string, values map[string]string) error {
	if profileID == "" {
		return apperrors.ValidationField("profile", "profile id is required")
	}
	if err := s.store.Set(ctx, profileID, values); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
