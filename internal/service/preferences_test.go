package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bluelatex/blue-web/internal/domain/paper"
	"github.com/bluelatex/blue-web/internal/domain/prefs"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/mocks"
)

func newPreferenceServiceWithMock(t *testing.T) (*PreferenceService, *mocks.MockPreferenceStore) {
	t.Helper()
	store := mocks.NewMockPreferenceStore(gomock.NewController(t))
	return NewPreferenceService(PreferenceServiceOptions{Store: store}), store
}

func TestPreferenceService_GetStored(t *testing.T) {
	svc, store := newPreferenceServiceWithMock(t)
	store.EXPECT().GetAll(gomock.Any(), testProfile).Return(map[string]string{
		prefs.KeyPredicate: paper.SortDate,
		prefs.KeyReverse:   "true",
		prefs.KeyStyle:     "grid",
	}, nil)

	got := svc.Get(context.Background(), testProfile)

	assert.Equal(t, prefs.Preferences{SortField: paper.SortDate, SortDescending: true, Style: paper.StyleGrid}, got)
}

func TestPreferenceService_GetFallsBackToDefaults(t *testing.T) {
	svc, store := newPreferenceServiceWithMock(t)
	store.EXPECT().GetAll(gomock.Any(), testProfile).Return(nil, errors.New("connection refused"))

	assert.Equal(t, prefs.Default(), svc.Get(context.Background(), testProfile))
	assert.Equal(t, prefs.Default(), svc.Get(context.Background(), ""), "no profile means no store read")
}

func TestPreferenceService_SetSortWritesPredicateAndReverse(t *testing.T) {
	svc, store := newPreferenceServiceWithMock(t)
	store.EXPECT().Set(gomock.Any(), testProfile, map[string]string{
		prefs.KeyPredicate: paper.SortTitle,
		prefs.KeyReverse:   "true",
	}).Return(nil)

	require.NoError(t, svc.SetSort(context.Background(), testProfile, paper.Sort{Field: paper.SortTitle, Descending: true}))
}

func TestPreferenceService_SetSortRejectsUnknownField(t *testing.T) {
	svc, _ := newPreferenceServiceWithMock(t)

	err := svc.SetSort(context.Background(), testProfile, paper.Sort{Field: "color"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPreferenceService_SetStyle(t *testing.T) {
	svc, store := newPreferenceServiceWithMock(t)
	store.EXPECT().Set(gomock.Any(), testProfile, map[string]string{prefs.KeyStyle: "grid"}).Return(nil)

	require.NoError(t, svc.SetStyle(context.Background(), testProfile, paper.StyleGrid))

	err := svc.SetStyle(context.Background(), testProfile, paper.Style("cards"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestPreferenceService_SetRequiresProfile(t *testing.T) {
	svc, _ := newPreferenceServiceWithMock(t)

	err := svc.SetStyle(context.Background(), "", paper.StyleList)

	assert.True(t, apperrors.IsValidation(err))
}

func TestPreferenceService_SetWrapsStoreError(t *testing.T) {
	svc, store := newPreferenceServiceWithMock(t)
	cause := errors.New("disk full")
	store.EXPECT().Set(gomock.Any(), testProfile, gomock.Any()).Return(cause)

	err := svc.SetStyle(context.Background(), testProfile, paper.StyleList)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save preferences")
}
