// Package mocks provides gomock doubles for the ports consumed by the service layer.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	backend := mocks.NewMockPaperBackend(ctrl)
//	backend.EXPECT().UserPapers(gomock.Any(), gomock.Any(), "alice").Return(papers, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=paper_backend_mock.go github.com/bluelatex/blue-web/internal/ports PaperBackend
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_backend_mock.go github.com/bluelatex/blue-web/internal/ports UserBackend
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_backend_mock.go github.com/bluelatex/blue-web/internal/ports SessionBackend
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=preference_store_mock.go github.com/bluelatex/blue-web/internal/ports PreferenceStore
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/bluelatex/blue-web/internal/ports CacheRepository
