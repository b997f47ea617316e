package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/mocks"
	"github.com/bluelatex/blue-web/internal/ports"
	"github.com/bluelatex/blue-web/internal/testutil"
)

func TestUserService_ProfileCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend, Cache: cache})
	sess := testutil.UserSession("s1", "alice")

	profile := ports.UserProfile{Name: "alice", FirstName: "Alice", Email: "alice@example.com"}
	encoded, err := json.Marshal(profile)
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), "user:profile:alice").Return(nil, nil)
	backend.EXPECT().UserInfo(gomock.Any(), ports.CredentialsFor(sess), "alice").Return(profile, nil)
	cache.EXPECT().Set(gomock.Any(), "user:profile:alice", encoded, defaultProfileTTL).Return(nil)

	got, err := svc.Profile(context.Background(), &sess)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestUserService_ProfileCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend, Cache: cache})
	sess := testutil.UserSession("s1", "alice")

	cache.EXPECT().Get(gomock.Any(), "user:profile:alice").Return([]byte(`{"name":"alice","first_name":"Cached"}`), nil)
	backend.EXPECT().UserInfo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.Profile(context.Background(), &sess)
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.FirstName)
}

func TestUserService_ProfileCacheErrorFallsBackToBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend, Cache: cache})
	sess := testutil.UserSession("s1", "alice")

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	backend.EXPECT().UserInfo(gomock.Any(), gomock.Any(), "alice").Return(ports.UserProfile{Name: "alice"}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := svc.Profile(context.Background(), &sess)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
}

func TestUserService_ProfileBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend})
	sess := testutil.UserSession("s1", "alice")

	backend.EXPECT().UserInfo(gomock.Any(), gomock.Any(), "alice").Return(ports.UserProfile{}, apperrors.Auth(""))

	_, err := svc.Profile(context.Background(), &sess)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, "_Profile_Not_connected_", sess.Messages[0].Key)
}

func TestUserService_ClearCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: mocks.NewMockUserBackend(ctrl), Cache: cache})

	cache.EXPECT().Delete(gomock.Any(), "user:profile:alice").Return(true, nil)
	require.NoError(t, svc.ClearCache(context.Background(), "alice"))

	noCache := NewUserService(UserServiceOptions{Backend: mocks.NewMockUserBackend(ctrl)})
	require.NoError(t, noCache.ClearCache(context.Background(), "alice"))
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend})
	sess := testutil.AnonymousSession("s1")

	reg := ports.Registration{UserName: "bob", FirstName: "Bob", LastName: "B", Email: "bob@example.com"}
	backend.EXPECT().Register(gomock.Any(), reg).Return(nil)

	require.NoError(t, svc.Register(context.Background(), &sess, reg))
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, InfoRegistered, sess.Messages[0].Key)
}

func TestUserService_RegisterFailures(t *testing.T) {
	tests := []struct {
		name    string
		reg     ports.Registration
		backend error
		wantKey string
	}{
		{
			name:    "missing email",
			reg:     ports.Registration{UserName: "bob", FirstName: "Bob", LastName: "B"},
			wantKey: "_Registration_Some_parameters_are_missing_",
		},
		{
			name:    "duplicate user",
			reg:     ports.Registration{UserName: "bob", FirstName: "Bob", LastName: "B", Email: "bob@example.com"},
			backend: apperrors.FromStatus(409, "exists"),
			wantKey: "_Registration_User_with_the_same_username_already_exists_",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockUserBackend(ctrl)
			if tt.backend != nil {
				backend.EXPECT().Register(gomock.Any(), gomock.Any()).Return(tt.backend)
			}
			svc := NewUserService(UserServiceOptions{Backend: backend})
			sess := testutil.AnonymousSession("s1")

			require.Error(t, svc.Register(context.Background(), &sess, tt.reg))
			require.Len(t, sess.Messages, 1)
			assert.Equal(t, tt.wantKey, sess.Messages[0].Key)
		})
	}
}

func TestUserService_RequestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend})
	sess := testutil.AnonymousSession("s1")

	backend.EXPECT().RequestReset(gomock.Any(), "bob").Return(nil)
	require.NoError(t, svc.RequestReset(context.Background(), &sess, " bob "))
	assert.Equal(t, InfoResetRequested, sess.Messages[0].Key)

	backend.EXPECT().RequestReset(gomock.Any(), "ghost").Return(apperrors.NotFound("no such user"))
	require.Error(t, svc.RequestReset(context.Background(), &sess, "ghost"))
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, "_Reset_User_not_found_", sess.Messages[0].Key)
}

func TestUserService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend})
	sess := testutil.AnonymousSession("s1")

	mismatch := ports.PasswordReset{UserName: "bob", Token: "t", NewPassword: "a", Confirm: "b"}
	err := svc.ResetPassword(context.Background(), &sess, mismatch)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "_Reset_password_Some_parameters_are_missing_", sess.Messages[0].Key)

	ok := ports.PasswordReset{UserName: "bob", Token: "t", NewPassword: "a", Confirm: "a"}
	backend.EXPECT().ResetPassword(gomock.Any(), ok).Return(nil)
	require.NoError(t, svc.ResetPassword(context.Background(), &sess, ok))
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, InfoPasswordChanged, sess.Messages[0].Key)
}

func TestUserService_ProfileCanceledCallerDoesNotFailSharedFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend})

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	backend.EXPECT().UserInfo(gomock.Any(), gomock.Any(), "alice").
		DoAndReturn(func(ctx context.Context, _ ports.Credentials, _ string) (ports.UserProfile, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			if err := ctx.Err(); err != nil {
				return ports.UserProfile{}, err
			}
			return ports.UserProfile{Name: "alice"}, nil
		}).MinTimes(1)

	// Two requests of the same browser session race on a cold cache.
	first := testutil.UserSession("s1", "alice")
	second := testutil.UserSession("s1", "alice")

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Profile(firstCtx, &first)
		firstErr <- err
	}()
	<-started

	type result struct {
		profile ports.UserProfile
		err     error
	}
	secondRes := make(chan result, 1)
	go func() {
		p, err := svc.Profile(context.Background(), &second)
		secondRes <- result{p, err}
	}()

	cancelFirst()
	require.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)

	res := <-secondRes
	require.NoError(t, res.err)
	assert.Equal(t, "alice", res.profile.Name)
	assert.Empty(t, second.Messages)
}

func TestUserService_ProfileFetchesPerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockUserBackend(ctrl)
	svc := NewUserService(UserServiceOptions{Backend: backend})

	laptop := testutil.UserSession("s1", "alice")
	phone := testutil.UserSession("s2", "alice")
	phone.BackendCookies[0].Value = "phone-cookie"

	backend.EXPECT().UserInfo(gomock.Any(), ports.CredentialsFor(laptop), "alice").Return(ports.UserProfile{Name: "alice"}, nil)
	backend.EXPECT().UserInfo(gomock.Any(), ports.CredentialsFor(phone), "alice").Return(ports.UserProfile{Name: "alice"}, nil)

	_, err := svc.Profile(context.Background(), &laptop)
	require.NoError(t, err)
	_, err = svc.Profile(context.Background(), &phone)
	require.NoError(t, err)
}
