package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"apelcal/config"
	"apelcal/infras/otel/mocks"
	s3Mocks "apelcal/infras/s3/mocks"
	settingsMocks "apelcal/internal/domains/settings/mocks"
	"apelcal/internal/domains/settings/model"
	"apelcal/internal/domains/settings/model/dto"
	"apelcal/internal/domains/settings/service"
	"apelcal/shared/cache"
	cacheMocks "apelcal/shared/cache/mocks"
	"apelcal/shared/failure"
	"apelcal/shared/password"
)

type settingsFixture struct {
	repo  *settingsMocks.MockSettings
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Settings
}

func newSettingsFixture(t *testing.T) *settingsFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &settingsFixture{
		repo:  settingsMocks.NewMockSettings(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidation run on detached goroutines.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func storedSettings(t *testing.T, adminPassword string) model.Settings {
	t.Helper()

	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)

	return model.Settings{
		ID:             model.SingletonID,
		BusinessName:   "Apel Studio",
		WelcomeMessage: "Welcome, pick a time below.",
		BusinessEmail:  "hello@apel.example",
		Timezone:       "Asia/Jakarta",
		AdminPassword:  hash,
	}
}

func TestSettingsService_Get(t *testing.T) {
	t.Run("returns settings without the password hash", func(t *testing.T) {
		f := newSettingsFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedSettings(t, "super-secret"), nil)

		res, err := f.svc.Get(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "Apel Studio", res.BusinessName)
		assert.Equal(t, "Asia/Jakarta", res.Timezone)
	})

	t.Run("not initialized", func(t *testing.T) {
		f := newSettingsFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Settings{}, nil)

		_, err := f.svc.Get(context.Background())

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestSettingsService_Update(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		f := newSettingsFixture(t)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "New Name", fields[model.FieldBusinessName])
				assert.NotContains(t, fields, model.FieldBusinessEmail)
				assert.NotContains(t, fields, model.FieldAdminPassword)

				return nil
			})

		err := f.svc.Update(context.Background(), dto.UpdateSettingsRequest{BusinessName: "New Name"})

		assert.NoError(t, err)
	})

	t.Run("empty request is rejected", func(t *testing.T) {
		f := newSettingsFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateSettingsRequest{})

		assert.Error(t, err)
	})
}

func TestSettingsService_ChangePassword(t *testing.T) {
	t.Run("successful change", func(t *testing.T) {
		f := newSettingsFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedSettings(t, "old-password"), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				hash, ok := fields[model.FieldAdminPassword].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("new-password", hash))

				return nil
			})

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newSettingsFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedSettings(t, "old-password"), nil)

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestSettingsService_VerifyAdminPassword(t *testing.T) {
	f := newSettingsFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(storedSettings(t, "super-secret"), nil).
		Times(2)

	assert.NoError(t, f.svc.VerifyAdminPassword(context.Background(), "super-secret"))

	err := f.svc.VerifyAdminPassword(context.Background(), "guess")
	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestSettingsService_VerifyAdminPassword_RepoError(t *testing.T) {
	f := newSettingsFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Settings{}, errors.New("database error"))

	err := f.svc.VerifyAdminPassword(context.Background(), "super-secret")

	assert.Error(t, err)
}
