package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"apelcal/config"
	"apelcal/infras/otel"
	"apelcal/infras/s3"
	"apelcal/internal/domains/settings/model"
	"apelcal/internal/domains/settings/model/dto"
	"apelcal/internal/domains/settings/repository"
	"apelcal/shared"
	"apelcal/shared/cache"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
	"apelcal/shared/password"
	"apelcal/shared/timezone"
)

const (
	cacheGetSettings = "settings:get"

	logoDirectory = "logo"
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	UploadLogo(ctx context.Context, req dto.UploadLogoRequest) (dto.UploadLogoResponse, error)
	VerifyAdminPassword(ctx context.Context, plain string) error
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSettings, "singleton")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	settings, err := s.get(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSettingsRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	updatedFields := shared.TransformFields(req, admin)
	if err := s.repo.Update(ctx, updatedFields, singletonFilter()); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetSettings)
	}()

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.get(ctx)
	if err != nil {
		return err
	}

	if err := password.Verify(req.CurrentPassword, settings.AdminPassword); err != nil {
		return failure.Unauthorized("current password is incorrect") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return err
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	fields := map[string]any{
		model.FieldAdminPassword: hash,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: admin,
	}

	if err := s.repo.Update(ctx, fields, singletonFilter()); err != nil {
		log.Error().Err(err).Msg("failed to change admin password")

		return err
	}

	return nil
}

func (s *serviceImpl) UploadLogo(ctx context.Context, req dto.UploadLogoRequest) (res dto.UploadLogoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.get(ctx)
	if err != nil {
		return res, err
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, logoDirectory, req.File, req.FileHeader, req.FileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload logo")

		return res, err
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	fields := shared.TransformFields(struct {
		LogoURL string `db:"logo_url"`
	}{LogoURL: url}, admin)

	if err = s.repo.Update(ctx, fields, singletonFilter()); err != nil {
		log.Error().Err(err).Msg("failed to store logo url")

		return res, err
	}

	if settings.LogoURL != "" {
		objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, settings.LogoURL)
		if objectName != "" {
			if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, logoDirectory, objectName); err != nil {
				log.Error().Err(err).Msg("failed to delete previous logo")
			}
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetSettings)
	}()

	res.LogoURL = url

	return res, nil
}

// VerifyAdminPassword compares the clear text against the stored bcrypt
// hash.
func (s *serviceImpl) VerifyAdminPassword(ctx context.Context, plain string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyAdminPassword")
	defer scope.End()

	settings, err := s.get(ctx)
	if err != nil {
		return err
	}

	if err := password.Verify(plain, settings.AdminPassword); err != nil {
		return failure.Unauthorized("invalid password") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context) (model.Settings, error) {
	settings, err := s.repo.Get(ctx, singletonFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return settings, err
	}

	if settings.ID == "" {
		return settings, failure.NotFound("settings not initialized") // nolint:wrapcheck
	}

	return settings, nil
}

func singletonFilter() gDto.FilterGroup {
	return shared.FilterByID(model.SingletonID, model.FieldID, model.TableName)
}
