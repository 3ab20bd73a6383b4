package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"apelcal/config"
	"apelcal/infras/jwt"
	"apelcal/infras/otel"
	"apelcal/internal/domains/auth/model/dto"
	settingsModel "apelcal/internal/domains/settings/model"
	settingsService "apelcal/internal/domains/settings/service"
	"apelcal/shared/constant"
	"apelcal/shared/failure"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	settings   settingsService.Settings
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(settings settingsService.Settings, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		settings:   settings,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Login checks the submitted password against the stored admin password
// and issues a token pair. There is a single admin account, so no
// identifier is taken from the request.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err := s.settings.VerifyAdminPassword(ctx, req.Password); err != nil {
		log.Warn().Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized("invalid password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(settingsModel.SingletonID, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, err
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
