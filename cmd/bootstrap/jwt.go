package bootstrap

import (
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if len(cfg.JWT.Secret) < 32 {
		panic("AUTH_JWT_SECRET must be at least 32 bytes")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
}
