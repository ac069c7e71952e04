package auth

import (
	"context"

	"go.uber.org/fx"

	"github.com/erpre/backoffice/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newBlacklist),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
}

func newBlacklist(cfg *config.Config, lc fx.Lifecycle) TokenBlacklist {
	if cfg.RedisAddr == "" {
		return NoopBlacklist{}
	}
	blacklist := NewRedisBlacklist(cfg.RedisAddr)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return blacklist.Close()
		},
	})
	return blacklist
}
