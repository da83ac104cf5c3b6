package middleware

import (
	"golang.org/x/time/rate"

	"item-management/config"
	"item-management/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
	cors    config.CORSConfig
}

func New(l log.Logger, rl config.RateLimitConfig, cors config.CORSConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(rl.PerSecond), rl.Burst),
		cors:    cors,
	}
}
