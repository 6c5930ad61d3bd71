package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
)

const limiterPrefix = "hrm_limiter"

// NewLimiterStore returns a Redis-backed store when redisURL is set and an
// in-process one otherwise. A Redis that cannot be reached falls back to
// memory with a warning.
func NewLimiterStore(ctx context.Context, redisURL string) (limiter.Store, func() error, error) {
	noop := func() error { return nil }
	if redisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix, CleanUpInterval: time.Minute}), noop, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, noop, errors.Wrap(err, "parse rate limit redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("rate limit redis unavailable, using memory store", "err", err)
		_ = client.Close()
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix, CleanUpInterval: time.Minute}), noop, nil
	}
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: limiterPrefix, MaxRetry: 3})
	if err != nil {
		_ = client.Close()
		return nil, noop, errors.Wrap(err, "create redis limiter store")
	}
	return store, client.Close, nil
}

// RateLimit allows perMinute requests per actor, or per client address for
// anonymous requests.
func RateLimit(store limiter.Store, perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	instance := limiter.New(store, limiter.Rate{Period: time.Minute, Limit: int64(perMinute)})
	mw := stdlib.NewMiddleware(instance,
		stdlib.WithKeyGetter(actorOrIPKey),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			slog.Warn("rate limit exceeded", "key", actorOrIPKey(r), "path", r.URL.Path, "method", r.Method, "limit", perMinute)
			api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("rate limiter failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "rate_limit_error", "rate limiter unavailable", GetRequestID(r.Context()))
		}),
	)
	return mw.Handler
}

func actorOrIPKey(r *http.Request) string {
	if user, ok := GetUser(r.Context()); ok && user.UserID != "" {
		return "user:" + user.UserID
	}
	return "ip:" + ClientIP(r)
}
