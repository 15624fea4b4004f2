// Package redis opens the optional Redis connection used by the contact
// relay's rate limiter and duplicate guard.
//
// It wraps [github.com/redis/go-redis/v9] with env-tagged configuration,
// a ping-with-retry startup, a readiness check and a shutdown hook.
//
//	var cfg redis.Config // REDIS_URL, REDIS_POOL_SIZE, ...
//
//	if cfg.Enabled() {
//	    client, err := redis.Open(ctx, cfg, redis.WithLogger(log))
//	    if err != nil {
//	        return err
//	    }
//	    app := portfolio.New(portfolio.WithHealthChecks(
//	        portfolio.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	    ))
//	    return app.Run(addr, portfolio.ShutdownHook(redis.Shutdown(client)))
//	}
//
// Open fails with [ErrEmptyConnectionURL] or [ErrFailedToParseURL] before any
// network traffic, and with [ErrConnectionFailed] joined with the last ping
// error when every attempt fails.
package redis
