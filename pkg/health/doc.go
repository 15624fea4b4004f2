// Package health serves liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis":  redis.Healthcheck(client),
//	    "mailer": sender.Healthcheck,
//	}))
//
// Probes answer plain text by default and JSON with ?format=json or an
// Accept: application/json header:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"dial tcp: connection refused"}}}
package health
