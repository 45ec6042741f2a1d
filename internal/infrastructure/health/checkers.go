package health

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/chefpantry/chefpantry/internal/core/ports"
	infraDB "github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

// Postgres holds every record of value, so its loss takes the service down.
type dbChecker struct{ db *infraDB.Database }

func (d *dbChecker) Name() string                    { return "database" }
func (d *dbChecker) Critical() bool                  { return true }
func (d *dbChecker) Check(ctx context.Context) error { return d.db.DB.PingContext(ctx) }

// Redis loss degrades caching, sessions and notification fan-out but reads
// still work, so it reports as non-critical.
type redisChecker struct{ client *redis.Client }

func (r *redisChecker) Name() string                    { return "redis" }
func (r *redisChecker) Critical() bool                  { return false }
func (r *redisChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func NewDBHealthChecker(db *infraDB.Database) ports.HealthChecker { return &dbChecker{db: db} }

func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisChecker{client: client}
}
