package ports

import "context"

// HealthChecker probes one dependency. Critical distinguishes dependencies
// the service cannot run without from ones it can limp along degraded on.
type HealthChecker interface {
	Name() string
	Critical() bool
	Check(ctx context.Context) error
}
