package boxaloo

import (
	"context"

	healthuc "github.com/boxaloo/boxaloo/internal/usecase/health"
)

// HealthStatus reports the state of the load and truck stores.
type HealthStatus struct {
	Status string            // "ok", "degraded" or "error"
	Checks map[string]string // store name to "ok" or "error"
}

// Healthy reports whether every store answered.
func (h HealthStatus) Healthy() bool { return h.Status == string(healthuc.Healthy) }

// Health runs the store checks.
func (c *Client) Health(ctx context.Context) (h HealthStatus) {
	report := c.healthSvc.Check(ctx)
	h = HealthStatus{
		Status: string(report.Status),
		Checks: make(map[string]string, len(report.Checks)),
	}
	for name, res := range report.Checks {
		h.Checks[name] = string(res)
	}
	return h
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
