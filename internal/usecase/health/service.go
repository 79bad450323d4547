package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks over named components.
type Service struct {
	names    []string
	checkers map[string]Checker
}

// New creates a Service. Nil checkers are skipped.
func New(checkers map[string]Checker) *Service {
	s := &Service{checkers: make(map[string]Checker, len(checkers))}
	for name, c := range checkers {
		if c == nil {
			continue
		}
		s.names = append(s.names, name)
		s.checkers[name] = c
	}
	sort.Strings(s.names)
	return s
}

// Check runs every checker. One failure degrades the report; all failing makes it unhealthy.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.names))
	failed := 0

	for _, name := range s.names {
		if err := s.checkers[name].HealthCheck(ctx); err != nil {
			checks[name] = CheckError
			failed++
			continue
		}
		checks[name] = CheckOK
	}

	status := Healthy
	switch {
	case failed > 0 && failed == len(s.names):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
