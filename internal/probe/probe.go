package probe

import (
	"context"

	"github.com/skarimo/downwatch/internal/domain"
)

// CheckResult is the outcome of probing a single target.
//
// StatusCode is the HTTP status when a response arrived; 0 for transport
// errors (timeout, DNS, refused connection, TLS) — all of those collapse into
// Up=false without further distinction.
type CheckResult struct {
	Up         bool
	StatusCode int
	LatencyMS  float64
	Message    string
}

// Checker probes targets. Implemented by HTTPChecker; tests substitute fakes.
type Checker interface {
	CheckOne(ctx context.Context, t domain.Target) CheckResult
	CheckAll(ctx context.Context, targets []domain.Target) domain.ProbeResult
}
