package probe

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/domain"
)

// Some targets reject Go's default client string, so every probe identifies
// itself explicitly.
const userAgent = "downwatch-monitor/1.0 (+https://github.com/skarimo/downwatch)"

type HTTPChecker struct {
	Client *http.Client
	Logger *zap.Logger
}

func NewHTTPChecker(timeout time.Duration, logger *zap.Logger) *HTTPChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// CheckOne probes a single target. Up iff a response arrived with a status in
// [200,300). Any transport failure is just "down"; the reason is carried in
// Message for the log line only.
func (c *HTTPChecker) CheckOne(ctx context.Context, t domain.Target) CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return CheckResult{Up: false, Message: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return CheckResult{Up: false, LatencyMS: latency, Message: err.Error()}
	}
	defer resp.Body.Close()

	up := resp.StatusCode >= 200 && resp.StatusCode < 300
	return CheckResult{
		Up:         up,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
		Message:    resp.Status,
	}
}

// CheckAll probes targets in the given order and stops at the first failure.
// The order is significant: the first failing target is the one reported.
func (c *HTTPChecker) CheckAll(ctx context.Context, targets []domain.Target) domain.ProbeResult {
	for i := range targets {
		t := targets[i]
		out := c.CheckOne(ctx, t)
		if out.Up {
			c.Logger.Info("target_up",
				zap.String("url", t.URL),
				zap.Int("status", out.StatusCode),
				zap.Float64("latency_ms", out.LatencyMS),
			)
			continue
		}
		c.Logger.Warn("target_down",
			zap.String("url", t.URL),
			zap.Int("status", out.StatusCode),
			zap.Float64("latency_ms", out.LatencyMS),
			zap.String("reason", out.Message),
		)
		return domain.ProbeResult{Healthy: false, Failing: &t}
	}
	return domain.ProbeResult{Healthy: true}
}
