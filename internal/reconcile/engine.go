package reconcile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/domain"
	"github.com/skarimo/downwatch/internal/notify"
	"github.com/skarimo/downwatch/internal/tracker"
)

// Engine compares one probe result against the tracker and applies at most
// one transition. All state lives in the tracker; the engine caches nothing
// across runs.
type Engine struct {
	Logger   *zap.Logger
	Tracker  tracker.Tracker
	Notifier notify.Notifier
	Title    string

	now func() time.Time
}

func NewEngine(logger *zap.Logger, tr tracker.Tracker, n notify.Notifier, title string) *Engine {
	return &Engine{
		Logger:   logger,
		Tracker:  tr,
		Notifier: n,
		Title:    title,
		now:      time.Now,
	}
}

// Reconcile drives the transition table:
//
//	healthy   + open incident  -> comment, close, "recovered" notification
//	healthy   + no incident    -> nothing
//	unhealthy + no incident    -> create incident, "down" notification
//	unhealthy + open incident  -> log only, no repeat alert
//
// Tracker errors propagate and abort the run. Notification outcomes never do:
// the mutation already happened and must stand.
func (e *Engine) Reconcile(ctx context.Context, pr domain.ProbeResult) error {
	inc, err := e.Tracker.FindOpenByTitle(ctx, e.Title)
	if err != nil {
		return err
	}

	switch {
	case pr.Healthy && inc == nil:
		e.Logger.Info("steady_healthy")
		return nil

	case pr.Healthy:
		return e.resolve(ctx, inc)

	case inc == nil:
		return e.open(ctx, pr.Failing)

	default:
		e.Logger.Info("incident_still_open",
			zap.Int("number", inc.Number),
			zap.String("url", pr.Failing.URL),
		)
		return nil
	}
}

func (e *Engine) resolve(ctx context.Context, inc *domain.Incident) error {
	upAt := e.now().UTC()
	downtime := FormatDowntime(upAt.Sub(inc.CreatedAt).Seconds())

	comment := fmt.Sprintf("Resolved: The website came back online at %s.", utcStamp(upAt))
	if err := e.Tracker.Comment(ctx, inc, comment); err != nil {
		return err
	}
	if err := e.Tracker.Close(ctx, inc); err != nil {
		return err
	}
	e.Logger.Info("incident_closed",
		zap.Int("number", inc.Number),
		zap.String("downtime", downtime),
	)

	body := fmt.Sprintf(
		"✅ *Server is UP!* ✅\n\n"+
			"Status: *Back Online*\n\n"+
			"Went down at: _%s_\n"+
			"Recovered at: _%s_\n"+
			"Total Downtime: _%s_",
		localStamp(inc.CreatedAt), localStamp(upAt), downtime,
	)
	res := e.Notifier.Send(ctx, body)
	e.Logger.Info("recovery_notification", zap.String("status", res.Status.String()))
	return nil
}

func (e *Engine) open(ctx context.Context, failing *domain.Target) error {
	downAt := e.now().UTC()

	issueBody := fmt.Sprintf(
		"The monitor detected that %s went down at %s. "+
			"This issue will be closed automatically when the site comes back up.",
		failing.URL, utcStamp(downAt),
	)
	inc, err := e.Tracker.Create(ctx, e.Title, issueBody)
	if err != nil {
		return err
	}
	e.Logger.Info("incident_opened",
		zap.Int("number", inc.Number),
		zap.String("url", failing.URL),
	)

	body := fmt.Sprintf(
		"🚨 *Server is DOWN!* 🚨\n\n"+
			"Website: %s\n"+
			"Status: *Not Responding*\n\n"+
			"Time of failure: _%s_",
		failing.URL, localStamp(downAt),
	)
	res := e.Notifier.Send(ctx, body)
	e.Logger.Info("down_notification", zap.String("status", res.Status.String()))
	return nil
}
