package reconcile

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/domain"
	"github.com/skarimo/downwatch/internal/notify"
	"github.com/skarimo/downwatch/internal/tracker/memory"
)

// ---- test helpers ----

type fakeNotifier struct {
	bodies []string
	result notify.SendResult
}

func (f *fakeNotifier) Send(_ context.Context, body string) notify.SendResult {
	f.bodies = append(f.bodies, body)
	return f.result
}

const testTitle = "Automated Alert: Website is DOWN"

func newEngine(t *testing.T, store *memory.Store, nt *fakeNotifier, now time.Time) *Engine {
	t.Helper()
	e := NewEngine(zap.NewNop(), store, nt, testTitle)
	e.now = func() time.Time { return now }
	return e
}

func failing(url string) domain.ProbeResult {
	return domain.ProbeResult{Healthy: false, Failing: &domain.Target{URL: url}}
}

// ---- tests ----

func TestReconcile_HealthyNoIncident_NoOp(t *testing.T) {
	store := memory.New()
	nt := &fakeNotifier{}
	e := newEngine(t, store, nt, time.Now().UTC())

	if err := e.Reconcile(context.Background(), domain.ProbeResult{Healthy: true}); err != nil {
		t.Fatal(err)
	}
	if len(nt.bodies) != 0 {
		t.Fatalf("want no notification, got %d", len(nt.bodies))
	}
	if inc, _ := store.FindOpenByTitle(context.Background(), testTitle); inc != nil {
		t.Fatalf("want no incident, got #%d", inc.Number)
	}
}

func TestReconcile_UnhealthyNoIncident_OpensAndNotifies(t *testing.T) {
	store := memory.New()
	nt := &fakeNotifier{}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := newEngine(t, store, nt, now)

	if err := e.Reconcile(context.Background(), failing("https://example.com/")); err != nil {
		t.Fatal(err)
	}

	inc, err := store.FindOpenByTitle(context.Background(), testTitle)
	if err != nil || inc == nil {
		t.Fatalf("want one open incident, got %v, %v", inc, err)
	}
	if !strings.Contains(inc.Body, "https://example.com/") {
		t.Fatalf("incident body must name the failing target: %q", inc.Body)
	}
	if !strings.Contains(inc.Body, "2024-06-01 12:00:00 UTC") {
		t.Fatalf("incident body must carry the UTC failure time: %q", inc.Body)
	}

	if len(nt.bodies) != 1 {
		t.Fatalf("want exactly one notification, got %d", len(nt.bodies))
	}
	msg := nt.bodies[0]
	if !strings.Contains(msg, "https://example.com/") {
		t.Fatalf("notification must name the failing target: %q", msg)
	}
	// human-facing timestamp is in the fixed +05:30 zone
	if !strings.Contains(msg, "2024-06-01 17:30:00 IST") {
		t.Fatalf("notification must carry the localized failure time: %q", msg)
	}
}

func TestReconcile_UnhealthyWithOpenIncident_Suppressed(t *testing.T) {
	store := memory.New()
	if _, err := store.Create(context.Background(), testTitle, "down"); err != nil {
		t.Fatal(err)
	}
	nt := &fakeNotifier{}
	e := newEngine(t, store, nt, time.Now().UTC())

	if err := e.Reconcile(context.Background(), failing("https://example.com/")); err != nil {
		t.Fatal(err)
	}
	if len(nt.bodies) != 0 {
		t.Fatalf("repeat alert must be suppressed, got %d sends", len(nt.bodies))
	}
	inc, _ := store.FindOpenByTitle(context.Background(), testTitle)
	if inc == nil {
		t.Fatalf("incident must remain open")
	}
	if got := len(store.Comments(inc.Number)); got != 0 {
		t.Fatalf("want no comments, got %d", got)
	}
}

func TestReconcile_HealthyWithOpenIncident_ClosesAndNotifies(t *testing.T) {
	store := memory.New()
	downAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Now = func() time.Time { return downAt }
	created, err := store.Create(context.Background(), testTitle, "down")
	if err != nil {
		t.Fatal(err)
	}

	nt := &fakeNotifier{}
	upAt := downAt.Add(25*time.Hour + time.Minute + time.Second) // 1d 1h 1m 1s
	e := newEngine(t, store, nt, upAt)

	if err := e.Reconcile(context.Background(), domain.ProbeResult{Healthy: true}); err != nil {
		t.Fatal(err)
	}

	if got := store.Get(created.Number); got == nil || got.Open {
		t.Fatalf("incident must be closed, got %+v", got)
	}
	comments := store.Comments(created.Number)
	if len(comments) != 1 {
		t.Fatalf("want exactly one resolution comment, got %d", len(comments))
	}
	if !strings.Contains(comments[0], "2024-06-02 13:01:01 UTC") {
		t.Fatalf("comment must carry the UTC recovery time: %q", comments[0])
	}

	if len(nt.bodies) != 1 {
		t.Fatalf("want exactly one notification, got %d", len(nt.bodies))
	}
	msg := nt.bodies[0]
	if !strings.Contains(msg, "1d 1h 1m 1s") {
		t.Fatalf("notification must carry the formatted downtime: %q", msg)
	}
	if !strings.Contains(msg, "2024-06-01 17:30:00 IST") {
		t.Fatalf("notification must carry the localized down time: %q", msg)
	}
	if !strings.Contains(msg, "2024-06-02 18:31:01 IST") {
		t.Fatalf("notification must carry the localized recovery time: %q", msg)
	}
}

func TestReconcile_NotificationFailureDoesNotAbort(t *testing.T) {
	store := memory.New()
	nt := &fakeNotifier{result: notify.SendResult{Status: notify.Failed, Err: context.DeadlineExceeded}}
	e := newEngine(t, store, nt, time.Now().UTC())

	if err := e.Reconcile(context.Background(), failing("https://example.com/")); err != nil {
		t.Fatalf("delivery failure must not abort the run: %v", err)
	}
	if inc, _ := store.FindOpenByTitle(context.Background(), testTitle); inc == nil {
		t.Fatalf("incident must still be created when delivery fails")
	}
}

func TestReconcile_LookupIsByExactTitle(t *testing.T) {
	store := memory.New()
	// A differently-titled open issue is invisible to the engine.
	if _, err := store.Create(context.Background(), "some unrelated issue", "x"); err != nil {
		t.Fatal(err)
	}
	nt := &fakeNotifier{}
	e := newEngine(t, store, nt, time.Now().UTC())

	if err := e.Reconcile(context.Background(), failing("https://example.com/")); err != nil {
		t.Fatal(err)
	}
	inc, _ := store.FindOpenByTitle(context.Background(), testTitle)
	if inc == nil {
		t.Fatalf("engine must open a canonical-title incident despite other open issues")
	}
	if len(nt.bodies) != 1 {
		t.Fatalf("want one down notification, got %d", len(nt.bodies))
	}
}
