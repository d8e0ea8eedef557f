package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// displayZone is a fixed +05:30 offset, not a tzdb zone. The target region
// observes no DST; retargeting to a region that does would need a real
// timezone lookup here.
var displayZone = time.FixedZone("IST", 5*3600+30*60)

// FormatDowntime renders an elapsed duration as "1d 2h 3m 4s". Zero-valued
// leading units are omitted; seconds are always present.
func FormatDowntime(durationSeconds float64) string {
	seconds := int(durationSeconds)
	days := seconds / 86400
	rem := seconds % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds = rem % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	fmt.Fprintf(&b, "%ds", seconds)
	return strings.TrimSpace(b.String())
}

// localStamp renders a UTC instant for human-facing messages.
func localStamp(t time.Time) string {
	return t.In(displayZone).Format("2006-01-02 15:04:05 MST")
}

// utcStamp renders a UTC instant for tracker bodies and comments.
func utcStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}
