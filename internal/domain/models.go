package domain

import "time"

// Target is one URL being health-checked. The monitored set is fixed at
// startup; ordering decides which failing target gets reported first.
type Target struct {
	URL string `json:"url"`
}

// ProbeResult is the aggregate outcome of probing every target in one run.
// Failing is nil when all targets answered with a success status.
type ProbeResult struct {
	Healthy bool    `json:"healthy"`
	Failing *Target `json:"failing,omitempty"`
}

// Incident mirrors the tracker's record of an outage. CreatedAt is UTC as
// reported by the tracker; callers must not convert it before duration math.
type Incident struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Open      bool      `json:"open"`
}
