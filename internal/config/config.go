package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skarimo/downwatch/internal/domain"
)

// Fixed configuration. Not env-driven: the monitored set, the messaging
// addresses and the incident title are part of the deployment, and the title
// doubles as the correlation key against the tracker.
const (
	IncidentTitle = "Automated Alert: Website is DOWN"

	SenderAddress    = "whatsapp:+14155238886"
	RecipientAddress = "whatsapp:+918886160680"
)

func defaultTargets() []domain.Target {
	return []domain.Target{
		{URL: "https://www.apollohospitals.com/"},
	}
}

// Monitor is the immutable configuration for one poll-and-reconcile run.
type Monitor struct {
	GitHubToken string
	RepoOwner   string
	RepoName    string

	TwilioAccountSID string
	TwilioAuthToken  string
	Sender           string
	Recipient        string

	Targets      []domain.Target
	Title        string
	ProbeTimeout time.Duration
	LogDir       string
}

// Relay is the configuration for the webhook relay server. The tracker is not
// involved in push mode, so no token is required.
type Relay struct {
	Addr    string
	APIKeys []string

	TwilioAccountSID string
	TwilioAuthToken  string
	Sender           string
	Recipient        string

	LogDir string
}

// HasMessaging reports whether delivery credentials are present. Absence is a
// soft precondition: the run still reconciles, only delivery is skipped.
func (m Monitor) HasMessaging() bool {
	return m.TwilioAccountSID != "" && m.TwilioAuthToken != ""
}

// LoadMonitor builds the polling-mode configuration from the process env.
// A missing tracker token or repository is fatal: the error is returned before
// any component is constructed and the run must not proceed.
func LoadMonitor() (Monitor, error) {
	token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	if token == "" {
		return Monitor{}, errors.New("GITHUB_TOKEN not set; the monitor must run with a tracker credential")
	}

	repoFull := strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY"))
	owner, name, ok := strings.Cut(repoFull, "/")
	if !ok || owner == "" || name == "" {
		return Monitor{}, fmt.Errorf("GITHUB_REPOSITORY %q is not in owner/name form", repoFull)
	}

	return Monitor{
		GitHubToken:      token,
		RepoOwner:        owner,
		RepoName:         name,
		TwilioAccountSID: strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:  strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		Sender:           SenderAddress,
		Recipient:        RecipientAddress,
		Targets:          defaultTargets(),
		Title:            IncidentTitle,
		ProbeTimeout:     10 * time.Second,
		LogDir:           logDir(),
	}, nil
}

// LoadRelay builds the push-mode configuration. Nothing is fatal here:
// missing messaging credentials surface as failed deliveries (HTTP 500).
func LoadRelay() Relay {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	var keys []string
	if raw := strings.TrimSpace(os.Getenv("RELAY_API_KEYS")); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	return Relay{
		Addr:             addr,
		APIKeys:          keys,
		TwilioAccountSID: strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:  strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		Sender:           SenderAddress,
		Recipient:        RecipientAddress,
		LogDir:           logDir(),
	}
}

func logDir() string {
	if d := os.Getenv("LOG_DIR"); d != "" {
		return d
	}
	return "logs"
}
