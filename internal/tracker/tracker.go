package tracker

import (
	"context"

	"github.com/skarimo/downwatch/internal/domain"
)

// Tracker is the port onto the external issue tracker. The exact-title lookup
// is deliberately the only correlation mechanism; a label or tag scheme could
// replace it behind this interface without touching reconciliation.
type Tracker interface {
	// FindOpenByTitle returns nil, nil when no open incident carries the title.
	FindOpenByTitle(ctx context.Context, title string) (*domain.Incident, error)
	Create(ctx context.Context, title, body string) (*domain.Incident, error)
	Comment(ctx context.Context, inc *domain.Incident, text string) error
	Close(ctx context.Context, inc *domain.Incident) error
}
