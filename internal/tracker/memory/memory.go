package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skarimo/downwatch/internal/domain"
)

// Store is an in-memory tracker used by tests and dry runs.
type Store struct {
	mu        sync.Mutex
	next      int
	incidents map[int]*domain.Incident
	comments  map[int][]string

	// Now lets tests pin creation timestamps.
	Now func() time.Time
}

func New() *Store {
	return &Store{
		next:      1,
		incidents: make(map[int]*domain.Incident),
		comments:  make(map[int][]string),
		Now:       time.Now,
	}
}

func (s *Store) FindOpenByTitle(ctx context.Context, title string) (*domain.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inc := range s.incidents {
		if inc.Open && inc.Title == title {
			cp := *inc
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) Create(ctx context.Context, title, body string) (*domain.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc := &domain.Incident{
		Number:    s.next,
		Title:     title,
		Body:      body,
		CreatedAt: s.Now().UTC(),
		Open:      true,
	}
	s.next++
	s.incidents[inc.Number] = inc
	cp := *inc
	return &cp, nil
}

func (s *Store) Comment(ctx context.Context, inc *domain.Incident, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incidents[inc.Number]; !ok {
		return fmt.Errorf("no incident #%d", inc.Number)
	}
	s.comments[inc.Number] = append(s.comments[inc.Number], text)
	return nil
}

func (s *Store) Close(ctx context.Context, inc *domain.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	got, ok := s.incidents[inc.Number]
	if !ok {
		return fmt.Errorf("no incident #%d", inc.Number)
	}
	got.Open = false
	return nil
}

// Comments returns the comment log for an incident, oldest first.
func (s *Store) Comments(number int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.comments[number]))
	copy(out, s.comments[number])
	return out
}

// Get returns a snapshot of an incident, or nil.
func (s *Store) Get(number int) *domain.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc, ok := s.incidents[number]
	if !ok {
		return nil
	}
	cp := *inc
	return &cp
}
