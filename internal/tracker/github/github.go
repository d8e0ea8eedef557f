package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/skarimo/downwatch/internal/domain"
)

// Store tracks incidents as GitHub issues in a single repository.
type Store struct {
	client *gh.Client
	owner  string
	repo   string
}

func New(ctx context.Context, token, owner, repo string) *Store {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Store{
		client: gh.NewClient(oauth2.NewClient(ctx, ts)),
		owner:  owner,
		repo:   repo,
	}
}

// NewWithClient is used by tests to point the store at a stub API server.
func NewWithClient(client *gh.Client, owner, repo string) *Store {
	return &Store{client: client, owner: owner, repo: repo}
}

func (s *Store) FindOpenByTitle(ctx context.Context, title string) (*domain.Incident, error) {
	opts := &gh.IssueListByRepoOptions{
		State:       "open",
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	for {
		issues, resp, err := s.client.Issues.ListByRepo(ctx, s.owner, s.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list open issues: %w", err)
		}
		for _, is := range issues {
			if is.GetTitle() == title {
				return toIncident(is), nil
			}
		}
		if resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

func (s *Store) Create(ctx context.Context, title, body string) (*domain.Incident, error) {
	is, _, err := s.client.Issues.Create(ctx, s.owner, s.repo, &gh.IssueRequest{
		Title: gh.String(title),
		Body:  gh.String(body),
	})
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return toIncident(is), nil
}

func (s *Store) Comment(ctx context.Context, inc *domain.Incident, text string) error {
	_, _, err := s.client.Issues.CreateComment(ctx, s.owner, s.repo, inc.Number, &gh.IssueComment{
		Body: gh.String(text),
	})
	if err != nil {
		return fmt.Errorf("comment on issue #%d: %w", inc.Number, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context, inc *domain.Incident) error {
	_, _, err := s.client.Issues.Edit(ctx, s.owner, s.repo, inc.Number, &gh.IssueRequest{
		State: gh.String("closed"),
	})
	if err != nil {
		return fmt.Errorf("close issue #%d: %w", inc.Number, err)
	}
	return nil
}

func toIncident(is *gh.Issue) *domain.Incident {
	return &domain.Incident{
		Number:    is.GetNumber(),
		Title:     is.GetTitle(),
		Body:      is.GetBody(),
		CreatedAt: is.GetCreatedAt().Time.UTC(),
		Open:      is.GetState() == "open",
	}
}
