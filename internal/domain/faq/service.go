package faq

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/luan-api/pkg/errors"
)

// Service exposes FAQ search and greeting capabilities.
type Service interface {
	Search(ctx context.Context, token, query string) (SearchResponse, error)
	Greet(ctx context.Context, token string) (Greeting, error)
}

type service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService wires up the FAQ domain.
func NewService(fetcher Fetcher, logger *slog.Logger) Service {
	return &service{
		fetcher: fetcher,
		logger:  logger.With("component", "faq.service"),
	}
}

func (s *service) Search(ctx context.Context, token, query string) (SearchResponse, error) {
	data, err := s.load(ctx, token)
	if err != nil {
		return SearchResponse{}, err
	}

	matches := HandleSearch(query, data)
	s.logger.Debug("faq search completed", "records", len(data), "matches", len(matches))
	if len(matches) == 0 {
		return SearchResponse{Message: NoMatchesMessage}, nil
	}
	return SearchResponse{Results: matches}, nil
}

func (s *service) Greet(ctx context.Context, token string) (Greeting, error) {
	data, err := s.load(ctx, token)
	if err != nil {
		return Greeting{}, err
	}
	return BuildGreeting(data), nil
}

func (s *service) load(ctx context.Context, token string) (Collection, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.Wrap(apperrors.CodeUnauthorized, "missing authorization token", nil)
	}
	data, err := s.fetcher.FetchFAQs(ctx, token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstream, "could not load FAQ data", err)
	}
	return data, nil
}
