package faq

import "context"

// Fetcher loads the current FAQ collection on behalf of a bearer token.
type Fetcher interface {
	FetchFAQs(ctx context.Context, token string) (Collection, error)
}
