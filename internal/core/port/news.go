package port

import (
	"context"
	"errors"

	"campaign-tracker/internal/core/domain"
)

// News provider failure modes surfaced to the API as 502 and 429.
var (
	ErrNewsUnavailable = errors.New("news service temporarily unavailable")
	ErrNewsRateLimited = errors.New("news api rate limit exceeded")
)

// NewsProvider fetches articles from an external news source. An empty
// keyword requests top headlines; otherwise articles matching the keyword.
type NewsProvider interface {
	Fetch(ctx context.Context, keyword string) ([]domain.NewsArticle, error)
}
