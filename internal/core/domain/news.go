package domain

// NewsArticle is an externally sourced, read-only article surfaced on the
// trends page. It is never persisted by this system.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}
