package store

import (
	"strings"

	"github.com/samber/lo"
)

// SearchPosts returns the posts whose title or body contains the query,
// case-insensitively. An empty query returns the whole feed. This is a
// pure read: results keep the collection's newest-first order and are
// never re-ranked.
func (s *Store) SearchPosts(query string) []Post {
	posts := s.Posts()
	q := strings.ToLower(query)
	if q == "" {
		return posts
	}
	return lo.Filter(posts, func(p Post, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Body), q)
	})
}
