package blogfront

import (
	"database/sql"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// snapshot is one load of the published posts. It is never modified after
// it is built, so readers may keep using it after the cache moves on.
type snapshot struct {
	posts  []BlogPost // store order: newest first
	tags   []string
	index  map[string]int
	loaded time.Time
}

func newSnapshot(posts []BlogPost, tags []string) *snapshot {
	s := &snapshot{
		posts:  posts,
		tags:   tags,
		index:  make(map[string]int, len(posts)),
		loaded: time.Now(),
	}
	for i, p := range posts {
		s.index[p.Slug] = i
	}
	return s
}

func (s *snapshot) filter(keep func(BlogPost) bool) []BlogPost {
	var out []BlogPost
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// PostCache keeps published posts and tags in memory for ttl. Writers call
// Invalidate after changing the store.
type PostCache struct {
	store *Store
	ttl   time.Duration

	mu   sync.RWMutex
	snap *snapshot
}

// NewPostCache creates a PostCache backed by s.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

// Invalidate drops the current snapshot; the next read reloads from the store.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

func (c *PostCache) fresh() *snapshot {
	if c.snap != nil && time.Since(c.snap.loaded) < c.ttl {
		return c.snap
	}
	return nil
}

func (c *PostCache) current() (*snapshot, error) {
	c.mu.RLock()
	snap := c.fresh()
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if snap := c.fresh(); snap != nil {
		return snap, nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return nil, err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return nil, err
	}
	c.snap = newSnapshot(posts, tags)
	return c.snap, nil
}

// ListPosts returns published posts, optionally only those tagged tag.
func (c *PostCache) ListPosts(tag string) ([]BlogPost, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return snap.posts, nil
	}
	want := normalizeTag(tag)
	return snap.filter(func(p BlogPost) bool {
		for _, t := range p.Tags {
			if normalizeTag(t) == want {
				return true
			}
		}
		return false
	}), nil
}

// ListByCategory returns published posts in category cat. Matching ignores
// case beyond ASCII, so "Programação" and "PROGRAMAÇÃO" are one category.
func (c *PostCache) ListByCategory(cat string) ([]BlogPost, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.filter(func(p BlogPost) bool { return sameCategory(p.Category, cat) }), nil
}

func sameCategory(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ListTags returns the sorted tags of published posts.
func (c *PostCache) ListTags() ([]string, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.tags, nil
}

// GetPost returns the published post with the given slug.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	snap, err := c.current()
	if err != nil {
		return BlogPost{}, err
	}
	i, ok := snap.index[slug]
	if !ok {
		return BlogPost{}, ErrNotFound
	}
	return snap.posts[i], nil
}

// Adjacent returns the older (Previous) and newer (Next) neighbours of the
// published post with the given slug.
func (c *PostCache) Adjacent(slug string) (Adjacent, error) {
	snap, err := c.current()
	if err != nil {
		return Adjacent{}, err
	}
	i, ok := snap.index[slug]
	if !ok {
		return Adjacent{}, ErrNotFound
	}
	var adj Adjacent
	if i+1 < len(snap.posts) {
		older := snap.posts[i+1]
		adj.Previous = &older
	}
	if i > 0 {
		newer := snap.posts[i-1]
		adj.Next = &newer
	}
	return adj, nil
}
