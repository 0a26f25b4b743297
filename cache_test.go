package folio

import (
	"errors"
	"testing"
	"time"
)

func setupTestCache(t *testing.T) (*PostCache, *Store) {
	t.Helper()
	s := setupTestStore(t)
	return NewPostCache(s, time.Hour), s
}

func publishedPost(id, slug string, tags []string) Post {
	p := testPost(id, slug)
	p.Tags = tags
	p.Published = true
	p.PublishedAt = time.Now()
	return p
}

func TestCacheServesPublishedPosts(t *testing.T) {
	c, s := setupTestCache(t)
	if err := s.CreatePost(publishedPost("p1", "hello", []string{"go"})); err != nil {
		t.Fatal(err)
	}
	if err := s.CreatePost(testPost("p2", "draft")); err != nil {
		t.Fatal(err)
	}

	posts, err := c.ListPublished("")
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hello" {
		t.Fatalf("posts = %+v", posts)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c, s := setupTestCache(t)
	if err := s.CreatePost(publishedPost("p1", "first", nil)); err != nil {
		t.Fatal(err)
	}

	if _, err := c.ListPublished(""); err != nil {
		t.Fatal(err)
	}

	// A write behind the cache is not visible until invalidation.
	if err := s.CreatePost(publishedPost("p2", "second", nil)); err != nil {
		t.Fatal(err)
	}
	posts, err := c.ListPublished("")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("stale read returned %d posts, want 1", len(posts))
	}

	c.Invalidate()
	posts, err = c.ListPublished("")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("after invalidate got %d posts, want 2", len(posts))
	}
}

func TestCacheTagFilterIsCaseInsensitive(t *testing.T) {
	c, s := setupTestCache(t)
	if err := s.CreatePost(publishedPost("p1", "go-post", []string{"go"})); err != nil {
		t.Fatal(err)
	}
	if err := s.CreatePost(publishedPost("p2", "art-post", []string{"art"})); err != nil {
		t.Fatal(err)
	}

	posts, err := c.ListPublished("GO")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Slug != "go-post" {
		t.Fatalf("filtered posts = %+v", posts)
	}

	tags, err := c.ListTags()
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 {
		t.Fatalf("tags = %v", tags)
	}
}

func TestCacheGetBySlug(t *testing.T) {
	c, s := setupTestCache(t)
	if err := s.CreatePost(publishedPost("p1", "findable", nil)); err != nil {
		t.Fatal(err)
	}

	p, err := c.GetBySlug("findable")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if p.ID != "p1" {
		t.Errorf("post = %+v", p)
	}

	if _, err := c.GetBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing slug = %v, want ErrNotFound", err)
	}
}
