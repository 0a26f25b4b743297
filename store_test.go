package folio

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPost(id, slug string) Post {
	return Post{
		ID:         id,
		CreatedAt:  time.Now(),
		Title:      "Test Post",
		Slug:       slug,
		Content:    "Some markdown content.",
		Excerpt:    "A summary",
		Tags:       []string{"go", "testing"},
		AuthorID:   "author-1",
		AuthorName: "Ana",
	}
}

func TestCreateAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	p := testPost("p1", "test-post")
	p.CoverImage = "https://example.com/cover.jpg"
	p.MetaTitle = "SEO Title"
	if err := s.CreatePost(p); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	got, err := s.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != p.Title || got.Slug != p.Slug || got.Content != p.Content {
		t.Errorf("got %+v, want fields of %+v", got, p)
	}
	if got.CoverImage != p.CoverImage {
		t.Errorf("CoverImage = %q, want %q", got.CoverImage, p.CoverImage)
	}
	if got.MetaTitle != "SEO Title" {
		t.Errorf("MetaTitle = %q", got.MetaTitle)
	}
	if !reflect.DeepEqual(got.Tags, []string{"go", "testing"}) {
		t.Errorf("Tags = %v, want [go testing]", got.Tags)
	}
	if got.Published || !got.PublishedAt.IsZero() {
		t.Errorf("new post should be an unpublished draft, got %+v", got)
	}
	if got.AuthorID != "author-1" {
		t.Errorf("AuthorID = %q", got.AuthorID)
	}
}

func TestInsertOmitsBlankCoverImage(t *testing.T) {
	cols, _ := insertPostArgs(testPost("p1", "test-post"))
	for _, col := range cols {
		if col == "cover_image_url" {
			t.Fatal("blank cover image must be omitted from the insert column list")
		}
	}

	withCover := testPost("p2", "with-cover")
	withCover.CoverImage = "https://example.com/c.jpg"
	cols, _ = insertPostArgs(withCover)
	found := false
	for _, col := range cols {
		if col == "cover_image_url" {
			found = true
		}
	}
	if !found {
		t.Fatal("non-blank cover image must be written on insert")
	}
}

func TestUpdatePost(t *testing.T) {
	s := setupTestStore(t)
	p := testPost("p1", "original")
	if err := s.CreatePost(p); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	p.Title = "Updated Title"
	p.Slug = "updated-title"
	p.Published = true
	p.PublishedAt = time.Now()
	if err := s.UpdatePost(p); err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}

	got, err := s.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Updated Title" || !got.Published || got.PublishedAt.IsZero() {
		t.Errorf("update not persisted: %+v", got)
	}

	missing := testPost("nope", "nope")
	if err := s.UpdatePost(missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("updating a missing post = %v, want ErrNotFound", err)
	}
}

func TestDeletePostTwice(t *testing.T) {
	s := setupTestStore(t)
	if err := s.CreatePost(testPost("p1", "doomed")); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if err := s.DeletePost("p1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := s.DeletePost("p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestListPublishedFiltersAndOrders(t *testing.T) {
	s := setupTestStore(t)

	older := testPost("p1", "older")
	older.Published = true
	older.PublishedAt = time.Now().Add(-48 * time.Hour)
	older.Tags = []string{"go"}

	newer := testPost("p2", "newer")
	newer.Published = true
	newer.PublishedAt = time.Now()
	newer.Tags = []string{"art"}

	draft := testPost("p3", "draft")

	for _, p := range []Post{older, newer, draft} {
		if err := s.CreatePost(p); err != nil {
			t.Fatalf("CreatePost %s failed: %v", p.ID, err)
		}
	}

	posts, err := s.ListPublished("")
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d published posts, want 2", len(posts))
	}
	if posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Errorf("order = [%s %s], want newest first", posts[0].Slug, posts[1].Slug)
	}

	tagged, err := s.ListPublished("GO")
	if err != nil {
		t.Fatalf("ListPublished(tag) failed: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Slug != "older" {
		t.Errorf("tag filter returned %v", tagged)
	}

	if _, err := s.GetPublishedBySlug("draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft should not be reachable by public slug lookup, got %v", err)
	}
}

func TestCountStats(t *testing.T) {
	s := setupTestStore(t)

	published := testPost("p1", "pub")
	published.Published = true
	published.PublishedAt = time.Now()
	if err := s.CreatePost(published); err != nil {
		t.Fatal(err)
	}
	if err := s.CreatePost(testPost("p2", "draft")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.InsertMessage(Message{CreatedAt: time.Now(), Name: "N", Email: "n@example.com", Body: "hi"}); err != nil {
		t.Fatal(err)
	}

	stats, err := s.CountStats()
	if err != nil {
		t.Fatalf("CountStats failed: %v", err)
	}
	want := Stats{TotalPosts: 2, PublishedPosts: 1, DraftPosts: 1, TotalMessages: 1, UnreadMessages: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestMessageLifecycle(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.InsertMessage(Message{
		CreatedAt: time.Now(),
		Name:      "Visitor",
		Email:     "visitor@example.com",
		Subject:   "Hello",
		Body:      "Love the work.",
	})
	if err != nil {
		t.Fatalf("InsertMessage failed: %v", err)
	}

	msgs, err := s.ListMessages()
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != id || msgs[0].Read {
		t.Fatalf("messages = %+v", msgs)
	}

	got, err := s.GetMessage(id)
	if err != nil || got.Subject != "Hello" {
		t.Fatalf("GetMessage = %+v, %v", got, err)
	}

	if err := s.DeleteMessage(id); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := s.DeleteMessage(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := setupTestStore(t)
	if err := s.EnsureAdmin("admin@example.com", "correct horse battery"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	// Seeding again is a no-op.
	if err := s.EnsureAdmin("admin@example.com", "different password"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}

	u, err := s.Authenticate("admin@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if u.Email != "admin@example.com" || u.ID == "" {
		t.Fatalf("user = %+v", u)
	}

	if _, err := s.Authenticate("admin@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password = %v, want ErrBadCredentials", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "whatever"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown email = %v, want ErrBadCredentials", err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-value")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	ok, err := CheckPassword("s3cret-value", hash)
	if err != nil || !ok {
		t.Fatalf("CheckPassword = %v, %v; want match", ok, err)
	}
	ok, err = CheckPassword("other-value", hash)
	if err != nil || ok {
		t.Fatalf("CheckPassword with wrong password = %v, %v; want no match", ok, err)
	}
}
