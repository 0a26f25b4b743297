package folio

import (
	"reflect"
	"testing"
	"time"
)

func TestPublicationPairAlwaysAgrees(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	form := PostForm{Title: "A Valid Title", Slug: "a-valid-title"}

	draft, err := NewPost(form, IntentSave, "author-1", "Author", now)
	if err != nil {
		t.Fatalf("NewPost: %v", err)
	}
	if draft.Published || !draft.PublishedAt.IsZero() {
		t.Fatalf("save on new post: published=%v publishedAt=%v, want draft with zero timestamp",
			draft.Published, draft.PublishedAt)
	}

	published := ApplyForm(draft, form, IntentPublish, now)
	if !published.Published || published.PublishedAt.IsZero() {
		t.Fatalf("publish: published=%v publishedAt=%v, want both set",
			published.Published, published.PublishedAt)
	}
	if !published.PublishedAt.Equal(now) {
		t.Fatalf("publish stamped %v, want %v", published.PublishedAt, now)
	}

	// Save must leave the pair untouched.
	saved := ApplyForm(published, form, IntentSave, now.Add(time.Hour))
	if !saved.Published || !saved.PublishedAt.Equal(now) {
		t.Fatalf("save changed publication state: published=%v publishedAt=%v",
			saved.Published, saved.PublishedAt)
	}

	unpublished := ApplyForm(published, form, IntentUnpublish, now.Add(2*time.Hour))
	if unpublished.Published || !unpublished.PublishedAt.IsZero() {
		t.Fatalf("unpublish: published=%v publishedAt=%v, want both cleared",
			unpublished.Published, unpublished.PublishedAt)
	}
}

func TestUnpublishClearsTimestampAlongsideFieldEdits(t *testing.T) {
	now := time.Now()
	post := Post{
		ID:          "p1",
		Title:       "Old Title",
		Slug:        "old-title",
		Published:   true,
		PublishedAt: now.Add(-24 * time.Hour),
	}
	edited := PostForm{Title: "New Title", Slug: "new-title", Tags: "art, process"}
	got := ApplyForm(post, edited, IntentUnpublish, now)

	if got.Published || !got.PublishedAt.IsZero() {
		t.Fatalf("unpublish with edits: published=%v publishedAt=%v", got.Published, got.PublishedAt)
	}
	if got.Title != "New Title" || got.Slug != "new-title" {
		t.Fatalf("field edits lost: title=%q slug=%q", got.Title, got.Slug)
	}
	if !reflect.DeepEqual(got.Tags, []string{"art", "process"}) {
		t.Fatalf("tags = %v, want [art process]", got.Tags)
	}
}

func TestNewPostRequiresAuthor(t *testing.T) {
	form := PostForm{Title: "A Valid Title", Slug: "a-valid-title"}
	if _, err := NewPost(form, IntentPublish, "", "", time.Now()); err == nil {
		t.Fatal("expected error when author id is missing")
	}
}

func TestEditNeverRestampsAuthorship(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	post := Post{ID: "p1", CreatedAt: created, AuthorID: "author-1", AuthorName: "Ana"}
	got := ApplyForm(post, PostForm{Title: "Title", Slug: "title"}, IntentSave, time.Now())
	if got.AuthorID != "author-1" || got.AuthorName != "Ana" || !got.CreatedAt.Equal(created) {
		t.Fatalf("authorship or creation time changed: %+v", got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	lists := [][]string{
		{"go", "web", "sqlite"},
		{"one"},
		{"with space inside", "another tag"},
		nil,
	}
	for _, tags := range lists {
		got := SplitTags(JoinTags(tags))
		if !reflect.DeepEqual(got, tags) {
			t.Errorf("round trip of %v = %v", tags, got)
		}
	}
}

func TestSplitTagsDropsEmptyElements(t *testing.T) {
	if got := SplitTags("  ,  , "); got != nil {
		t.Fatalf("SplitTags of blanks = %v, want nil", got)
	}
	got := SplitTags(" a, , b ,")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("SplitTags = %v, want [a b]", got)
	}
}

func TestValidateBlocksBadFields(t *testing.T) {
	cases := []struct {
		name  string
		form  PostForm
		field string
	}{
		{"short title", PostForm{Title: "ab", Slug: "valid-slug"}, "title"},
		{"short slug", PostForm{Title: "A Valid Title", Slug: "ab"}, "slug"},
		{"bad slug pattern", PostForm{Title: "A Valid Title", Slug: "Bad Slug!"}, "slug"},
		{"short content", PostForm{Title: "A Valid Title", Slug: "valid-slug", Content: "short"}, "content"},
		{"bad cover url", PostForm{Title: "A Valid Title", Slug: "valid-slug", CoverImage: "not a url"}, "cover_image_url"},
	}
	for _, tc := range cases {
		errs := tc.form.Validate()
		if _, ok := errs[tc.field]; !ok {
			t.Errorf("%s: expected error on %q, got %v", tc.name, tc.field, errs)
		}
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	form := PostForm{
		Title:      "My First Post",
		Slug:       "my-first-post",
		Content:    "Long enough content here.",
		CoverImage: "https://example.com/cover.jpg",
		Tags:       "art, paint",
	}
	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	// Blank optional fields are fine too.
	minimal := PostForm{Title: "My First Post", Slug: "my-first-post"}
	if errs := minimal.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors on minimal form: %v", errs)
	}
}

func TestFormFromPostJoinsTags(t *testing.T) {
	form := FormFromPost(Post{Tags: []string{"go", "web"}})
	if form.Tags != "go, web" {
		t.Fatalf("Tags = %q, want %q", form.Tags, "go, web")
	}
}
