package folio

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent tags a post save with the requested publication transition.
type Intent string

const (
	// IntentSave persists field edits and leaves publication state unchanged.
	IntentSave Intent = "save"
	// IntentPublish persists edits and stamps the post published now.
	IntentPublish Intent = "publish"
	// IntentUnpublish persists edits and returns the post to draft.
	IntentUnpublish Intent = "unpublish"
)

// ParseIntent maps the submit button value to an Intent, defaulting to save.
func ParseIntent(v string) Intent {
	switch Intent(v) {
	case IntentPublish, IntentUnpublish:
		return Intent(v)
	default:
		return IntentSave
	}
}

// applyIntent is the single place that computes the publication pair. Keeping
// it in one function is what guarantees Published and PublishedAt can never
// disagree across the save/publish/unpublish paths.
func applyIntent(intent Intent, published bool, publishedAt, now time.Time) (bool, time.Time) {
	switch intent {
	case IntentPublish:
		return true, now
	case IntentUnpublish:
		return false, time.Time{}
	default:
		return published, publishedAt
	}
}

// PostForm carries the raw field values of the post editor. Tags are the
// comma-separated authored representation; everything else maps 1:1 to Post.
type PostForm struct {
	Title      string
	Slug       string
	Content    string
	Excerpt    string
	CoverImage string
	Tags       string
	MetaTitle  string
	MetaDesc   string
	SlugMode   SlugMode
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

// Validate checks the form locally. A non-empty result blocks submission
// without touching the store.
func (f PostForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if len(strings.TrimSpace(f.Title)) < 3 {
		errs["title"] = "Title must be at least 3 characters long."
	}
	slug := strings.TrimSpace(f.Slug)
	if len(slug) < 3 {
		errs["slug"] = "Slug is required."
	} else if !IsValidSlug(slug) {
		errs["slug"] = "Slug must be URL-friendly (e.g. 'my-first-post')."
	}
	if c := strings.TrimSpace(f.Content); c != "" && len(c) < 10 {
		errs["content"] = "Content is too short."
	}
	if cover := strings.TrimSpace(f.CoverImage); cover != "" && !isValidURL(cover) {
		errs["cover_image_url"] = "Please enter a valid URL."
	}
	return errs
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// SplitTags converts the authored comma-separated string into the stored
// ordered list, trimming each element and treating the all-blank case as
// "no tags" rather than a list with one empty string.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags converts the stored list back to the authored representation.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// NewPost builds a fresh draft-or-published post from the form under the
// given intent. Creation requires an authenticated author; without one the
// operation fails locally instead of writing an ownerless record.
func NewPost(f PostForm, intent Intent, authorID, authorName string, now time.Time) (Post, error) {
	if authorID == "" {
		return Post{}, fmt.Errorf("folio: could not identify the author; sign in again")
	}
	published, publishedAt := applyIntent(intent, false, time.Time{}, now)
	return Post{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		Title:       strings.TrimSpace(f.Title),
		Slug:        strings.TrimSpace(f.Slug),
		Content:     f.Content,
		Excerpt:     strings.TrimSpace(f.Excerpt),
		CoverImage:  strings.TrimSpace(f.CoverImage),
		Tags:        SplitTags(f.Tags),
		MetaTitle:   strings.TrimSpace(f.MetaTitle),
		MetaDesc:    strings.TrimSpace(f.MetaDesc),
		Published:   published,
		PublishedAt: publishedAt,
		AuthorID:    authorID,
		AuthorName:  authorName,
	}, nil
}

// ApplyForm folds edited fields and the requested intent into an existing
// post. Authorship and creation time are left alone.
func ApplyForm(p Post, f PostForm, intent Intent, now time.Time) Post {
	p.Title = strings.TrimSpace(f.Title)
	p.Slug = strings.TrimSpace(f.Slug)
	p.Content = f.Content
	p.Excerpt = strings.TrimSpace(f.Excerpt)
	p.CoverImage = strings.TrimSpace(f.CoverImage)
	p.Tags = SplitTags(f.Tags)
	p.MetaTitle = strings.TrimSpace(f.MetaTitle)
	p.MetaDesc = strings.TrimSpace(f.MetaDesc)
	p.Published, p.PublishedAt = applyIntent(intent, p.Published, p.PublishedAt, now)
	return p
}

// FormFromPost loads a stored post into the editing representation.
func FormFromPost(p Post) PostForm {
	return PostForm{
		Title:      p.Title,
		Slug:       p.Slug,
		Content:    p.Content,
		Excerpt:    p.Excerpt,
		CoverImage: p.CoverImage,
		Tags:       JoinTags(p.Tags),
		MetaTitle:  p.MetaTitle,
		MetaDesc:   p.MetaDesc,
		SlugMode:   SlugUntouched,
	}
}
