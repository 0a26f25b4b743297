package folio

import (
	"regexp"
	"strings"
)

var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRuns = regexp.MustCompile(`-{2,}`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify derives a URL-safe slug from a title: lowercase, strip everything
// outside letters/digits/spaces/hyphens, collapse whitespace runs to single
// hyphens, and collapse repeated hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether s is a well-formed slug: lowercase letters,
// digits, and single interior hyphens only.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// SlugMode tracks how the slug field of an editing session is being driven.
// The transition to manual is one-way: once the user edits the slug directly,
// title changes never overwrite it again in that session.
type SlugMode int

const (
	// SlugUntouched means neither the title nor the slug has been edited yet.
	SlugUntouched SlugMode = iota
	// SlugAuto means the slug is derived from the title on every title change.
	SlugAuto
	// SlugManual means the user owns the slug; derivation is latched off.
	SlugManual
)

// ParseSlugMode maps the form's hidden slug_mode value to a SlugMode.
func ParseSlugMode(v string) SlugMode {
	switch v {
	case "manual":
		return SlugManual
	case "auto":
		return SlugAuto
	default:
		return SlugUntouched
	}
}

func (m SlugMode) String() string {
	switch m {
	case SlugAuto:
		return "auto"
	case SlugManual:
		return "manual"
	default:
		return "untouched"
	}
}

// SlugTracker is the editing-session state machine behind slug suggestion.
type SlugTracker struct {
	mode SlugMode
	slug string
}

// NewSlugTracker starts a tracker with an existing slug (empty for new posts).
func NewSlugTracker(slug string, mode SlugMode) *SlugTracker {
	return &SlugTracker{mode: mode, slug: slug}
}

// TitleChanged feeds a new title into the tracker. While derivation is active
// the slug follows the title; after a manual edit it never does.
func (t *SlugTracker) TitleChanged(title string) {
	if t.mode == SlugManual {
		return
	}
	t.mode = SlugAuto
	t.slug = Slugify(title)
}

// SlugEdited records a direct user edit of the slug field and latches
// derivation off for the remainder of the session.
func (t *SlugTracker) SlugEdited(slug string) {
	t.mode = SlugManual
	t.slug = strings.TrimSpace(slug)
}

// Slug returns the current slug value.
func (t *SlugTracker) Slug() string { return t.slug }

// Mode returns the current tracker state.
func (t *SlugTracker) Mode() SlugMode { return t.mode }
