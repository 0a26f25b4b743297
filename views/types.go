// Package views holds the templ components for every page of the public
// site and the dashboard.
package views

// SiteConfig holds site-wide settings; every page receives it so nothing
// is hardcoded in templates.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Chrome is the shared scaffolding of a dashboard page: who is signed in,
// the CSRF token for its forms, and which nav item is active.
type Chrome struct {
	Site   SiteConfig
	Email  string
	Csrf   string
	Active string
}

// Stats are the overview counters rendered as cards.
type Stats struct {
	TotalPosts     int
	PublishedPosts int
	DraftPosts     int
	TotalMessages  int
	UnreadMessages int
}

// PostRow is one line of the dashboard post table.
type PostRow struct {
	ID          string
	Title       string
	Slug        string
	Created     string
	Published   bool
	PublishedAt string
}

// PostEditor carries the post form state, including per-field validation
// errors and the slug derivation mode latch.
type PostEditor struct {
	IsNew     bool
	PostID    string
	Published bool

	Title      string
	Slug       string
	Content    string
	Excerpt    string
	CoverImage string
	Tags       string
	MetaTitle  string
	MetaDesc   string
	SlugMode   string

	Errors    map[string]string
	FormError string
}

// MessageRow is one contact message as listed or shown in detail.
type MessageRow struct {
	ID       string
	Received string
	Name     string
	Email    string
	Subject  string
	Body     string
	Read     bool
}

// ImageRow is one uploaded cover image.
type ImageRow struct {
	Filename string
	URL      string
	Width    int
	Height   int
	Size     int
}

// PublicPost is a post shaped for the public pages.
type PublicPost struct {
	Title       string
	Slug        string
	Link        string
	Excerpt     string
	CoverImage  string
	Tags        []string
	Content     string
	MetaTitle   string
	MetaDesc    string
	Author      string
	PublishedAt string
}
