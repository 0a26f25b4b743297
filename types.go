package folio

import "time"

// Post is the core content record managed by the dashboard and rendered
// on the public site. A post is a draft until published; Published and
// PublishedAt always agree (both set or both zero).
type Post struct {
	ID          string
	CreatedAt   time.Time
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Tags        []string
	MetaTitle   string
	MetaDesc    string
	Published   bool
	PublishedAt time.Time
	AuthorID    string
	AuthorName  string
}

// Message is an inbound contact submission. The dashboard lists, views,
// and deletes messages; deletion is the only mutation, and the read flag
// only feeds the unread counter.
type Message struct {
	ID        int64
	CreatedAt time.Time
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
}

// User is a dashboard account. Credentials are verified locally against
// the argon2id hash stored here.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Stats are the dashboard overview counters.
type Stats struct {
	TotalPosts     int
	PublishedPosts int
	DraftPosts     int
	TotalMessages  int
	UnreadMessages int
}

// Image is metadata for an uploaded cover image.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}
