package folio

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database and provides row operations for posts,
// messages, users, and uploaded images.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy_timeout so writers wait instead of
	// returning SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL DEFAULT '',
    excerpt TEXT NOT NULL DEFAULT '',
    cover_image_url TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT ',,',
    meta_title TEXT NOT NULL DEFAULT '',
    meta_description TEXT NOT NULL DEFAULT '',
    is_published INTEGER NOT NULL DEFAULT 0,
    published_at TEXT,
    author_id TEXT NOT NULL,
    author_name TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    read INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

const postColumns = `id, created_at, title, slug, content, excerpt, cover_image_url, tags, meta_title, meta_description, is_published, published_at, author_id, author_name`

func scanPost(row interface{ Scan(...any) error }) (Post, error) {
	var p Post
	var createdAt, tags string
	var published int
	var publishedAt sql.NullString
	err := row.Scan(&p.ID, &createdAt, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
		&p.CoverImage, &tags, &p.MetaTitle, &p.MetaDesc, &published, &publishedAt,
		&p.AuthorID, &p.AuthorName)
	if err != nil {
		return Post{}, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.Tags = ParseTags(tags)
	p.Published = published == 1
	if publishedAt.Valid && publishedAt.String != "" {
		p.PublishedAt, _ = time.Parse(time.RFC3339, publishedAt.String)
	}
	return p, nil
}

// insertPostArgs builds the column and value lists for a post INSERT. A blank
// cover image is omitted entirely so the column default applies instead of
// being overwritten with emptiness.
func insertPostArgs(p Post) (cols []string, args []any) {
	cols = []string{"id", "created_at", "title", "slug", "content", "excerpt",
		"tags", "meta_title", "meta_description", "is_published", "published_at",
		"author_id", "author_name"}
	args = []any{p.ID, p.CreatedAt.UTC().Format(time.RFC3339), p.Title, p.Slug,
		p.Content, p.Excerpt, encodeTags(p.Tags), p.MetaTitle, p.MetaDesc,
		boolToInt(p.Published), publishedAtValue(p), p.AuthorID, p.AuthorName}
	if p.CoverImage != "" {
		cols = append(cols, "cover_image_url")
		args = append(args, p.CoverImage)
	}
	return cols, args
}

// CreatePost inserts a new post row.
func (s *Store) CreatePost(p Post) error {
	cols, args := insertPostArgs(p)
	query := fmt.Sprintf(`INSERT INTO posts (%s) VALUES (%s)`,
		strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	_, err := s.db.Exec(query, args...)
	return err
}

// UpdatePost rewrites every editable field of an existing post. Authorship
// and creation time are never re-stamped.
func (s *Store) UpdatePost(p Post) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, slug = ?, content = ?, excerpt = ?,
		cover_image_url = ?, tags = ?, meta_title = ?, meta_description = ?,
		is_published = ?, published_at = ? WHERE id = ?`,
		p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, encodeTags(p.Tags),
		p.MetaTitle, p.MetaDesc, boolToInt(p.Published), publishedAtValue(p), p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// GetPost returns a post by id regardless of published status (for editing).
func (s *Store) GetPost(id string) (Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// GetPublishedBySlug returns a single published post by slug.
func (s *Store) GetPublishedBySlug(slug string) (Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ? AND is_published = 1`, slug)
	return scanPost(row)
}

// ListPosts returns every post, newest created first (for the dashboard).
func (s *Store) ListPosts() ([]Post, error) {
	return s.queryPosts(`SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`)
}

// ListPublished returns published posts ordered by publication date descending.
// If tag is non-empty, results are filtered to posts carrying that tag.
func (s *Store) ListPublished(tag string) ([]Post, error) {
	if tag == "" {
		return s.queryPosts(`SELECT ` + postColumns + ` FROM posts WHERE is_published = 1 ORDER BY published_at DESC`)
	}
	normalized := strings.ToLower(strings.TrimSpace(tag))
	return s.queryPosts(`SELECT `+postColumns+` FROM posts WHERE is_published = 1 AND instr(lower(tags), ',' || ? || ',') > 0 ORDER BY published_at DESC`, normalized)
}

func (s *Store) queryPosts(query string, args ...any) ([]Post, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListTags returns a sorted, deduplicated slice of tags from published posts.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts WHERE is_published = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range ParseTags(tags) {
			set[strings.ToLower(t)] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	var result []string
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

// DeletePost removes a post by id. Deleting an id that no longer exists
// returns ErrNotFound.
func (s *Store) DeletePost(id string) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// InsertMessage stores an inbound contact submission and returns its id.
func (s *Store) InsertMessage(m Message) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO messages (created_at, name, email, subject, body, read) VALUES (?, ?, ?, ?, ?, ?)`,
		m.CreatedAt.UTC().Format(time.RFC3339), m.Name, m.Email, m.Subject, m.Body, boolToInt(m.Read))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListMessages returns every message, newest first.
func (s *Store) ListMessages() ([]Message, error) {
	rows, err := s.db.Query(`SELECT id, created_at, name, email, subject, body, read FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// GetMessage returns a single message by id.
func (s *Store) GetMessage(id int64) (Message, error) {
	row := s.db.QueryRow(`SELECT id, created_at, name, email, subject, body, read FROM messages WHERE id = ?`, id)
	return scanMessage(row)
}

// DeleteMessage removes a message by id, returning ErrNotFound when no row
// matched (e.g. a second delete of the same id).
func (s *Store) DeleteMessage(id int64) error {
	res, err := s.db.Exec(`DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanMessage(row interface{ Scan(...any) error }) (Message, error) {
	var m Message
	var createdAt string
	var read int
	if err := row.Scan(&m.ID, &createdAt, &m.Name, &m.Email, &m.Subject, &m.Body, &read); err != nil {
		return Message{}, err
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.Read = read == 1
	return m, nil
}

// CountStats gathers the dashboard overview counters.
func (s *Store) CountStats() (Stats, error) {
	var st Stats
	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM posts`, &st.TotalPosts},
		{`SELECT COUNT(*) FROM posts WHERE is_published = 1`, &st.PublishedPosts},
		{`SELECT COUNT(*) FROM posts WHERE is_published = 0`, &st.DraftPosts},
		{`SELECT COUNT(*) FROM messages`, &st.TotalMessages},
		{`SELECT COUNT(*) FROM messages WHERE read = 0`, &st.UnreadMessages},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dst); err != nil {
			return Stats{}, err
		}
	}
	return st, nil
}

// GetUserByEmail looks up a user account by email.
func (s *Store) GetUserByEmail(email string) (User, error) {
	var u User
	var createdAt string
	err := s.db.QueryRow(`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email))).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		return User{}, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return u, nil
}

// CreateUser inserts a user account row.
func (s *Store) CreateUser(u User) error {
	_, err := s.db.Exec(`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash,
		u.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// SaveImage stores metadata for an uploaded image.
func (s *Store) SaveImage(img Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns image metadata, newest upload first.
func (s *Store) ListImages() ([]Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImage removes image metadata by filename.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}

// encodeTags normalizes tags to lowercase and wraps them in commas so tag
// filtering can match ",tag," substrings.
func encodeTags(tags []string) string {
	normalized := make([]string, len(tags))
	for i, t := range tags {
		normalized[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func publishedAtValue(p Post) any {
	if !p.Published {
		return nil
	}
	return p.PublishedAt.UTC().Format(time.RFC3339)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
