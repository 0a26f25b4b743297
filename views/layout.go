package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func esc(s string) string { return html.EscapeString(s) }

// page wraps a body-writing function in the shared HTML shell.
func page(cfg SiteConfig, title string, body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		buf.WriteString(`<title>` + esc(title) + `</title>`)
		if cfg.Description != "" {
			buf.WriteString(`<meta name="description" content="` + esc(cfg.Description) + `"/>`)
		}
		buf.WriteString(`<link rel="stylesheet" href="/public/folio.css"/>`)
		buf.WriteString(`</head><body>`)
		body(&buf)
		buf.WriteString(`</body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// dashPage wraps body in the dashboard shell: sidebar nav, signed-in email,
// sign-out form, and the dashboard script.
func dashPage(ch Chrome, title string, body func(*bytes.Buffer)) templ.Component {
	return page(ch.Site, title+" · "+ch.Site.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="dash"><nav>`)
		buf.WriteString(`<h2 style="padding:0 1.5rem">` + esc(ch.Site.Name) + `</h2>`)
		navLink(buf, ch, "overview", "/dashboard", "Overview")
		navLink(buf, ch, "posts", "/dashboard/posts", "Blog Posts")
		navLink(buf, ch, "messages", "/dashboard/messages", "Messages")
		navLink(buf, ch, "images", "/dashboard/images", "Images")
		buf.WriteString(`<div style="padding:1.5rem"><p class="muted">` + esc(ch.Email) + `</p>`)
		buf.WriteString(`<form method="post" action="/logout">`)
		csrfField(buf, ch.Csrf)
		buf.WriteString(`<button class="secondary" type="submit">Sign Out</button></form></div>`)
		buf.WriteString(`</nav><main>`)
		body(buf)
		buf.WriteString(`</main></div>`)
		buf.WriteString(`<script src="/public/dashboard.js"></script>`)
	})
}

func navLink(buf *bytes.Buffer, ch Chrome, key, href, label string) {
	class := ""
	if ch.Active == key {
		class = ` class="active"`
	}
	buf.WriteString(`<a href="` + href + `"` + class + `>` + esc(label) + `</a>`)
}

func csrfField(buf *bytes.Buffer, token string) {
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(token) + `"/>`)
}

func flash(buf *bytes.Buffer, msg string) {
	if msg == "" {
		return
	}
	class := "flash"
	if containsFailure(msg) {
		class = "flash error"
	}
	buf.WriteString(`<div class="` + class + `">` + esc(msg) + `</div>`)
}

func containsFailure(msg string) bool {
	for _, word := range []string{"Could not", "Failed", "not delete", "try again"} {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return page(cfg, "Not Found · "+cfg.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="wrap"><h1>404</h1><p>That page does not exist.</p><p><a href="/">Back home</a></p></div>`)
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return page(cfg, "Error · "+cfg.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="wrap"><h1>Something went wrong</h1><p>Please try again in a moment.</p></div>`)
	})
}
