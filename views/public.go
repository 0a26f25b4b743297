package views

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/a-h/templ"

	"github.com/mcosta/folio/markdown"
)

// Home renders the public blog index, optionally filtered by tag.
func Home(cfg SiteConfig, posts []PublicPost, activeTag string, tags []string) templ.Component {
	return page(cfg, cfg.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="wrap">`)
		buf.WriteString(`<h1>` + esc(cfg.Name) + `</h1>`)
		if cfg.Description != "" {
			buf.WriteString(`<p class="muted">` + esc(cfg.Description) + `</p>`)
		}
		buf.WriteString(`<p><a href="/contact">Contact</a> · <a href="/feed.xml">RSS</a></p>`)
		if len(tags) > 0 {
			buf.WriteString(`<p>`)
			for _, t := range tags {
				label := esc(t)
				if t == activeTag {
					buf.WriteString(`<a class="tag" href="/" aria-current="true"><strong>` + label + `</strong></a>`)
				} else {
					buf.WriteString(`<a class="tag" href="/?tag=` + url.QueryEscape(t) + `">` + label + `</a>`)
				}
			}
			buf.WriteString(`</p>`)
		}
		if len(posts) == 0 {
			buf.WriteString(`<p class="muted">Nothing published yet.</p>`)
		}
		for _, p := range posts {
			buf.WriteString(`<article style="margin:2rem 0">`)
			buf.WriteString(`<h2><a href="` + esc(p.Link) + `">` + esc(p.Title) + `</a></h2>`)
			buf.WriteString(`<p class="muted">` + esc(p.PublishedAt) + `</p>`)
			if p.Excerpt != "" {
				buf.WriteString(`<p>` + esc(p.Excerpt) + `</p>`)
			}
			buf.WriteString(`</article>`)
		}
		buf.WriteString(`</div>`)
	})
}

// PostPage renders a single published post with its markdown content.
func PostPage(cfg SiteConfig, p PublicPost) templ.Component {
	title := p.MetaTitle
	if title == "" {
		title = p.Title
	}
	return page(cfg, title+" · "+cfg.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="wrap"><article>`)
		buf.WriteString(`<p><a href="/">&larr; ` + esc(cfg.Name) + `</a></p>`)
		buf.WriteString(`<h1>` + esc(p.Title) + `</h1>`)
		buf.WriteString(`<p class="muted">` + esc(p.PublishedAt))
		if p.Author != "" {
			buf.WriteString(` · ` + esc(p.Author))
		}
		buf.WriteString(`</p>`)
		if p.CoverImage != "" {
			buf.WriteString(`<img src="` + esc(p.CoverImage) + `" alt="` + esc(p.Title) + `"/>`)
		}
		html, err := markdown.Render(p.Content)
		if err == nil {
			buf.Write(html)
		}
		if len(p.Tags) > 0 {
			buf.WriteString(`<p>`)
			for _, t := range p.Tags {
				buf.WriteString(`<a class="tag" href="/?tag=` + url.QueryEscape(t) + `">` + esc(t) + `</a>`)
			}
			buf.WriteString(`</p>`)
		}
		buf.WriteString(`<script type="application/ld+json">` + blogPostingJsonLD(cfg, p) + `</script>`)
		buf.WriteString(`</article></div>`)
	})
}

// Contact renders the public contact form; sent switches to the thank-you
// state, errMsg shows a single dismissable failure above the form.
func Contact(cfg SiteConfig, csrf string, sent bool, errMsg string) templ.Component {
	return page(cfg, "Contact · "+cfg.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="wrap" style="max-width:36rem">`)
		buf.WriteString(`<h1>Contact</h1>`)
		if sent {
			buf.WriteString(`<div class="flash">Thanks for your message! I will get back to you soon.</div>`)
			buf.WriteString(`<p><a href="/">&larr; Back home</a></p></div>`)
			return
		}
		if errMsg != "" {
			buf.WriteString(`<div class="flash error">` + esc(errMsg) + `</div>`)
		}
		buf.WriteString(`<form method="post" action="/contact">`)
		csrfField(buf, csrf)
		buf.WriteString(`<label for="name">Name</label><input id="name" name="name" required/>`)
		buf.WriteString(`<label for="email">Email</label><input id="email" name="email" type="email" required/>`)
		buf.WriteString(`<label for="subject">Subject (optional)</label><input id="subject" name="subject"/>`)
		buf.WriteString(`<label for="message">Message</label><textarea id="message" name="message" rows="6" required></textarea>`)
		buf.WriteString(`<button type="submit">Send</button></form></div>`)
	})
}

// blogPostingJsonLD produces a Schema.org BlogPosting block for a post.
func blogPostingJsonLD(cfg SiteConfig, p PublicPost) string {
	postURL := cfg.URL + p.Link
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    p.Title,
		"description": p.Excerpt,
		"url":         postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if p.PublishedAt != "" {
		data["datePublished"] = p.PublishedAt
	}
	if p.Author != "" {
		data["author"] = map[string]string{"@type": "Person", "name": p.Author}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{"@type": "Organization", "name": cfg.Name}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
