package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// PostList renders the dashboard post table.
func PostList(ch Chrome, rows []PostRow, msg string) templ.Component {
	return dashPage(ch, "Blog Posts", func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>Blog Posts</h1>`)
		buf.WriteString(`<p class="muted">Create, edit, and manage all articles.</p>`)
		flash(buf, msg)
		buf.WriteString(`<p><a href="/dashboard/posts/new">+ New post</a></p>`)
		if len(rows) == 0 {
			buf.WriteString(`<p class="muted">No posts yet. Write your first one.</p>`)
			return
		}
		buf.WriteString(`<table><thead><tr><th>Title</th><th>Status</th><th>Created</th><th>Published</th><th></th></tr></thead><tbody>`)
		for _, r := range rows {
			buf.WriteString(`<tr><td><a href="/dashboard/posts/` + esc(r.ID) + `">` + esc(r.Title) + `</a>`)
			buf.WriteString(`<br/><span class="muted">/` + esc(r.Slug) + `</span></td>`)
			if r.Published {
				buf.WriteString(`<td><span class="badge published">Published</span></td>`)
			} else {
				buf.WriteString(`<td><span class="badge draft">Draft</span></td>`)
			}
			buf.WriteString(`<td>` + esc(r.Created) + `</td>`)
			buf.WriteString(`<td>` + esc(r.PublishedAt) + `</td>`)
			buf.WriteString(`<td><form method="post" action="/dashboard/posts/` + esc(r.ID) + `/delete" data-confirm="Delete the post &quot;` + esc(r.Title) + `&quot;?">`)
			csrfField(buf, ch.Csrf)
			buf.WriteString(`<button class="danger" type="submit">Delete</button></form></td></tr>`)
		}
		buf.WriteString(`</tbody></table>`)
	})
}

// PostEditorPage renders the create/edit form. Field errors appear under
// their inputs; a store failure appears once above the buttons with the
// form state intact so the user can retry without re-entering anything.
func PostEditorPage(ch Chrome, ed PostEditor) templ.Component {
	title := "Edit Post"
	action := "/dashboard/posts/" + ed.PostID
	if ed.IsNew {
		title = "Create New Post"
		action = "/dashboard/posts"
	}
	return dashPage(ch, title, func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>` + esc(title) + `</h1>`)
		if !ed.IsNew {
			if ed.Published {
				buf.WriteString(`<p><span class="badge published">Published</span></p>`)
			} else {
				buf.WriteString(`<p><span class="badge draft">Draft</span></p>`)
			}
		}
		buf.WriteString(`<form method="post" action="` + action + `">`)
		csrfField(buf, ch.Csrf)
		buf.WriteString(`<input type="hidden" id="slug_mode" name="slug_mode" value="` + esc(ed.SlugMode) + `"/>`)

		textField(buf, "title", "Title", ed.Title, "Your Amazing Post Title", ed.Errors)
		textField(buf, "slug", "URL Slug", ed.Slug, "your-amazing-post-title", ed.Errors)

		buf.WriteString(`<label for="content">Content (Markdown)</label>`)
		buf.WriteString(`<textarea id="content" name="content" rows="14">` + esc(ed.Content) + `</textarea>`)
		fieldError(buf, "content", ed.Errors)

		buf.WriteString(`<label for="excerpt">Excerpt</label>`)
		buf.WriteString(`<textarea id="excerpt" name="excerpt" rows="3" placeholder="A short, catchy summary for post previews.">` + esc(ed.Excerpt) + `</textarea>`)

		buf.WriteString(`<details style="margin-top:1rem"><summary class="muted">Optional: Cover Image, Tags &amp; SEO</summary>`)
		textField(buf, "cover_image_url", "Cover Image URL", ed.CoverImage, "https://...", ed.Errors)
		textField(buf, "tags", "Tags (comma-separated)", ed.Tags, "art, painting, process", ed.Errors)
		textField(buf, "meta_title", "SEO Title", ed.MetaTitle, "", ed.Errors)
		textField(buf, "meta_description", "SEO Description", ed.MetaDesc, "", ed.Errors)
		buf.WriteString(`</details>`)

		if ed.FormError != "" {
			buf.WriteString(`<div class="flash error">` + esc(ed.FormError) + `</div>`)
		}

		if ed.IsNew || !ed.Published {
			buf.WriteString(`<button type="submit" name="intent" value="save">Save Draft</button> `)
			buf.WriteString(`<button type="submit" name="intent" value="publish">Publish</button>`)
		} else {
			buf.WriteString(`<button type="submit" name="intent" value="save">Save Changes</button> `)
			buf.WriteString(`<button type="submit" name="intent" value="publish">Update &amp; Publish</button> `)
			buf.WriteString(`<button class="secondary" type="submit" name="intent" value="unpublish">Unpublish</button>`)
		}
		buf.WriteString(`</form>`)
		buf.WriteString(`<p style="margin-top:1rem"><a href="/dashboard/posts">&larr; Back to posts</a></p>`)
	})
}

func textField(buf *bytes.Buffer, name, label, value, placeholder string, errs map[string]string) {
	buf.WriteString(`<label for="` + name + `">` + esc(label) + `</label>`)
	buf.WriteString(`<input id="` + name + `" name="` + name + `" value="` + esc(value) + `"`)
	if placeholder != "" {
		buf.WriteString(` placeholder="` + esc(placeholder) + `"`)
	}
	buf.WriteString(`/>`)
	fieldError(buf, name, errs)
}

func fieldError(buf *bytes.Buffer, name string, errs map[string]string) {
	if msg, ok := errs[name]; ok {
		buf.WriteString(`<p class="field-error">` + esc(msg) + `</p>`)
	}
}
