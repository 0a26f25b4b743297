package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// ImageList renders uploaded cover images with upload and delete controls.
func ImageList(ch Chrome, rows []ImageRow) templ.Component {
	return dashPage(ch, "Images", func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>Images</h1>`)
		buf.WriteString(`<p class="muted">Uploads are resized and re-encoded as JPEG. Copy a URL into a post's cover image field.</p>`)
		buf.WriteString(`<form method="post" action="/dashboard/images/upload" enctype="multipart/form-data">`)
		csrfField(buf, ch.Csrf)
		buf.WriteString(`<label for="image">Upload image</label>`)
		buf.WriteString(`<input id="image" name="image" type="file" accept="image/*" required/>`)
		buf.WriteString(`<button type="submit">Upload</button></form>`)
		if len(rows) == 0 {
			buf.WriteString(`<p class="muted">No images uploaded yet.</p>`)
			return
		}
		buf.WriteString(`<table><thead><tr><th>Preview</th><th>URL</th><th>Dimensions</th><th>Size</th><th></th></tr></thead><tbody>`)
		for _, r := range rows {
			buf.WriteString(`<tr><td><img src="` + esc(r.URL) + `" alt="" style="max-width:120px;border-radius:6px"/></td>`)
			buf.WriteString(`<td><code>` + esc(r.URL) + `</code></td>`)
			buf.WriteString(`<td>` + strconv.Itoa(r.Width) + `×` + strconv.Itoa(r.Height) + `</td>`)
			buf.WriteString(`<td>` + formatSize(r.Size) + `</td>`)
			buf.WriteString(`<td><form method="post" action="/dashboard/images/` + esc(r.Filename) + `/delete" data-confirm="Delete this image?">`)
			csrfField(buf, ch.Csrf)
			buf.WriteString(`<button class="danger" type="submit">Delete</button></form></td></tr>`)
		}
		buf.WriteString(`</tbody></table>`)
	})
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return strconv.Itoa(n>>20) + " MB"
	case n >= 1<<10:
		return strconv.Itoa(n>>10) + " KB"
	default:
		return strconv.Itoa(n) + " B"
	}
}
