package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// MessageList renders the contact inbox.
func MessageList(ch Chrome, rows []MessageRow, msg string) templ.Component {
	return dashPage(ch, "Messages", func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>Messages</h1>`)
		buf.WriteString(`<p class="muted">Contact form submissions from the public site.</p>`)
		flash(buf, msg)
		if len(rows) == 0 {
			buf.WriteString(`<p class="muted">No messages yet.</p>`)
			return
		}
		buf.WriteString(`<table><thead><tr><th>From</th><th>Subject</th><th>Received</th><th></th></tr></thead><tbody>`)
		for _, r := range rows {
			buf.WriteString(`<tr><td>` + esc(r.Name) + `<br/><span class="muted">` + esc(r.Email) + `</span></td>`)
			buf.WriteString(`<td><a href="/dashboard/messages/` + esc(r.ID) + `">` + esc(subjectOrDefault(r.Subject)) + `</a>`)
			if !r.Read {
				buf.WriteString(` <span class="badge unread">new</span>`)
			}
			buf.WriteString(`</td>`)
			buf.WriteString(`<td>` + esc(r.Received) + `</td>`)
			buf.WriteString(`<td><form method="post" action="/dashboard/messages/` + esc(r.ID) + `/delete" data-confirm="Delete this message?">`)
			csrfField(buf, ch.Csrf)
			buf.WriteString(`<button class="danger" type="submit">Delete</button></form></td></tr>`)
		}
		buf.WriteString(`</tbody></table>`)
	})
}

// MessageDetail renders one message in full.
func MessageDetail(ch Chrome, m MessageRow) templ.Component {
	return dashPage(ch, "Message", func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>` + esc(subjectOrDefault(m.Subject)) + `</h1>`)
		buf.WriteString(`<p class="muted">From <strong>` + esc(m.Name) + `</strong> (` + esc(m.Email) + `) · ` + esc(m.Received) + `</p>`)
		buf.WriteString(`<div style="white-space:pre-wrap;margin-top:1.5rem">` + esc(m.Body) + `</div>`)
		buf.WriteString(`<form method="post" action="/dashboard/messages/` + esc(m.ID) + `/delete" data-confirm="Delete this message?" style="margin-top:2rem">`)
		csrfField(buf, ch.Csrf)
		buf.WriteString(`<button class="danger" type="submit">Delete</button></form>`)
		buf.WriteString(`<p style="margin-top:1rem"><a href="/dashboard/messages">&larr; Back to messages</a></p>`)
	})
}

func subjectOrDefault(s string) string {
	if s == "" {
		return "(No Subject)"
	}
	return s
}
