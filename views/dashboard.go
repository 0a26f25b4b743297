package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// Dashboard renders the overview page with its stat cards.
func Dashboard(ch Chrome, stats Stats) templ.Component {
	return dashPage(ch, "Overview", func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>Overview</h1>`)
		buf.WriteString(`<p class="muted">A quick look at your content and inbox.</p>`)
		buf.WriteString(`<div class="stats">`)
		statCard(buf, "Total Posts", stats.TotalPosts)
		statCard(buf, "Published", stats.PublishedPosts)
		statCard(buf, "Drafts", stats.DraftPosts)
		statCard(buf, "Messages", stats.TotalMessages)
		statCard(buf, "Unread", stats.UnreadMessages)
		buf.WriteString(`</div>`)
		buf.WriteString(`<p style="margin-top:2rem"><a href="/dashboard/posts/new">+ New post</a> · <a href="/dashboard/messages">View messages</a></p>`)
	})
}

func statCard(buf *bytes.Buffer, title string, value int) {
	buf.WriteString(`<div class="card"><p class="muted">` + esc(title) + `</p>`)
	buf.WriteString(`<p class="value">` + strconv.Itoa(value) + `</p></div>`)
}
