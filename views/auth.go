package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// Login renders the credential form. errMsg is shown as a single message
// above the submit button; the form never hints which part was wrong.
func Login(cfg SiteConfig, errMsg, csrf string) templ.Component {
	return page(cfg, "Dashboard Login · "+cfg.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="wrap" style="max-width:28rem">`)
		buf.WriteString(`<h1>Dashboard Login</h1>`)
		buf.WriteString(`<p class="muted">Access your content management panel.</p>`)
		buf.WriteString(`<form method="post" action="/login">`)
		csrfField(buf, csrf)
		buf.WriteString(`<label for="email">Email address</label>`)
		buf.WriteString(`<input id="email" name="email" type="email" autocomplete="email" required placeholder="you@example.com"/>`)
		buf.WriteString(`<label for="password">Password</label>`)
		buf.WriteString(`<input id="password" name="password" type="password" autocomplete="current-password" required/>`)
		if errMsg != "" {
			buf.WriteString(`<div class="flash error">` + esc(errMsg) + `</div>`)
		}
		buf.WriteString(`<button type="submit">Sign In</button>`)
		buf.WriteString(`</form>`)
		buf.WriteString(`<p class="muted" style="margin-top:2rem">This is a restricted area. <a href="/">Go to the site</a>.</p>`)
		buf.WriteString(`</div>`)
	})
}
