package folio

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mcosta/folio/views"
)

const loginWindow = time.Minute

func (a *App) handleLoginForm(c echo.Context) error {
	// Already signed in: straight to the dashboard, as the login view
	// should never show over a live session.
	if _, ok := a.currentSession(c); ok {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return Render(c, views.Login(a.siteConfig(), "", CsrfToken(c)))
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	user, err := a.Store.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			a.loginLimiter.Record(c.RealIP())
			return RenderStatus(c, http.StatusUnauthorized,
				views.Login(a.siteConfig(), "Invalid email or password.", CsrfToken(c)))
		}
		return err
	}

	s := a.Hub.Issue(user.ID, user.Email)
	if err := a.setSessionCookie(c, s); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// handleLogout revokes the session at the hub. Watchers (open dashboard
// pages) are notified and navigate away on their own; this request just
// drops the cookie and lands back on the login view.
func (a *App) handleLogout(c echo.Context) error {
	if s, ok := a.currentSession(c); ok {
		a.Hub.Revoke(s.Token)
	}
	if err := a.clearSessionCookie(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.SiteName,
		URL:         a.Config.SiteURL,
		Description: a.Config.SiteDescription,
		Author:      a.Config.SiteAuthor,
	}
}
