package folio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mcosta/folio/sessionhub"
	"github.com/mcosta/folio/views"
)

func (a *App) handleDashboard(c echo.Context) error {
	stats, err := a.Store.CountStats()
	if err != nil {
		return err
	}
	return Render(c, views.Dashboard(a.chrome(c, "overview"), views.Stats{
		TotalPosts:     stats.TotalPosts,
		PublishedPosts: stats.PublishedPosts,
		DraftPosts:     stats.DraftPosts,
		TotalMessages:  stats.TotalMessages,
		UnreadMessages: stats.UnreadMessages,
	}))
}

// handleSessionEvents streams session-change notifications to the open
// dashboard page over SSE. The hub subscription lives exactly as long as the
// request: the context cancels it on every exit path, so a closed tab never
// leaks a watcher.
func (a *App) handleSessionEvents(c echo.Context) error {
	s := guardedSession(c)
	events, cancel := a.Hub.Watch(s.Token)
	defer cancel()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			// A closed channel and an explicit SignedOut mean the same
			// thing: the session is gone and the page must leave.
			if !ok || ev.Kind == sessionhub.SignedOut {
				fmt.Fprint(w, "event: signed-out\ndata: {}\n\n")
				w.Flush()
				return nil
			}
			fmt.Fprintf(w, "event: session\ndata: %s\n\n", ev.Session.Email)
			w.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			w.Flush()
		}
	}
}

// chrome assembles the shared dashboard page scaffolding for the current
// request: site config, the guarded session's email, CSRF token, and which
// nav item is active.
func (a *App) chrome(c echo.Context, active string) views.Chrome {
	return views.Chrome{
		Site:   a.siteConfig(),
		Email:  guardedSession(c).Email,
		Csrf:   CsrfToken(c),
		Active: active,
	}
}
