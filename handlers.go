package folio

import (
	"errors"
	"net/http"
	"net/mail"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mcosta/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPublished(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.siteConfig(), publicPosts(posts), tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		}
		return err
	}
	return Render(c, views.PostPage(a.siteConfig(), publicPost(post)))
}

func (a *App) handleContactForm(c echo.Context) error {
	return Render(c, views.Contact(a.siteConfig(), CsrfToken(c), false, ""))
}

// handleContactSubmit is the public producer of the message inbox.
func (a *App) handleContactSubmit(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	subject := strings.TrimSpace(c.FormValue("subject"))
	body := strings.TrimSpace(c.FormValue("message"))

	if name == "" || body == "" || !validEmail(email) {
		return Render(c, views.Contact(a.siteConfig(), CsrfToken(c), false,
			"Please fill in your name, a valid email address, and a message."))
	}
	if _, err := a.Store.InsertMessage(Message{
		CreatedAt: time.Now(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
	}); err != nil {
		c.Logger().Errorf("insert message: %v", err)
		return Render(c, views.Contact(a.siteConfig(), CsrfToken(c), false,
			"Something went wrong sending your message. Please try again."))
	}
	return Render(c, views.Contact(a.siteConfig(), CsrfToken(c), true, ""))
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

// handleEmbeddedAsset serves the framework's own JS/CSS from the binary.
func (a *App) handleEmbeddedAsset(c echo.Context) error {
	name := path.Base(c.Request().URL.Path)
	data, err := EmbeddedAssets.ReadFile("embedded/" + name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	switch path.Ext(name) {
	case ".js":
		return c.Blob(http.StatusOK, "application/javascript; charset=utf-8", data)
	case ".css":
		return c.Blob(http.StatusOK, "text/css; charset=utf-8", data)
	default:
		return c.Blob(http.StatusOK, "application/octet-stream", data)
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func publicPosts(posts []Post) []views.PublicPost {
	out := make([]views.PublicPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, publicPost(p))
	}
	return out
}

func publicPost(p Post) views.PublicPost {
	v := views.PublicPost{
		Title:      p.Title,
		Slug:       p.Slug,
		Link:       "/blog/" + p.Slug,
		Excerpt:    p.Excerpt,
		CoverImage: p.CoverImage,
		Tags:       p.Tags,
		Content:    p.Content,
		MetaTitle:  p.MetaTitle,
		MetaDesc:   p.MetaDesc,
		Author:     p.AuthorName,
	}
	if p.Published {
		v.PublishedAt = p.PublishedAt.Format("January 2, 2006")
	}
	return v
}
