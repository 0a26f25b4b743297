package folio

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mcosta/folio/views"
)

func (a *App) handlePostList(c echo.Context) error {
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	rows := make([]views.PostRow, 0, len(posts))
	for _, p := range posts {
		row := views.PostRow{
			ID:        p.ID,
			Title:     p.Title,
			Slug:      p.Slug,
			Created:   p.CreatedAt.Format("Jan 2, 2006"),
			Published: p.Published,
		}
		if p.Published {
			row.PublishedAt = p.PublishedAt.Format("Jan 2, 2006")
		}
		rows = append(rows, row)
	}
	return Render(c, views.PostList(a.chrome(c, "posts"), rows, c.QueryParam("msg")))
}

func (a *App) handlePostNew(c echo.Context) error {
	return Render(c, views.PostEditorPage(a.chrome(c, "posts"), views.PostEditor{
		IsNew:    true,
		SlugMode: SlugUntouched.String(),
	}))
}

func (a *App) handlePostCreate(c echo.Context) error {
	form, err := a.postFormFromRequest(c)
	if err != nil {
		return err
	}
	intent := ParseIntent(c.FormValue("intent"))

	editor := editorFromForm(form, true, "", false)
	if errs := form.Validate(); len(errs) > 0 {
		editor.Errors = errs
		return Render(c, views.PostEditorPage(a.chrome(c, "posts"), editor))
	}

	s := guardedSession(c)
	post, err := NewPost(form, intent, s.UserID, a.authorName(s.Email), time.Now())
	if err != nil {
		// No author identity: fail locally, keep the form intact.
		editor.FormError = "Could not identify the author. Please try logging in again."
		return Render(c, views.PostEditorPage(a.chrome(c, "posts"), editor))
	}
	if err := a.Store.CreatePost(post); err != nil {
		c.Logger().Errorf("create post: %v", err)
		editor.FormError = "Failed to create post. Please try again."
		return Render(c, views.PostEditorPage(a.chrome(c, "posts"), editor))
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/dashboard/posts?msg=Post+created.")
}

func (a *App) handlePostEdit(c echo.Context) error {
	post, err := a.Store.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		}
		return err
	}
	form := FormFromPost(post)
	editor := editorFromForm(form, false, post.ID, post.Published)
	return Render(c, views.PostEditorPage(a.chrome(c, "posts"), editor))
}

func (a *App) handlePostUpdate(c echo.Context) error {
	post, err := a.Store.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		}
		return err
	}
	form, err := a.postFormFromRequest(c)
	if err != nil {
		return err
	}
	intent := ParseIntent(c.FormValue("intent"))

	editor := editorFromForm(form, false, post.ID, post.Published)
	if errs := form.Validate(); len(errs) > 0 {
		editor.Errors = errs
		return Render(c, views.PostEditorPage(a.chrome(c, "posts"), editor))
	}

	updated := ApplyForm(post, form, intent, time.Now())
	if err := a.Store.UpdatePost(updated); err != nil {
		c.Logger().Errorf("update post %s: %v", post.ID, err)
		editor.FormError = "Failed to update post. Please try again."
		return Render(c, views.PostEditorPage(a.chrome(c, "posts"), editor))
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/dashboard/posts?msg=Post+updated.")
}

func (a *App) handlePostDelete(c echo.Context) error {
	if err := a.Store.DeletePost(c.Param("id")); err != nil {
		c.Logger().Errorf("delete post %s: %v", c.Param("id"), err)
		return c.Redirect(http.StatusSeeOther, "/dashboard/posts?msg=Could+not+delete+the+post.+Please+try+again.")
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/dashboard/posts?msg=Post+deleted.")
}

// handleSuggestSlug derives a slug from the title for the editor's
// live suggestion. The client stops calling it once the slug field has been
// edited by hand.
func (a *App) handleSuggestSlug(c echo.Context) error {
	return c.String(http.StatusOK, Slugify(c.QueryParam("title")))
}

func (a *App) postFormFromRequest(c echo.Context) (PostForm, error) {
	if err := c.Request().ParseForm(); err != nil {
		return PostForm{}, err
	}
	form := PostForm{
		Title:      c.FormValue("title"),
		Slug:       strings.TrimSpace(c.FormValue("slug")),
		Content:    c.FormValue("content"),
		Excerpt:    c.FormValue("excerpt"),
		CoverImage: c.FormValue("cover_image_url"),
		Tags:       c.FormValue("tags"),
		MetaTitle:  c.FormValue("meta_title"),
		MetaDesc:   c.FormValue("meta_description"),
		SlugMode:   ParseSlugMode(c.FormValue("slug_mode")),
	}
	// Unless the user has taken the slug over, it follows the title.
	if form.SlugMode != SlugManual && form.Slug == "" {
		form.Slug = Slugify(form.Title)
	}
	return form, nil
}

func (a *App) authorName(email string) string {
	if a.Config.SiteAuthor != "" {
		return a.Config.SiteAuthor
	}
	return email
}

func editorFromForm(f PostForm, isNew bool, postID string, published bool) views.PostEditor {
	return views.PostEditor{
		IsNew:      isNew,
		PostID:     postID,
		Published:  published,
		Title:      f.Title,
		Slug:       f.Slug,
		Content:    f.Content,
		Excerpt:    f.Excerpt,
		CoverImage: f.CoverImage,
		Tags:       f.Tags,
		MetaTitle:  f.MetaTitle,
		MetaDesc:   f.MetaDesc,
		SlugMode:   f.SlugMode.String(),
	}
}
