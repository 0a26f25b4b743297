package folio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mcosta/folio/views"
)

func (a *App) handleMessageList(c echo.Context) error {
	msgs, err := a.Store.ListMessages()
	if err != nil {
		return err
	}
	rows := make([]views.MessageRow, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, messageRow(m))
	}
	return Render(c, views.MessageList(a.chrome(c, "messages"), rows, c.QueryParam("msg")))
}

func (a *App) handleMessageDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	m, err := a.Store.GetMessage(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		}
		return err
	}
	return Render(c, views.MessageDetail(a.chrome(c, "messages"), messageRow(m)))
}

// handleMessageDelete removes a message. Deleting an id that is already gone
// reports the generic failure message; the inbox itself is unaffected.
func (a *App) handleMessageDelete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := a.Store.DeleteMessage(id); err != nil {
		c.Logger().Errorf("delete message %d: %v", id, err)
		return c.Redirect(http.StatusSeeOther, "/dashboard/messages?msg=Could+not+delete+the+message.+Please+try+again.")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard/messages?msg=Message+deleted.")
}

func messageRow(m Message) views.MessageRow {
	return views.MessageRow{
		ID:       strconv.FormatInt(m.ID, 10),
		Received: m.CreatedAt.Format("Jan 2, 2006 15:04"),
		Name:     m.Name,
		Email:    m.Email,
		Subject:  m.Subject,
		Body:     m.Body,
		Read:     m.Read,
	}
}
