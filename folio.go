// Package folio is a self-hosted portfolio dashboard and publishing engine
// built with Go, Echo, and templ. It serves a public blog (home, post pages,
// RSS, sitemap, contact form) and a session-guarded dashboard for managing
// posts, the contact-message inbox, and cover images.
package folio

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcosta/folio/sessionhub"
)

// App wires together the store, cache, session hub, handlers, and middleware.
type App struct {
	Config *Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Hub    *sessionhub.Hub

	loginLimiter *LoginLimiter
	staticDir    string
}

// New creates an App with the given configuration.
func New(cfg *Config) *App {
	return &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
}

// Start initializes the database, cache, session hub, middleware, and routes,
// then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	if err := store.EnsureAdmin(a.Config.AdminEmail, a.Config.AdminPassword); err != nil {
		return fmt.Errorf("folio: seed admin: %w", err)
	}

	a.Cache = NewPostCache(store, a.Config.PostCacheTTL)
	a.Hub = sessionhub.New(a.Config.SessionTTL)
	a.loginLimiter = NewLoginLimiter(5, loginWindow)

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets fall through to the user's static dir.
	e.GET("/public/dashboard.js", a.handleEmbeddedAsset)
	e.GET("/public/folio.css", a.handleEmbeddedAsset)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public site
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug", a.handlePost)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/contact", a.handleContactForm)
	e.POST("/contact", a.handleContactSubmit)

	// Authentication
	e.GET("/login", a.handleLoginForm)
	e.POST("/login", a.handleLogin)
	e.POST("/logout", a.handleLogout)

	// Dashboard, session-guarded end to end
	d := e.Group("/dashboard", a.requireSession)
	d.GET("", a.handleDashboard)
	d.GET("/events", a.handleSessionEvents)
	d.GET("/posts", a.handlePostList)
	d.GET("/posts/new", a.handlePostNew)
	d.POST("/posts", a.handlePostCreate)
	d.GET("/posts/suggest-slug", a.handleSuggestSlug)
	d.GET("/posts/:id", a.handlePostEdit)
	d.POST("/posts/:id", a.handlePostUpdate)
	d.POST("/posts/:id/delete", a.handlePostDelete)
	d.GET("/messages", a.handleMessageList)
	d.GET("/messages/:id", a.handleMessageDetail)
	d.POST("/messages/:id/delete", a.handleMessageDelete)
	d.GET("/images", a.handleImageList)
	d.POST("/images/upload", a.handleImageUpload)
	d.POST("/images/:filename/delete", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
