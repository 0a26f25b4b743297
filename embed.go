package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// dashboard.js (slug suggestion + session event listener) and folio.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
