// Package web embeds the single-page client and mounts it on the router.
package web

import (
	"embed"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Register mounts the embedded client at the root. API routes are more
// specific and keep priority over the static catch-all.
func Register(e *echo.Echo) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	e.StaticFS("/", sub)
}
