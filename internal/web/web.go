package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the upload page. The page only renders what the session
// API returns.
func Handler() fiber.Handler {
	root, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return filesystem.New(filesystem.Config{
		Root:   http.FS(root),
		Index:  "index.html",
		Browse: false,
	})
}
