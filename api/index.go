package api

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/evilsocket/islazy/log"
)

//go:embed static
var static embed.FS

func staticHandler() http.Handler {
	root, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(root)))
}

// GET /
func (api *API) Index(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		log.Error("error reading index page: %v", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
