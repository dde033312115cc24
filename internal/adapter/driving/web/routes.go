package web

import (
	"io/fs"
	"net/http"
	"strings"
)

// RegisterRoutes registers all site routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*; any
// other unmatched GET falls through to the public directory.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /range", h.Range)
	mux.HandleFunc("GET /register", h.Register)
	mux.HandleFunc("GET /contact", h.Contact)

	// Generated images.
	mux.HandleFunc("GET /og/hero.png", h.HeroPoster)
	mux.HandleFunc("GET /img", h.ResizedImage)

	// Public directory (/products/, /brands/, /icons/, /logo.svg, ...).
	mux.Handle("GET /", publicFileServer(h.public))
}

// publicFileServer serves files from fsys without directory listings.
func publicFileServer(fsys fs.FS) http.Handler {
	files := http.FileServerFS(fsys)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
