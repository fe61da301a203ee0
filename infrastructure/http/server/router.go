package server

import (
	"log/slog"
	"net/http"
	"os"
	"path"
)

// Registrar mounts its routes on a mux.
type Registrar interface {
	Register(mux *http.ServeMux)
}

// NewRouter mounts every registrar and serves the static directories at /.
func NewRouter(log *slog.Logger, staticDirs []string, registrars ...Registrar) *http.ServeMux {
	mux := http.NewServeMux()
	for _, registrar := range registrars {
		registrar.Register(mux)
	}
	mux.Handle("GET /", NewStaticHandler(log, staticDirs))
	return mux
}

// StaticHandler serves files from several roots, the first root holding the
// requested path wins.
type StaticHandler struct {
	roots []http.Dir
}

func NewStaticHandler(log *slog.Logger, dirs []string) *StaticHandler {
	var roots []http.Dir
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Warn("Static directory skipped", "dir", dir)
			continue
		}
		roots = append(roots, http.Dir(dir))
	}
	return &StaticHandler{roots: roots}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	for _, root := range h.roots {
		f, err := root.Open(name)
		if err != nil {
			continue
		}
		_ = f.Close()
		http.FileServer(root).ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}
