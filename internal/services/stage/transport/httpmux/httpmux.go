// Package httpmux wires the stage service's route groups into a root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	routepath "github.com/tenchairs/stage/internal/services/stage/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS) {
	if rootMux == nil || staticFS == nil {
		return
	}
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS))))
}

// MountStageRoutes mounts stage application routes under the root path.
func MountStageRoutes(rootMux *http.ServeMux, stageMux *http.ServeMux) {
	if rootMux == nil || stageMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, stageMux)
}
