package httpmux

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestMountStaticServesAssets(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	staticFS := fstest.MapFS{
		"stage.css": &fstest.MapFile{Data: []byte("body{}")},
	}
	MountStatic(rootMux, staticFS)

	req := httptest.NewRequest(http.MethodGet, "/static/stage.css", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMountStageRoutesMountsRoot(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	stageMux := http.NewServeMux()
	stageMux.HandleFunc("/roster", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("roster"))
	})

	MountStageRoutes(rootMux, stageMux)

	req := httptest.NewRequest(http.MethodGet, "/roster", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "roster" {
		t.Fatalf("body = %q, want %q", body, "roster")
	}
}

func TestMountNoopsOnNilInputs(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountStatic(nil, fstest.MapFS{})
	MountStatic(rootMux, fs.FS(nil))
	MountStageRoutes(nil, http.NewServeMux())
	MountStageRoutes(rootMux, nil)
}
