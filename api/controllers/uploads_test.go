package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campuscare/campuscare-backend/pkg/storage/local"
)

func TestServeUploadSuccess(t *testing.T) {
	store, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	stored, err := store.Save("leak.jpg", strings.NewReader("jpegdata"))
	if err != nil {
		t.Fatalf("save upload: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+stored, nil)
	req = addRouteParam(req, "filename", stored)
	resp := httptest.NewRecorder()
	ServeUpload(store, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Body.String() != "jpegdata" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestServeUploadUnknownFile(t *testing.T) {
	store, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/uploads/missing.jpg", nil)
	req = addRouteParam(req, "filename", "missing.jpg")
	resp := httptest.NewRecorder()
	ServeUpload(store, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestServeUploadRejectsTraversal(t *testing.T) {
	store, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	for _, name := range []string{"../secret.txt", ".hidden", "a/b.jpg"} {
		req := httptest.NewRequest(http.MethodGet, "/uploads/x", nil)
		req = addRouteParam(req, "filename", name)
		resp := httptest.NewRecorder()
		ServeUpload(store, testLogger())(resp, req)

		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %q, got %d", name, resp.Code)
		}
	}
}
