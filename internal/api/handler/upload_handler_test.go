package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func multipartUpload(t *testing.T, filename string, content []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestUploadHandler_AcceptsPNG(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir)
	e := echo.New()

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	req, rec := multipartUpload(t, "plan.png", content)

	if err := handler.Upload(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.HasPrefix(resp["url"], "/uploads/") {
		t.Errorf("url = %q", resp["url"])
	}
	if !strings.HasSuffix(resp["filename"], ".png") {
		t.Errorf("filename = %q, want .png suffix", resp["filename"])
	}

	stored, err := os.ReadFile(filepath.Join(dir, resp["filename"]))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if !bytes.Equal(stored, content) {
		t.Error("stored bytes differ from upload")
	}
}

// The content type comes from sniffing the payload; a .png name on a text
// file does not help.
func TestUploadHandler_RejectsNonImage(t *testing.T) {
	handler := NewUploadHandler(t.TempDir())
	e := echo.New()

	req, rec := multipartUpload(t, "notes.png", []byte("just some text pretending to be an image"))
	err := handler.Upload(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUploadName(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+-[0-9a-f]{8}\.png$`)

	first := uploadName(".png")
	if !pattern.MatchString(first) {
		t.Fatalf("uploadName = %q, want timestamp-hex.png", first)
	}
	if second := uploadName(".png"); second == first {
		t.Fatalf("consecutive names collided: %q", first)
	}
}

func TestUploadHandler_RejectsMissingFile(t *testing.T) {
	handler := NewUploadHandler(t.TempDir())
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Upload(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
