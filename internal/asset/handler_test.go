package asset

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
)

func upload(t *testing.T, h *Handler, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="pic.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(body)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/assets/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)
	return rec
}

func TestUploadAndServe(t *testing.T) {
	h, err := NewHandler(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	rec := upload(t, h, "image/png", buf.Bytes())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var got Image
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Width != 40 || got.Height != 30 || got.Name != "pic.png" || !strings.HasPrefix(got.ID, "img_") {
		t.Errorf("image = %+v", got)
	}

	srec := httptest.NewRecorder()
	h.Serve().ServeHTTP(srec, httptest.NewRequest(http.MethodGet, got.URL, nil))
	if srec.Code != http.StatusOK || srec.Header().Get("Cache-Control") == "" {
		t.Errorf("serve status = %d, cache = %q", srec.Code, srec.Header().Get("Cache-Control"))
	}
}

func TestUploadRejects(t *testing.T) {
	h, err := NewHandler(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if rec := upload(t, h, "image/gif", []byte("GIF89a")); rec.Code != http.StatusBadRequest {
		t.Errorf("gif status = %d, want 400", rec.Code)
	}
	if rec := upload(t, h, "image/png", []byte("not a png")); rec.Code != http.StatusBadRequest {
		t.Errorf("garbage status = %d, want 400", rec.Code)
	}
}
