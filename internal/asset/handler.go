package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/inamate/inamate/editor-go/internal/typeid"
)

const maxUploadSize = 10 << 20 // 10MB

// Image describes a stored image. Width and Height are the intrinsic size an
// image entity is created with.
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name"`
}

// Handler stores images that image entities use as their source.
type Handler struct {
	dir string // directory to store image files
}

// NewHandler creates a new asset handler that stores files in dir.
func NewHandler(dir string) (*Handler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}
	return &Handler{dir: dir}, nil
}

var (
	ErrMissingFile     = errors.New("missing file field")
	ErrUnsupportedType = errors.New("only PNG and JPEG images are supported")
)

// Upload stores the image in the "file" field of a multipart POST and
// answers with its Image record.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	img, name, err := decodeUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.save(img, name)
	if err != nil {
		slog.Error("save image", "error", err)
		http.Error(w, "failed to save file", http.StatusInternalServerError)
		return
	}
	slog.Info("image stored", "id", stored.ID, "width", stored.Width, "height", stored.Height)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stored)
}

// decodeUpload reads and decodes the uploaded image, returning it with the
// client's file name.
func decodeUpload(r *http.Request) (image.Image, string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", fmt.Errorf("read upload (max %d MB): %w", maxUploadSize>>20, err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", ErrMissingFile
	}
	defer file.Close()

	switch ct := header.Header.Get("Content-Type"); {
	case strings.HasPrefix(ct, "image/png"), strings.HasPrefix(ct, "image/jpeg"):
	default:
		return nil, "", fmt.Errorf("%q: %w", ct, ErrUnsupportedType)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("invalid image: %w", err)
	}
	return img, header.Filename, nil
}

// save re-encodes img as PNG under a fresh id.
func (h *Handler) save(img image.Image, name string) (*Image, error) {
	id := typeid.NewAssetID()
	filename := id + ".png"
	path := filepath.Join(h.dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", filename, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("encode png: %w", err)
	}

	size := img.Bounds().Size()
	return &Image{
		ID:     id,
		URL:    "/assets/" + filename,
		Width:  size.X,
		Height: size.Y,
		Name:   name,
	}, nil
}

// Serve returns an http.Handler that serves stored images with caching headers.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.StripPrefix("/assets/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Asset IDs are unique, so files are immutable
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		fs.ServeHTTP(w, r)
	}))
}
