package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/models"
)

const defaultUploadName = "upload"

// UploadFile implements [ServerAdapter]. It POSTs a multipart form with the
// fields "file" and "path" to /upload. No JSON content type is sent; the
// multipart boundary header is set by the transport.
func (h *httpServerAdapter) UploadFile(ctx context.Context, file models.FileUpload, path string) (models.UploadResult, error) {
	return h.upload(ctx, "/upload", file, map[string]string{"path": path},
		models.AllowedVideoTypes, models.AllowedImageTypes, models.AllowedDocumentTypes)
}

func (h *httpServerAdapter) UploadVideo(ctx context.Context, file models.FileUpload) (models.UploadResult, error) {
	return h.upload(ctx, "/upload/video", file, nil, models.AllowedVideoTypes)
}

func (h *httpServerAdapter) UploadDocument(ctx context.Context, file models.FileUpload) (models.UploadResult, error) {
	return h.upload(ctx, "/upload/document", file, nil, models.AllowedDocumentTypes)
}

func (h *httpServerAdapter) upload(ctx context.Context, endpoint string, file models.FileUpload, fields map[string]string, allowed ...[]string) (models.UploadResult, error) {
	var out models.UploadResult

	if !h.features.Uploads {
		return out, fmt.Errorf("%w: %s", ErrFeatureDisabled, config.FeatureUploads)
	}

	contentType, err := checkUpload(file, allowed...)
	if err != nil {
		return out, err
	}

	name := file.Name
	if name == "" {
		name = defaultUploadName
	}

	req := h.newRequest(ctx, nil, false).
		SetMultipartField("file", filepath.Base(name), contentType, newLimitedReader(file.Reader, models.MaxUploadSize))
	if len(fields) > 0 {
		req.SetMultipartFormData(fields)
	}

	raw, err := h.execute(req, http.MethodPost, endpoint)
	if err != nil {
		return out, err
	}
	if err = h.decode(ctx, raw, &out); err != nil {
		return out, fmt.Errorf("%s %s: %w", http.MethodPost, endpoint, err)
	}
	return out, nil
}

// checkUpload applies the size and type limits and returns the media type to
// send. A missing content type is guessed from the file extension.
func checkUpload(file models.FileUpload, allowed ...[]string) (string, error) {
	if file.Reader == nil {
		return "", fmt.Errorf("%w: no file content", ErrUploadRejected)
	}
	if file.Size > models.MaxUploadSize {
		return "", fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrUploadRejected, file.Size, models.MaxUploadSize)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(file.Name))
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	if !models.IsAllowedType(contentType, allowed...) {
		return "", fmt.Errorf("%w: content type %q is not allowed", ErrUploadRejected, contentType)
	}
	return contentType, nil
}

// limitedReader fails once more than remaining bytes have been read, for
// readers whose size was not declared up front.
type limitedReader struct {
	r         io.Reader
	limit     int64
	remaining int64
}

func newLimitedReader(r io.Reader, limit int64) *limitedReader {
	return &limitedReader{r: r, limit: limit, remaining: limit}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, fmt.Errorf("%w: file exceeds the %d byte limit", ErrUploadRejected, l.limit)
	}
	return n, err
}
