package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
)

type recordingUploader struct {
	key         string
	contentType string
	body        []byte
}

func (u *recordingUploader) Upload(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	u.key = key
	u.contentType = contentType
	u.body, _ = io.ReadAll(body)
	return "https://cdn.example.com/" + key, nil
}

func fileHeader(t *testing.T, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="photo"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(MaxImageSize); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestUploadMultipartFile(t *testing.T) {
	u := &recordingUploader{}

	url, err := UploadMultipartFile(context.Background(), u, "Ooty", fileHeader(t, "image/png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(u.key, "images/ooty/") || !strings.HasSuffix(u.key, ".png") {
		t.Errorf("unexpected key %q", u.key)
	}
	if u.contentType != "image/png" {
		t.Errorf("content type = %q", u.contentType)
	}
	if string(u.body) != "png-bytes" {
		t.Errorf("body = %q", u.body)
	}
	if url != "https://cdn.example.com/"+u.key {
		t.Errorf("url = %q", url)
	}
}

func TestUploadMultipartFile_RejectsNonImage(t *testing.T) {
	u := &recordingUploader{}

	_, err := UploadMultipartFile(context.Background(), u, "goa", fileHeader(t, "application/pdf", []byte("%PDF")))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
	if u.key != "" {
		t.Fatal("nothing should have been uploaded")
	}
}

func TestImageKey_SanitizesPrefix(t *testing.T) {
	key, err := ImageKey("../../etc", "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(key, "images/etc/") {
		t.Errorf("unexpected key %q", key)
	}

	key, _ = ImageKey("", "image/webp")
	if !strings.HasPrefix(key, "images/misc/") {
		t.Errorf("unexpected key %q", key)
	}
}
