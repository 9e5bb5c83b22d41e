package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20

var (
	ErrUnsupportedImage = errors.New("only jpeg, png and webp images are allowed")
	ErrImageTooLarge    = errors.New("image exceeds 5MB")
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Uploader is satisfied by *R2Client.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ImageKey builds a unique object key under prefix for the given content type.
func ImageKey(prefix, contentType string) (string, error) {
	ext, ok := imageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedImage
	}
	return path.Join("images", sanitize(prefix), uuid.New().String()+ext), nil
}

// UploadMultipartFile uploads a multipart image and returns its public URL.
func UploadMultipartFile(
	ctx context.Context,
	uploader Uploader,
	prefix string,
	file *multipart.FileHeader,
) (string, error) {

	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	contentType := file.Header.Get("Content-Type")

	key, err := ImageKey(prefix, contentType)
	if err != nil {
		return "", fmt.Errorf("%w (got %q)", err, contentType)
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return uploader.Upload(ctx, key, f, contentType)
}

func sanitize(prefix string) string {
	p := strings.ToLower(strings.TrimSpace(filepath.Base(prefix)))
	if p == "" || p == "." || p == "/" {
		return "misc"
	}
	return p
}
