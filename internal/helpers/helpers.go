package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	EventsFolder = "events"
	UploadTag    = "ecoevent"
)

// TrimID normalizes a path or query id: trims spaces and surrounding quotes
// which clients sometimes send when templating values.
func TrimID(id string) string {
	return strings.Trim(strings.TrimSpace(id), "\"'")
}

func ErrorResponse(message string) map[string]interface{} {
	return map[string]interface{}{"message": message}
}

// CloudinaryUploader stores event thumbnails on Cloudinary. The source may be
// a local path, a remote URL or a base64 data URI.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld, folder: EventsFolder}
}

func (u *CloudinaryUploader) UploadThumbnail(ctx context.Context, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", fmt.Errorf("thumbnail source is empty")
	}

	res, err := u.cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder: u.folder,
		Tags:   []string{UploadTag},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %v", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected thumbnail: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL")
	}
	return res.SecureURL, nil
}
