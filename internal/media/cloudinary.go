package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader pushes images to Cloudinary. It is optional at runtime: when
// credentials are missing the server starts without upload endpoints.
type Uploader struct {
	client *cloudinary.Cloudinary
}

func NewUploader(cloudName string, apiKey string, apiSecret string) (*Uploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &Uploader{client: client}, nil
}

// UploadAvatar stores a user's avatar, overwriting the previous one,
// and returns the public URL.
func (up *Uploader) UploadAvatar(ctx context.Context, file io.Reader, userID string) (string, error) {
	overwrite := true
	result, err := up.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       userID,
		Folder:         "hypergym/avatars",
		Overwrite:      &overwrite,
		ResourceType:   "image",
		Format:         "jpg",
		Transformation: "c_fill,g_face,h_500,w_500",
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return result.SecureURL, nil
}

// UploadProgressPhoto stores a body-log photo and returns the public URL.
func (up *Uploader) UploadProgressPhoto(ctx context.Context, file io.Reader, userID string) (string, error) {
	result, err := up.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       fmt.Sprintf("hypergym/progress/%s", userID),
		ResourceType: "image",
		Format:       "jpg",
	})
	if err != nil {
		return "", fmt.Errorf("upload progress photo: %w", err)
	}
	return result.SecureURL, nil
}

// UploadPostImage stores a community post image and returns the public URL.
func (up *Uploader) UploadPostImage(ctx context.Context, file io.Reader, branchID string) (string, error) {
	result, err := up.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       fmt.Sprintf("hypergym/posts/%s", branchID),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload post image: %w", err)
	}
	return result.SecureURL, nil
}
