package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadToCloudinary pushes a local file to Cloudinary and returns the
// hosted URL. Falls back to CLOUDINARY_URL when the separate env vars
// are not set.
func UploadToCloudinary(localPath string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	var cld *cloudinary.Cloudinary
	var err error

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return "", fmt.Errorf("cloudinary environment variables not set")
		}
		cld, err = cloudinary.NewFromURL(cldURL)
		if err != nil {
			return "", fmt.Errorf("cloudinary init from URL failed: %v", err)
		}
	} else {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
		if err != nil {
			return "", fmt.Errorf("cloudinary init from params failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder: "homepro/services",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %v", err)
	}

	return result.SecureURL, nil
}
