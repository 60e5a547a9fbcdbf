package cloudinary

import (
	"bytes"
	"context"
	"fmt"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"

	"capstone-backend/app/interfaces"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (*interfaces.UploadResult, error) {
	if u == nil || u.cld == nil {
		return nil, errors.New("cloudinary belum dikonfigurasi")
	}

	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:   folder,
			PublicID: filename,
			// dokumen (pdf/docx) maupun gambar
			ResourceType: "auto",
		},
	)
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}

	return &interfaces.UploadResult{
		FileURL:      res.SecureURL,
		FileKey:      res.PublicID,
		ResourceType: res.ResourceType,
		FileSize:     int64(res.Bytes),
	}, nil
}

// Delete resourceType harus sama dengan hasil upload (image, raw, video).
// Kosong dianggap image, sesuai default Cloudinary.
func (u *CloudinaryUploader) Delete(ctx context.Context, fileKey string, resourceType string) error {
	if u == nil || u.cld == nil {
		return errors.New("cloudinary belum dikonfigurasi")
	}
	if resourceType == "" {
		resourceType = "image"
	}
	res, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     fileKey,
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	// "not found" dikirim tanpa objek error
	if res.Result != "ok" {
		return fmt.Errorf("destroy %s/%s: %s", resourceType, fileKey, res.Result)
	}
	return nil
}
