package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New membuat client dari CLOUDINARY_URL. URL kosong berarti membaca env
// CLOUDINARY_URL langsung.
func New(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return cloudinary.New()
	}
	return cloudinary.NewFromURL(url)
}
