package cloudinary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploader(t *testing.T, mux *http.ServeMux) *CloudinaryUploader {
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cloud, err := cld.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)
	cloud.Upload.Config.API.UploadPrefix = srv.URL
	return NewCloudinaryUploader(cloud)
}

func TestCloudinaryUploader_UploadKeepsResourceType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1_1/demo/auto/upload", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"public_id":"capstone/p1/laporan","resource_type":"raw",` +
			`"secure_url":"https://res.cloudinary.com/demo/raw/upload/capstone/p1/laporan","bytes":12}`))
	})
	u := newTestUploader(t, mux)

	res, err := u.UploadBytes(context.Background(), "capstone/p1", "laporan", []byte("PK\x03\x04isi-docx"))
	require.NoError(t, err)
	assert.Equal(t, "capstone/p1/laporan", res.FileKey)
	assert.Equal(t, "raw", res.ResourceType)
	assert.Equal(t, int64(12), res.FileSize)
}

func TestCloudinaryUploader_Delete(t *testing.T) {
	mux := http.NewServeMux()
	var hits []string
	mux.HandleFunc("/v1_1/demo/raw/destroy", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "raw")
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})
	mux.HandleFunc("/v1_1/demo/image/destroy", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "image")
		_, _ = w.Write([]byte(`{"result":"not found"}`))
	})
	u := newTestUploader(t, mux)
	ctx := context.Background()

	t.Run("raw asset uses raw endpoint", func(t *testing.T) {
		hits = nil
		require.NoError(t, u.Delete(ctx, "capstone/p1/laporan", "raw"))
		assert.Equal(t, []string{"raw"}, hits)
	})

	t.Run("not found is an error", func(t *testing.T) {
		hits = nil
		err := u.Delete(ctx, "capstone/p1/laporan", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.Equal(t, []string{"image"}, hits)
	})
}

func TestCloudinaryUploader_NotConfigured(t *testing.T) {
	var u *CloudinaryUploader
	_, err := u.UploadBytes(context.Background(), "f", "n", []byte("x"))
	assert.Error(t, err)
	assert.Error(t, u.Delete(context.Background(), "k", "raw"))
}
