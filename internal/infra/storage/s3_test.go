package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nailnav/nailnav/internal/config"
)

func TestURL(t *testing.T) {
	s := NewS3Store(&config.Config{S3Bucket: "photos", S3Region: "ap-southeast-2"})
	assert.Equal(t, "https://photos.s3.ap-southeast-2.amazonaws.com/a/b.jpg", s.URL("a/b.jpg"))

	s = NewS3Store(&config.Config{
		S3Bucket:        "photos",
		S3Region:        "auto",
		S3Endpoint:      "https://acct.r2.cloudflarestorage.com",
		S3PublicBaseURL: "https://cdn.nailnav.com/",
	})
	assert.Equal(t, "https://cdn.nailnav.com/a/b.jpg", s.URL("a/b.jpg"))
}

func TestPhotoKey(t *testing.T) {
	assert.Equal(t, "salons/12/photos/abc.png", PhotoKey(12, "abc", ".PNG"))
	assert.Equal(t, "salons/3/photos/x.jpg", PhotoKey(3, "x", ""))
}
