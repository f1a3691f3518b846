package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader records the stored object instead of talking to a bucket.
type fakeUploader struct {
	key         string
	contentType string
	body        []byte
}

func (u *fakeUploader) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	u.key = key
	u.contentType = contentType
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	u.body = data
	return "https://files.example.com/" + key, nil
}

// TestUploadImage_Success verifies the random key keeps the extension and the
// location is passed through.
func TestUploadImage_Success(t *testing.T) {
	uploader := &fakeUploader{}
	service := NewUploadService(uploader)

	location, err := service.UploadImage(context.Background(), "photo.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(uploader.key, ".png"))
	assert.NotEqual(t, "photo.png", uploader.key)
	assert.Equal(t, "image/png", uploader.contentType)
	assert.Equal(t, []byte("fake image bytes"), uploader.body)
	assert.Equal(t, "https://files.example.com/"+uploader.key, location)
}

// TestUploadImage_UnsupportedType verifies non-image extensions are rejected
// before anything is stored.
func TestUploadImage_UnsupportedType(t *testing.T) {
	uploader := &fakeUploader{}
	service := NewUploadService(uploader)

	_, err := service.UploadImage(context.Background(), "report.pdf", strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Empty(t, uploader.key)
}
