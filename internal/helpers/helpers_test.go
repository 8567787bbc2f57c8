package helpers

import (
	"context"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimID(t *testing.T) {
	assert.Equal(t, "65f1c0", TrimID(`  "65f1c0" `))
	assert.Equal(t, "65f1c0", TrimID(`'65f1c0'`))
	assert.Equal(t, "", TrimID("  "))
}

func TestErrorResponse(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"message": "Access denied"}, ErrorResponse("Access denied"))
}

func TestCloudinaryUploaderRejectsEmptySource(t *testing.T) {
	cld, err := cloudinary.NewFromParams("eco", "key", "secret")
	require.NoError(t, err)

	_, err = NewCloudinaryUploader(cld).UploadThumbnail(context.Background(), " ")
	assert.Error(t, err)
}
