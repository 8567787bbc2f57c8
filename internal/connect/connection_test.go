package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudinaryCredentials(t *testing.T) {
	cld, err := CloudinaryCredentials("eco", "key", "secret")
	require.NoError(t, err)
	assert.Equal(t, "eco", cld.Config.Cloud.CloudName)
	assert.True(t, cld.Config.URL.Secure)
}

func TestInitSupabaseRequiresCredentials(t *testing.T) {
	_, err := InitSupabase("", "")
	assert.Error(t, err)
}

func TestMongoDBDisconnectNil(t *testing.T) {
	assert.NoError(t, MongoDBDisconnect(nil))
}
