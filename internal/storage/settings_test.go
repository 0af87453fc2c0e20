package storage

import (
	"blogs/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireSettingsListsEveryMissingKey(t *testing.T) {
	err := requireSettings("s3",
		setting{"STORAGE_S3_BUCKET", "images"},
		setting{"STORAGE_S3_REGION", ""},
		setting{"STORAGE_S3_ACCESS_KEY_ID", "  "},
	)
	require.Error(t, err)
	assert.Equal(t, "storage: s3 backend missing STORAGE_S3_REGION, STORAGE_S3_ACCESS_KEY_ID", err.Error())

	assert.NoError(t, requireSettings("s3", setting{"STORAGE_S3_BUCKET", "images"}))
}

func TestR2SettingsDeriveEndpointFromAccount(t *testing.T) {
	settings, err := r2SettingsFromConfig(config.Config{
		StorageR2AccountID:       "acc123",
		StorageR2Bucket:          "blog-images",
		StorageR2AccessKeyID:     "key",
		StorageR2SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://acc123.r2.cloudflarestorage.com", settings.Endpoint)
	assert.Equal(t, "auto", settings.Region)
	assert.True(t, settings.ForcePathStyle)

	_, err = r2SettingsFromConfig(config.Config{StorageR2Bucket: "blog-images"})
	assert.ErrorContains(t, err, "STORAGE_R2_ENDPOINT or STORAGE_R2_ACCOUNT_ID")
}

func TestNewStorageSelectsBackend(t *testing.T) {
	store, err := NewStorage(config.Config{StorageType: "LOCAL", StorageLocalDir: t.TempDir()})
	require.NoError(t, err)
	_, ok := store.(*LocalStorage)
	assert.True(t, ok)

	_, err = NewStorage(config.Config{StorageType: "s3"})
	assert.ErrorContains(t, err, "STORAGE_S3_BUCKET")

	_, err = NewStorage(config.Config{StorageType: "ftp"})
	assert.Error(t, err)
}
