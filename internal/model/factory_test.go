package model

import (
	"blogs/internal/config"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestInitRepositoryRequiresType(t *testing.T) {
	_, err := InitRepository(&config.Config{})
	assert.Error(t, err)

	_, err = InitRepository(&config.Config{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestInitRepositorySQLiteMemory(t *testing.T) {
	repo, err := InitRepository(&config.Config{
		DBType: "SQLite",
		DBPath: "file:factory_memory?mode=memory&cache=shared",
	})
	require.NoError(t, err)

	count, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("debug"))
	assert.Equal(t, logger.Warn, gormLogLevel("info"))
	assert.Equal(t, logger.Warn, gormLogLevel(""))
	assert.Equal(t, logger.Error, gormLogLevel("ERROR"))
}
