package app

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shenikar/crisis_coordination_system/internal/config"
	"github.com/shenikar/crisis_coordination_system/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_FallsBackToMemoryWhenMongoUnreachable(t *testing.T) {
	// Подготовка: заведомо недоступный адрес и короткий таймаут пробы
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		MongoURI:      "mongodb://127.0.0.1:1",
		MongoDatabase: "crisis_coordination",
		MongoTimeout:  200 * time.Millisecond,
	}

	// Действие
	storage := Select(context.Background(), cfg, logger, nil)

	// Проверки: процесс стартует на in-memory хранилище с тестовым набором
	memory, ok := storage.(*repository.MemoryStorage)
	require.True(t, ok)

	stats, err := memory.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveIncidents)
}
