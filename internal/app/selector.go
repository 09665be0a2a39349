package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_coordination_system/internal/config"
	"github.com/shenikar/crisis_coordination_system/internal/repository"
	"github.com/shenikar/crisis_coordination_system/internal/service"
	"github.com/shenikar/crisis_coordination_system/pkg/mongodb"
	"github.com/sirupsen/logrus"
)

// Select выбирает реализацию хранилища один раз при старте процесса.
// Если MongoDB доступна в пределах cfg.MongoTimeout, используется документная бд,
// иначе сервис деградирует до энергозависимого in-memory хранилища с тестовым
// набором данных. Во время работы переключения не происходит.
func Select(ctx context.Context, cfg *config.Config, log *logrus.Logger, redisClient *redis.Client) service.Storage {
	probeCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	client, err := mongodb.NewClient(probeCtx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).WithField("uri", cfg.MongoURI).
			Warn("MongoDB unavailable, falling back to in-memory storage")
		return repository.NewMemoryStorage()
	}

	// Ping подтверждает только соединение; дешевое чтение статистики
	// подтверждает, что база действительно обслуживает запросы
	storage := repository.NewMongoStorage(client.Database(cfg.MongoDatabase), redisClient)
	if _, err := storage.GetDashboardStats(probeCtx); err != nil {
		log.WithError(err).Warn("MongoDB read probe failed, falling back to in-memory storage")
		return repository.NewMemoryStorage()
	}

	log.WithField("database", cfg.MongoDatabase).Info("Using MongoDB storage")
	return storage
}
