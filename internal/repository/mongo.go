package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Имена коллекций документной бд
const (
	collUsers       = "users"
	collIncidents   = "incidents"
	collResources   = "resources"
	collMessages    = "messages"
	collAssignments = "volunteer_assignments"
)

// MongoStorage - реализация шлюза персистентности поверх MongoDB.
// redisClient опционален: при ненулевом клиенте чтение инцидента по ID
// кэшируется с TTL и инвалидацией при обновлении.
type MongoStorage struct {
	db          *mongo.Database
	redisClient *redis.Client
}

func NewMongoStorage(db *mongo.Database, redisClient *redis.Client) *MongoStorage {
	return &MongoStorage{
		db:          db,
		redisClient: redisClient,
	}
}

// oid переводит внешний непрозрачный ID в ObjectID. Некорректный hex
// означает заведомо несуществующий документ, поэтому транслируется в ErrNotFound.
func oid(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	return objID, nil
}

// oidRef переводит опциональную ссылку на сущность; пустая строка - nil
func oidRef(id string) *primitive.ObjectID {
	if id == "" {
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return &objID
}

func refHex(ref *primitive.ObjectID) string {
	if ref == nil {
		return ""
	}
	return ref.Hex()
}

// userSummaries загружает краткие проекции пользователей одним запросом
func (s *MongoStorage) userSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserSummary, error) {
	summaries := make(map[primitive.ObjectID]*models.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := s.db.Collection(collUsers).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to load user summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user summary: %w", err)
		}
		summaries[doc.ID] = doc.model().Summary()
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user summaries: %w", err)
	}
	return summaries, nil
}

// incidentSummaries загружает краткие проекции инцидентов одним запросом
func (s *MongoStorage) incidentSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.IncidentSummary, error) {
	summaries := make(map[primitive.ObjectID]*models.IncidentSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := s.db.Collection(collIncidents).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to load incident summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc incidentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode incident summary: %w", err)
		}
		summaries[doc.ID] = doc.model().Summary()
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident summaries: %w", err)
	}
	return summaries, nil
}
