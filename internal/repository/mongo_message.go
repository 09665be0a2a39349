package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/crisis_coordination_system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Content     string              `bson:"content"`
	SenderID    *primitive.ObjectID `bson:"sender_id,omitempty"`
	IncidentID  *primitive.ObjectID `bson:"incident_id,omitempty"`
	IsEmergency bool                `bson:"is_emergency"`
	CreatedAt   time.Time           `bson:"created_at"`
}

func (d *messageDoc) model() *models.Message {
	return &models.Message{
		ID:          d.ID.Hex(),
		Content:     d.Content,
		SenderID:    refHex(d.SenderID),
		IncidentID:  refHex(d.IncidentID),
		IsEmergency: d.IsEmergency,
		CreatedAt:   d.CreatedAt,
	}
}

func (s *MongoStorage) GetMessages(ctx context.Context, incidentID string) ([]*models.MessageWithUser, error) {
	incidentRef := oidRef(incidentID)
	if incidentRef == nil {
		return []*models.MessageWithUser{}, nil
	}
	return s.findMessages(ctx, bson.M{"incident_id": incidentRef}, 0)
}

func (s *MongoStorage) GetRecentMessages(ctx context.Context, limit int) ([]*models.MessageWithUser, error) {
	return s.findMessages(ctx, bson.M{}, limit)
}

// findMessages возвращает сообщения от новых к старым. Отправитель, заданный,
// но не разрешимый в пользователя, нарушает целостность данных.
func (s *MongoStorage) findMessages(ctx context.Context, filter bson.M, limit int) ([]*models.MessageWithUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.db.Collection(collMessages).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]messageDoc, 0)
	refs := make([]primitive.ObjectID, 0)
	for cursor.Next(ctx) {
		var doc messageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		docs = append(docs, doc)
		if doc.SenderID != nil {
			refs = append(refs, *doc.SenderID)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	users, err := s.userSummaries(ctx, refs)
	if err != nil {
		return nil, err
	}

	messages := make([]*models.MessageWithUser, 0, len(docs))
	for i := range docs {
		enriched, err := enrichMessageDoc(&docs[i], users)
		if err != nil {
			return nil, err
		}
		messages = append(messages, enriched)
	}
	return messages, nil
}

func enrichMessageDoc(doc *messageDoc, users map[primitive.ObjectID]*models.UserSummary) (*models.MessageWithUser, error) {
	enriched := &models.MessageWithUser{Message: *doc.model()}
	if doc.SenderID != nil {
		sender, ok := users[*doc.SenderID]
		if !ok {
			return nil, fmt.Errorf("message %s sender %s: %w", doc.ID.Hex(), doc.SenderID.Hex(), ErrDataIntegrity)
		}
		enriched.Sender = sender
	}
	return enriched, nil
}

func (s *MongoStorage) GetMessage(ctx context.Context, id string) (*models.MessageWithUser, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	var doc messageDoc
	if err := s.db.Collection(collMessages).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	refs := make([]primitive.ObjectID, 0, 1)
	if doc.SenderID != nil {
		refs = append(refs, *doc.SenderID)
	}
	users, err := s.userSummaries(ctx, refs)
	if err != nil {
		return nil, err
	}
	return enrichMessageDoc(&doc, users)
}

func (s *MongoStorage) CreateMessage(ctx context.Context, message *models.Message) error {
	doc := messageDoc{
		Content:     message.Content,
		SenderID:    oidRef(message.SenderID),
		IncidentID:  oidRef(message.IncidentID),
		IsEmergency: message.IsEmergency,
		CreatedAt:   time.Now(),
	}
	result, err := s.db.Collection(collMessages).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	message.ID = result.InsertedID.(primitive.ObjectID).Hex()
	message.CreatedAt = doc.CreatedAt
	return nil
}
