package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const incidentCacheTTL = 5 * time.Minute

type incidentDoc struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Description   string              `bson:"description"`
	Location      string              `bson:"location"`
	Coordinates   *models.Coordinates `bson:"coordinates,omitempty"`
	Priority      string              `bson:"priority"`
	Status        string              `bson:"status"`
	Type          string              `bson:"type"`
	ReportedBy    *primitive.ObjectID `bson:"reported_by,omitempty"`
	AssignedTo    *primitive.ObjectID `bson:"assigned_to,omitempty"`
	SpocID        *primitive.ObjectID `bson:"spoc_id,omitempty"`
	AffectedCount int                 `bson:"affected_count"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}

func (d *incidentDoc) model() *models.Incident {
	return &models.Incident{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Location:      d.Location,
		Coordinates:   d.Coordinates,
		Priority:      d.Priority,
		Status:        d.Status,
		Type:          d.Type,
		ReportedBy:    refHex(d.ReportedBy),
		AssignedTo:    refHex(d.AssignedTo),
		SpocID:        refHex(d.SpocID),
		AffectedCount: d.AffectedCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (d *incidentDoc) userRefs() []primitive.ObjectID {
	refs := make([]primitive.ObjectID, 0, 3)
	for _, ref := range []*primitive.ObjectID{d.ReportedBy, d.AssignedTo, d.SpocID} {
		if ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs
}

func (s *MongoStorage) GetIncidents(ctx context.Context) ([]*models.IncidentWithUsers, error) {
	return s.findIncidents(ctx, bson.M{})
}

func (s *MongoStorage) GetIncidentsByStatus(ctx context.Context, status string) ([]*models.IncidentWithUsers, error) {
	return s.findIncidents(ctx, bson.M{"status": status})
}

func (s *MongoStorage) GetIncidentsByPriority(ctx context.Context, priority string) ([]*models.IncidentWithUsers, error) {
	return s.findIncidents(ctx, bson.M{"priority": priority})
}

func (s *MongoStorage) findIncidents(ctx context.Context, filter bson.M) ([]*models.IncidentWithUsers, error) {
	cursor, err := s.db.Collection(collIncidents).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]incidentDoc, 0)
	refs := make([]primitive.ObjectID, 0)
	for cursor.Next(ctx) {
		var doc incidentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode incident: %w", err)
		}
		docs = append(docs, doc)
		refs = append(refs, doc.userRefs()...)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incidents: %w", err)
	}

	users, err := s.userSummaries(ctx, refs)
	if err != nil {
		return nil, err
	}

	incidents := make([]*models.IncidentWithUsers, 0, len(docs))
	for i := range docs {
		incidents = append(incidents, enrichIncidentDoc(&docs[i], users))
	}
	return incidents, nil
}

func enrichIncidentDoc(doc *incidentDoc, users map[primitive.ObjectID]*models.UserSummary) *models.IncidentWithUsers {
	enriched := &models.IncidentWithUsers{Incident: *doc.model()}
	if doc.ReportedBy != nil {
		enriched.ReportedByUser = users[*doc.ReportedBy]
	}
	if doc.AssignedTo != nil {
		enriched.AssignedToUser = users[*doc.AssignedTo]
	}
	if doc.SpocID != nil {
		enriched.SpocUser = users[*doc.SpocID]
	}
	return enriched
}

func (s *MongoStorage) GetIncident(ctx context.Context, id string) (*models.IncidentWithUsers, error) {
	if cached := s.incidentFromCache(ctx, id); cached != nil {
		return cached, nil
	}

	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	var doc incidentDoc
	if err := s.db.Collection(collIncidents).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("incident %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	users, err := s.userSummaries(ctx, doc.userRefs())
	if err != nil {
		return nil, err
	}
	enriched := enrichIncidentDoc(&doc, users)
	s.cacheIncident(ctx, enriched)
	return enriched, nil
}

func (s *MongoStorage) CreateIncident(ctx context.Context, incident *models.Incident) error {
	now := time.Now()
	doc := incidentDoc{
		Title:         incident.Title,
		Description:   incident.Description,
		Location:      incident.Location,
		Coordinates:   incident.Coordinates,
		Priority:      incident.Priority,
		Status:        incident.Status,
		Type:          incident.Type,
		ReportedBy:    oidRef(incident.ReportedBy),
		AssignedTo:    oidRef(incident.AssignedTo),
		SpocID:        oidRef(incident.SpocID),
		AffectedCount: incident.AffectedCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	result, err := s.db.Collection(collIncidents).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	incident.ID = result.InsertedID.(primitive.ObjectID).Hex()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	return nil
}

func (s *MongoStorage) UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Coordinates != nil {
		set["coordinates"] = *upd.Coordinates
	}
	if upd.Priority != nil {
		set["priority"] = *upd.Priority
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.ReportedBy != nil {
		set["reported_by"] = oidRef(*upd.ReportedBy)
	}
	if upd.AssignedTo != nil {
		set["assigned_to"] = oidRef(*upd.AssignedTo)
	}
	if upd.SpocID != nil {
		set["spoc_id"] = oidRef(*upd.SpocID)
	}
	if upd.AffectedCount != nil {
		set["affected_count"] = *upd.AffectedCount
	}

	var doc incidentDoc
	err = s.db.Collection(collIncidents).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("incident %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}

	s.invalidateIncidentCache(ctx, id)
	return doc.model(), nil
}

// Кэширование инцидентов. Ошибки кэша не фатальны: промах или недоступный
// Redis приводят к обычному чтению из бд.

func incidentCacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}

func (s *MongoStorage) incidentFromCache(ctx context.Context, id string) *models.IncidentWithUsers {
	if s.redisClient == nil {
		return nil
	}
	val, err := s.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return nil
		}
		return nil
	}
	incident := &models.IncidentWithUsers{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil
	}
	return incident
}

func (s *MongoStorage) cacheIncident(ctx context.Context, incident *models.IncidentWithUsers) {
	if s.redisClient == nil {
		return
	}
	val, err := json.Marshal(incident)
	if err != nil {
		return
	}
	_ = s.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err()
}

func (s *MongoStorage) invalidateIncidentCache(ctx context.Context, id string) {
	if s.redisClient == nil {
		return
	}
	_ = s.redisClient.Del(ctx, incidentCacheKey(id)).Err()
}
