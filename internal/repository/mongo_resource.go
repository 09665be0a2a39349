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

type resourceDoc struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty"`
	Name             string              `bson:"name"`
	Type             string              `bson:"type"`
	Quantity         int                 `bson:"quantity"`
	Available        int                 `bson:"available"`
	Location         string              `bson:"location"`
	Status           string              `bson:"status"`
	AssignedIncident *primitive.ObjectID `bson:"assigned_incident,omitempty"`
	ETAMinutes       *int                `bson:"eta,omitempty"`
	CreatedAt        time.Time           `bson:"created_at"`
	UpdatedAt        time.Time           `bson:"updated_at"`
}

func (d *resourceDoc) model() *models.Resource {
	return &models.Resource{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Type:             d.Type,
		Quantity:         d.Quantity,
		Available:        d.Available,
		Location:         d.Location,
		Status:           d.Status,
		AssignedIncident: refHex(d.AssignedIncident),
		ETAMinutes:       d.ETAMinutes,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (s *MongoStorage) GetResources(ctx context.Context) ([]*models.ResourceWithIncident, error) {
	return s.findResources(ctx, bson.M{})
}

func (s *MongoStorage) GetResourcesByType(ctx context.Context, resourceType string) ([]*models.ResourceWithIncident, error) {
	return s.findResources(ctx, bson.M{"type": resourceType})
}

func (s *MongoStorage) GetResourcesByStatus(ctx context.Context, status string) ([]*models.ResourceWithIncident, error) {
	return s.findResources(ctx, bson.M{"status": status})
}

func (s *MongoStorage) findResources(ctx context.Context, filter bson.M) ([]*models.ResourceWithIncident, error) {
	cursor, err := s.db.Collection(collResources).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find resources: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]resourceDoc, 0)
	refs := make([]primitive.ObjectID, 0)
	for cursor.Next(ctx) {
		var doc resourceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode resource: %w", err)
		}
		docs = append(docs, doc)
		if doc.AssignedIncident != nil {
			refs = append(refs, *doc.AssignedIncident)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resources: %w", err)
	}

	incidents, err := s.incidentSummaries(ctx, refs)
	if err != nil {
		return nil, err
	}

	resources := make([]*models.ResourceWithIncident, 0, len(docs))
	for i := range docs {
		resources = append(resources, enrichResourceDoc(&docs[i], incidents))
	}
	return resources, nil
}

func enrichResourceDoc(doc *resourceDoc, incidents map[primitive.ObjectID]*models.IncidentSummary) *models.ResourceWithIncident {
	enriched := &models.ResourceWithIncident{Resource: *doc.model()}
	if doc.AssignedIncident != nil {
		enriched.Incident = incidents[*doc.AssignedIncident]
	}
	return enriched
}

func (s *MongoStorage) GetResource(ctx context.Context, id string) (*models.ResourceWithIncident, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	var doc resourceDoc
	if err := s.db.Collection(collResources).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	refs := make([]primitive.ObjectID, 0, 1)
	if doc.AssignedIncident != nil {
		refs = append(refs, *doc.AssignedIncident)
	}
	incidents, err := s.incidentSummaries(ctx, refs)
	if err != nil {
		return nil, err
	}
	return enrichResourceDoc(&doc, incidents), nil
}

func (s *MongoStorage) CreateResource(ctx context.Context, resource *models.Resource) error {
	now := time.Now()
	doc := resourceDoc{
		Name:             resource.Name,
		Type:             resource.Type,
		Quantity:         resource.Quantity,
		Available:        resource.Available,
		Location:         resource.Location,
		Status:           resource.Status,
		AssignedIncident: oidRef(resource.AssignedIncident),
		ETAMinutes:       resource.ETAMinutes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	result, err := s.db.Collection(collResources).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	resource.ID = result.InsertedID.(primitive.ObjectID).Hex()
	resource.CreatedAt = now
	resource.UpdatedAt = now
	return nil
}

func (s *MongoStorage) UpdateResource(ctx context.Context, id string, upd models.ResourceUpdate) (*models.Resource, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Quantity != nil {
		set["quantity"] = *upd.Quantity
	}
	if upd.Available != nil {
		set["available"] = *upd.Available
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.AssignedIncident != nil {
		set["assigned_incident"] = oidRef(*upd.AssignedIncident)
	}
	if upd.ETAMinutes != nil {
		set["eta"] = *upd.ETAMinutes
	}

	var doc resourceDoc
	err = s.db.Collection(collResources).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	return doc.model(), nil
}
