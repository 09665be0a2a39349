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

type assignmentDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	VolunteerID *primitive.ObjectID `bson:"volunteer_id,omitempty"`
	IncidentID  *primitive.ObjectID `bson:"incident_id,omitempty"`
	Role        string              `bson:"role"`
	Status      string              `bson:"status"`
	AssignedAt  time.Time           `bson:"assigned_at"`
}

func (d *assignmentDoc) model() *models.VolunteerAssignment {
	return &models.VolunteerAssignment{
		ID:          d.ID.Hex(),
		VolunteerID: refHex(d.VolunteerID),
		IncidentID:  refHex(d.IncidentID),
		Role:        d.Role,
		Status:      d.Status,
		AssignedAt:  d.AssignedAt,
	}
}

func (s *MongoStorage) GetVolunteerAssignments(ctx context.Context, volunteerID, incidentID string) ([]*models.AssignmentWithRefs, error) {
	filter := bson.M{}
	if volunteerID != "" {
		filter["volunteer_id"] = oidRef(volunteerID)
	}
	if incidentID != "" {
		filter["incident_id"] = oidRef(incidentID)
	}

	cursor, err := s.db.Collection(collAssignments).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "assigned_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find assignments: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]assignmentDoc, 0)
	userRefs := make([]primitive.ObjectID, 0)
	incidentRefs := make([]primitive.ObjectID, 0)
	for cursor.Next(ctx) {
		var doc assignmentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode assignment: %w", err)
		}
		docs = append(docs, doc)
		if doc.VolunteerID != nil {
			userRefs = append(userRefs, *doc.VolunteerID)
		}
		if doc.IncidentID != nil {
			incidentRefs = append(incidentRefs, *doc.IncidentID)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	users, err := s.userSummaries(ctx, userRefs)
	if err != nil {
		return nil, err
	}
	incidents, err := s.incidentSummaries(ctx, incidentRefs)
	if err != nil {
		return nil, err
	}

	assignments := make([]*models.AssignmentWithRefs, 0, len(docs))
	for i := range docs {
		assignments = append(assignments, enrichAssignmentDoc(&docs[i], users, incidents))
	}
	return assignments, nil
}

func enrichAssignmentDoc(
	doc *assignmentDoc,
	users map[primitive.ObjectID]*models.UserSummary,
	incidents map[primitive.ObjectID]*models.IncidentSummary,
) *models.AssignmentWithRefs {
	enriched := &models.AssignmentWithRefs{VolunteerAssignment: *doc.model()}
	if doc.VolunteerID != nil {
		enriched.Volunteer = users[*doc.VolunteerID]
	}
	if doc.IncidentID != nil {
		enriched.Incident = incidents[*doc.IncidentID]
	}
	return enriched
}

func (s *MongoStorage) GetVolunteerAssignment(ctx context.Context, id string) (*models.AssignmentWithRefs, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	var doc assignmentDoc
	if err := s.db.Collection(collAssignments).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	userRefs := make([]primitive.ObjectID, 0, 1)
	if doc.VolunteerID != nil {
		userRefs = append(userRefs, *doc.VolunteerID)
	}
	incidentRefs := make([]primitive.ObjectID, 0, 1)
	if doc.IncidentID != nil {
		incidentRefs = append(incidentRefs, *doc.IncidentID)
	}

	users, err := s.userSummaries(ctx, userRefs)
	if err != nil {
		return nil, err
	}
	incidents, err := s.incidentSummaries(ctx, incidentRefs)
	if err != nil {
		return nil, err
	}
	return enrichAssignmentDoc(&doc, users, incidents), nil
}

func (s *MongoStorage) CreateVolunteerAssignment(ctx context.Context, assignment *models.VolunteerAssignment) error {
	doc := assignmentDoc{
		VolunteerID: oidRef(assignment.VolunteerID),
		IncidentID:  oidRef(assignment.IncidentID),
		Role:        assignment.Role,
		Status:      assignment.Status,
		AssignedAt:  time.Now(),
	}
	result, err := s.db.Collection(collAssignments).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	assignment.ID = result.InsertedID.(primitive.ObjectID).Hex()
	assignment.AssignedAt = doc.AssignedAt
	return nil
}

func assignmentSetDoc(upd models.AssignmentUpdate) bson.M {
	set := bson.M{}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	return set
}

func (s *MongoStorage) UpdateVolunteerAssignment(ctx context.Context, id string, upd models.AssignmentUpdate) (*models.VolunteerAssignment, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	// Пустой $set сервер отклоняет, а патч без полей валиден:
	// возвращаем текущую запись без модификации
	set := assignmentSetDoc(upd)
	if len(set) == 0 {
		var doc assignmentDoc
		if err := s.db.Collection(collAssignments).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to get assignment: %w", err)
		}
		return doc.model(), nil
	}

	var doc assignmentDoc
	err = s.db.Collection(collAssignments).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return doc.model(), nil
}
