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

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Location  string             `bson:"location,omitempty"`
	IsSpoc    bool               `bson:"is_spoc"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *userDoc) model() *models.User {
	return &models.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		Password:  d.Password,
		Role:      d.Role,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Location:  d.Location,
		IsSpoc:    d.IsSpoc,
		CreatedAt: d.CreatedAt,
	}
}

func (s *MongoStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	if err := s.db.Collection(collUsers).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.model(), nil
}

func (s *MongoStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc userDoc
	if err := s.db.Collection(collUsers).FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return doc.model(), nil
}

func (s *MongoStorage) CreateUser(ctx context.Context, user *models.User) error {
	doc := userDoc{
		Username:  user.Username,
		Password:  user.Password,
		Role:      user.Role,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Location:  user.Location,
		IsSpoc:    user.IsSpoc,
		CreatedAt: time.Now(),
	}
	result, err := s.db.Collection(collUsers).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID).Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func userSetDoc(upd models.UserUpdate) bson.M {
	set := bson.M{}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.IsSpoc != nil {
		set["is_spoc"] = *upd.IsSpoc
	}
	return set
}

func (s *MongoStorage) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}

	// Пустой $set сервер отклоняет, а патч без полей валиден:
	// возвращаем текущую запись без модификации
	set := userSetDoc(upd)
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	var doc userDoc
	err = s.db.Collection(collUsers).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return doc.model(), nil
}

func (s *MongoStorage) GetUsersByRole(ctx context.Context, role string) ([]*models.User, error) {
	cursor, err := s.db.Collection(collUsers).Find(
		ctx,
		bson.M{"role": role},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by role: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]*models.User, 0)
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, doc.model())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
