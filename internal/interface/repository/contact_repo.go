// internal/interface/repository/contact_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContactRepository implements ContactRepository
type MongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a new contact repository
func NewMongoContactRepository(db *mongo.Database) repository.ContactRepository {
	collection := db.Collection("contacts")

	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"createdAt": -1}},
		{Keys: bson.M{"selectedPlan": 1}},
	})

	return &MongoContactRepository{
		collection: collection,
	}
}

// Insert saves a new contact inquiry
func (r *MongoContactRepository) Insert(ctx context.Context, contact *entity.Contact) error {
	now := time.Now()
	if contact.ID == "" {
		contact.ID = primitive.NewObjectID().Hex()
	}
	contact.CreatedAt = now
	contact.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, contact)
	return err
}

// FindByID finds a contact by id
func (r *MongoContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// List returns one page of contacts, newest first, plus the total count.
func (r *MongoContactRepository) List(ctx context.Context, page, limit int) ([]*entity.Contact, int64, error) {
	skip := int64((page - 1) * limit)
	limit64 := int64(limit)
	opts := &options.FindOptions{
		Skip:  &skip,
		Limit: &limit64,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var contacts []*entity.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// ListByPlan returns all contacts for one plan, newest first.
func (r *MongoContactRepository) ListByPlan(ctx context.Context, plan string) ([]*entity.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"selectedPlan": plan}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []*entity.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// DeleteByID removes a contact permanently
func (r *MongoContactRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
