// internal/interface/repository/callback_repo.go
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

// MongoCallbackRepository implements CallbackRepository
type MongoCallbackRepository struct {
	collection *mongo.Collection
}

// NewMongoCallbackRepository creates a new callback request repository
func NewMongoCallbackRepository(db *mongo.Database) repository.CallbackRepository {
	collection := db.Collection("callbackRequests")

	// Indexes mirror the query paths: dedup lookup, dashboard list sort,
	// and the filter fields.
	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"phoneNumber": 1}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "priorityRank", Value: -1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.M{"selectedService": 1}},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}, {Key: "status", Value: 1}}},
	})

	return &MongoCallbackRepository{
		collection: collection,
	}
}

// Insert saves a new callback request
func (r *MongoCallbackRepository) Insert(ctx context.Context, req *entity.CallbackRequest) error {
	now := time.Now()
	if req.ID == "" {
		req.ID = primitive.NewObjectID().Hex()
	}
	req.CreatedAt = now
	req.UpdatedAt = now
	req.PriorityRank = entity.PriorityRank(req.Priority)

	_, err := r.collection.InsertOne(ctx, req)
	return err
}

// FindRecentByPhone finds the newest request from a phone number created at or
// after the cutoff. Returns nil when there is none.
func (r *MongoCallbackRepository) FindRecentByPhone(ctx context.Context, phoneNumber string, since time.Time) (*entity.CallbackRequest, error) {
	filter := bson.M{
		"phoneNumber": phoneNumber,
		"createdAt":   bson.M{"$gte": since},
	}

	var req entity.CallbackRequest
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.collection.FindOne(ctx, filter, opts).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

// FindByID finds a callback request by id
func (r *MongoCallbackRepository) FindByID(ctx context.Context, id string) (*entity.CallbackRequest, error) {
	var req entity.CallbackRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// Update applies the allow-listed patch and returns the updated document.
func (r *MongoCallbackRepository) Update(ctx context.Context, id string, patch entity.CallbackUpdate, markCalled bool) (*entity.CallbackRequest, error) {
	update := buildCallbackUpdate(patch, markCalled, time.Now())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.CallbackRequest
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update callback request: %w", err)
	}
	return &updated, nil
}

// buildCallbackUpdate translates a patch into a Mongo update document. The
// "called" transition increments callAttempts and stamps lastCallAttempt in
// the same write, so concurrent transitions each count.
func buildCallbackUpdate(patch entity.CallbackUpdate, markCalled bool, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}

	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
		set["priorityRank"] = entity.PriorityRank(*patch.Priority)
	}
	if patch.AssignedTo != nil {
		set["assignedTo"] = *patch.AssignedTo
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.PreferredCallTime != nil {
		set["preferredCallTime"] = *patch.PreferredCallTime
	}

	update := bson.M{"$set": set}
	if markCalled {
		set["lastCallAttempt"] = now
		update["$inc"] = bson.M{"callAttempts": 1}
	}
	return update
}

// DeleteByID removes a callback request permanently
func (r *MongoCallbackRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete callback request: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// List returns one page of matching requests plus the total match count.
// Sort order: priority rank desc, then newest first.
func (r *MongoCallbackRepository) List(ctx context.Context, filter entity.CallbackFilter, page, limit int) ([]*entity.CallbackRequest, int64, error) {
	mongoFilter := buildCallbackFilter(filter)

	skip := int64((page - 1) * limit)
	limit64 := int64(limit)
	opts := &options.FindOptions{
		Skip:  &skip,
		Limit: &limit64,
		Sort: bson.D{
			{Key: "priorityRank", Value: -1},
			{Key: "createdAt", Value: -1},
		},
	}

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var requests []*entity.CallbackRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// buildCallbackFilter translates optional criteria into a Mongo filter.
// Omitted criteria are simply not applied.
func buildCallbackFilter(filter entity.CallbackFilter) bson.M {
	mongoFilter := bson.M{}

	if filter.Status != "" {
		mongoFilter["status"] = filter.Status
	}
	if filter.Priority != "" {
		mongoFilter["priority"] = filter.Priority
	}
	if filter.Service != "" {
		mongoFilter["selectedService"] = filter.Service
	}
	if filter.AssignedTo != "" {
		mongoFilter["assignedTo"] = filter.AssignedTo
	}

	if filter.FromDate != nil || filter.ToDate != nil {
		createdAt := bson.M{}
		if filter.FromDate != nil {
			createdAt["$gte"] = *filter.FromDate
		}
		if filter.ToDate != nil {
			createdAt["$lte"] = *filter.ToDate
		}
		mongoFilter["createdAt"] = createdAt
	}

	return mongoFilter
}

// CountByStatus groups the filtered set by status.
func (r *MongoCallbackRepository) CountByStatus(ctx context.Context, filter entity.CallbackFilter) (map[string]int64, error) {
	return r.groupCount(ctx, "$status", buildCallbackFilter(filter))
}

// CountByService groups the whole collection by selected service.
func (r *MongoCallbackRepository) CountByService(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, "$selectedService", bson.M{})
}

// CountByPriority groups the whole collection by priority.
func (r *MongoCallbackRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, "$priority", bson.M{})
}

func (r *MongoCallbackRepository) groupCount(ctx context.Context, field string, match bson.M) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}
