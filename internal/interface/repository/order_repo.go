// internal/interface/repository/order_repo.go
package repository

import (
	"context"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepository implements OrderRepository
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new order repository
func NewMongoOrderRepository(db *mongo.Database) repository.OrderRepository {
	collection := db.Collection("orders")

	// Contract numbers must never collide.
	ctx := context.Background()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"contractNumber": 1},
		Options: options.Index().SetUnique(true),
	})

	return &MongoOrderRepository{
		collection: collection,
	}
}

// Insert saves a new order
func (r *MongoOrderRepository) Insert(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID finds an order by id
func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns all orders, newest order date first.
func (r *MongoOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
