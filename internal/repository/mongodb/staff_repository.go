package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonops/backoffice/internal/domain/models"
)

// StaffRepository defines the storage operations for the staff directory.
type StaffRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error)
	List(ctx context.Context) ([]models.Staff, error)
	Create(ctx context.Context, staff models.Staff) (*models.Staff, error)
}

// MongoStaffRepository implements StaffRepository against MongoDB.
type MongoStaffRepository struct {
	coll *mongo.Collection
}

// NewStaffRepository builds the staff repository.
func NewStaffRepository(store *Store) *MongoStaffRepository {
	return &MongoStaffRepository{coll: store.db.Collection(staffCollection)}
}

// FindByID fetches one staff member, returning ErrNotFound when absent.
func (r *MongoStaffRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&staff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find staff %s: %w", id.Hex(), err)
	}
	return &staff, nil
}

// List returns all staff members ordered by name.
func (r *MongoStaffRepository) List(ctx context.Context) ([]models.Staff, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}
	return staff, nil
}

// Create inserts a new staff member and returns it with the generated ID.
func (r *MongoStaffRepository) Create(ctx context.Context, staff models.Staff) (*models.Staff, error) {
	staff.ID = primitive.NewObjectID()
	staff.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return nil, fmt.Errorf("insert staff: %w", err)
	}
	return &staff, nil
}
