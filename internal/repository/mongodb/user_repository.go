package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonops/backoffice/internal/domain/models"
)

// UserRepository defines the storage operations for back-office accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindRole(ctx context.Context, id primitive.ObjectID) (*models.Role, error)
}

// MongoUserRepository implements UserRepository against MongoDB.
type MongoUserRepository struct {
	users *mongo.Collection
	roles *mongo.Collection
}

// NewUserRepository builds the users/roles repository.
func NewUserRepository(store *Store) *MongoUserRepository {
	return &MongoUserRepository{
		users: store.db.Collection(usersCollection),
		roles: store.db.Collection(rolesCollection),
	}
}

// FindByEmail fetches the account for a login attempt.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID fetches one account, returning ErrNotFound when absent.
func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", id.Hex(), err)
	}
	return &user, nil
}

// FindRole resolves a role and its permission strings.
func (r *MongoUserRepository) FindRole(ctx context.Context, id primitive.ObjectID) (*models.Role, error) {
	var role models.Role
	err := r.roles.FindOne(ctx, bson.M{"_id": id}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find role %s: %w", id.Hex(), err)
	}
	return &role, nil
}
