package users

import (
	"context"
	"errors"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadyExists is returned by Create when a document for the subject id
// is already present. Registration must never overwrite it.
var ErrAlreadyExists = errors.New("user already exists")

// UserRepository defines persistence operations for user documents.
// Get returns (nil, nil) when no document exists for the subject id.
// Create must be an atomic create-if-absent: two concurrent creates for the
// same subject id resolve to exactly one stored document and one
// ErrAlreadyExists.
type UserRepository interface {
	Get(ctx context.Context, sub string) (*models.User, error)
	Create(ctx context.Context, sub string, u *models.User) error
}

// userDoc is the stored shape: the subject id is the document key, the
// user payload is inlined alongside it.
type userDoc struct {
	Sub  string      `bson:"_id"`
	User models.User `bson:",inline"`
}

// MongoUserRepository implements UserRepository on a Mongo collection,
// using the unique _id index for the create-if-absent guarantee.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) Get(ctx context.Context, sub string) (*models.User, error) {
	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": sub}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc.User, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, sub string, u *models.User) error {
	_, err := r.col.InsertOne(ctx, userDoc{Sub: sub, User: *u})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}
