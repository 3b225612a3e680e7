package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/7aib/spots-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id string) (*models.Media, error)
	GetPublic(ctx context.Context, mediaType string, uploadedByID uint, skip, limit int64) ([]models.Media, error)
	GetByUploader(ctx context.Context, userID uint, skip, limit int64) ([]models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	SoftDelete(ctx context.Context, id string, userID uint) error
}

// MongoMediaRepository implements MediaRepository for MongoDB
type MongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new MongoMediaRepository
func NewMongoMediaRepository(db *mongo.Database) *MongoMediaRepository {
	return &MongoMediaRepository{collection: db.Collection("media")}
}

// Create inserts a new media document
func (r *MongoMediaRepository) Create(ctx context.Context, media *models.Media) error {
	media.ID = primitive.NewObjectID()
	media.CreatedAt = time.Now()
	media.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, media)
	return err
}

// GetByID retrieves a non-deleted media document by hex id
func (r *MongoMediaRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid media ID format: %w", err)
	}

	var media models.Media
	err = r.collection.FindOne(ctx, bson.M{"_id": objID, "is_deleted": false}).Decode(&media)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, err
	}
	return &media, nil
}

// GetPublic retrieves public media newest first, optionally filtered by
// media type and uploader.
func (r *MongoMediaRepository) GetPublic(ctx context.Context, mediaType string, uploadedByID uint, skip, limit int64) ([]models.Media, error) {
	filter := bson.M{"is_public": true, "is_deleted": false}
	if mediaType != "" {
		filter["media_type"] = mediaType
	}
	if uploadedByID != 0 {
		filter["uploaded_by_id"] = uploadedByID
	}

	findOptions := options.Find().SetSkip(skip).SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []models.Media
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// GetByUploader retrieves a user's own media (public or not), newest first
func (r *MongoMediaRepository) GetByUploader(ctx context.Context, userID uint, skip, limit int64) ([]models.Media, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"uploaded_by_id": userID, "is_deleted": false}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []models.Media
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// Update saves editable fields of an existing media document
func (r *MongoMediaRepository) Update(ctx context.Context, media *models.Media) error {
	media.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":       media.Title,
			"description": media.Description,
			"is_public":   media.IsPublic,
			"updated_at":  media.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": media.ID, "is_deleted": false}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SoftDelete marks a media document deleted. The uploader filter makes the
// operation owner-scoped at the query level.
func (r *MongoMediaRepository) SoftDelete(ctx context.Context, id string, userID uint) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid media ID format: %w", err)
	}

	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objID, "uploaded_by_id": userID, "is_deleted": false}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
