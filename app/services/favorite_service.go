package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
)

// FavoriteService stores per-user firm favorites and category follows.
type FavoriteService struct {
	favorites *mongo.Collection
	follows   *mongo.Collection
	logger    *zap.Logger
}

// NewFavoriteService creates the service over its two collections.
func NewFavoriteService(db *mongo.Database, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		favorites: db.Collection("favorites"),
		follows:   db.Collection("category_follows"),
		logger:    logger,
	}
}

// ListFavorites returns the firm ids a user has starred.
func (svc *FavoriteService) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	cursor, err := svc.favorites.Find(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Favorite
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return out, nil
}

// ToggleFavorite stars the firm for the user, or unstars it when already
// present. Returns true when the firm is now a favorite.
func (svc *FavoriteService) ToggleFavorite(ctx context.Context, userID, firmID string) (bool, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "firm_id", Value: firmID},
	}

	res, err := svc.favorites.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	fav := models.Favorite{UserID: userID, FirmID: firmID, CreatedAt: time.Now().UTC()}
	if _, err := svc.favorites.InsertOne(ctx, fav); err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}

// ListFollows returns the category keys a user follows.
func (svc *FavoriteService) ListFollows(ctx context.Context, userID string) ([]models.CategoryFollow, error) {
	cursor, err := svc.follows.Find(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.CategoryFollow
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode follows: %w", err)
	}
	return out, nil
}

// ToggleFollow follows or unfollows a category. The key must name a catalog
// category. Returns true when the category is now followed.
func (svc *FavoriteService) ToggleFollow(ctx context.Context, userID, categoryKey string) (bool, error) {
	if _, ok := models.CategoryByKey(categoryKey); !ok {
		return false, fmt.Errorf("unknown category %q", categoryKey)
	}

	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "category", Value: categoryKey},
	}

	res, err := svc.follows.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("toggle follow: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	follow := models.CategoryFollow{UserID: userID, Category: categoryKey, CreatedAt: time.Now().UTC()}
	if _, err := svc.follows.InsertOne(ctx, follow); err != nil {
		return false, fmt.Errorf("add follow: %w", err)
	}
	return true, nil
}
