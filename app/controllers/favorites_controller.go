package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/requests"
	"github.com/servis-mreza/directory/app/responses"
	"github.com/servis-mreza/directory/app/services"
)

// FavoritesController handles per-user favorites and category follows.
type FavoritesController struct {
	favoriteService *services.FavoriteService
	logger          *zap.Logger
}

// NewFavoritesController creates the controller.
func NewFavoritesController(favoriteService *services.FavoriteService, logger *zap.Logger) *FavoritesController {
	return &FavoritesController{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// ListFavorites returns the user's starred firms.
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	userID := c.Param("userID")
	favorites, err := fc.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		fc.logger.Error("list favorites failed", zap.Error(err), zap.String("user", userID))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "FAVORITES_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.FavoritesResponse{Favorites: favorites, Total: len(favorites)})
}

// ToggleFavorite stars or unstars a firm for the user.
func (fc *FavoritesController) ToggleFavorite(c *gin.Context) {
	userID := c.Param("userID")

	var req requests.FavoriteToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	active, err := fc.favoriteService.ToggleFavorite(c.Request.Context(), userID, req.FirmID)
	if err != nil {
		fc.logger.Error("toggle favorite failed", zap.Error(err), zap.String("user", userID))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "FAVORITES_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.ToggleResponse{Active: active})
}

// ListFollows returns the user's followed categories.
func (fc *FavoritesController) ListFollows(c *gin.Context) {
	userID := c.Param("userID")
	follows, err := fc.favoriteService.ListFollows(c.Request.Context(), userID)
	if err != nil {
		fc.logger.Error("list follows failed", zap.Error(err), zap.String("user", userID))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "FOLLOWS_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.FollowsResponse{Follows: follows, Total: len(follows)})
}

// ToggleFollow follows or unfollows a category for the user.
func (fc *FavoritesController) ToggleFollow(c *gin.Context) {
	userID := c.Param("userID")

	var req requests.FollowToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	active, err := fc.favoriteService.ToggleFollow(c.Request.Context(), userID, req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "UNKNOWN_CATEGORY",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.ToggleResponse{Active: active})
}
