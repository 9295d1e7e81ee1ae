package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/config"
	"github.com/servis-mreza/directory/app/requests"
	"github.com/servis-mreza/directory/app/responses"
	"github.com/servis-mreza/directory/app/services"
	"github.com/servis-mreza/directory/internal/geo"
)

// SearchController handles the search and firm detail endpoints.
type SearchController struct {
	firmService  *services.FirmService
	cacheService services.ICacheService
	logger       *zap.Logger
	startTime    time.Time
}

// NewSearchController creates the controller.
func NewSearchController(firmService *services.FirmService, cacheService services.ICacheService, logger *zap.Logger) *SearchController {
	return &SearchController{
		firmService:  firmService,
		cacheService: cacheService,
		logger:       logger,
		startTime:    time.Now(),
	}
}

// Search runs a directory search. Defaults: radius from config, page 1,
// page size from the tier config.
func (sc *SearchController) Search(c *gin.Context) {
	var req requests.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	params := services.SearchParams{
		Query:    req.Query,
		City:     req.City,
		RadiusKm: req.RadiusKm,
		Page:     req.Page,
		PageSize: config.C.Search.PageSize(req.PageSize),
	}
	if params.RadiusKm <= 0 {
		params.RadiusKm = config.C.Search.DefaultRadiusKm
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if req.Location != nil {
		params.Location = &geo.Point{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	startTime := time.Now()

	if req.UseCache {
		if cached, found, err := sc.cacheService.Get(c.Request.Context(), params.Fingerprint()); err == nil && found {
			c.JSON(http.StatusOK, responses.SearchResponse{
				Result:           cached,
				ProcessingTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:         true,
			})
			return
		}
	}

	result, err := sc.firmService.Search(c.Request.Context(), params)
	if err != nil {
		sc.logger.Error("search failed", zap.Error(err), zap.String("query", req.Query))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEARCH_ERROR",
			Message: "search failed: " + err.Error(),
		})
		return
	}

	if req.UseCache {
		if err := sc.cacheService.Set(c.Request.Context(), params.Fingerprint(), result); err != nil {
			sc.logger.Warn("failed to cache search result", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, responses.SearchResponse{
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         false,
	})
}

// GetFirm returns one firm by id.
func (sc *SearchController) GetFirm(c *gin.Context) {
	id := c.Param("firmID")
	if id == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_FIRM_ID",
			Message: "firm id is required",
		})
		return
	}

	firm, err := sc.firmService.GetFirm(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFirmNotFound) {
			c.JSON(http.StatusNotFound, responses.ErrorResponse{
				Error:   "FIRM_NOT_FOUND",
				Message: "no firm with id " + id,
			})
			return
		}
		sc.logger.Error("get firm failed", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LOOKUP_ERROR",
			Message: "firm lookup failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.FirmResponse{Firm: firm})
}

// HealthCheck reports service health.
func (sc *SearchController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(sc.startTime).String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"directory": "healthy",
			"cache":     "healthy",
			"database":  "healthy",
		},
	})
}
