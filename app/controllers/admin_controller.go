package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/responses"
	"github.com/servis-mreza/directory/app/services"
	"github.com/servis-mreza/directory/internal/search"
)

// AdminController handles operational endpoints: stats, cache invalidation
// and search index rebuilds.
type AdminController struct {
	firmService    *services.FirmService
	partnerService *services.PartnerService
	firmIndex      *search.FirmIndex
	cacheService   services.ICacheService
	logger         *zap.Logger
	startTime      time.Time
}

// NewAdminController creates the controller.
func NewAdminController(
	firmService *services.FirmService,
	partnerService *services.PartnerService,
	firmIndex *search.FirmIndex,
	cacheService services.ICacheService,
	logger *zap.Logger,
) *AdminController {
	return &AdminController{
		firmService:    firmService,
		partnerService: partnerService,
		firmIndex:      firmIndex,
		cacheService:   cacheService,
		logger:         logger,
		startTime:      time.Now(),
	}
}

// GetStats reports cache and directory counters.
func (ac *AdminController) GetStats(c *gin.Context) {
	cacheStats, err := ac.cacheService.GetStats(c.Request.Context())
	if err != nil {
		ac.logger.Warn("failed to read cache stats", zap.Error(err))
		cacheStats = &services.CacheStats{}
	}

	firmCount, err := ac.firmService.CountFirms(c.Request.Context())
	if err != nil {
		ac.logger.Warn("failed to count firms", zap.Error(err))
	}

	appCount, err := ac.partnerService.CountApplications(c.Request.Context())
	if err != nil {
		ac.logger.Warn("failed to count applications", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.AdminStatsResponse{
		CacheHitRate:  cacheStats.HitRate,
		CacheHits:     cacheStats.TotalHits,
		CacheMisses:   cacheStats.TotalMiss,
		CachedEntries: cacheStats.TotalItems,
		FirmCount:     firmCount,
		Applications:  appCount,
		UptimeSeconds: int64(time.Since(ac.startTime).Seconds()),
	})
}

// InvalidateCache drops all cached search results.
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	startTime := time.Now()

	if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
		ac.logger.Error("cache invalidation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "INVALIDATE_ERROR",
			Message: "cache invalidation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "cache cleared",
		Data: map[string]interface{}{
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}

// Reindex pushes index settings and reloads every firm into Meilisearch.
func (ac *AdminController) Reindex(c *gin.Context) {
	startTime := time.Now()

	if err := ac.firmIndex.BuildIndexes(); err != nil {
		ac.logger.Error("index settings update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REINDEX_ERROR",
			Message: "index settings update failed: " + err.Error(),
		})
		return
	}

	firms, err := ac.firmService.LoadFirms(c.Request.Context())
	if err != nil {
		ac.logger.Error("firm load for reindex failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REINDEX_ERROR",
			Message: "firm load failed: " + err.Error(),
		})
		return
	}

	if err := ac.firmIndex.IndexFirms(c.Request.Context(), firms); err != nil {
		ac.logger.Error("firm reindex failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REINDEX_ERROR",
			Message: "firm reindex failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "reindex complete",
		Data: map[string]interface{}{
			"firms_indexed":      len(firms),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}
