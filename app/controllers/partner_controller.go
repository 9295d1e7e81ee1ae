package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/requests"
	"github.com/servis-mreza/directory/app/responses"
	"github.com/servis-mreza/directory/app/services"
)

// PartnerController handles firm registration.
type PartnerController struct {
	partnerService *services.PartnerService
	logger         *zap.Logger
}

// NewPartnerController creates the controller.
func NewPartnerController(partnerService *services.PartnerService, logger *zap.Logger) *PartnerController {
	return &PartnerController{
		partnerService: partnerService,
		logger:         logger,
	}
}

// Apply submits a partner application. A duplicate hit returns 409 with the
// match details so the client can ask the applicant to confirm and resubmit
// with force set.
func (pc *PartnerController) Apply(c *gin.Context) {
	var req requests.PartnerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	intake := services.Intake{
		CompanyName:  req.CompanyName,
		City:         req.City,
		Municipality: req.Municipality,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Tags:         req.Tags,
		WorkingHours: req.WorkingHours,
		Description:  req.Description,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}

	outcome, err := pc.partnerService.Apply(c.Request.Context(), intake, req.Force)
	if err != nil {
		pc.logger.Error("application failed", zap.Error(err), zap.String("company", req.CompanyName))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "APPLICATION_ERROR",
			Message: "application failed: " + err.Error(),
		})
		return
	}

	if !outcome.Accepted {
		c.JSON(http.StatusConflict, responses.PartnerApplyResponse{
			Accepted:  false,
			Duplicate: outcome.Duplicate,
			Message:   "a similar application already exists",
		})
		return
	}

	c.JSON(http.StatusCreated, responses.PartnerApplyResponse{
		Accepted:      true,
		ApplicationID: outcome.ApplicationID,
		Message:       "application received",
	})
}

// GetApplication returns one application by id.
func (pc *PartnerController) GetApplication(c *gin.Context) {
	id := c.Param("applicationID")
	app, err := pc.partnerService.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "APPLICATION_NOT_FOUND",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, app)
}
