package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/config"
	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/helpers/utils"
	"github.com/servis-mreza/directory/internal/normalizer"
	"github.com/servis-mreza/directory/internal/search"
)

var reNonDigit = regexp.MustCompile(`\D`)

// NormalizePhone reduces a phone number to its digits.
func NormalizePhone(s string) string {
	return reNonDigit.ReplaceAllString(s, "")
}

// IntakeOutcome is the result of submitting a partner application.
type IntakeOutcome struct {
	Accepted      bool                   `json:"accepted"`
	ApplicationID string                 `json:"application_id,omitempty"`
	Duplicate     *models.DuplicateMatch `json:"duplicate,omitempty"`
}

// Intake is the payload of a new application, pre-validation.
type Intake struct {
	CompanyName  string
	City         string
	Municipality string
	Address      string
	Phone        string
	Email        *string
	Tags         []string
	WorkingHours string
	Description  string
	Lat          *float64
	Lng          *float64
}

// PartnerService handles firm registration: fingerprinting, duplicate
// detection and persistence of applications.
type PartnerService struct {
	applications *mongo.Collection
	index        *search.FirmIndex
	dedup        config.DedupCfg
	logger       *zap.Logger
}

// NewPartnerService creates the service over the partner_applications
// collection and the Meilisearch candidate index.
func NewPartnerService(db *mongo.Database, index *search.FirmIndex, dedup config.DedupCfg, logger *zap.Logger) *PartnerService {
	return &PartnerService{
		applications: db.Collection("partner_applications"),
		index:        index,
		dedup:        dedup,
		logger:       logger,
	}
}

// Apply submits an application. Unless force is set (the applicant confirmed
// "this really is a different firm"), a duplicate check runs first and a hit
// is returned instead of inserting.
func (ps *PartnerService) Apply(ctx context.Context, in Intake, force bool) (*IntakeOutcome, error) {
	app := &models.PartnerApplication{
		ID:           utils.GenerateUUID(),
		CompanyName:  in.CompanyName,
		City:         in.City,
		CityNorm:     normalizer.NormalizePlace(in.City),
		Municipality: in.Municipality,
		Address:      in.Address,
		AddressNorm:  normalizer.Normalize(in.Address),
		Phone:        in.Phone,
		PhoneNorm:    NormalizePhone(in.Phone),
		Email:        in.Email,
		Tags:         in.Tags,
		WorkingHours: in.WorkingHours,
		Description:  in.Description,
		Lat:          in.Lat,
		Lng:          in.Lng,
		Status:       models.ApplicationStatusPending,
		DupConfirmed: force,
		CreatedAt:    time.Now().UTC(),
	}

	if !force {
		dup, err := ps.findDuplicate(ctx, app)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			ps.logger.Info("duplicate application rejected",
				zap.String("company", app.CompanyName),
				zap.String("dup_type", dup.DupType),
				zap.String("existing", dup.ApplicationID))
			return &IntakeOutcome{Accepted: false, Duplicate: dup}, nil
		}
	}

	if _, err := ps.applications.InsertOne(ctx, app); err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	if err := ps.index.IndexApplication(ctx, app); err != nil {
		// The application is persisted; the candidate index can be rebuilt.
		ps.logger.Warn("failed to index application", zap.Error(err), zap.String("id", app.ID))
	}

	ps.logger.Info("partner application accepted", zap.String("id", app.ID), zap.String("company", app.CompanyName))
	return &IntakeOutcome{Accepted: true, ApplicationID: app.ID}, nil
}

// findDuplicate retrieves candidates from Meilisearch and verifies them with
// fuzzy metrics: near-identical phone digits, or a near-identical address
// fingerprint within the same city.
func (ps *PartnerService) findDuplicate(ctx context.Context, app *models.PartnerApplication) (*models.DuplicateMatch, error) {
	candidates, err := ps.index.SearchApplications(ctx, app.AddressNorm, app.CityNorm, ps.dedup.Candidates)
	if err != nil {
		return nil, fmt.Errorf("duplicate candidate search: %w", err)
	}

	for _, cand := range candidates {
		if app.PhoneNorm != "" && cand.PhoneNorm != "" {
			if levenshtein.ComputeDistance(app.PhoneNorm, cand.PhoneNorm) <= ps.dedup.MaxPhoneEdits {
				return &models.DuplicateMatch{
					ApplicationID: cand.ID,
					CompanyName:   cand.CompanyName,
					DupType:       models.DupTypePhone,
				}, nil
			}
		}

		if cand.CityNorm != app.CityNorm || cand.AddressNorm == "" {
			continue
		}
		jw := smetrics.JaroWinkler(app.AddressNorm, cand.AddressNorm, 0.7, 4)
		if jw >= ps.dedup.JWThreshold {
			return &models.DuplicateMatch{
				ApplicationID: cand.ID,
				CompanyName:   cand.CompanyName,
				DupType:       models.DupTypeAddress,
			}, nil
		}
	}

	return nil, nil
}

// CountApplications returns the number of stored applications.
func (ps *PartnerService) CountApplications(ctx context.Context) (int64, error) {
	n, err := ps.applications.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// GetApplication looks up one application by id.
func (ps *PartnerService) GetApplication(ctx context.Context, id string) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	err := ps.applications.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&app)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("application %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &app, nil
}
