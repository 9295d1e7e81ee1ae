package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/internal/geo"
	"github.com/servis-mreza/directory/internal/matcher"
	"github.com/servis-mreza/directory/internal/normalizer"
	"github.com/servis-mreza/directory/internal/pager"
)

// ErrFirmNotFound is returned when a firm id does not exist.
var ErrFirmNotFound = errors.New("firm not found")

// FirmService loads the firm directory and runs searches over it.
type FirmService struct {
	firms   *mongo.Collection
	matcher *matcher.Matcher
	logger  *zap.Logger
}

// NewFirmService creates the service over the firms collection.
func NewFirmService(db *mongo.Database, m *matcher.Matcher, logger *zap.Logger) *FirmService {
	return &FirmService{
		firms:   db.Collection("firms"),
		matcher: m,
		logger:  logger,
	}
}

// SearchParams are the inputs of one directory search. Location is the
// caller's position, nil when geolocation was denied or unavailable.
type SearchParams struct {
	Query    string
	City     string
	RadiusKm float64
	Location *geo.Point
	Page     int
	PageSize int
}

// Fingerprint is the cache key of the request: a hash of the normalized
// inputs. The location is rounded to ~100 m so nearby callers share entries.
func (p SearchParams) Fingerprint() string {
	loc := "none"
	if p.Location != nil {
		loc = fmt.Sprintf("%.3f,%.3f", p.Location.Lat, p.Location.Lng)
	}
	raw := fmt.Sprintf("%s|%s|%.1f|%s|%d|%d",
		normalizer.Normalize(p.Query),
		normalizer.NormalizePlace(p.City),
		p.RadiusKm,
		loc,
		p.Page,
		p.PageSize,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
}

// LoadFirms returns all firms, newest first.
func (fs *FirmService) LoadFirms(ctx context.Context) ([]models.Firm, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := fs.firms.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("load firms: %w", err)
	}
	defer cursor.Close(ctx)

	var firms []models.Firm
	if err := cursor.All(ctx, &firms); err != nil {
		return nil, fmt.Errorf("decode firms: %w", err)
	}

	// Distance is per-request state; start every firm at unknown.
	for i := range firms {
		firms[i].DistanceKm = models.UnknownDistance
	}
	return firms, nil
}

// CountFirms returns the directory size.
func (fs *FirmService) CountFirms(ctx context.Context) (int64, error) {
	n, err := fs.firms.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count firms: %w", err)
	}
	return n, nil
}

// GetFirm looks up a single firm by id.
func (fs *FirmService) GetFirm(ctx context.Context, id string) (*models.Firm, error) {
	var firm models.Firm
	err := fs.firms.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&firm)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFirmNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get firm: %w", err)
	}
	firm.DistanceKm = models.UnknownDistance
	return &firm, nil
}

// InsertFirm adds an approved firm to the directory.
func (fs *FirmService) InsertFirm(ctx context.Context, firm *models.Firm) error {
	if _, err := fs.firms.InsertOne(ctx, firm); err != nil {
		return fmt.Errorf("insert firm: %w", err)
	}
	return nil
}

// AnnotateDistances fills DistanceKm on every firm from the caller's
// location. Firms without coordinates, or all firms when loc is nil, get
// UnknownDistance so they sort last and stay out of the near bucket.
func AnnotateDistances(firms []models.Firm, loc *geo.Point) []models.Firm {
	out := make([]models.Firm, len(firms))
	copy(out, firms)

	for i := range out {
		out[i].DistanceKm = models.UnknownDistance
		if loc == nil {
			continue
		}
		if lat, lng, ok := out[i].Location(); ok {
			out[i].DistanceKm = geo.DistanceKm(*loc, geo.Point{Lat: lat, Lng: lng})
		}
	}
	return out
}

// Search runs the whole pipeline: load, annotate, match, bucket, page.
func (fs *FirmService) Search(ctx context.Context, p SearchParams) (*models.SearchResult, error) {
	firms, err := fs.LoadFirms(ctx)
	if err != nil {
		return nil, err
	}
	return fs.SearchIn(firms, p), nil
}

// SearchIn searches an already-loaded firm collection. Split out so the
// pipeline below the data access stays pure and testable.
func (fs *FirmService) SearchIn(firms []models.Firm, p SearchParams) *models.SearchResult {
	annotated := AnnotateDistances(firms, p.Location)
	buckets := fs.matcher.Search(p.Query, p.City, p.RadiusKm, annotated)

	nearTotal := pager.TotalPages(len(buckets.Near), p.PageSize)
	farTotal := pager.TotalPages(len(buckets.Far), p.PageSize)

	// One shared pager drives both sections; each bucket clamps it
	// independently before slicing.
	totalPages := nearTotal
	if farTotal > totalPages {
		totalPages = farTotal
	}
	page := pager.Clamp(p.Page, totalPages)

	return &models.SearchResult{
		Query:       p.Query,
		City:        p.City,
		RadiusKm:    p.RadiusKm,
		Page:        page,
		PageSize:    p.PageSize,
		Near:        buildBucket(buckets.Near, page, p.PageSize, nearTotal),
		Far:         buildBucket(buckets.Far, page, p.PageSize, farTotal),
		PageNumbers: pager.Window(page, totalPages),
	}
}

func buildBucket(firms []models.Firm, page, pageSize, totalPages int) models.ResultBucket {
	clamped := pager.Clamp(page, totalPages)
	slice := pager.Slice(firms, clamped, pageSize)

	items := make([]models.FirmSummary, 0, len(slice))
	for i := range slice {
		items = append(items, slice[i].Summary())
	}

	return models.ResultBucket{
		Items:      items,
		Total:      len(firms),
		Page:       clamped,
		TotalPages: totalPages,
	}
}
