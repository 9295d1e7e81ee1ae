// Package search wraps the Meilisearch indexes backing admin-side firm
// search and partner-application duplicate candidate retrieval. The results
// view never goes through here; its matching contract is internal/matcher.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/internal/normalizer"
)

// IndexConfig configures the Meilisearch connection.
type IndexConfig struct {
	Host             string
	APIKey           string
	FirmIndex        string
	ApplicationIndex string
	Timeout          time.Duration
}

// FirmIndex is the Meilisearch client for firms and partner applications.
type FirmIndex struct {
	client   meilisearch.ServiceManager
	logger   *zap.Logger
	firmIdx  string
	appIdx   string
	timeout  time.Duration
	catSyns  map[string][]string
}

// NewFirmIndex connects to Meilisearch and verifies it is reachable.
func NewFirmIndex(cfg IndexConfig, cats []models.Category, logger *zap.Logger) (*FirmIndex, error) {
	client := meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey))

	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("meilisearch unreachable: %w", err)
	}

	// The category synonym table doubles as Meilisearch synonyms so that
	// admin-side queries expand the same way the results view does.
	syns := make(map[string][]string, len(cats))
	for _, cat := range cats {
		canon := normalizer.Normalize(cat.Key)
		var alts []string
		for _, s := range cat.Synonyms {
			if n := normalizer.Normalize(s); n != "" && n != canon {
				alts = append(alts, n)
			}
		}
		if len(alts) > 0 {
			syns[canon] = alts
		}
	}

	return &FirmIndex{
		client:  client,
		logger:  logger,
		firmIdx: cfg.FirmIndex,
		appIdx:  cfg.ApplicationIndex,
		timeout: cfg.Timeout,
		catSyns: syns,
	}, nil
}

// BuildIndexes pushes index settings. Safe to call on every startup.
func (fi *FirmIndex) BuildIndexes() error {
	firmSettings := &meilisearch.Settings{
		SearchableAttributes: []string{"name", "city", "municipality", "address", "services"},
		FilterableAttributes: []string{"city_norm"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
		Synonyms:             fi.catSyns,
	}
	if _, err := fi.client.Index(fi.firmIdx).UpdateSettings(firmSettings); err != nil {
		return fmt.Errorf("update firm index settings: %w", err)
	}

	appSettings := &meilisearch.Settings{
		SearchableAttributes: []string{"company_name", "address_norm", "phone_norm"},
		FilterableAttributes: []string{"city_norm", "status"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
	}
	if _, err := fi.client.Index(fi.appIdx).UpdateSettings(appSettings); err != nil {
		return fmt.Errorf("update application index settings: %w", err)
	}

	return nil
}

type firmDoc struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Municipality string   `json:"municipality,omitempty"`
	Address      string   `json:"address"`
	Services     []string `json:"services"`
	CityNorm     string   `json:"city_norm"`
}

// IndexFirms replaces the firm documents in Meilisearch.
func (fi *FirmIndex) IndexFirms(ctx context.Context, firms []models.Firm) error {
	if len(firms) == 0 {
		return nil
	}

	docs := make([]firmDoc, 0, len(firms))
	for _, f := range firms {
		doc := firmDoc{
			ID:       f.ID,
			Name:     f.Name,
			City:     f.City,
			Address:  f.Address,
			Services: f.Services,
			CityNorm: normalizer.NormalizePlace(f.Area()),
		}
		if f.Municipality != nil {
			doc.Municipality = *f.Municipality
		}
		docs = append(docs, doc)
	}

	if _, err := fi.client.Index(fi.firmIdx).AddDocuments(docs); err != nil {
		return fmt.Errorf("index firms: %w", err)
	}
	fi.logger.Info("indexed firms", zap.Int("count", len(docs)))
	return nil
}

type applicationDoc struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	CityNorm    string `json:"city_norm"`
	AddressNorm string `json:"address_norm"`
	PhoneNorm   string `json:"phone_norm"`
	Status      string `json:"status"`
}

// IndexApplication adds one partner application to the duplicate-candidate
// index.
func (fi *FirmIndex) IndexApplication(ctx context.Context, app *models.PartnerApplication) error {
	doc := applicationDoc{
		ID:          app.ID,
		CompanyName: app.CompanyName,
		CityNorm:    app.CityNorm,
		AddressNorm: app.AddressNorm,
		PhoneNorm:   app.PhoneNorm,
		Status:      app.Status,
	}
	if _, err := fi.client.Index(fi.appIdx).AddDocuments([]applicationDoc{doc}); err != nil {
		return fmt.Errorf("index application: %w", err)
	}
	return nil
}

// ApplicationCandidate is one potential duplicate returned by Meilisearch,
// before the fuzzy-metric verification in the partner service.
type ApplicationCandidate struct {
	ID          string
	CompanyName string
	CityNorm    string
	AddressNorm string
	PhoneNorm   string
}

// SearchApplications retrieves duplicate candidates for an address
// fingerprint, optionally restricted to one normalized city.
func (fi *FirmIndex) SearchApplications(ctx context.Context, addressNorm, cityNorm string, limit int) ([]ApplicationCandidate, error) {
	if addressNorm == "" {
		return nil, errors.New("empty address fingerprint")
	}

	req := &meilisearch.SearchRequest{
		Limit: int64(limit),
	}
	if cityNorm != "" {
		req.Filter = fmt.Sprintf("city_norm = %q", cityNorm)
	}

	result, err := fi.client.Index(fi.appIdx).Search(addressNorm, req)
	if err != nil {
		return nil, fmt.Errorf("search applications: %w", err)
	}

	var out []ApplicationCandidate
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}

		var c ApplicationCandidate
		if id, ok := hitMap["id"].(string); ok {
			c.ID = id
		}
		if name, ok := hitMap["company_name"].(string); ok {
			c.CompanyName = name
		}
		if city, ok := hitMap["city_norm"].(string); ok {
			c.CityNorm = city
		}
		if addr, ok := hitMap["address_norm"].(string); ok {
			c.AddressNorm = addr
		}
		if phone, ok := hitMap["phone_norm"].(string); ok {
			c.PhoneNorm = phone
		}
		out = append(out, c)
	}

	return out, nil
}

// SearchFirms is the admin-side firm lookup (typo-tolerant, synonym-aware on
// the Meilisearch side).
func (fi *FirmIndex) SearchFirms(ctx context.Context, query string, limit int) ([]string, error) {
	result, err := fi.client.Index(fi.firmIdx).Search(query, &meilisearch.SearchRequest{Limit: int64(limit)})
	if err != nil {
		return nil, fmt.Errorf("search firms: %w", err)
	}

	var ids []string
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := hitMap["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
