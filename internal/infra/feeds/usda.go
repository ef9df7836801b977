package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/service"

	"github.com/pkg/errors"
)

const usdaRemedy = "Do not consume. Return to place of purchase or discard."

type usdaRawRecall struct {
	ID               int64  `json:"id"`
	RecallNumber     string `json:"recall_number"`
	RecallClass      string `json:"recall_class"`
	EstablishmentNm  string `json:"establishment_name"`
	ReasonForRecall  string `json:"reason_for_recall"`
	RecallDate       string `json:"recall_date"`
	PressReleaseDate string `json:"press_release_date"`
	PressReleaseURL  string `json:"press_release_url"`
	Products         []struct {
		ProductName string `json:"product_name"`
		PkgSizes    string `json:"pkg_sizes"`
	} `json:"products"`
}

// USDAAdapter fetches meat, poultry and egg recalls from the FSIS feed.
type USDAAdapter struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewUSDAAdapter creates the food-safety feed adapter.
func NewUSDAAdapter(client *http.Client, cfg *config.Config) service.FeedAdapter {
	return &USDAAdapter{
		client:    client,
		baseURL:   cfg.Feeds.USDA.BaseURL,
		userAgent: cfg.Feeds.UserAgent,
	}
}

func (a *USDAAdapter) Source() entity.RecallSource {
	return entity.SourceUSDA
}

// Fetch retrieves the full feed and applies the trailing window client-side
// using recall_date, falling back to press_release_date. Records where
// neither date parses are dropped.
func (a *USDAAdapter) Fetch(ctx context.Context, windowStart time.Time) ([]*entity.Recall, error) {
	endpoint := a.baseURL + "/fsis/api/recall/v/1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var raw []usdaRawRecall
	if err := getJSON(a.client, req, a.userAgent, &raw); err != nil {
		return nil, errors.Wrap(err, "USDA fetch")
	}

	var recalls []*entity.Recall
	for _, r := range raw {
		date := parseFlexibleDate(r.RecallDate)
		if date == nil {
			date = parseFlexibleDate(r.PressReleaseDate)
		}
		if date == nil || date.Before(windowStart) {
			continue
		}

		recalls = append(recalls, a.normalize(&r, date))
	}

	return recalls, nil
}

func (a *USDAAdapter) normalize(r *usdaRawRecall, date *time.Time) *entity.Recall {
	establishment := r.EstablishmentNm
	if establishment == "" {
		establishment = "Unknown"
	}

	externalID := r.RecallNumber
	if externalID == "" {
		externalID = fmt.Sprintf("%d", r.ID)
	}

	description := r.ReasonForRecall
	if description == "" && len(r.Products) > 0 {
		description = r.Products[0].ProductName
	}

	var hazard string
	if r.RecallClass != "" {
		hazard = fmt.Sprintf("Class %s recall", r.RecallClass)
	}

	products := make([]entity.AffectedProduct, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, entity.AffectedProduct{
			Brand:    r.EstablishmentNm,
			Name:     p.ProductName,
			UPC:      p.PkgSizes,
			Category: entity.CategoryFood,
		})
	}

	return &entity.Recall{
		Source:           entity.SourceUSDA,
		ExternalID:       "USDA-" + externalID,
		Title:            fmt.Sprintf("%s — %s Recall", establishment, r.RecallClass),
		Description:      strPtr(description),
		Hazard:           strPtr(hazard),
		Remedy:           strPtr(usdaRemedy),
		AffectedProducts: products,
		RecallDate:       date,
		URL:              strPtr(r.PressReleaseURL),
	}
}
