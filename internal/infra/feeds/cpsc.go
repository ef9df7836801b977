package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/service"

	"github.com/pkg/errors"
)

// cpscCategoryByCode maps the feed's numeric product category codes onto the
// app's closed category set. Unknown codes fall back to Other.
var cpscCategoryByCode = map[string]string{
	"1101": entity.CategoryElectronics,
	"1102": entity.CategoryElectronics,
	"1103": entity.CategoryElectronics,
	"0403": entity.CategoryToys,
	"0404": entity.CategoryToys,
	"0101": entity.CategoryAppliances,
	"0102": entity.CategoryAppliances,
	"0103": entity.CategoryAppliances,
	"0201": entity.CategoryFurniture,
	"0202": entity.CategoryFurniture,
	"0601": entity.CategoryClothing,
	"0701": entity.CategoryTools,
	"0702": entity.CategoryTools,
}

type cpscRawRecall struct {
	RecallID    int64  `json:"RecallID"`
	RecallDate  string `json:"RecallDate"`
	Title       string `json:"Title"`
	Headline    string `json:"Headline"`
	Description string `json:"Description"`
	URL         string `json:"URL"`
	Products    []struct {
		Name       string `json:"Name"`
		Model      string `json:"Model"`
		UPC        string `json:"UPC"`
		CategoryID string `json:"CategoryID"`
	} `json:"Products"`
	Manufacturers []struct {
		Name string `json:"Name"`
	} `json:"Manufacturers"`
	Hazards []struct {
		Name              string `json:"Name"`
		HazardDescription string `json:"HazardDescription"`
	} `json:"Hazards"`
	Remedies []struct {
		Name string `json:"Name"`
	} `json:"Remedies"`
}

// CPSCAdapter fetches consumer-product advisories from the CPSC REST feed.
type CPSCAdapter struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewCPSCAdapter creates the consumer-product feed adapter.
func NewCPSCAdapter(client *http.Client, cfg *config.Config) service.FeedAdapter {
	return &CPSCAdapter{
		client:    client,
		baseURL:   cfg.Feeds.CPSC.BaseURL,
		userAgent: cfg.Feeds.UserAgent,
	}
}

func (a *CPSCAdapter) Source() entity.RecallSource {
	return entity.SourceCPSC
}

// Fetch retrieves advisories with a recall date at or after windowStart.
// The upstream filters by date server-side.
func (a *CPSCAdapter) Fetch(ctx context.Context, windowStart time.Time) ([]*entity.Recall, error) {
	endpoint := fmt.Sprintf("%s/Recall?format=json&RecallDateFrom=%s",
		a.baseURL, url.QueryEscape(windowStart.Format("2006-01-02")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var raw []cpscRawRecall
	if err := getJSON(a.client, req, a.userAgent, &raw); err != nil {
		return nil, errors.Wrap(err, "CPSC fetch")
	}

	recalls := make([]*entity.Recall, 0, len(raw))
	for _, r := range raw {
		recalls = append(recalls, a.normalize(&r))
	}

	return recalls, nil
}

func (a *CPSCAdapter) normalize(r *cpscRawRecall) *entity.Recall {
	var brand string
	if len(r.Manufacturers) > 0 {
		brand = r.Manufacturers[0].Name
	}

	products := make([]entity.AffectedProduct, 0, len(r.Products))
	for _, p := range r.Products {
		category, ok := cpscCategoryByCode[p.CategoryID]
		if !ok {
			category = entity.CategoryOther
		}
		products = append(products, entity.AffectedProduct{
			Brand:    brand,
			Name:     p.Name,
			Model:    p.Model,
			UPC:      p.UPC,
			Category: category,
		})
	}

	title := r.Title
	if title == "" {
		title = r.Headline
	}
	if title == "" {
		title = "CPSC Recall"
	}

	var hazard string
	if len(r.Hazards) > 0 {
		hazard = r.Hazards[0].HazardDescription
		if hazard == "" {
			hazard = r.Hazards[0].Name
		}
	}

	var remedy string
	if len(r.Remedies) > 0 {
		remedy = r.Remedies[0].Name
	}

	return &entity.Recall{
		Source:           entity.SourceCPSC,
		ExternalID:       fmt.Sprintf("CPSC-%d", r.RecallID),
		Title:            title,
		Description:      strPtr(r.Description),
		Hazard:           strPtr(hazard),
		Remedy:           strPtr(remedy),
		AffectedProducts: products,
		RecallDate:       parseFlexibleDate(r.RecallDate),
		URL:              strPtr(r.URL),
	}
}
