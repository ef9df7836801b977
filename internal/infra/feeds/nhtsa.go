package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/domain/service"

	"golang.org/x/sync/errgroup"
)

type nhtsaRawRecall struct {
	NHTSACampaignNumber string `json:"NHTSACampaignNumber"`
	Manufacturer        string `json:"Manufacturer"`
	Component           string `json:"Component"`
	Subject             string `json:"Subject"`
	Summary             string `json:"Summary"`
	Consequence         string `json:"Consequence"`
	Remedy              string `json:"Remedy"`
	ReportReceivedDate  string `json:"ReportReceivedDate"`
}

type nhtsaResponse struct {
	Results []nhtsaRawRecall `json:"results"`
}

// vehicleQuery is the deduplicated upstream query key. Two possessions of
// the same make, model and year produce one upstream request.
type vehicleQuery struct {
	make  string
	model string
	year  int
}

// NHTSAAdapter is possession-driven: instead of polling a firehose it queries
// the vehicle safety API once per distinct registered vehicle.
type NHTSAAdapter struct {
	logger        *slog.Logger
	client        *http.Client
	registryRepo  repository.RegistryRepository
	baseURL       string
	userAgent     string
	maxConcurrent int

	now func() time.Time
}

// NewNHTSAAdapter creates the vehicle feed adapter.
func NewNHTSAAdapter(
	logger *slog.Logger,
	client *http.Client,
	registryRepo repository.RegistryRepository,
	cfg *config.Config,
) service.FeedAdapter {
	return &NHTSAAdapter{
		logger:        logger,
		client:        client,
		registryRepo:  registryRepo,
		baseURL:       cfg.Feeds.NHTSA.BaseURL,
		userAgent:     cfg.Feeds.UserAgent,
		maxConcurrent: cfg.Feeds.NHTSA.MaxConcurrent,
		now:           time.Now,
	}
}

func (a *NHTSAAdapter) Source() entity.RecallSource {
	return entity.SourceNHTSA
}

// Fetch queries one campaign list per distinct (make, model, year) among the
// registered vehicles. The trailing window does not apply here: a campaign
// is relevant for as long as the vehicle is registered. A failed query skips
// that vehicle only; campaigns are deduplicated across the whole run.
func (a *NHTSAAdapter) Fetch(ctx context.Context, _ time.Time) ([]*entity.Recall, error) {
	vehicles, err := a.registryRepo.ListVehiclePossessions(ctx)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, nil
	}

	queries := a.collectQueries(vehicles)

	var (
		mu      sync.Mutex
		seen    = make(map[string]struct{})
		recalls []*entity.Recall
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.maxConcurrent)
	for _, q := range queries {
		group.Go(func() error {
			results, fetchErr := a.fetchCampaigns(groupCtx, q)
			if fetchErr != nil {
				a.logger.Warn("NHTSA vehicle query failed, skipping",
					slog.String("make", q.make),
					slog.String("model", q.model),
					slog.Int("year", q.year),
					slog.Any("error", fetchErr),
				)

				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			for _, r := range results {
				if r.NHTSACampaignNumber == "" {
					continue
				}
				externalID := "NHTSA-" + r.NHTSACampaignNumber
				if _, dup := seen[externalID]; dup {
					continue
				}
				seen[externalID] = struct{}{}
				recalls = append(recalls, a.normalize(&r, q))
			}

			return nil
		})
	}
	// Per-query errors are swallowed above.
	_ = group.Wait()

	return recalls, nil
}

// collectQueries derives the distinct upstream query keys from the registered
// vehicles. Make and model are trimmed and upper-cased; the model year falls
// back to the current year when no purchase date is recorded.
func (a *NHTSAAdapter) collectQueries(vehicles []*entity.Possession) []vehicleQuery {
	currentYear := a.now().Year()

	seen := make(map[vehicleQuery]struct{}, len(vehicles))
	queries := make([]vehicleQuery, 0, len(vehicles))
	for _, v := range vehicles {
		make := strings.ToUpper(strings.TrimSpace(v.Brand))
		if make == "" {
			continue
		}

		q := vehicleQuery{
			make:  make,
			model: strings.ToUpper(strings.TrimSpace(v.Model)),
			year:  currentYear,
		}
		if v.PurchaseDate != nil {
			q.year = v.PurchaseDate.Year()
		}

		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		queries = append(queries, q)
	}

	return queries
}

func (a *NHTSAAdapter) fetchCampaigns(ctx context.Context, q vehicleQuery) ([]nhtsaRawRecall, error) {
	endpoint := fmt.Sprintf("%s/recalls/recallsByVehicle?make=%s&modelYear=%d",
		a.baseURL, url.QueryEscape(q.make), q.year)
	if q.model != "" {
		endpoint += "&model=" + url.QueryEscape(q.model)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var resp nhtsaResponse
	if err := getJSON(a.client, req, a.userAgent, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func (a *NHTSAAdapter) normalize(r *nhtsaRawRecall, q vehicleQuery) *entity.Recall {
	manufacturer := r.Manufacturer
	if manufacturer == "" {
		manufacturer = q.make
	}

	component := r.Component
	if component == "" {
		component = "Vehicle"
	}

	return &entity.Recall{
		Source:      entity.SourceNHTSA,
		ExternalID:  "NHTSA-" + r.NHTSACampaignNumber,
		Title:       fmt.Sprintf("%s %s Recall", manufacturer, component),
		Description: strPtr(r.Summary),
		Hazard:      strPtr(r.Consequence),
		Remedy:      strPtr(r.Remedy),
		AffectedProducts: []entity.AffectedProduct{{
			Brand:    manufacturer,
			Name:     r.Subject,
			Model:    q.model,
			Category: entity.CategoryVehicles,
		}},
		RecallDate: parseFlexibleDate(r.ReportReceivedDate),
		URL:        strPtr("https://www.nhtsa.gov/vehicle-safety/recalls#" + r.NHTSACampaignNumber),
	}
}
