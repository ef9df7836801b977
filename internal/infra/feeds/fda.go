package feeds

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/service"

	"github.com/pkg/errors"
)

const fdaRemedy = "Contact manufacturer or retailer for instructions"

type fdaRawRecord struct {
	RecallNumber       string `json:"recall_number"`
	EventID            string `json:"event_id"`
	RecallingFirm      string `json:"recalling_firm"`
	ProductDescription string `json:"product_description"`
	ReasonForRecall    string `json:"reason_for_recall"`
	CodeInfo           string `json:"code_info"`
	Classification     string `json:"classification"`
	RecallInitDate     string `json:"recall_initiation_date"`
}

type fdaResponse struct {
	Results []fdaRawRecord `json:"results"`
}

// FDAAdapter fetches the three FDA enforcement sub-feeds (food, drug,
// device). Each sub-feed is fetched and filtered independently; a failed
// sub-feed contributes nothing without failing the others.
type FDAAdapter struct {
	logger    *slog.Logger
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewFDAAdapter creates the food/drug/device feed adapter.
func NewFDAAdapter(logger *slog.Logger, client *http.Client, cfg *config.Config) service.FeedAdapter {
	return &FDAAdapter{
		logger:    logger,
		client:    client,
		baseURL:   cfg.Feeds.FDA.BaseURL,
		userAgent: cfg.Feeds.UserAgent,
	}
}

func (a *FDAAdapter) Source() entity.RecallSource {
	return entity.SourceFDA
}

// Fetch retrieves all three enforcement sub-feeds. The upstream cannot
// filter by date in all cases, so the trailing window is applied
// client-side; records without a parseable initiation date are kept.
func (a *FDAAdapter) Fetch(ctx context.Context, windowStart time.Time) ([]*entity.Recall, error) {
	subFeeds := []struct {
		path     string
		category string
	}{
		{"/food/enforcement.json", entity.CategoryFood},
		{"/drug/enforcement.json", entity.CategoryMedical},
		{"/device/enforcement.json", entity.CategoryMedical},
	}

	var recalls []*entity.Recall

	for _, feed := range subFeeds {
		endpoint := a.baseURL + feed.path + "?limit=50&sort=recall_initiation_date:desc"

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		var resp fdaResponse
		if err := getJSON(a.client, req, a.userAgent, &resp); err != nil {
			a.logger.Warn("FDA sub-feed fetch failed",
				slog.String("path", feed.path),
				slog.Any("error", err),
			)

			continue
		}

		for _, r := range resp.Results {
			if date := parseFDADate(r.RecallInitDate); date != nil && date.Before(windowStart) {
				continue
			}

			externalID := r.RecallNumber
			if externalID == "" {
				externalID = r.EventID
			}
			if externalID == "" {
				// No stable key means no idempotent upsert; drop it.
				a.logger.Warn("FDA record without recall_number or event_id, skipping",
					slog.String("path", feed.path),
				)

				continue
			}

			hazard := r.CodeInfo
			if hazard == "" {
				hazard = r.Classification
			}

			title := truncateString(r.ProductDescription, 200)
			if title == "" {
				title = "FDA Recall"
			}

			recalls = append(recalls, &entity.Recall{
				Source:      entity.SourceFDA,
				ExternalID:  "FDA-" + externalID,
				Title:       title,
				Description: strPtr(r.ReasonForRecall),
				Hazard:      strPtr(hazard),
				Remedy:      strPtr(fdaRemedy),
				AffectedProducts: []entity.AffectedProduct{{
					Brand:    r.RecallingFirm,
					Name:     r.ProductDescription,
					Category: feed.category,
				}},
				RecallDate: parseFDADate(r.RecallInitDate),
			})
		}
	}

	return recalls, nil
}

// parseFDADate parses the feed's compact YYYYMMDD date format.
func parseFDADate(raw string) *time.Time {
	if len(raw) != 8 {
		return nil
	}
	t, err := time.Parse("20060102", raw)
	if err != nil {
		return nil
	}

	return &t
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
