package reviews

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"googlemaps.github.io/maps"
)

var (
	ErrNotConfigured = errors.New("google places not configured")
	ErrPlaceNotFound = errors.New("business place not found")
)

var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
	maps.PlaceDetailsFieldMaskReviews,
}

// PlacesProvider reads the business rating and latest reviews from Google Places.
// The place id is resolved once by text search and then reused.
type PlacesProvider struct {
	client *maps.Client
	query  string

	mu      sync.Mutex
	placeID string
}

var _ interfaces.IReviewsProvider = (*PlacesProvider)(nil)

func NewPlacesProvider(apiKey, query, baseURL string, timeout time.Duration) (*PlacesProvider, error) {
	if apiKey == "" || query == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create places client: %w", err)
	}
	return &PlacesProvider{client: client, query: query}, nil
}

func (p *PlacesProvider) FetchReviews(ctx context.Context) (entities.ReviewSummary, error) {
	placeID, err := p.resolvePlaceID(ctx)
	if err != nil {
		return entities.ReviewSummary{}, err
	}

	details, err := p.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: placeID, Fields: detailFields})
	if err != nil {
		log.Printf("[reviews][provider] place details failed place_id=%s err=%v", placeID, err)
		return entities.ReviewSummary{}, fmt.Errorf("%w: %v", interfaces.ErrProviderUpstream, err)
	}

	out := entities.ReviewSummary{
		Rating:       float64(details.Rating),
		TotalRatings: details.UserRatingsTotal,
		Reviews:      make([]entities.Review, 0, len(details.Reviews)),
		Source:       entities.ReviewSourceGoogle,
	}
	for _, r := range details.Reviews {
		out.Reviews = append(out.Reviews, entities.Review{
			AuthorName:   r.AuthorName,
			Rating:       r.Rating,
			Text:         r.Text,
			RelativeTime: r.RelativeTimeDescription,
			Time:         int64(r.Time),
			PhotoURL:     r.AuthorProfilePhoto,
		})
	}
	log.Printf("[reviews][provider] fetched rating=%.1f total=%d reviews=%d", out.Rating, out.TotalRatings, len(out.Reviews))
	return out, nil
}

func (p *PlacesProvider) resolvePlaceID(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.placeID != "" {
		return p.placeID, nil
	}

	res, err := p.client.TextSearch(ctx, &maps.TextSearchRequest{Query: p.query})
	if err != nil {
		log.Printf("[reviews][provider] text search failed query=%q err=%v", p.query, err)
		return "", fmt.Errorf("%w: %v", interfaces.ErrProviderUpstream, err)
	}
	if len(res.Results) == 0 || res.Results[0].PlaceID == "" {
		return "", ErrPlaceNotFound
	}
	p.placeID = res.Results[0].PlaceID
	return p.placeID, nil
}
