// ABOUTME: Newsfeed handlers for the Huma API
// ABOUTME: Provides the feed listing endpoint and the fan-out trigger

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsfeed-app-api/api/dto/mappers"
	"newsfeed-app-api/api/dto/requests"
	"newsfeed-app-api/api/dto/responses"
	"newsfeed-app-api/core/domain"
	"newsfeed-app-api/core/fanout"
)

// NewsFeedService interface defines the methods needed from the feed read service
type NewsFeedService interface {
	ListNewsfeeds(ctx context.Context, userID string) ([]domain.NewsFeed, error)
}

// FanoutService interface defines the methods needed from the fan-out service
type FanoutService interface {
	Fanout(ctx context.Context, postID, publisherID string) (*fanout.Summary, error)
}

// NewsFeedHandler handles newsfeed-related HTTP requests
type NewsFeedHandler struct {
	newsfeedService NewsFeedService
	fanoutService   FanoutService
}

// NewNewsFeedHandler creates a new newsfeed handler
func NewNewsFeedHandler(newsfeedService NewsFeedService, fanoutService FanoutService) *NewsFeedHandler {
	return &NewsFeedHandler{
		newsfeedService: newsfeedService,
		fanoutService:   fanoutService,
	}
}

// RegisterRoutes registers all newsfeed-related routes
func (h *NewsFeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listNewsfeeds",
		Method:      http.MethodGet,
		Path:        "/newsfeeds",
		Summary:     "List a user's news feed",
		Description: "Returns the user's feed entries most recent first, served from the feed cache",
		Tags:        []string{"Newsfeeds"},
	}, h.ListNewsfeeds)

	huma.Register(api, huma.Operation{
		OperationID: "fanoutPost",
		Method:      http.MethodPost,
		Path:        "/newsfeeds/fanout",
		Summary:     "Fan a published post out to follower feeds",
		Description: "Writes the publisher's own feed entry synchronously and dispatches follower batches asynchronously",
		Tags:        []string{"Newsfeeds"},
	}, h.Fanout)
}

// ListNewsfeedsInput defines the input for the ListNewsfeeds operation
type ListNewsfeedsInput struct {
	UserID string `query:"user_id" required:"true" minLength:"1" doc:"ID of the feed owner"`
}

// ListNewsfeedsOutput defines the output for the ListNewsfeeds operation
type ListNewsfeedsOutput struct {
	Body responses.ListNewsfeedsResponse
}

// ListNewsfeeds handles the GET /newsfeeds endpoint
func (h *NewsFeedHandler) ListNewsfeeds(ctx context.Context, input *ListNewsfeedsInput) (*ListNewsfeedsOutput, error) {
	entries, err := h.newsfeedService.ListNewsfeeds(ctx, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListNewsfeedsOutput{
		Body: responses.ListNewsfeedsResponse{
			Newsfeeds: mappers.ToNewsFeedEntries(entries),
		},
	}, nil
}

// FanoutInput defines the input for the Fanout operation
type FanoutInput struct {
	Body requests.FanoutRequest `json:"body"`
}

// FanoutOutput defines the output for the Fanout operation
type FanoutOutput struct {
	Body responses.FanoutResponse
}

// Fanout handles the POST /newsfeeds/fanout endpoint
func (h *NewsFeedHandler) Fanout(ctx context.Context, input *FanoutInput) (*FanoutOutput, error) {
	summary, err := h.fanoutService.Fanout(ctx, input.Body.PostID, input.Body.PublisherID)
	if err != nil {
		// A summary alongside the error means some batches were
		// enqueued; the client retries the fan-out as a unit and the
		// idempotent insert absorbs the overlap.
		return nil, toHumaError(err)
	}

	return &FanoutOutput{
		Body: mappers.ToFanoutResponse(summary),
	}, nil
}
