package wearable

import (
	"context"
	"net/http"
)

type activityService struct {
	client *Client
}

func (s *activityService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[ActivityRecord], error) {
	const route = "/v1/activity"

	var resp PaginatedResponse[ActivityRecord]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
