package wearable

import (
	"context"
	"net/http"
)

type sleepService struct {
	client *Client
}

func (s *sleepService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[SleepRecord], error) {
	const route = "/v1/sleep"

	var resp PaginatedResponse[SleepRecord]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
