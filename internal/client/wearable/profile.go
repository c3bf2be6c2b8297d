package wearable

import (
	"context"
	"net/http"
)

type profileService struct {
	client *Client
}

func (s *profileService) Get(ctx context.Context) (*AccountProfile, error) {
	const route = "/v1/profile"

	var profile AccountProfile
	if err := s.client.do(ctx, http.MethodGet, route, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
