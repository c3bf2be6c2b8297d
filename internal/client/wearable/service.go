package wearable

import "context"

type ActivityService interface {
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[ActivityRecord], error)
}

type SleepService interface {
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[SleepRecord], error)
}

type ProfileService interface {
	Get(ctx context.Context) (*AccountProfile, error)
}
