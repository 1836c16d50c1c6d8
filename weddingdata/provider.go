package weddingdata

import "context"

// Provider supplies the wedding data collections bindings reference.
// Lookups receive id sets and return whatever subset exists; callers must
// not assume every requested id comes back.
type Provider interface {
	Venues(ctx context.Context, weddingID string, ids []string) ([]*Venue, error)
	ScheduleItems(ctx context.Context, weddingID string, ids []string) ([]*ScheduleItem, error)
	RegistryLinks(ctx context.Context, weddingID string, ids []string) ([]*RegistryLink, error)
	FAQItems(ctx context.Context, weddingID string, ids []string) ([]*FAQItem, error)
	MediaAssets(ctx context.Context, weddingID string, ids []string) ([]*MediaAsset, error)
}
