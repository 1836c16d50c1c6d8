package weddingdata

import (
	"context"

	"github.com/goliatone/go-builder/sections"
)

// ResolvedBindings is a section's bindings with ids swapped for the records
// they point at. Broken references degrade to missing entries, never to
// errors, so a section renders with whatever subset still exists.
type ResolvedBindings struct {
	Venues        []*Venue
	ScheduleItems []*ScheduleItem
	RegistryLinks []*RegistryLink
	FAQItems      []*FAQItem
	MediaAssets   []*MediaAsset
}

// Resolver resolves section bindings against a Provider.
type Resolver struct {
	provider Provider
}

// NewResolver constructs a resolver over the given provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve looks up every id a section's bindings carry. Provider errors
// abort the resolution; absent ids do not.
func (r *Resolver) Resolve(ctx context.Context, weddingID string, bindings sections.Bindings) (*ResolvedBindings, error) {
	out := &ResolvedBindings{}

	if len(bindings.VenueIDs) > 0 {
		venues, err := r.provider.Venues(ctx, weddingID, bindings.VenueIDs)
		if err != nil {
			return nil, err
		}
		out.Venues = venues
	}
	if len(bindings.ScheduleItemIDs) > 0 {
		items, err := r.provider.ScheduleItems(ctx, weddingID, bindings.ScheduleItemIDs)
		if err != nil {
			return nil, err
		}
		out.ScheduleItems = items
	}
	if len(bindings.LinkIDs) > 0 {
		links, err := r.provider.RegistryLinks(ctx, weddingID, bindings.LinkIDs)
		if err != nil {
			return nil, err
		}
		out.RegistryLinks = links
	}
	if len(bindings.FAQIDs) > 0 {
		items, err := r.provider.FAQItems(ctx, weddingID, bindings.FAQIDs)
		if err != nil {
			return nil, err
		}
		out.FAQItems = items
	}
	if len(bindings.MediaAssetIDs) > 0 {
		assets, err := r.provider.MediaAssets(ctx, weddingID, bindings.MediaAssetIDs)
		if err != nil {
			return nil, err
		}
		out.MediaAssets = assets
	}
	return out, nil
}
