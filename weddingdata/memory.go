package weddingdata

import (
	"context"
	"sync"
)

// MemoryProvider is an in-memory Provider for tests, examples, and hosts
// that load wedding data upfront. Unknown ids are silently omitted from
// results, matching the weak-reference contract.
type MemoryProvider struct {
	mu            sync.RWMutex
	venues        map[string]*Venue
	scheduleItems map[string]*ScheduleItem
	registryLinks map[string]*RegistryLink
	faqItems      map[string]*FAQItem
	mediaAssets   map[string]*MediaAsset
}

// NewMemoryProvider constructs an empty provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		venues:        make(map[string]*Venue),
		scheduleItems: make(map[string]*ScheduleItem),
		registryLinks: make(map[string]*RegistryLink),
		faqItems:      make(map[string]*FAQItem),
		mediaAssets:   make(map[string]*MediaAsset),
	}
}

// PutVenue stores or replaces a venue.
func (m *MemoryProvider) PutVenue(v *Venue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.venues[v.ID] = v
}

// PutScheduleItem stores or replaces a schedule item.
func (m *MemoryProvider) PutScheduleItem(item *ScheduleItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleItems[item.ID] = item
}

// PutRegistryLink stores or replaces a registry link.
func (m *MemoryProvider) PutRegistryLink(link *RegistryLink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registryLinks[link.ID] = link
}

// PutFAQItem stores or replaces a FAQ item.
func (m *MemoryProvider) PutFAQItem(item *FAQItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faqItems[item.ID] = item
}

// PutMediaAsset stores or replaces a media asset.
func (m *MemoryProvider) PutMediaAsset(asset *MediaAsset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mediaAssets[asset.ID] = asset
}

// Venues satisfies Provider.
func (m *MemoryProvider) Venues(_ context.Context, weddingID string, ids []string) ([]*Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Venue, 0, len(ids))
	for _, id := range ids {
		if v, ok := m.venues[id]; ok && v.WeddingID == weddingID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ScheduleItems satisfies Provider.
func (m *MemoryProvider) ScheduleItems(_ context.Context, weddingID string, ids []string) ([]*ScheduleItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*ScheduleItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := m.scheduleItems[id]; ok && item.WeddingID == weddingID {
			out = append(out, item)
		}
	}
	return out, nil
}

// RegistryLinks satisfies Provider.
func (m *MemoryProvider) RegistryLinks(_ context.Context, weddingID string, ids []string) ([]*RegistryLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*RegistryLink, 0, len(ids))
	for _, id := range ids {
		if link, ok := m.registryLinks[id]; ok && link.WeddingID == weddingID {
			out = append(out, link)
		}
	}
	return out, nil
}

// FAQItems satisfies Provider.
func (m *MemoryProvider) FAQItems(_ context.Context, weddingID string, ids []string) ([]*FAQItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*FAQItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := m.faqItems[id]; ok && item.WeddingID == weddingID {
			out = append(out, item)
		}
	}
	return out, nil
}

// MediaAssets satisfies Provider.
func (m *MemoryProvider) MediaAssets(_ context.Context, weddingID string, ids []string) ([]*MediaAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*MediaAsset, 0, len(ids))
	for _, id := range ids {
		if asset, ok := m.mediaAssets[id]; ok && asset.WeddingID == weddingID {
			out = append(out, asset)
		}
	}
	return out, nil
}
