package sections

import (
	"time"
)

// Type identifies one placeable content block kind on a builder page.
type Type string

const (
	TypeHero     Type = "hero"
	TypeStory    Type = "story"
	TypeVenue    Type = "venue"
	TypeSchedule Type = "schedule"
	TypeTravel   Type = "travel"
	TypeRegistry Type = "registry"
	TypeFAQ      Type = "faq"
	TypeRSVP     Type = "rsvp"
	TypeGallery  Type = "gallery"
	TypeCustom   Type = "custom"
)

// Instance is the persisted, mutable representation of one placed section.
//
// Settings values are restricted to JSON scalars (string, bool, float64) so
// the instance round-trips through the persisted project document without
// loss. Unknown settings keys are preserved but never rendered.
type Instance struct {
	ID             string         `json:"id"`
	Type           Type           `json:"type"`
	Variant        string         `json:"variant"`
	Enabled        bool           `json:"enabled"`
	Locked         bool           `json:"locked"`
	OrderIndex     int            `json:"orderIndex"`
	Settings       map[string]any `json:"settings"`
	Bindings       Bindings       `json:"bindings"`
	StyleOverrides StyleOverrides `json:"styleOverrides"`
	Meta           Meta           `json:"meta"`
}

// Bindings holds weak references into external wedding-data collections.
// Only ids are stored; resolution happens at render time and broken
// references degrade to empty slots.
type Bindings struct {
	VenueIDs        []string `json:"venueIds,omitempty"`
	ScheduleItemIDs []string `json:"scheduleItemIds,omitempty"`
	LinkIDs         []string `json:"linkIds,omitempty"`
	FAQIDs          []string `json:"faqIds,omitempty"`
	MediaAssetIDs   []string `json:"mediaAssetIds,omitempty"`
}

// IsZero reports whether no binding slot carries ids.
func (b Bindings) IsZero() bool {
	return len(b.VenueIDs) == 0 &&
		len(b.ScheduleItemIDs) == 0 &&
		len(b.LinkIDs) == 0 &&
		len(b.FAQIDs) == 0 &&
		len(b.MediaAssetIDs) == 0
}

// Clone deep-copies the binding id slices.
func (b Bindings) Clone() Bindings {
	return Bindings{
		VenueIDs:        cloneStrings(b.VenueIDs),
		ScheduleItemIDs: cloneStrings(b.ScheduleItemIDs),
		LinkIDs:         cloneStrings(b.LinkIDs),
		FAQIDs:          cloneStrings(b.FAQIDs),
		MediaAssetIDs:   cloneStrings(b.MediaAssetIDs),
	}
}

// StyleOverrides layers visual overrides on top of the variant defaults.
type StyleOverrides struct {
	BackgroundColor   string `json:"backgroundColor,omitempty"`
	TextColor         string `json:"textColor,omitempty"`
	PaddingTop        string `json:"paddingTop,omitempty"`
	PaddingBottom     string `json:"paddingBottom,omitempty"`
	FontFamily        string `json:"fontFamily,omitempty"`
	CustomCSS         string `json:"customCss,omitempty"`
	SideImage         string `json:"sideImage,omitempty"`
	SideImagePosition string `json:"sideImagePosition,omitempty"`
	SideImageSize     string `json:"sideImageSize,omitempty"`
	SideImageFit      string `json:"sideImageFit,omitempty"`
}

// Meta carries instance timestamps as ISO-8601 strings so the persisted
// document round-trips through JSON without native-only types.
type Meta struct {
	CreatedAtISO string `json:"createdAtISO"`
	UpdatedAtISO string `json:"updatedAtISO"`
}

// NowISO formats the current UTC time in the timestamp format used across
// the document model.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Clone deep-copies the instance so mutations on the copy never leak into
// the source (duplicate isolation).
func (i *Instance) Clone() *Instance {
	if i == nil {
		return nil
	}
	cloned := *i
	cloned.Settings = cloneSettings(i.Settings)
	cloned.Bindings = i.Bindings.Clone()
	return &cloned
}

// Touch refreshes the update timestamp.
func (i *Instance) Touch() {
	i.Meta.UpdatedAtISO = NowISO()
}

func cloneSettings(settings map[string]any) map[string]any {
	if settings == nil {
		return nil
	}
	copied := make(map[string]any, len(settings))
	for key, value := range settings {
		copied[key] = value
	}
	return copied
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
