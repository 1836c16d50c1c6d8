package weddingdata

// Wedding data collections live outside the builder document. Sections
// reference them by id through bindings; these types are what those ids
// resolve to at render time.

// Venue is one ceremony or reception location.
type Venue struct {
	ID        string  `json:"id"`
	WeddingID string  `json:"weddingId"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	MapURL    string  `json:"mapUrl,omitempty"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// ScheduleItem is one event on the wedding day timeline.
type ScheduleItem struct {
	ID        string `json:"id"`
	WeddingID string `json:"weddingId"`
	Title     string `json:"title"`
	StartsAt  string `json:"startsAt"`
	EndsAt    string `json:"endsAt,omitempty"`
	Location  string `json:"location,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// RegistryLink points guests at an external gift registry.
type RegistryLink struct {
	ID        string `json:"id"`
	WeddingID string `json:"weddingId"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	ID        string `json:"id"`
	WeddingID string `json:"weddingId"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

// MediaAsset is one uploaded photo or video.
type MediaAsset struct {
	ID        string `json:"id"`
	WeddingID string `json:"weddingId"`
	URL       string `json:"url"`
	ThumbURL  string `json:"thumbUrl,omitempty"`
	AltText   string `json:"altText,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}
