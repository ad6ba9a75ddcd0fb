package model

// Business is a normalized places-lookup candidate, already mapped into our
// address and provider-type vocabulary.
type Business struct {
	PlaceID       string         `json:"place_id"`
	Name          string         `json:"name"`
	Address       Address        `json:"address"`
	Phone         string         `json:"phone,omitempty"`
	Website       string         `json:"website,omitempty"`
	Photos        []PlacePhoto   `json:"photos"`
	Rating        float64        `json:"rating"`
	TotalRatings  int            `json:"total_ratings"`
	ProviderTypes []ProviderType `json:"provider_types"`
	Hours         []string       `json:"hours,omitempty"`
	Location      LatLng         `json:"location"`
}

type PlacePhoto struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceDetails carries the contact fields used to seed ownership verification.
type PlaceDetails struct {
	PlaceID string  `json:"place_id"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
	Phone   string  `json:"phone,omitempty"`
	Website string  `json:"website,omitempty"`
	Email   string  `json:"email,omitempty"`
}
