package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"FindrHealth/config"
	"FindrHealth/internal/model"
	pkgerrors "FindrHealth/pkg/errors"
)

const (
	googleSearchURL  = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	googleDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"
	googlePhotoURL   = "https://maps.googleapis.com/maps/api/place/photo"

	maxImportedPhotos = 5
)

// GoogleClient talks to the Google Places web service.
type GoogleClient struct {
	http       *client.Client
	apiKey     string
	maxResults int
}

func NewGoogleClient() (*GoogleClient, error) {
	cfg := config.Cfg
	if cfg.GooglePlacesKey == "" {
		return nil, fmt.Errorf("GOOGLE_PLACES_API_KEY is not set")
	}

	c, err := client.NewClient(
		client.WithDialTimeout(5*time.Second),
		client.WithClientReadTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}

	return &GoogleClient{
		http:       c,
		apiKey:     cfg.GooglePlacesKey,
		maxResults: cfg.PlacesMaxResults,
	}, nil
}

type googleSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type googleDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID              string                   `json:"place_id"`
		Name                 string                   `json:"name"`
		FormattedAddress     string                   `json:"formatted_address"`
		FormattedPhoneNumber string                   `json:"formatted_phone_number"`
		InternationalPhone   string                   `json:"international_phone_number"`
		Website              string                   `json:"website"`
		AddressComponents    []googleAddressComponent `json:"address_components"`
	} `json:"result"`
}

type googleAddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

func (g *GoogleClient) Search(ctx context.Context, query string) ([]model.Business, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", g.apiKey)

	var parsed googleSearchResponse
	if err := g.get(ctx, googleSearchURL+"?"+params.Encode(), &parsed); err != nil {
		return nil, err
	}

	switch parsed.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: status %s", pkgerrors.PlacesUnavailable, parsed.Status)
	}

	limit := g.maxResults
	if limit <= 0 || limit > len(parsed.Results) {
		limit = len(parsed.Results)
	}

	out := make([]model.Business, 0, limit)
	for _, r := range parsed.Results[:limit] {
		b := model.Business{
			PlaceID:       r.PlaceID,
			Name:          r.Name,
			Address:       parseFormattedAddress(r.FormattedAddress),
			Rating:        r.Rating,
			TotalRatings:  r.UserRatingsTotal,
			ProviderTypes: mapGoogleTypes(r.Types),
			Location:      model.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		}
		for i, p := range r.Photos {
			if i == maxImportedPhotos {
				break
			}
			b.Photos = append(b.Photos, model.PlacePhoto{
				Reference: p.PhotoReference,
				URL:       g.photoURL(p.PhotoReference),
			})
		}
		out = append(out, b)
	}

	return out, nil
}

func (g *GoogleClient) Details(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,formatted_phone_number,international_phone_number,website,address_components")
	params.Set("key", g.apiKey)

	var parsed googleDetailsResponse
	if err := g.get(ctx, googleDetailsURL+"?"+params.Encode(), &parsed); err != nil {
		return nil, err
	}

	switch parsed.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, pkgerrors.PlaceNotFound
	default:
		return nil, fmt.Errorf("%w: status %s", pkgerrors.PlacesUnavailable, parsed.Status)
	}

	r := parsed.Result
	phone := r.FormattedPhoneNumber
	if phone == "" {
		phone = r.InternationalPhone
	}

	return &model.PlaceDetails{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: parseAddressComponents(r.AddressComponents, r.FormattedAddress),
		Phone:   phone,
		Website: r.Website,
	}, nil
}

func (g *GoogleClient) get(ctx context.Context, uri string, dest interface{}) error {
	req := &protocol.Request{}
	res := &protocol.Response{}
	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)

	if err := g.http.Do(ctx, req, res); err != nil {
		return fmt.Errorf("%w: %v", pkgerrors.PlacesUnavailable, err)
	}
	if res.StatusCode() != consts.StatusOK {
		return fmt.Errorf("%w: http %d", pkgerrors.PlacesUnavailable, res.StatusCode())
	}

	if err := json.Unmarshal(res.Body(), dest); err != nil {
		return fmt.Errorf("%w: bad response body", pkgerrors.PlacesUnavailable)
	}
	return nil
}

func (g *GoogleClient) photoURL(reference string) string {
	params := url.Values{}
	params.Set("maxwidth", "800")
	params.Set("photo_reference", reference)
	params.Set("key", g.apiKey)
	return googlePhotoURL + "?" + params.Encode()
}

// googleTypeMap translates Google place types into our provider vocabulary.
var googleTypeMap = map[string]model.ProviderType{
	"doctor":            model.ProviderTypeMedical,
	"hospital":          model.ProviderTypeMedical,
	"health":            model.ProviderTypeMedical,
	"dentist":           model.ProviderTypeDental,
	"dental_clinic":     model.ProviderTypeDental,
	"spa":               model.ProviderTypeSkincare,
	"beauty_salon":      model.ProviderTypeCosmetic,
	"hair_care":         model.ProviderTypeCosmetic,
	"gym":               model.ProviderTypeFitness,
	"physiotherapist":   model.ProviderTypeMassage,
	"massage_therapist": model.ProviderTypeMassage,
}

// mapGoogleTypes returns the matching provider types, defaulting to medical
// when nothing maps.
func mapGoogleTypes(types []string) []model.ProviderType {
	var out []model.ProviderType
	seen := make(map[model.ProviderType]struct{})
	for _, t := range types {
		pt, ok := googleTypeMap[t]
		if !ok {
			continue
		}
		if _, dup := seen[pt]; dup {
			continue
		}
		seen[pt] = struct{}{}
		out = append(out, pt)
	}
	if len(out) == 0 {
		out = []model.ProviderType{model.ProviderTypeMedical}
	}
	return out
}

// parseFormattedAddress splits "street, city, ST zip, country" into parts.
// Best effort: anything that does not fit the shape lands in Street.
func parseFormattedAddress(formatted string) model.Address {
	parts := strings.Split(formatted, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	addr := model.Address{}
	switch {
	case len(parts) >= 3:
		addr.Street = parts[0]
		addr.City = parts[1]
		stateZip := strings.Fields(parts[2])
		if len(stateZip) > 0 {
			addr.State = stateZip[0]
		}
		if len(stateZip) > 1 {
			addr.Zip = stateZip[1]
		}
	case len(parts) == 2:
		addr.Street = parts[0]
		addr.City = parts[1]
	default:
		addr.Street = formatted
	}
	return addr
}

// parseAddressComponents builds the address from structured components,
// falling back to the formatted string when components are missing.
func parseAddressComponents(components []googleAddressComponent, formatted string) model.Address {
	if len(components) == 0 {
		return parseFormattedAddress(formatted)
	}

	var streetNumber, route string
	addr := model.Address{}
	for _, comp := range components {
		for _, t := range comp.Types {
			switch t {
			case "street_number":
				streetNumber = comp.LongName
			case "route":
				route = comp.LongName
			case "subpremise":
				addr.Suite = comp.LongName
			case "locality", "postal_town":
				addr.City = comp.LongName
			case "administrative_area_level_1":
				addr.State = comp.ShortName
			case "postal_code":
				addr.Zip = comp.LongName
			}
		}
	}

	addr.Street = strings.TrimSpace(streetNumber + " " + route)
	if addr.Street == "" {
		addr.Street = parseFormattedAddress(formatted).Street
	}
	return addr
}
