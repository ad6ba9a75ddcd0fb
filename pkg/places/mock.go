package places

import (
	"context"
	"strings"
	"sync"

	"FindrHealth/internal/model"
	pkgerrors "FindrHealth/pkg/errors"
)

// MockClient serves canned lookup data for tests and keyless development.
type MockClient struct {
	mu      sync.Mutex
	Queries []string

	// Businesses returned by Search when the query matches a name
	// substring. Defaults to a small fixture set.
	Businesses []model.Business

	// Err, when set, is returned by every call.
	Err error
}

func NewMockClient() *MockClient {
	return &MockClient{
		Businesses: []model.Business{
			{
				PlaceID: "mock-acme-clinic",
				Name:    "Acme Clinic",
				Address: model.Address{
					Street: "100 Main St",
					City:   "Springfield",
					State:  "IL",
					Zip:    "62704",
				},
				Phone:         "555-123-4567",
				Website:       "https://acmeclinic.example.com",
				Rating:        4.7,
				TotalRatings:  132,
				ProviderTypes: []model.ProviderType{model.ProviderTypeMedical},
				Photos: []model.PlacePhoto{
					{Reference: "mock-photo-1", URL: "https://photos.example.com/mock-photo-1"},
				},
			},
			{
				PlaceID: "mock-bright-dental",
				Name:    "Bright Smile Dental",
				Address: model.Address{
					Street: "42 Oak Ave",
					City:   "Springfield",
					State:  "IL",
					Zip:    "62702",
				},
				Phone:         "555-987-6543",
				Rating:        4.9,
				TotalRatings:  88,
				ProviderTypes: []model.ProviderType{model.ProviderTypeDental},
			},
		},
	}
}

func (m *MockClient) Search(ctx context.Context, query string) ([]model.Business, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	q := strings.ToLower(query)
	var out []model.Business
	for _, b := range m.Businesses {
		if strings.Contains(q, strings.ToLower(b.Name)) || strings.Contains(strings.ToLower(b.Name), firstWord(q)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockClient) Details(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for _, b := range m.Businesses {
		if b.PlaceID == placeID {
			return &model.PlaceDetails{
				PlaceID: b.PlaceID,
				Name:    b.Name,
				Address: b.Address,
				Phone:   b.Phone,
				Website: b.Website,
			}, nil
		}
	}
	return nil, pkgerrors.PlaceNotFound
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}
