// Package catalog holds the static service catalog keyed by provider type,
// and the resolution rules the services step builds on. The catalog is
// immutable; per-session customizations shadow it without mutating it.
package catalog

import "FindrHealth/internal/model"

// Service is one bookable service with its catalog defaults.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration"` // minutes
	Price       int    `json:"price"`    // whole dollars
	Category    string `json:"category"`
}

// Resolve returns the union of services tagged with any of the selected
// provider types, in catalog order, de-duplicated by service ID.
func Resolve(types []model.ProviderType) []Service {
	seen := make(map[string]struct{})
	var out []Service
	for _, t := range types {
		for _, svc := range servicesByType[t] {
			if _, dup := seen[svc.ID]; dup {
				continue
			}
			seen[svc.ID] = struct{}{}
			out = append(out, svc)
		}
	}
	return out
}

// Get looks a service up across every provider type.
func Get(serviceID string) (Service, bool) {
	svc, ok := serviceIndex[serviceID]
	return svc, ok
}

// Known reports whether the service exists for any of the given types.
func Known(serviceID string, types []model.ProviderType) bool {
	for _, svc := range Resolve(types) {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}

// Effective applies a selection's overrides to the catalog defaults. Display
// and submission always prefer the override value when present, else the
// catalog default; the catalog entry itself is never modified.
func Effective(sel model.ServiceSelection) (Service, bool) {
	svc, ok := Get(sel.ServiceID)
	if !ok {
		return Service{}, false
	}
	if sel.CustomPrice != nil {
		svc.Price = *sel.CustomPrice
	}
	if sel.CustomDuration != nil {
		svc.Duration = *sel.CustomDuration
	}
	if sel.CustomName != "" {
		svc.Name = sel.CustomName
	}
	if sel.CustomDescription != "" {
		svc.Description = sel.CustomDescription
	}
	return svc, true
}

var serviceIndex = buildIndex()

func buildIndex() map[string]Service {
	idx := make(map[string]Service)
	for _, t := range model.AllProviderTypes {
		for _, svc := range servicesByType[t] {
			if _, dup := idx[svc.ID]; !dup {
				idx[svc.ID] = svc
			}
		}
	}
	return idx
}
