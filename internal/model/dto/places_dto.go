package dto

import "FindrHealth/internal/model"

// SearchBusinessRequest accepts either field name for the query; the original
// client sent both spellings over time.
type SearchBusinessRequest struct {
	Query        string `json:"query"`
	BusinessName string `json:"businessName"`
	ZipCode      string `json:"zipCode,omitempty"`
}

func (r SearchBusinessRequest) Term() string {
	if r.Query != "" {
		return r.Query
	}
	return r.BusinessName
}

type SearchBusinessData struct {
	Results      []model.Business `json:"results"`
	Count        int              `json:"count"`
	AutoSelected bool             `json:"autoSelected,omitempty"`
}
