package dto

import (
	"strconv"
	"time"

	"FindrHealth/internal/model"
)

// ProviderData is the persisted provider record as returned by the API.
type ProviderData struct {
	ProviderID    string                   `json:"provider_id"`
	PracticeName  string                   `json:"practice_name"`
	ProviderTypes []model.ProviderType     `json:"provider_types"`
	Phone         string                   `json:"phone"`
	Email         string                   `json:"email"`
	Address       model.Address            `json:"address"`
	Website       string                   `json:"website,omitempty"`
	Photos        []model.PhotoRef         `json:"photos"`
	Selections    []model.ServiceSelection `json:"selections"`
	OptionalInfo  *model.OptionalInfo      `json:"optional_info,omitempty"`
	Status        model.ProviderStatus     `json:"status"`
	SubmittedAt   time.Time                `json:"submitted_at"`
}

func NewProviderData(p *model.Provider) *ProviderData {
	return &ProviderData{
		ProviderID:    strconv.FormatInt(p.PublicID, 10),
		PracticeName:  p.PracticeName,
		ProviderTypes: p.ProviderTypes,
		Phone:         p.Phone,
		Email:         p.Email,
		Address:       p.Address,
		Website:       p.Website,
		Photos:        p.Photos,
		Selections:    p.Selections,
		OptionalInfo:  p.OptionalInfo,
		Status:        p.Status,
		SubmittedAt:   p.SubmittedAt,
	}
}

// SubmitProviderData is returned by the terminal wizard transition.
type SubmitProviderData struct {
	ProviderID string `json:"provider_id"`
}
