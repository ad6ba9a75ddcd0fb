package model

import "time"

// Provider is the durable record created when a draft completes the wizard.
type Provider struct {
	BaseModel
	PublicID int64 `gorm:"uniqueIndex;not null" json:"public_id"`

	PracticeName  string         `gorm:"type:varchar(255);not null" json:"practice_name"`
	ProviderTypes []ProviderType `gorm:"type:jsonb;serializer:json;not null;default:'[]'" json:"provider_types"`
	Phone         string         `gorm:"type:varchar(32);not null" json:"phone"`
	Email         string         `gorm:"type:varchar(255);not null;index" json:"email"`

	Address Address `gorm:"type:jsonb;serializer:json" json:"address"`
	Website string  `gorm:"type:varchar(255);not null;default:''" json:"website,omitempty"`

	Photos     []PhotoRef         `gorm:"type:jsonb;serializer:json;default:'[]'" json:"photos"`
	Selections []ServiceSelection `gorm:"type:jsonb;serializer:json;default:'[]'" json:"selections"`

	OptionalInfo *OptionalInfo `gorm:"type:jsonb;serializer:json" json:"optional_info,omitempty"`
	Agreement    *Agreement    `gorm:"type:jsonb;serializer:json" json:"agreement,omitempty"`

	Status ProviderStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_providers_status" json:"status"`

	// Lookup provenance
	PlaceID   string `gorm:"type:varchar(128);index" json:"place_id,omitempty"`
	Prefilled bool   `gorm:"not null;default:false" json:"prefilled"`

	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}

func (Provider) TableName() string {
	return "providers"
}
