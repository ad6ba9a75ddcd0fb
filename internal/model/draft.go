package model

// ProviderType tags a practice with the kind of care it offers. The service
// catalog is keyed by these values.
type ProviderType string

const (
	ProviderTypeMedical      ProviderType = "medical"
	ProviderTypeDental       ProviderType = "dental"
	ProviderTypeCosmetic     ProviderType = "cosmetic"
	ProviderTypeFitness      ProviderType = "fitness"
	ProviderTypeMassage      ProviderType = "massage"
	ProviderTypeMentalHealth ProviderType = "mental-health"
	ProviderTypeSkincare     ProviderType = "skincare"
)

// AllProviderTypes lists every valid provider type, catalog order.
var AllProviderTypes = []ProviderType{
	ProviderTypeMedical,
	ProviderTypeDental,
	ProviderTypeCosmetic,
	ProviderTypeFitness,
	ProviderTypeMassage,
	ProviderTypeMentalHealth,
	ProviderTypeSkincare,
}

func (t ProviderType) Valid() bool {
	for _, known := range AllProviderTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ProviderStatus tracks the record through review.
type ProviderStatus string

const (
	ProviderStatusDraft    ProviderStatus = "draft"
	ProviderStatusPending  ProviderStatus = "pending"
	ProviderStatusApproved ProviderStatus = "approved" // set by back-office review, never by this service
)

// Address is the practice location. Merged as a unit by the location step.
type Address struct {
	Street string `json:"street"`
	Suite  string `json:"suite,omitempty"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// PhotoRef is one uploaded or imported photo. Data holds the raw payload in
// memory only; persisted snapshots carry Reference/URL and drop Data.
type PhotoRef struct {
	Reference string `json:"reference,omitempty"`
	URL       string `json:"url,omitempty"`
	MIME      string `json:"mime,omitempty"`
	Data      []byte `json:"-"`
}

// ServiceSelection points at a catalog service, optionally shadowing its
// defaults. Overrides never mutate the catalog entry.
type ServiceSelection struct {
	ServiceID         string `json:"service_id"`
	CustomPrice       *int   `json:"custom_price,omitempty"`
	CustomDuration    *int   `json:"custom_duration,omitempty"`
	CustomName        string `json:"custom_name,omitempty"`
	CustomDescription string `json:"custom_description,omitempty"`
}

// OptionalInfo covers the free-form credential fields. Nothing here is
// required to advance.
type OptionalInfo struct {
	LicenseNumber     string   `json:"license_number,omitempty"`
	LicenseState      string   `json:"license_state,omitempty"`
	LicenseExpiration string   `json:"license_expiration,omitempty"`
	Certifications    []string `json:"certifications,omitempty"`
	InsuranceAccepted []string `json:"insurance_accepted,omitempty"`
	YearsExperience   int      `json:"years_experience,omitempty"`
	Education         string   `json:"education,omitempty"`
	Specializations   []string `json:"specializations,omitempty"`
	LanguagesSpoken   []string `json:"languages_spoken,omitempty"`
}

// Agreement is the signed participation agreement. One initials entry per
// agreement section is required before the signature is accepted.
type Agreement struct {
	Initials  map[int]string `json:"initials"`
	Signature string         `json:"signature"`
	Title     string         `json:"title,omitempty"`
	AgreedAt  string         `json:"agreed_at"`
	IPAddress string         `json:"ip_address,omitempty"` // captured server-side at signing
	Version   string         `json:"version"`
}

// DraftRecord is the provider profile accumulated across the wizard. It is
// mutated only by step-completion merges and persisted (minus photo payloads)
// after every successful transition.
type DraftRecord struct {
	// Basics
	PracticeName  string         `json:"practice_name,omitempty"`
	ProviderTypes []ProviderType `json:"provider_types,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Email         string         `json:"email,omitempty"`

	// Location
	Address Address `json:"address"`
	Website string  `json:"website,omitempty"`

	// Photos; first entry is the primary photo. PhotoCount survives in
	// snapshots where the payloads do not.
	Photos     []PhotoRef `json:"photos,omitempty"`
	PhotoCount int        `json:"photo_count,omitempty"`

	// Services
	Selections []ServiceSelection `json:"selections,omitempty"`

	// Optional details
	OptionalInfo *OptionalInfo `json:"optional_info,omitempty"`

	// Agreement
	Agreement *Agreement `json:"agreement,omitempty"`

	Status ProviderStatus `json:"status"`

	// Provenance: whether fields were seeded from a places-lookup match.
	// UI messaging only, never consulted by validation.
	Prefilled bool   `json:"prefilled,omitempty"`
	PlaceID   string `json:"place_id,omitempty"`
}

// NewDraftRecord returns an empty draft in the initial status.
func NewDraftRecord() *DraftRecord {
	return &DraftRecord{Status: ProviderStatusDraft}
}

// Snapshot returns a persistable copy with photo payloads stripped. The photo
// count is retained so a resumed session knows re-attachment is needed.
func (d *DraftRecord) Snapshot() *DraftRecord {
	cp := *d
	cp.PhotoCount = len(d.Photos)
	if len(d.Photos) > 0 {
		refs := make([]PhotoRef, len(d.Photos))
		for i, p := range d.Photos {
			refs[i] = PhotoRef{Reference: p.Reference, URL: p.URL, MIME: p.MIME}
		}
		cp.Photos = refs
	}
	return &cp
}
