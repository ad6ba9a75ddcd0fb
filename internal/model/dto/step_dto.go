package dto

import "FindrHealth/internal/model"

// StepUpdate is the tagged union a wizard advance carries. Step names the
// variant; exactly the matching payload pointer is expected to be set. Typed
// variants keep merges exhaustively checkable instead of duck-typed maps.
type StepUpdate struct {
	Step model.StepID `json:"step"`

	Basics    *BasicsUpdate    `json:"basics,omitempty"`
	Location  *LocationUpdate  `json:"location,omitempty"`
	Photos    *PhotosUpdate    `json:"photos,omitempty"`
	Services  *ServicesUpdate  `json:"services,omitempty"`
	Optional  *OptionalUpdate  `json:"optional,omitempty"`
	Review    *ReviewUpdate    `json:"review,omitempty"`
	Agreement *AgreementUpdate `json:"agreement,omitempty"`
}

// BasicsUpdate covers practice identity.
type BasicsUpdate struct {
	PracticeName  string               `json:"practice_name"`
	ProviderTypes []model.ProviderType `json:"provider_types"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
}

// LocationUpdate covers the practice address. Merged as a unit into the
// draft's nested address struct.
type LocationUpdate struct {
	Street  string `json:"street"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Website string `json:"website,omitempty"`
}

// PhotoUpload is one photo submitted with the photos step. Data arrives
// base64-encoded on the wire; imported lookup photos carry Reference/URL
// instead.
type PhotoUpload struct {
	Data      []byte `json:"data,omitempty"`
	MIME      string `json:"mime,omitempty"`
	Reference string `json:"reference,omitempty"`
	URL       string `json:"url,omitempty"`
}

type PhotosUpdate struct {
	Photos []PhotoUpload `json:"photos"`
}

type ServicesUpdate struct {
	Selections []model.ServiceSelection `json:"selections"`
}

// OptionalUpdate has no invariants; whatever is present is merged.
type OptionalUpdate struct {
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

// ReviewUpdate is confirmation only; it carries nothing to merge.
type ReviewUpdate struct {
	Confirmed bool `json:"confirmed"`
}

type AgreementUpdate struct {
	Initials  map[int]string `json:"initials"`
	Signature string         `json:"signature"`
	Title     string         `json:"title,omitempty"`
	// IPAddress is captured server-side at signing, never from the client.
	IPAddress string `json:"-"`
}
