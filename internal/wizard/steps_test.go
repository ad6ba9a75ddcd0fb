package wizard

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FindrHealth/internal/catalog"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
)

func intPtr(v int) *int { return &v }

func validBasics() *dto.BasicsUpdate {
	return &dto.BasicsUpdate{
		PracticeName:  "Acme Clinic",
		ProviderTypes: []model.ProviderType{model.ProviderTypeMedical},
		Phone:         "555-123-4567",
		Email:         "owner@acmeclinic.com",
	}
}

func validLocation() *dto.LocationUpdate {
	return &dto.LocationUpdate{
		Street: "100 Main St",
		City:   "Springfield",
		State:  "IL",
		Zip:    "62704",
	}
}

func jpeg(size int) dto.PhotoUpload {
	return dto.PhotoUpload{Data: bytes.Repeat([]byte{0xff}, size), MIME: "image/jpeg"}
}

func TestValidateBasics(t *testing.T) {
	limits := DefaultLimits()

	t.Run("valid payload passes", func(t *testing.T) {
		errs := validateBasics(limits, model.NewDraftRecord(), dto.StepUpdate{Step: model.StepBasics, Basics: validBasics()})
		assert.Nil(t, errs)
	})

	t.Run("missing fields reported per field", func(t *testing.T) {
		errs := validateBasics(limits, model.NewDraftRecord(), dto.StepUpdate{Step: model.StepBasics, Basics: &dto.BasicsUpdate{}})
		require.True(t, errs.Any())
		assert.Equal(t, "Practice name is required", errs["practice_name"])
		assert.Contains(t, errs, "provider_types")
		assert.Contains(t, errs, "phone")
		assert.Contains(t, errs, "email")
	})

	t.Run("unknown provider type rejected", func(t *testing.T) {
		b := validBasics()
		b.ProviderTypes = []model.ProviderType{"chiropractic"}
		errs := validateBasics(limits, model.NewDraftRecord(), dto.StepUpdate{Basics: b})
		assert.Contains(t, errs["provider_types"], "chiropractic")
	})

	t.Run("bad email rejected", func(t *testing.T) {
		b := validBasics()
		b.Email = "not-an-email"
		errs := validateBasics(limits, model.NewDraftRecord(), dto.StepUpdate{Basics: b})
		assert.Equal(t, "Invalid email address", errs["email"])
	})
}

func TestValidateLocation(t *testing.T) {
	limits := DefaultLimits()

	t.Run("valid with plus-four zip", func(t *testing.T) {
		l := validLocation()
		l.Zip = "62704-1234"
		errs := validateLocation(limits, model.NewDraftRecord(), dto.StepUpdate{Location: l})
		assert.Nil(t, errs)
	})

	t.Run("short zip rejected", func(t *testing.T) {
		l := validLocation()
		l.Zip = "1234"
		errs := validateLocation(limits, model.NewDraftRecord(), dto.StepUpdate{Location: l})
		assert.Equal(t, "Invalid ZIP code", errs["zip"])
	})

	t.Run("missing street reported", func(t *testing.T) {
		l := validLocation()
		l.Street = "  "
		errs := validateLocation(limits, model.NewDraftRecord(), dto.StepUpdate{Location: l})
		assert.Equal(t, "Street address is required", errs["street"])
	})
}

func TestApplyLocation(t *testing.T) {
	t.Run("address replaced as a unit", func(t *testing.T) {
		draft := model.NewDraftRecord()
		draft.Address = model.Address{Street: "old", Suite: "Suite 9", City: "Oldtown", State: "CA", Zip: "90001"}
		applyLocation(draft, dto.StepUpdate{Location: validLocation()})

		assert.Equal(t, "100 Main St", draft.Address.Street)
		assert.Empty(t, draft.Address.Suite, "stale suite must not survive the merge")
		assert.Equal(t, "Springfield", draft.Address.City)
	})

	t.Run("empty website leaves existing value", func(t *testing.T) {
		draft := model.NewDraftRecord()
		draft.Website = "https://acmeclinic.com"
		applyLocation(draft, dto.StepUpdate{Location: validLocation()})
		assert.Equal(t, "https://acmeclinic.com", draft.Website)
	})
}

func TestValidatePhotos(t *testing.T) {
	limits := DefaultLimits()

	t.Run("one photo passes", func(t *testing.T) {
		errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{
			Photos: &dto.PhotosUpdate{Photos: []dto.PhotoUpload{jpeg(1024)}},
		})
		assert.Nil(t, errs)
	})

	t.Run("zero photos rejected", func(t *testing.T) {
		errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{Photos: &dto.PhotosUpdate{}})
		assert.Equal(t, "At least one photo is required", errs["photos"])
	})

	t.Run("sixth photo rejected", func(t *testing.T) {
		photos := make([]dto.PhotoUpload, 6)
		for i := range photos {
			photos[i] = jpeg(1024)
		}
		errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{Photos: &dto.PhotosUpdate{Photos: photos}})
		assert.Equal(t, "Maximum 5 photos allowed", errs["photos"])
	})

	t.Run("oversized photo rejected with index", func(t *testing.T) {
		errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{
			Photos: &dto.PhotosUpdate{Photos: []dto.PhotoUpload{jpeg(1024), jpeg(6 << 20)}},
		})
		assert.Equal(t, "Photo exceeds 5MB limit", errs["photos[1]"])
		assert.NotContains(t, errs, "photos[0]")
	})

	t.Run("non-image MIME rejected", func(t *testing.T) {
		errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{
			Photos: &dto.PhotosUpdate{Photos: []dto.PhotoUpload{{Data: []byte("%PDF"), MIME: "application/pdf"}}},
		})
		assert.Equal(t, "Unsupported photo type", errs["photos[0]"])
	})

	t.Run("imported reference photo needs no payload", func(t *testing.T) {
		errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{
			Photos: &dto.PhotosUpdate{Photos: []dto.PhotoUpload{{Reference: "places-ref-1"}}},
		})
		assert.Nil(t, errs)
	})
}

func TestValidateServices(t *testing.T) {
	limits := DefaultLimits()
	medicalDraft := func() *model.DraftRecord {
		d := model.NewDraftRecord()
		d.ProviderTypes = []model.ProviderType{model.ProviderTypeMedical}
		return d
	}

	t.Run("two known services pass", func(t *testing.T) {
		errs := validateServices(limits, medicalDraft(), dto.StepUpdate{Services: &dto.ServicesUpdate{
			Selections: []model.ServiceSelection{{ServiceID: "annual-physical"}, {ServiceID: "flu-shot"}},
		}})
		assert.Nil(t, errs)
	})

	t.Run("single selection rejected", func(t *testing.T) {
		errs := validateServices(limits, medicalDraft(), dto.StepUpdate{Services: &dto.ServicesUpdate{
			Selections: []model.ServiceSelection{{ServiceID: "annual-physical"}},
		}})
		assert.Equal(t, "Select at least 2 services", errs["selections"])
	})

	t.Run("service from another provider type rejected", func(t *testing.T) {
		errs := validateServices(limits, medicalDraft(), dto.StepUpdate{Services: &dto.ServicesUpdate{
			Selections: []model.ServiceSelection{{ServiceID: "annual-physical"}, {ServiceID: "root-canal"}},
		}})
		assert.Contains(t, errs["selections[1]"], "root-canal")
	})

	t.Run("duplicate selection rejected", func(t *testing.T) {
		errs := validateServices(limits, medicalDraft(), dto.StepUpdate{Services: &dto.ServicesUpdate{
			Selections: []model.ServiceSelection{{ServiceID: "flu-shot"}, {ServiceID: "flu-shot"}},
		}})
		assert.Equal(t, "Duplicate service selection", errs["selections[1]"])
	})

	t.Run("negative custom price rejected", func(t *testing.T) {
		errs := validateServices(limits, medicalDraft(), dto.StepUpdate{Services: &dto.ServicesUpdate{
			Selections: []model.ServiceSelection{
				{ServiceID: "annual-physical", CustomPrice: intPtr(-10)},
				{ServiceID: "flu-shot"},
			},
		}})
		assert.Equal(t, "Custom price cannot be negative", errs["selections[0]"])
	})
}

func TestApplyOptionalMerges(t *testing.T) {
	draft := model.NewDraftRecord()

	applyOptional(draft, dto.StepUpdate{Optional: &dto.OptionalUpdate{
		LicenseNumber:   "MD-12345",
		YearsExperience: 12,
	}})
	applyOptional(draft, dto.StepUpdate{Optional: &dto.OptionalUpdate{
		Education: "State University School of Medicine",
	}})

	require.NotNil(t, draft.OptionalInfo)
	assert.Equal(t, "MD-12345", draft.OptionalInfo.LicenseNumber, "revisit must not wipe earlier values")
	assert.Equal(t, 12, draft.OptionalInfo.YearsExperience)
	assert.Equal(t, "State University School of Medicine", draft.OptionalInfo.Education)
}

func TestValidateAgreement(t *testing.T) {
	limits := DefaultLimits()

	fullInitials := func() map[int]string {
		m := make(map[int]string, len(catalog.AgreementSections))
		for _, s := range catalog.AgreementSections {
			m[s.ID] = "jd"
		}
		return m
	}

	t.Run("all sections initialed and signed passes", func(t *testing.T) {
		errs := validateAgreement(limits, model.NewDraftRecord(), dto.StepUpdate{Agreement: &dto.AgreementUpdate{
			Initials:  fullInitials(),
			Signature: "Jane Doe",
		}})
		assert.Nil(t, errs)
	})

	t.Run("every missing section reported", func(t *testing.T) {
		initials := fullInitials()
		delete(initials, 3)
		initials[7] = "   "
		errs := validateAgreement(limits, model.NewDraftRecord(), dto.StepUpdate{Agreement: &dto.AgreementUpdate{
			Initials:  initials,
			Signature: "Jane Doe",
		}})
		assert.Equal(t, "Section must be initialed", errs["initials[3]"])
		assert.Equal(t, "Section must be initialed", errs["initials[7]"])
		assert.Len(t, errs, 2)
	})

	t.Run("short signature rejected", func(t *testing.T) {
		errs := validateAgreement(limits, model.NewDraftRecord(), dto.StepUpdate{Agreement: &dto.AgreementUpdate{
			Initials:  fullInitials(),
			Signature: " JD ",
		}})
		assert.Equal(t, "Please enter your full legal name as signature", errs["signature"])
	})
}

func TestApplyAgreement(t *testing.T) {
	draft := model.NewDraftRecord()
	initials := make(map[int]string, len(catalog.AgreementSections))
	for _, s := range catalog.AgreementSections {
		initials[s.ID] = "jd "
	}

	applyAgreement(draft, dto.StepUpdate{Agreement: &dto.AgreementUpdate{
		Initials:  initials,
		Signature: "  Jane Doe  ",
		Title:     "Owner",
		IPAddress: "203.0.113.9",
	}})

	require.NotNil(t, draft.Agreement)
	assert.Equal(t, "Jane Doe", draft.Agreement.Signature)
	assert.Equal(t, "JD", draft.Agreement.Initials[1])
	assert.Equal(t, "203.0.113.9", draft.Agreement.IPAddress)
	assert.Equal(t, catalog.AgreementVersion, draft.Agreement.Version)
	assert.NotEmpty(t, draft.Agreement.AgreedAt)
}

func TestPhotoErrorKeysAreIndexed(t *testing.T) {
	limits := DefaultLimits()
	photos := []dto.PhotoUpload{jpeg(1024), {Data: []byte("x"), MIME: "text/plain"}, jpeg(1024)}
	errs := validatePhotos(limits, model.NewDraftRecord(), dto.StepUpdate{Photos: &dto.PhotosUpdate{Photos: photos}})

	require.True(t, errs.Any())
	for field := range errs {
		assert.Equal(t, fmt.Sprintf("photos[%d]", 1), field)
	}
}
