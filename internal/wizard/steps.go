package wizard

import (
	"fmt"
	"strings"
	"time"

	"FindrHealth/internal/catalog"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	"FindrHealth/utils"
)

// ValidationErrors maps field names to user-facing messages. A nil/empty map
// means the payload passed.
type ValidationErrors map[string]string

func (v ValidationErrors) Any() bool {
	return len(v) > 0
}

// Limits are the tunable wizard bounds, injected so the package stays free of
// global config.
type Limits struct {
	PhotoMaxCount int
	PhotoMaxBytes int64
	MinSelections int
}

func DefaultLimits() Limits {
	return Limits{
		PhotoMaxCount: 5,
		PhotoMaxBytes: 5 << 20,
		MinSelections: 2,
	}
}

// ---- Basics ----

func validateBasics(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	errs := ValidationErrors{}
	b := upd.Basics
	if b == nil {
		errs["basics"] = "Missing basics payload"
		return errs
	}
	if strings.TrimSpace(b.PracticeName) == "" {
		errs["practice_name"] = "Practice name is required"
	}
	if len(b.ProviderTypes) == 0 {
		errs["provider_types"] = "Select at least one provider type"
	}
	for _, t := range b.ProviderTypes {
		if !t.Valid() {
			errs["provider_types"] = fmt.Sprintf("Unknown provider type %q", t)
			break
		}
	}
	if strings.TrimSpace(b.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !utils.ValidatePhone(b.Phone) {
		errs["phone"] = "Invalid phone number"
	}
	if !utils.ValidateEmail(b.Email) {
		errs["email"] = "Invalid email address"
	}
	if errs.Any() {
		return errs
	}
	return nil
}

func applyBasics(draft *model.DraftRecord, upd dto.StepUpdate) {
	b := upd.Basics
	draft.PracticeName = strings.TrimSpace(b.PracticeName)
	draft.ProviderTypes = b.ProviderTypes
	draft.Phone = strings.TrimSpace(b.Phone)
	draft.Email = strings.TrimSpace(b.Email)
}

// ---- Location ----

func validateLocation(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	errs := ValidationErrors{}
	l := upd.Location
	if l == nil {
		errs["location"] = "Missing location payload"
		return errs
	}
	if strings.TrimSpace(l.Street) == "" {
		errs["street"] = "Street address is required"
	}
	if strings.TrimSpace(l.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(l.State) == "" {
		errs["state"] = "State is required"
	}
	if !utils.ValidateZip(l.Zip) {
		errs["zip"] = "Invalid ZIP code"
	}
	if errs.Any() {
		return errs
	}
	return nil
}

// applyLocation merges the address as a unit; the nested struct is owned by
// this step, so a partial location never survives a transition.
func applyLocation(draft *model.DraftRecord, upd dto.StepUpdate) {
	l := upd.Location
	draft.Address = model.Address{
		Street: strings.TrimSpace(l.Street),
		Suite:  strings.TrimSpace(l.Suite),
		City:   strings.TrimSpace(l.City),
		State:  strings.TrimSpace(l.State),
		Zip:    strings.TrimSpace(l.Zip),
	}
	if l.Website != "" {
		draft.Website = strings.TrimSpace(l.Website)
	}
}

// ---- Photos ----

func validatePhotos(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	errs := ValidationErrors{}
	p := upd.Photos
	if p == nil {
		errs["photos"] = "Missing photos payload"
		return errs
	}
	if len(p.Photos) == 0 {
		errs["photos"] = "At least one photo is required"
		return errs
	}
	if len(p.Photos) > limits.PhotoMaxCount {
		errs["photos"] = fmt.Sprintf("Maximum %d photos allowed", limits.PhotoMaxCount)
		return errs
	}
	for i, ph := range p.Photos {
		field := fmt.Sprintf("photos[%d]", i)
		if len(ph.Data) == 0 && ph.Reference == "" && ph.URL == "" {
			errs[field] = "Photo is empty"
			continue
		}
		if len(ph.Data) > 0 {
			if int64(len(ph.Data)) > limits.PhotoMaxBytes {
				errs[field] = fmt.Sprintf("Photo exceeds %dMB limit", limits.PhotoMaxBytes>>20)
			}
			if !utils.IsImageMIME(ph.MIME) {
				errs[field] = "Unsupported photo type"
			}
		}
	}
	if errs.Any() {
		return errs
	}
	return nil
}

// applyPhotos replaces the whole list; the first entry becomes the primary
// photo.
func applyPhotos(draft *model.DraftRecord, upd dto.StepUpdate) {
	photos := make([]model.PhotoRef, 0, len(upd.Photos.Photos))
	for _, ph := range upd.Photos.Photos {
		photos = append(photos, model.PhotoRef{
			Reference: ph.Reference,
			URL:       ph.URL,
			MIME:      ph.MIME,
			Data:      ph.Data,
		})
	}
	draft.Photos = photos
	draft.PhotoCount = len(photos)
}

// ---- Services ----

func validateServices(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	errs := ValidationErrors{}
	s := upd.Services
	if s == nil {
		errs["services"] = "Missing services payload"
		return errs
	}
	if len(s.Selections) < limits.MinSelections {
		errs["selections"] = fmt.Sprintf("Select at least %d services", limits.MinSelections)
		return errs
	}
	seen := make(map[string]struct{}, len(s.Selections))
	for i, sel := range s.Selections {
		field := fmt.Sprintf("selections[%d]", i)
		if _, dup := seen[sel.ServiceID]; dup {
			errs[field] = "Duplicate service selection"
			continue
		}
		seen[sel.ServiceID] = struct{}{}
		if !catalog.Known(sel.ServiceID, draft.ProviderTypes) {
			errs[field] = fmt.Sprintf("Service %q is not offered for the selected provider types", sel.ServiceID)
		}
		if sel.CustomPrice != nil && *sel.CustomPrice < 0 {
			errs[field] = "Custom price cannot be negative"
		}
		if sel.CustomDuration != nil && *sel.CustomDuration <= 0 {
			errs[field] = "Custom duration must be positive"
		}
	}
	if errs.Any() {
		return errs
	}
	return nil
}

func applyServices(draft *model.DraftRecord, upd dto.StepUpdate) {
	draft.Selections = upd.Services.Selections
}

// ---- Optional details ----

// validateOptional always passes: every field on this step is optional.
func validateOptional(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	return nil
}

// applyOptional merges field-wise so revisiting the step never wipes
// previously entered values with zero ones.
func applyOptional(draft *model.DraftRecord, upd dto.StepUpdate) {
	o := upd.Optional
	if o == nil {
		return
	}
	if draft.OptionalInfo == nil {
		draft.OptionalInfo = &model.OptionalInfo{}
	}
	dst := draft.OptionalInfo
	if o.LicenseNumber != "" {
		dst.LicenseNumber = o.LicenseNumber
	}
	if o.LicenseState != "" {
		dst.LicenseState = o.LicenseState
	}
	if o.LicenseExpiration != "" {
		dst.LicenseExpiration = o.LicenseExpiration
	}
	if o.Certifications != nil {
		dst.Certifications = o.Certifications
	}
	if o.InsuranceAccepted != nil {
		dst.InsuranceAccepted = o.InsuranceAccepted
	}
	if o.YearsExperience != 0 {
		dst.YearsExperience = o.YearsExperience
	}
	if o.Education != "" {
		dst.Education = o.Education
	}
	if o.Specializations != nil {
		dst.Specializations = o.Specializations
	}
	if o.LanguagesSpoken != nil {
		dst.LanguagesSpoken = o.LanguagesSpoken
	}
}

// ---- Review ----

func validateReview(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	return nil
}

func applyReview(draft *model.DraftRecord, upd dto.StepUpdate) {}

// ---- Agreement ----

func validateAgreement(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors {
	errs := ValidationErrors{}
	a := upd.Agreement
	if a == nil {
		errs["agreement"] = "Missing agreement payload"
		return errs
	}
	for _, section := range catalog.AgreementSections {
		if strings.TrimSpace(a.Initials[section.ID]) == "" {
			errs[fmt.Sprintf("initials[%d]", section.ID)] = "Section must be initialed"
		}
	}
	if len(strings.TrimSpace(a.Signature)) < 3 {
		errs["signature"] = "Please enter your full legal name as signature"
	}
	if errs.Any() {
		return errs
	}
	return nil
}

func applyAgreement(draft *model.DraftRecord, upd dto.StepUpdate) {
	a := upd.Agreement
	initials := make(map[int]string, len(a.Initials))
	for id, ini := range a.Initials {
		initials[id] = strings.ToUpper(strings.TrimSpace(ini))
	}
	draft.Agreement = &model.Agreement{
		Initials:  initials,
		Signature: strings.TrimSpace(a.Signature),
		Title:     strings.TrimSpace(a.Title),
		AgreedAt:  time.Now().UTC().Format(time.RFC3339),
		IPAddress: a.IPAddress,
		Version:   catalog.AgreementVersion,
	}
}
