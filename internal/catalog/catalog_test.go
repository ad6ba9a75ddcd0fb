package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FindrHealth/internal/model"
)

func TestResolveUnionInCatalogOrder(t *testing.T) {
	t.Run("single type returns its full list", func(t *testing.T) {
		medical := Resolve([]model.ProviderType{model.ProviderTypeMedical})
		require.NotEmpty(t, medical)
		assert.Equal(t, "annual-physical", medical[0].ID)
		assert.Len(t, medical, len(servicesByType[model.ProviderTypeMedical]))
	})

	t.Run("two types union without duplicates", func(t *testing.T) {
		both := Resolve([]model.ProviderType{model.ProviderTypeMedical, model.ProviderTypeDental})
		seen := make(map[string]int)
		for _, svc := range both {
			seen[svc.ID]++
		}
		for id, n := range seen {
			assert.Equal(t, 1, n, "service %s appears more than once", id)
		}
		assert.Equal(t,
			len(servicesByType[model.ProviderTypeMedical])+len(servicesByType[model.ProviderTypeDental]),
			len(both))
	})

	t.Run("no types resolves to nothing", func(t *testing.T) {
		assert.Empty(t, Resolve(nil))
	})

	t.Run("every provider type has services", func(t *testing.T) {
		for _, pt := range model.AllProviderTypes {
			assert.NotEmpty(t, Resolve([]model.ProviderType{pt}), "type %s has no catalog entries", pt)
		}
	})
}

func TestKnown(t *testing.T) {
	medical := []model.ProviderType{model.ProviderTypeMedical}
	assert.True(t, Known("annual-physical", medical))
	assert.False(t, Known("root-canal", medical), "dental service is not offered to a medical-only practice")
	assert.False(t, Known("does-not-exist", model.AllProviderTypes))
}

func TestEffectiveOverridesShadowDefaults(t *testing.T) {
	base, ok := Get("annual-physical")
	require.True(t, ok)

	price := 200
	duration := 60
	eff, ok := Effective(model.ServiceSelection{
		ServiceID:      "annual-physical",
		CustomPrice:    &price,
		CustomDuration: &duration,
		CustomName:     "Extended Physical",
	})
	require.True(t, ok)

	assert.Equal(t, 200, eff.Price)
	assert.Equal(t, 60, eff.Duration)
	assert.Equal(t, "Extended Physical", eff.Name)
	assert.Equal(t, base.Description, eff.Description, "untouched fields keep catalog defaults")

	// The catalog itself never changes.
	again, _ := Get("annual-physical")
	assert.Equal(t, base, again)
}

func TestEffectiveUnknownService(t *testing.T) {
	_, ok := Effective(model.ServiceSelection{ServiceID: "nope"})
	assert.False(t, ok)
}

func TestAgreementSections(t *testing.T) {
	assert.Len(t, AgreementSections, 16)
	seen := make(map[int]struct{})
	for _, s := range AgreementSections {
		_, dup := seen[s.ID]
		assert.False(t, dup, "duplicate section id %d", s.ID)
		seen[s.ID] = struct{}{}
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Content)
	}
}

func TestReferenceData(t *testing.T) {
	assert.Len(t, USStates, 50)
	assert.NotEmpty(t, Certifications)
	assert.NotEmpty(t, InsurancePlans)
	assert.NotEmpty(t, Languages)
}
