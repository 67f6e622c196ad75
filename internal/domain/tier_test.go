package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Get(t *testing.T) {
	catalog := NewCatalog(199, 399, 799)

	t.Run("Basic", func(t *testing.T) {
		tier, err := catalog.Get(TierBasic)
		assert.NoError(t, err)
		assert.Equal(t, TierBasic, tier.ID)
		assert.Equal(t, int32(199), tier.PriceRupees)
		assert.False(t, tier.RequiresDeliveryAddress)
		assert.False(t, tier.RequiresTshirtSize)
	})

	t.Run("Plus", func(t *testing.T) {
		tier, err := catalog.Get(TierPlus)
		assert.NoError(t, err)
		assert.Equal(t, int32(399), tier.PriceRupees)
		assert.True(t, tier.RequiresDeliveryAddress)
		assert.False(t, tier.RequiresTshirtSize)
	})

	t.Run("Premium", func(t *testing.T) {
		tier, err := catalog.Get(TierPremium)
		assert.NoError(t, err)
		assert.Equal(t, int32(799), tier.PriceRupees)
		assert.True(t, tier.RequiresDeliveryAddress)
		assert.True(t, tier.RequiresTshirtSize)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := catalog.Get(TierID("gold"))
		assert.ErrorIs(t, err, ErrUnknownTier)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := catalog.Get(TierID(""))
		assert.ErrorIs(t, err, ErrUnknownTier)
	})
}

func TestCatalog_List(t *testing.T) {
	catalog := NewCatalog(199, 399, 799)

	tiers := catalog.List()
	assert.Len(t, tiers, 3)
	assert.Equal(t, TierBasic, tiers[0].ID)
	assert.Equal(t, TierPlus, tiers[1].ID)
	assert.Equal(t, TierPremium, tiers[2].ID)

	// mutating the returned slice must not affect the catalog
	tiers[0].PriceRupees = 1
	fresh, err := catalog.Get(TierBasic)
	assert.NoError(t, err)
	assert.Equal(t, int32(199), fresh.PriceRupees)
}

func TestRegistrationStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, RegistrationStatus("archived").IsValid())
	assert.False(t, RegistrationStatus("").IsValid())

	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
