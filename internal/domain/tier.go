package domain

import "errors"

type TierID string

const (
	TierBasic   TierID = "basic"
	TierPlus    TierID = "plus"
	TierPremium TierID = "premium"
)

var ErrUnknownTier = errors.New("unknown payment tier")

// Tier is a registration package. The price is in whole rupees. The two
// Requires flags drive conditional field validation: plus and premium ship
// a physical medal (delivery address needed), premium additionally ships a
// t-shirt (size needed).
type Tier struct {
	ID                      TierID `json:"tier"`
	PriceRupees             int32  `json:"price_rupees"`
	RequiresDeliveryAddress bool   `json:"requires_delivery_address"`
	RequiresTshirtSize      bool   `json:"requires_tshirt_size"`
}

// Catalog holds the three package tiers. It is built once at process start
// from configured prices and is immutable afterwards.
type Catalog struct {
	tiers []Tier
}

// NewCatalog builds the catalog with the given prices in display order.
func NewCatalog(basicRupees, plusRupees, premiumRupees int32) *Catalog {
	return &Catalog{
		tiers: []Tier{
			{ID: TierBasic, PriceRupees: basicRupees},
			{ID: TierPlus, PriceRupees: plusRupees, RequiresDeliveryAddress: true},
			{ID: TierPremium, PriceRupees: premiumRupees, RequiresDeliveryAddress: true, RequiresTshirtSize: true},
		},
	}
}

// Get returns the tier definition for id, or ErrUnknownTier.
func (c *Catalog) Get(id TierID) (Tier, error) {
	for _, t := range c.tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return Tier{}, ErrUnknownTier
}

// List returns all tiers in fixed display order: basic, plus, premium.
func (c *Catalog) List() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}
