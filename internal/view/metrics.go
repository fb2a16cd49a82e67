package view

import "github.com/adrirubim/laserpack/internal/models"

// DerivedMetrics are the logistics figures computed from one palletizing
// instruction. Each is nil unless every factor it depends on was recorded:
// substituting a default for a missing measurement would silently corrupt
// the downstream logistics figures, so a missing factor suppresses the
// whole product.
type DerivedMetrics struct {
	// Volume of one carton in dmc (length * depth * height / 1000).
	Volume *float64
	// Packages per pallet (plan packaging * pallet plans).
	ColliPerPallet *float64
	// Units per pallet (units per neck * plan packaging * pallet plans).
	UnitsPerPallet *float64
}

// Derive computes the secondary logistics quantities for a palletizing
// instruction. Pure; the instruction is never modified.
func Derive(pi models.PalletizingInstruction) DerivedMetrics {
	var m DerivedMetrics

	if pi.LengthCM != nil && pi.DepthCM != nil && pi.HeightCM != nil {
		v := *pi.LengthCM * *pi.DepthCM * *pi.HeightCM / 1000
		m.Volume = &v
	}

	if pi.PlanPackaging != nil && pi.PalletPlans != nil {
		colli := *pi.PlanPackaging * *pi.PalletPlans
		m.ColliPerPallet = &colli

		if pi.UnitsPerNeck != nil {
			units := *pi.UnitsPerNeck * colli
			m.UnitsPerPallet = &units
		}
	}

	return m
}
