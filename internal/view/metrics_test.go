package view

import (
	"testing"

	"github.com/adrirubim/laserpack/internal/models"
)

func f(v float64) *float64 { return &v }

func TestDeriveVolume(t *testing.T) {
	m := Derive(models.PalletizingInstruction{
		LengthCM: f(10), DepthCM: f(10), HeightCM: f(10),
	})
	if m.Volume == nil {
		t.Fatal("volume should be computed when all three dimensions are present")
	}
	if *m.Volume != 1 {
		t.Errorf("volume = %v, want 1 (10*10*10/1000)", *m.Volume)
	}
}

func TestDeriveVolumeMissingDimension(t *testing.T) {
	cases := []models.PalletizingInstruction{
		{DepthCM: f(10), HeightCM: f(10)},
		{LengthCM: f(10), HeightCM: f(10)},
		{LengthCM: f(10), DepthCM: f(10)},
		{},
	}
	for i, pi := range cases {
		if m := Derive(pi); m.Volume != nil {
			t.Errorf("case %d: volume = %v, want nil with a missing dimension", i, *m.Volume)
		}
	}
}

func TestDeriveColliPerPallet(t *testing.T) {
	m := Derive(models.PalletizingInstruction{
		PlanPackaging: f(5), PalletPlans: f(4),
	})
	if m.ColliPerPallet == nil || *m.ColliPerPallet != 20 {
		t.Errorf("colli per pallet = %v, want 20", m.ColliPerPallet)
	}

	if m := Derive(models.PalletizingInstruction{PlanPackaging: f(5)}); m.ColliPerPallet != nil {
		t.Error("colli per pallet should be nil without pallet plans")
	}
	if m := Derive(models.PalletizingInstruction{PalletPlans: f(4)}); m.ColliPerPallet != nil {
		t.Error("colli per pallet should be nil without plan packaging")
	}
}

func TestDeriveUnitsPerPallet(t *testing.T) {
	m := Derive(models.PalletizingInstruction{
		UnitsPerNeck: f(2), PlanPackaging: f(5), PalletPlans: f(4),
	})
	if m.UnitsPerPallet == nil || *m.UnitsPerPallet != 40 {
		t.Errorf("units per pallet = %v, want 40", m.UnitsPerPallet)
	}

	// Any missing factor suppresses the figure.
	cases := []models.PalletizingInstruction{
		{PlanPackaging: f(5), PalletPlans: f(4)},
		{UnitsPerNeck: f(2), PalletPlans: f(4)},
		{UnitsPerNeck: f(2), PlanPackaging: f(5)},
	}
	for i, pi := range cases {
		if m := Derive(pi); m.UnitsPerPallet != nil {
			t.Errorf("case %d: units per pallet = %v, want nil", i, *m.UnitsPerPallet)
		}
	}
}

func TestDeriveZeroIsAValidFactor(t *testing.T) {
	// Zero is a recorded value, not a missing one.
	m := Derive(models.PalletizingInstruction{
		PlanPackaging: f(0), PalletPlans: f(4),
	})
	if m.ColliPerPallet == nil || *m.ColliPerPallet != 0 {
		t.Errorf("colli per pallet = %v, want 0", m.ColliPerPallet)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	pi := models.PalletizingInstruction{LengthCM: f(12.5), DepthCM: f(8), HeightCM: f(20)}
	_ = Derive(pi)
	if *pi.LengthCM != 12.5 || *pi.DepthCM != 8 || *pi.HeightCM != 20 {
		t.Error("Derive must not modify the instruction")
	}
}
