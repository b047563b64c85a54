package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergyInScope(t *testing.T) {
	assert.InDelta(t, 41_000_000, EnergyInScope(1000, EnergyDensityMJPerTonne), 1e-6)
	assert.Equal(t, 0.0, EnergyInScope(0, EnergyDensityMJPerTonne))
}

func TestBalance_Deficit(t *testing.T) {
	// 91 gCO2e/MJ against the 89.3368 target over 1000 t of fuel.
	cb := Balance(91, 1000, TargetIntensity2025, EnergyDensityMJPerTonne)
	assert.InDelta(t, -68_191_200, cb, 1)
	assert.Less(t, cb, 0.0)
}

func TestBalance_Surplus(t *testing.T) {
	cb := Balance(88, 1000, TargetIntensity2025, EnergyDensityMJPerTonne)
	assert.InDelta(t, 54_808_800, cb, 1)
	assert.Greater(t, cb, 0.0)
}

func TestBalance_ZeroFuel(t *testing.T) {
	assert.Equal(t, 0.0, Balance(95, 0, TargetIntensity2025, EnergyDensityMJPerTonne))
}

// The sign of the balance must agree with the compliance verdict whenever fuel
// was burned: a ship at or below the target never shows a deficit.
func TestBalance_SignMatchesCompliance(t *testing.T) {
	intensities := []float64{70, 85, 89.3368, 89.34, 91, 120}
	for _, ghg := range intensities {
		cb := Balance(ghg, 500, TargetIntensity2025, EnergyDensityMJPerTonne)
		if IsCompliant(ghg, TargetIntensity2025) {
			assert.GreaterOrEqual(t, cb, 0.0, "intensity %v", ghg)
		} else {
			assert.Less(t, cb, 0.0, "intensity %v", ghg)
		}
	}
}

func TestPercentDifference(t *testing.T) {
	assert.InDelta(t, 10, PercentDifference(110, 100), 1e-9)
	assert.InDelta(t, -25, PercentDifference(75, 100), 1e-9)
	assert.Equal(t, 0.0, PercentDifference(91, 0))
	assert.Equal(t, 0.0, PercentDifference(100, 100))
}

func TestIsCompliant_TargetIsInclusive(t *testing.T) {
	assert.True(t, IsCompliant(TargetIntensity2025, TargetIntensity2025))
	assert.True(t, IsCompliant(80, TargetIntensity2025))
	assert.False(t, IsCompliant(89.34, TargetIntensity2025))
}
