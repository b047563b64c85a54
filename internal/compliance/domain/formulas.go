package domain

// Default regulatory parameters for the 2025 reporting period.
const (
	// TargetIntensity2025 is the GHG intensity target in gCO2e/MJ.
	TargetIntensity2025 = 89.3368
	// EnergyDensityMJPerTonne is the lower calorific value used to convert
	// fuel mass to energy in scope.
	EnergyDensityMJPerTonne = 41000.0
)

// EnergyInScope returns the energy covered by the regulation in MJ for the
// given fuel consumption in tonnes.
func EnergyInScope(fuelConsumptionTonnes, energyDensity float64) float64 {
	return fuelConsumptionTonnes * energyDensity
}

// Balance returns the signed compliance balance in gCO2eq. Positive means the
// ship performed below the target intensity (surplus), negative means deficit.
func Balance(ghgIntensity, fuelConsumptionTonnes, targetIntensity, energyDensity float64) float64 {
	return (targetIntensity - ghgIntensity) * EnergyInScope(fuelConsumptionTonnes, energyDensity)
}

// PercentDifference returns how far value deviates from baseline in percent.
// A zero baseline yields zero instead of a division error.
func PercentDifference(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return ((value / baseline) - 1) * 100
}

// IsCompliant reports whether the intensity meets the target.
func IsCompliant(ghgIntensity, targetIntensity float64) bool {
	return ghgIntensity <= targetIntensity
}
