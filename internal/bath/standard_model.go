package bath

import "sync"

var standardModel = sync.OnceValues(func() (*Bath, error) {
	return New(StandardModelDataset())
})

// StandardModel returns the shared Standard Model bath. It is built on first
// use; later calls return the same instance.
func StandardModel() (*Bath, error) {
	return standardModel()
}

func withStandardModel(f func(*Bath, float64) (float64, error), temperature float64) (float64, error) {
	b, err := StandardModel()
	if err != nil {
		return 0, err
	}
	return f(b, temperature)
}

func GEff(temperature float64) (float64, error) {
	return withStandardModel((*Bath).GEff, temperature)
}

func HEff(temperature float64) (float64, error) {
	return withStandardModel((*Bath).HEff, temperature)
}

func SqrtGStar(temperature float64) (float64, error) {
	return withStandardModel((*Bath).SqrtGStar, temperature)
}

func GEffDeriv(temperature float64) (float64, error) {
	return withStandardModel((*Bath).GEffDeriv, temperature)
}

func HEffDeriv(temperature float64) (float64, error) {
	return withStandardModel((*Bath).HEffDeriv, temperature)
}

func EnergyDensity(temperature float64) (float64, error) {
	return withStandardModel((*Bath).EnergyDensity, temperature)
}

func EnergyDensityDeriv(temperature float64) (float64, error) {
	return withStandardModel((*Bath).EnergyDensityDeriv, temperature)
}

func EntropyDensity(temperature float64) (float64, error) {
	return withStandardModel((*Bath).EntropyDensity, temperature)
}

func EntropyDensityDeriv(temperature float64) (float64, error) {
	return withStandardModel((*Bath).EntropyDensityDeriv, temperature)
}
