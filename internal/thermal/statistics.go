package thermal

import "github.com/san-kum/thermokit/internal/errors"

type Statistics int

const (
	BoseEinstein Statistics = iota
	FermiDirac
)

func (s Statistics) String() string {
	switch s {
	case BoseEinstein:
		return "bose-einstein"
	case FermiDirac:
		return "fermi-dirac"
	default:
		return "unknown"
	}
}

// Eta is the sign in the occupation denominator exp(z) - η.
func (s Statistics) Eta() float64 {
	if s == FermiDirac {
		return -1
	}
	return 1
}

// StatisticsOf maps twice the spin onto its quantum statistics.
func StatisticsOf(spin2 int) (Statistics, error) {
	if spin2 < 0 {
		return 0, errors.InvalidInputf("thermal: spin2 %d must be non-negative", spin2)
	}
	if spin2%2 == 0 {
		return BoseEinstein, nil
	}
	return FermiDirac, nil
}
