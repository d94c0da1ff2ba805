package config

import (
	"math"
	"sort"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/thermal"
)

// Species describes a particle by mass (GeV), internal degeneracy and twice
// its spin. Degeneracies count antiparticles and colour.
type Species struct {
	Name       string  `yaml:"name" json:"name"`
	Mass       float64 `yaml:"mass" json:"mass"`
	Degeneracy float64 `yaml:"degeneracy" json:"degeneracy"`
	Spin2      int     `yaml:"spin2" json:"spin2"`
}

func (s Species) Validate() error {
	switch {
	case s.Name == "":
		return errors.InvalidInputf("config: species without a name")
	case math.IsNaN(s.Mass) || math.IsInf(s.Mass, 0) || s.Mass < 0:
		return errors.InvalidInputf("config: species %q has invalid mass %g", s.Name, s.Mass)
	case math.IsNaN(s.Degeneracy) || math.IsInf(s.Degeneracy, 0) || s.Degeneracy <= 0:
		return errors.InvalidInputf("config: species %q has invalid degeneracy %g", s.Name, s.Degeneracy)
	case s.Spin2 < 0:
		return errors.InvalidInputf("config: species %q has negative spin2 %d", s.Name, s.Spin2)
	}
	return nil
}

func (s Species) Particle(opts ...thermal.ParticleOption) (thermal.Particle, error) {
	p, err := thermal.NewParticle(s.Mass, s.Degeneracy, s.Spin2, opts...)
	if err != nil {
		return thermal.Particle{}, errors.Wrapf(err, "species %s", s.Name)
	}
	return p, nil
}

var builtinSpecies = map[string]Species{
	"photon": {Name: "photon", Mass: 0, Degeneracy: 2, Spin2: 2},
	"gluon":  {Name: "gluon", Mass: 0, Degeneracy: 16, Spin2: 2},

	"electron": {Name: "electron", Mass: 0.51099895e-3, Degeneracy: 4, Spin2: 1},
	"muon":     {Name: "muon", Mass: 0.1056583755, Degeneracy: 4, Spin2: 1},
	"tau":      {Name: "tau", Mass: 1.77686, Degeneracy: 4, Spin2: 1},
	"nu_e":     {Name: "nu_e", Mass: 0, Degeneracy: 2, Spin2: 1},
	"nu_mu":    {Name: "nu_mu", Mass: 0, Degeneracy: 2, Spin2: 1},
	"nu_tau":   {Name: "nu_tau", Mass: 0, Degeneracy: 2, Spin2: 1},

	"up":      {Name: "up", Mass: 2.16e-3, Degeneracy: 12, Spin2: 1},
	"down":    {Name: "down", Mass: 4.67e-3, Degeneracy: 12, Spin2: 1},
	"strange": {Name: "strange", Mass: 0.0934, Degeneracy: 12, Spin2: 1},
	"charm":   {Name: "charm", Mass: 1.27, Degeneracy: 12, Spin2: 1},
	"bottom":  {Name: "bottom", Mass: 4.18, Degeneracy: 12, Spin2: 1},
	"top":     {Name: "top", Mass: 172.69, Degeneracy: 12, Spin2: 1},

	"w":     {Name: "w", Mass: 80.377, Degeneracy: 6, Spin2: 2},
	"z":     {Name: "z", Mass: 91.1876, Degeneracy: 3, Spin2: 2},
	"higgs": {Name: "higgs", Mass: 125.25, Degeneracy: 1, Spin2: 0},

	"pi0":   {Name: "pi0", Mass: 0.1349768, Degeneracy: 1, Spin2: 0},
	"pi_pm": {Name: "pi_pm", Mass: 0.13957039, Degeneracy: 2, Spin2: 0},
}

// GetSpecies returns a built-in species.
func GetSpecies(name string) (Species, bool) {
	s, ok := builtinSpecies[name]
	return s, ok
}

// ListSpecies returns the built-in species names, sorted.
func ListSpecies() []string {
	return SortedNames(builtinSpecies)
}

func SortedNames(catalog map[string]Species) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
