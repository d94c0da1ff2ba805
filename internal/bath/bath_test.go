package bath

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/spline"
)

// linearDataset tabulates g = 10 + 2L, h = 12 + 3L and √g* = 3 + L on
// [-1, 1]; a not-a-knot cubic reproduces all three exactly.
func linearDataset() Dataset {
	grid := Linspace(-1, 1, 9)
	ds := Dataset{
		LogTemperature: grid,
		GEff:           make([]float64, len(grid)),
		HEff:           make([]float64, len(grid)),
		SqrtGStar:      make([]float64, len(grid)),
		Asymptotes: Asymptotes{
			GEffFront: 8, GEffBack: 12,
			HEffFront: 9, HEffBack: 15,
			SqrtGStarFront: 2, SqrtGStarBack: 4,
		},
	}
	for i, L := range grid {
		ds.GEff[i] = 10 + 2*L
		ds.HEff[i] = 12 + 3*L
		ds.SqrtGStar[i] = 3 + L
	}
	return ds
}

var _ = Describe("Bath", func() {
	Describe("a linear table", func() {
		var b *Bath

		BeforeEach(func() {
			var err error
			b, err = New(linearDataset())
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports its window", func() {
			lo, hi := b.Window()
			Expect(lo).To(Equal(-1.0))
			Expect(hi).To(Equal(1.0))
			Expect(b.Extrapolation()).To(Equal(spline.Const))
		})

		It("interpolates inside the grid", func() {
			g, err := b.GEff(math.Pow(10, 0.3))
			Expect(err).NotTo(HaveOccurred())
			Expect(g).To(BeNumerically("~", 10.6, 1e-9))

			h, err := b.HEff(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(BeNumerically("~", 12, 1e-9))

			s, err := b.SqrtGStar(math.Pow(10, -0.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(BeNumerically("~", 2.5, 1e-9))
		})

		It("uses the front constant at and below the first node", func() {
			for _, T := range []float64{0, 1e-10, 0.01, 0.09} {
				g, err := b.GEff(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(g).To(Equal(8.0))

				dg, err := b.GEffDeriv(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(dg).To(Equal(0.0))
			}
		})

		It("uses the back constant at and above the last node", func() {
			for _, T := range []float64{11, 100, 1e30} {
				h, err := b.HEff(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(h).To(Equal(15.0))

				dh, err := b.HEffDeriv(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(dh).To(Equal(0.0))

				s, err := b.SqrtGStar(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(s).To(Equal(4.0))
			}
		})

		It("converts d/dlog10(T) into d/dT", func() {
			for _, T := range []float64{0.2, 1, 5} {
				dg, err := b.GEffDeriv(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(dg).To(BeNumerically("~", 2/(T*math.Ln10), 1e-9))

				dh, err := b.HEffDeriv(T)
				Expect(err).NotTo(HaveOccurred())
				Expect(dh).To(BeNumerically("~", 3/(T*math.Ln10), 1e-9))
			}
		})

		It("applies the product rule to the densities", func() {
			T := 2.0
			g := 10 + 2*math.Log10(T)
			dg := 2 / (T * math.Ln10)
			want := energyFactor * T * T * T * (T*dg + 4*g)

			got, err := b.EnergyDensityDeriv(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNumerically("~", want, 1e-9*want))

			h := 12 + 3*math.Log10(T)
			dh := 3 / (T * math.Ln10)
			want = entropyFactor * T * T * (T*dh + 3*h)

			got, err = b.EntropyDensityDeriv(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNumerically("~", want, 1e-9*want))
		})

		It("rejects unphysical temperatures", func() {
			for _, T := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
				_, err := b.GEff(T)
				Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue(), "T=%v", T)

				_, err = b.EntropyDensityDeriv(T)
				Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue(), "T=%v", T)
			}
		})

		It("honours the extrapolation option", func() {
			eb, err := New(linearDataset(), WithExtrapolation(spline.Extrapolate), WithLogger(nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(eb.Extrapolation()).To(Equal(spline.Extrapolate))

			g, err := eb.GEff(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(g).To(Equal(12.0))
		})
	})

	Describe("construction", func() {
		It("rejects an empty dataset", func() {
			ds := linearDataset()
			ds.LogTemperature, ds.GEff = nil, nil
			_, err := New(ds)
			Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue())
		})

		It("rejects a grid that is not ascending", func() {
			ds := linearDataset()
			ds.LogTemperature[3], ds.LogTemperature[4] = ds.LogTemperature[4], ds.LogTemperature[3]
			_, err := New(ds)
			Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("g_eff"))
		})

		It("rejects tables of the wrong length", func() {
			ds := linearDataset()
			ds.HEff = ds.HEff[:5]
			_, err := New(ds)
			Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("h_eff"))
		})

		It("rejects non-finite asymptotes", func() {
			ds := linearDataset()
			ds.Asymptotes.SqrtGStarBack = math.NaN()
			_, err := New(ds)
			Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue())
		})

		It("fails to initialise with too few points", func() {
			ds := linearDataset()
			ds.LogTemperature = ds.LogTemperature[:3]
			ds.GEff, ds.HEff, ds.SqrtGStar = ds.GEff[:3], ds.HEff[:3], ds.SqrtGStar[:3]
			_, err := New(ds)
			Expect(errors.Is(err, errors.ErrInitializationFailure)).To(BeTrue())
		})
	})
})

var _ = Describe("Standard Model", func() {
	var (
		b  *Bath
		ds Dataset
	)

	BeforeEach(func() {
		var err error
		b, err = StandardModel()
		Expect(err).NotTo(HaveOccurred())
		ds = StandardModelDataset()
	})

	It("spans log10(T/GeV) from -4.5 to 4", func() {
		lo, hi := b.Window()
		Expect(lo).To(Equal(-4.5))
		Expect(hi).To(Equal(4.0))
		Expect(ds.LogTemperature).To(HaveLen(341))
	})

	It("reproduces the table at interior grid nodes", func() {
		for i := 1; i < len(ds.LogTemperature)-1; i += 17 {
			T := math.Pow(10, ds.LogTemperature[i])

			g, err := b.GEff(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(g).To(BeNumerically("~", ds.GEff[i], 1e-8*ds.GEff[i]))

			h, err := b.HEff(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(BeNumerically("~", ds.HEff[i], 1e-8*ds.HEff[i]))

			s, err := b.SqrtGStar(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(BeNumerically("~", ds.SqrtGStar[i], 1e-8*ds.SqrtGStar[i]))
		}
	})

	It("returns the asymptotes outside the grid", func() {
		for _, L := range []float64{-5, -10} {
			g, err := GEff(math.Pow(10, L))
			Expect(err).NotTo(HaveOccurred())
			Expect(g).To(Equal(StandardModelAsymptotes.GEffFront))
		}
		for _, L := range []float64{4.01, 5, 12} {
			h, err := HEff(math.Pow(10, L))
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(Equal(StandardModelAsymptotes.HEffBack))

			dg, err := GEffDeriv(math.Pow(10, L))
			Expect(err).NotTo(HaveOccurred())
			Expect(dg).To(Equal(0.0))
		}
	})

	It("stays close to the asymptotes across the boundaries", func() {
		eps := 1e-9
		check := func(f func(float64) (float64, error), front, back float64) {
			in, err := f(math.Pow(10, -4.5+eps))
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(in-front) / front).To(BeNumerically("<", 0.01))

			in, err = f(math.Pow(10, 4-eps))
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(in-back) / back).To(BeNumerically("<", 0.01))
		}
		a := StandardModelAsymptotes
		check(GEff, a.GEffFront, a.GEffBack)
		check(HEff, a.HEffFront, a.HEffBack)
		check(SqrtGStar, a.SqrtGStarFront, a.SqrtGStarBack)
	})

	It("relates energy density to g_eff", func() {
		g, err := GEff(1)
		Expect(err).NotTo(HaveOccurred())
		rho, err := EnergyDensity(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(rho).To(Equal(math.Pi * math.Pi / 30 * g))

		h, err := HEff(1)
		Expect(err).NotTo(HaveOccurred())
		s, err := EntropyDensity(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(2 * math.Pi * math.Pi / 45 * h))
	})

	It("matches a finite difference for dg_eff/dT", func() {
		for _, T := range []float64{1e-3, 0.3, 1, 50} {
			dT := 1e-6 * T
			up, err := GEff(T + dT)
			Expect(err).NotTo(HaveOccurred())
			down, err := GEff(T - dT)
			Expect(err).NotTo(HaveOccurred())
			fd := (up - down) / (2 * dT)

			dg, err := GEffDeriv(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(dg).To(BeNumerically("~", fd, 1e-4*math.Abs(fd)+1e-6))
		}
	})

	It("is positive and finite for the density derivatives", func() {
		for _, T := range []float64{1e-5, 1e-2, 1, 1e5} {
			d, err := EnergyDensityDeriv(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(BeNumerically(">", 0))

			d, err = EntropyDensityDeriv(T)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(BeNumerically(">", 0))

			_, err = HEffDeriv(T)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("is built once under concurrent use", func() {
		var wg sync.WaitGroup
		got := make([]*Bath, 16)
		for i := range got {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer GinkgoRecover()
				bb, err := StandardModel()
				Expect(err).NotTo(HaveOccurred())
				got[i] = bb
			}(i)
		}
		wg.Wait()
		for _, bb := range got {
			Expect(bb).To(BeIdenticalTo(b))
		}
	})
})
