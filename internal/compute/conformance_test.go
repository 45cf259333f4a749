package compute_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tensorwerk/geodyn/internal/compute"
)

const tolerance = 1e-12

func randomSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64()
	}
	return s
}

// Every backend must produce the same results as the scalar reference,
// within floating-point tolerance, for identical inputs.
var _ = Describe("backend conformance", func() {
	var (
		reference *compute.ScalarBackend
		rng       *rand.Rand

		gInv    []float64
		dg      [4][]float64
		gamma   []float64
		riemann []float64
		ricci   []float64
		vel     []float64
	)

	BeforeEach(func() {
		reference = compute.NewScalarBackend()
		rng = rand.New(rand.NewSource(42))

		gInv = randomSlice(rng, 16)
		for mu := 0; mu < 4; mu++ {
			dg[mu] = randomSlice(rng, 16)
		}
		gamma = reference.Christoffel(gInv, dg)
		riemann = reference.RiemannQuadratic(gamma)
		ricci = reference.RicciContract(riemann)
		vel = randomSlice(rng, 4)
	})

	backends := []struct {
		name string
		make func() compute.Backend
	}{
		{"parallel", func() compute.Backend { return compute.NewParallelBackend() }},
		{"cuda", func() compute.Backend { return compute.NewCUDABackend() }},
	}

	for _, entry := range backends {
		entry := entry

		Describe(entry.name, func() {
			var backend compute.Backend

			BeforeEach(func() {
				backend = entry.make()
			})

			AfterEach(func() {
				backend.Cleanup()
			})

			It("matches MatMul4", func() {
				a := randomSlice(rng, 16)
				b := randomSlice(rng, 16)
				want := reference.MatMul4(a, b)
				got := backend.MatMul4(a, b)
				for i := range want {
					Expect(got[i]).To(BeNumerically("~", want[i], tolerance))
				}
			})

			It("matches Christoffel", func() {
				want := reference.Christoffel(gInv, dg)
				got := backend.Christoffel(gInv, dg)
				for i := range want {
					Expect(got[i]).To(BeNumerically("~", want[i], tolerance))
				}
			})

			It("matches RiemannQuadratic", func() {
				want := reference.RiemannQuadratic(gamma)
				got := backend.RiemannQuadratic(gamma)
				tol := tolerance
				if backend.Available() && entry.name == "cuda" {
					// GPU kernels run in single precision.
					tol = 1e-4
				}
				for i := range want {
					Expect(got[i]).To(BeNumerically("~", want[i], tol))
				}
			})

			It("matches RicciContract", func() {
				want := reference.RicciContract(riemann)
				got := backend.RicciContract(riemann)
				for i := range want {
					Expect(got[i]).To(BeNumerically("~", want[i], tolerance))
				}
			})

			It("matches ScalarContract", func() {
				want := reference.ScalarContract(gInv, ricci)
				got := backend.ScalarContract(gInv, ricci)
				Expect(got).To(BeNumerically("~", want, tolerance))
			})

			It("matches GeodesicAccel", func() {
				want := reference.GeodesicAccel(gamma, vel)
				got := backend.GeodesicAccel(gamma, vel)
				tol := tolerance
				if backend.Available() && entry.name == "cuda" {
					tol = 1e-4
				}
				for i := range want {
					Expect(got[i]).To(BeNumerically("~", want[i], tol))
				}
			})
		})
	}
})

var _ = Describe("backend selection", func() {
	It("constructs backends by name", func() {
		for _, name := range []string{"scalar", "parallel", "cuda"} {
			b, err := compute.ByName(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(b).NotTo(BeNil())
		}
	})

	It("rejects unknown names", func() {
		_, err := compute.ByName("quantum")
		Expect(err).To(HaveOccurred())
	})

	It("auto-selects an available backend", func() {
		b := compute.AutoSelect()
		Expect(b.Available()).To(BeTrue())
	})
})
