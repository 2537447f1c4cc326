package tableau

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The published transcriptions carry no consistency check of their
// own, so the catalogue-wide properties are asserted here method by
// method.
var _ = Describe("the method catalogue", func() {
	It("resolves every listed name", func() {
		for _, name := range Names() {
			tb, err := Get(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(tb.Name).To(Equal(name))
		}
	})

	It("holds structurally valid tableaux only", func() {
		for _, name := range Names() {
			tb, _ := Get(name)
			Expect(tb.Validate()).To(Succeed(), name)
		}
	})

	It("keeps order and stage counts in the published ranges", func() {
		for _, name := range Names() {
			tb, _ := Get(name)
			Expect(tb.Order).To(And(BeNumerically(">=", 1), BeNumerically("<=", 8)), name)
			Expect(tb.Stages).To(And(BeNumerically(">=", 1), BeNumerically("<=", 13)), name)
			Expect(tb.Registers).To(And(BeNumerically(">=", 1), BeNumerically("<=", tb.Stages)), name)
		}
	})

	Context("full-storage tableaux", func() {
		It("satisfies c[i] == sum_j a[i][j] within 1e-12 relative", func() {
			for _, name := range Names() {
				tb, _ := Get(name)
				if tb.Storage != Full {
					continue
				}
				for i := 0; i < tb.Stages; i++ {
					sum := 0.0
					for _, a := range tb.A[i] {
						sum += a
					}
					Expect(sum).To(BeNumerically("~", tb.C[i], 1e-12), "%s stage %d", name, i)
				}
			}
		})

		It("has weights summing to one", func() {
			for _, name := range Names() {
				tb, _ := Get(name)
				if tb.Storage != Full {
					continue
				}
				sum := 0.0
				for _, b := range tb.B {
					sum += b
				}
				Expect(sum).To(BeNumerically("~", 1.0, 1e-12), name)
			}
		})
	})

	Context("low-storage tableaux", func() {
		It("opens the recurrence with alpha[0] == 0", func() {
			for _, name := range Names() {
				tb, _ := Get(name)
				if tb.Storage != LowStorage {
					continue
				}
				Expect(tb.Alpha[0]).To(BeZero(), name)
				Expect(tb.Registers).To(Equal(2), name)
			}
		})
	})

	Context("convex tableaux", func() {
		It("records an SSP step-size coefficient", func() {
			for _, name := range Names() {
				tb, _ := Get(name)
				if tb.Storage != Convex {
					continue
				}
				Expect(tb.CFL).To(BeNumerically(">=", 1), name)
			}
		})

		It("expands to a valid Butcher form", func() {
			for _, name := range Names() {
				tb, _ := Get(name)
				if tb.Storage == Full {
					continue
				}
				full, err := tb.ToFull()
				Expect(err).NotTo(HaveOccurred(), name)
				Expect(full.Validate()).To(Succeed(), name)
			}
		})
	})
})
