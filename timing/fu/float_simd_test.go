package fu_test

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/minorfu/timing/fu"
	"github.com/sarchlab/minorfu/timing/latency"
)

var _ = Describe("FloatSIMD unit", func() {
	var (
		mockCtrl *gomock.Controller
		base     *MockBaseUnits
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		base = NewMockBaseUnits(mockCtrl)
		base.EXPECT().
			DefaultUnit(fu.FloatSIMD).
			Return(fu.Descriptor{
				Name:      "StubFloatSimdFU",
				Kind:      fu.FloatSIMD,
				OpClasses: []fu.OpClass{fu.OpFloatAdd, fu.OpSimdAdd},
				OpLat:     5,
				IssueLat:  2,
			})
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should keep base latencies with nil options", func() {
		unit := fu.NewFloatSIMDUnit(base, nil)

		Expect(unit.Name).To(Equal("StubFloatSimdFU"))
		Expect(unit.OpLat).To(Equal(5))
		Expect(unit.IssueLat).To(Equal(2))
		Expect(unit.OpClasses).To(Equal(
			[]fu.OpClass{fu.OpFloatAdd, fu.OpSimdAdd}))
	})

	It("should keep base latencies when no FPU option is set", func() {
		unit := fu.NewFloatSIMDUnit(base, &latency.Options{})

		Expect(unit.OpLat).To(Equal(5))
		Expect(unit.IssueLat).To(Equal(2))
	})

	DescribeTable("operation latency override",
		func(l int) {
			unit := fu.NewFloatSIMDUnit(base,
				&latency.Options{FPUOperationLatency: l})

			Expect(unit.OpLat).To(Equal(l))
			Expect(unit.IssueLat).To(Equal(2))
		},
		Entry("1 cycle", 1),
		Entry("3 cycles", 3),
		Entry("64 cycles", 64),
	)

	DescribeTable("issue latency override",
		func(l int) {
			unit := fu.NewFloatSIMDUnit(base,
				&latency.Options{FPUIssueLatency: l, FPUOperationLatency: 11})

			Expect(unit.IssueLat).To(Equal(l))
			Expect(unit.OpLat).To(Equal(11))
		},
		Entry("1 cycle", 1),
		Entry("4 cycles", 4),
		Entry("32 cycles", 32),
	)

	It("should treat a zero operation latency as unset", func() {
		unit := fu.NewFloatSIMDUnit(base,
			&latency.Options{FPUOperationLatency: 0, FPUIssueLatency: 3})

		Expect(unit.OpLat).To(Equal(5))
		Expect(unit.IssueLat).To(Equal(3))
	})

	It("should apply a negative latency as given", func() {
		unit := fu.NewFloatSIMDUnit(base,
			&latency.Options{FPUOperationLatency: -2})

		Expect(unit.OpLat).To(Equal(-2))
	})

	It("should not change the options", func() {
		opts := &latency.Options{FPUOperationLatency: 3, FPUIssueLatency: 1}
		fu.NewFloatSIMDUnit(base, opts)

		Expect(opts).To(Equal(
			&latency.Options{FPUOperationLatency: 3, FPUIssueLatency: 1}))
	})
})
