package latency_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/minorfu/timing/latency"
)

var _ = Describe("Options", func() {
	Describe("Presence checks", func() {
		It("should report nothing set on nil options", func() {
			var opts *latency.Options
			Expect(opts.HasFPUOperationLatency()).To(BeFalse())
			Expect(opts.HasFPUIssueLatency()).To(BeFalse())
		})

		It("should treat zero as unset", func() {
			opts := &latency.Options{}
			Expect(opts.HasFPUOperationLatency()).To(BeFalse())
			Expect(opts.HasFPUIssueLatency()).To(BeFalse())
		})

		It("should check each option independently", func() {
			opts := &latency.Options{FPUIssueLatency: 2}
			Expect(opts.HasFPUOperationLatency()).To(BeFalse())
			Expect(opts.HasFPUIssueLatency()).To(BeTrue())
		})
	})

	Describe("Validate", func() {
		It("should accept nil options", func() {
			var opts *latency.Options
			Expect(opts.Validate()).To(Succeed())
		})

		It("should accept unset and positive values", func() {
			opts := &latency.Options{FPUOperationLatency: 4}
			Expect(opts.Validate()).To(Succeed())
		})

		It("should reject a negative operation latency", func() {
			opts := &latency.Options{FPUOperationLatency: -1}
			Expect(opts.Validate()).To(
				MatchError(ContainSubstring("fpu_operation_latency")))
		})

		It("should reject a negative issue latency", func() {
			opts := &latency.Options{FPUIssueLatency: -3}
			Expect(opts.Validate()).To(
				MatchError(ContainSubstring("fpu_issue_latency")))
		})
	})

	Describe("Clone and Merge", func() {
		It("should clone nil to nil", func() {
			var opts *latency.Options
			Expect(opts.Clone()).To(BeNil())
		})

		It("should produce an independent copy", func() {
			opts := &latency.Options{FPUOperationLatency: 3, FPUIssueLatency: 1}
			clone := opts.Clone()
			clone.FPUOperationLatency = 9

			Expect(opts.FPUOperationLatency).To(Equal(3))
			Expect(clone.FPUIssueLatency).To(Equal(1))
		})

		It("should keep base values the override leaves unset", func() {
			base := &latency.Options{FPUOperationLatency: 3, FPUIssueLatency: 1}
			merged := base.Merge(&latency.Options{FPUIssueLatency: 2})

			Expect(merged.FPUOperationLatency).To(Equal(3))
			Expect(merged.FPUIssueLatency).To(Equal(2))
			Expect(base.FPUIssueLatency).To(Equal(1))
		})

		It("should merge onto nil options", func() {
			var base *latency.Options
			merged := base.Merge(&latency.Options{FPUOperationLatency: 5})
			Expect(merged).To(Equal(&latency.Options{FPUOperationLatency: 5}))
		})
	})

	Describe("Files", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("should load options from YAML", func() {
			path := filepath.Join(dir, "opts.yaml")
			content := "fpu_operation_latency: 3\nfpu_issue_latency: 1\n"
			Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())

			opts, err := latency.LoadOptions(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.FPUOperationLatency).To(Equal(3))
			Expect(opts.FPUIssueLatency).To(Equal(1))
		})

		It("should leave missing keys unset", func() {
			path := filepath.Join(dir, "opts.yaml")
			content := "fpu_issue_latency: 4\n"
			Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())

			opts, err := latency.LoadOptions(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.HasFPUOperationLatency()).To(BeFalse())
			Expect(opts.FPUIssueLatency).To(Equal(4))
		})

		It("should round-trip through SaveOptions", func() {
			path := filepath.Join(dir, "opts.json")
			opts := &latency.Options{FPUOperationLatency: 7, FPUIssueLatency: 2}
			Expect(opts.SaveOptions(path)).To(Succeed())

			loaded, err := latency.LoadOptions(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(opts))
		})

		It("should fail on a missing file", func() {
			_, err := latency.LoadOptions(filepath.Join(dir, "missing.yaml"))
			Expect(err).To(MatchError(ContainSubstring("failed to read")))
		})

		It("should fail on malformed content", func() {
			path := filepath.Join(dir, "bad.yaml")
			content := "fpu_operation_latency: [1, 2\n"
			Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())

			_, err := latency.LoadOptions(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse")))
		})
	})
})
