//go:build e2e

package e2e

import (
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/effect"
)

// syncBuffer is a goroutine-safe frame sink. The timing loop writes while
// assertions read, so the raw builder needs a lock.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func animationTests() {
	Context("Frame pipeline", func() {
		newSpinnerRunner := func(sink *syncBuffer) *animation.Runner {
			spinner, err := effect.NewSpinner(effect.SpinnerConfig{
				Message: "working",
				Glyphs:  effect.Glyphs(effect.PresetClassic),
			})
			Expect(err).NotTo(HaveOccurred())

			clock := animation.NewClock(5 * time.Millisecond)
			return animation.NewRunner(spinner, clock, animation.NewSurface(sink))
		}

		It("renders spinner frames on the wall clock", func() {
			sink := &syncBuffer{}
			runner := newSpinnerRunner(sink)

			Expect(runner.Start()).To(Succeed())
			Eventually(func() int {
				return strings.Count(sink.String(), "working")
			}, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 4))
			Expect(runner.Stop()).To(Succeed())

			out := sink.String()
			Expect(out).To(ContainSubstring("| working"))
			Expect(out).To(ContainSubstring("/ working"))
			Expect(strings.HasSuffix(out, "\033[0m")).To(BeTrue(),
				"teardown must end with a color reset")
		})

		It("stays silent after stop", func() {
			sink := &syncBuffer{}
			runner := newSpinnerRunner(sink)

			Expect(runner.Start()).To(Succeed())
			Eventually(func() string {
				return sink.String()
			}, time.Second, 5*time.Millisecond).Should(ContainSubstring("working"))

			Expect(runner.Stop()).To(Succeed())
			Expect(runner.Stop()).To(Succeed(), "stop is idempotent")
			Expect(runner.Running()).To(BeFalse())

			size := len(sink.String())
			Consistently(func() int {
				return len(sink.String())
			}, 50*time.Millisecond, 5*time.Millisecond).Should(Equal(size))
		})

		It("restarts after stop", func() {
			sink := &syncBuffer{}
			runner := newSpinnerRunner(sink)

			Expect(runner.Start()).To(Succeed())
			Expect(runner.Stop()).To(Succeed())

			Expect(runner.Start()).To(Succeed())
			Eventually(func() int {
				return strings.Count(sink.String(), "| working")
			}, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 2),
				"restart begins at the first glyph again")
			Expect(runner.Stop()).To(Succeed())
		})
	})
}
