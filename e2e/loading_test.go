//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	stderrors "errors"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
	"github.com/kagari-dev/kagari/internal/loading"
)

func loadingTests() {
	Context("Loading sequence", func() {
		newManager := func(sink *syncBuffer, policy loading.CompletionPolicy, steps ...string) *loading.Manager {
			m, err := loading.NewManager(loading.Config{
				Steps:   steps,
				Policy:  policy,
				Ticker:  animation.NewClock(5 * time.Millisecond),
				Surface: animation.NewSurface(sink),
			})
			Expect(err).NotTo(HaveOccurred())
			return m
		}

		It("completes fixed-duration steps in order", func() {
			sink := &syncBuffer{}
			m := newManager(sink, loading.OnFixedDuration(30*time.Millisecond),
				"network", "drivers", "apps")

			Expect(m.Run(context.Background())).To(Succeed())

			out := sink.String()
			Expect(out).To(ContainSubstring("network [1/3]"))
			Expect(out).To(ContainSubstring("drivers [2/3]"))
			Expect(out).To(ContainSubstring("apps [3/3]"))
			Expect(out).To(ContainSubstring("all 3 steps completed"))

			Expect(strings.Index(out, "network [1/3]")).To(
				BeNumerically("<", strings.Index(out, "drivers [2/3]")))
			Expect(strings.Index(out, "drivers [2/3]")).To(
				BeNumerically("<", strings.Index(out, "apps [3/3]")))
		})

		It("advances on an early signal", func() {
			sink := &syncBuffer{}
			m := newManager(sink, loading.OnSignal(), "network", "drivers")

			done := make(chan error, 1)
			go func() {
				done <- m.Run(context.Background())
			}()

			for range 2 {
				Eventually(func() string {
					return sink.String()
				}, time.Second, 5*time.Millisecond).Should(ContainSubstring("processing"))
				m.Signal(nil)
			}
			Eventually(done, time.Second).Should(Receive(Succeed()))
			Expect(sink.String()).To(ContainSubstring("all 2 steps completed"))
		})

		It("halts the sequence at a failing step", func() {
			sink := &syncBuffer{}
			m := newManager(sink, loading.OnSignal(), "placeholder")

			cause := fmt.Errorf("device not found")
			appsRan := false
			err := m.RunWithWork(context.Background(), []loading.Step{
				{Label: "network", Do: func(context.Context) error { return nil }},
				{Label: "drivers", Do: func(context.Context) error { return cause }},
				{Label: "apps", Do: func(context.Context) error {
					appsRan = true
					return nil
				}},
			})
			Expect(appsRan).To(BeFalse(), "step after a failure must not run")

			var stepErr *errors.StepError
			Expect(stderrors.As(err, &stepErr)).To(BeTrue())
			Expect(stepErr.Index).To(Equal(1))
			Expect(stepErr.Label).To(Equal("drivers"))

			out := sink.String()
			Expect(out).To(ContainSubstring("network [1/3]"))
			Expect(out).To(ContainSubstring("drivers [2/3]"))
			Expect(out).NotTo(ContainSubstring("apps [3/3]"))
			Expect(out).NotTo(ContainSubstring("all 3 steps completed"))
		})
	})
}
