//go:build e2e

package e2e

import (
	. "github.com/onsi/ginkgo/v2"
)

var _ = Describe("kagari", func() {
	animationTests()
	loadingTests()
})
