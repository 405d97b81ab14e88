package testutils

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/l7mp/dquery/pkg/document"
)

// Snapshot takes a deep copy of v and returns a function that asserts v still equals it. Used
// to check that queries leave their inputs alone.
func Snapshot(v any) func() {
	snapshot := document.DeepCopy(v)
	return func() {
		GinkgoHelper()
		Expect(v).To(Equal(snapshot), "input was modified")
	}
}
