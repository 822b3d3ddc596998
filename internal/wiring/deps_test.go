package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses
// it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers dependency IDs from the package of the type
	// passed to Dep[T]. Most nodes here resolve interfaces from the shared
	// ports package, which it cannot map back to distinct node IDs.
	t.Skip("graft static analysis cannot resolve nodes sharing the ports package")
	graft.AssertDepsValid(t, "../../internal")
}
