//go:build e2e

package e2e

import (
	"fmt"
	"os"
	"testing"

	"github.com/ariel-frischer/relnotes/internal/testutil"
)

func TestMain(m *testing.M) {
	code := m.Run()
	if err := testutil.CleanupBuild(); err != nil {
		fmt.Fprintf(os.Stderr, "removing relnotes build dir: %v\n", err)
	}
	os.Exit(code)
}
