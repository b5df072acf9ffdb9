package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/abidjan-route/testutil"
)

// TestMain migrates the test database once for the whole package when one is
// configured. Static-catalog tests run either way.
func TestMain(m *testing.M) {
	if dsn := os.Getenv(testutil.DSNEnv); dsn != "" {
		testutil.MustMigrate(dsn)
	}
	os.Exit(m.Run())
}
