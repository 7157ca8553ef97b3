package rbac

import (
	"os"
	"testing"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
