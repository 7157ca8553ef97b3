package handlers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
