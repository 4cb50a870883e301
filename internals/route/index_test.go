package routes

import (
	"io"
	"net/http/httptest"
	"testing"

	"kurikulum_backend/internals/configs"
	"kurikulum_backend/internals/features/kurikulum/testutil"
	helper "kurikulum_backend/internals/helpers"
	"kurikulum_backend/internals/helpers/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes_Mounts(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedKurikulum(t, db, "Merdeka")

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler(logger.Nop())})
	SetupRoutes(app, db, configs.Config{AppEnv: "test", PageSize: 10, MaxPageSize: 100}, logger.Nop())

	for _, target := range []string{
		"/health",
		"/curriculum-overview",
		"/api/curriculum-overview",
		"/api/non-paginated/choices/kurikulum",
		"/api/admin/kurikulums",
	} {
		res, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
		require.NoError(t, err, target)
		body, _ := io.ReadAll(res.Body)
		assert.Equal(t, 200, res.StatusCode, "%s: %s", target, body)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/api/admin/tidak-ada", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
}
