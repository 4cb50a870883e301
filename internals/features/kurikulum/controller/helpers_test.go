package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kurikulum_backend/internals/features/kurikulum/route"
	helper "kurikulum_backend/internals/helpers"
	"kurikulum_backend/internals/helpers/logger"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler(logger.Nop()),
	})
	route.KurikulumPublicRoutes(app, db, 2, 5)
	route.KurikulumAdminRoutes(app.Group("/api/admin"), db)
	return app
}

type resp struct {
	Status int
	Body   []byte
	Header http.Header
}

func do(t *testing.T, app *fiber.App, method, target, contentType, body string) resp {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return resp{Status: res.StatusCode, Body: b, Header: res.Header}
}

func get(t *testing.T, app *fiber.App, target string) resp {
	return do(t, app, http.MethodGet, target, "", "")
}

func sendJSON(t *testing.T, app *fiber.App, method, target, body string) resp {
	return do(t, app, method, target, fiber.MIMEApplicationJSON, body)
}

func decode[T any](t *testing.T, r resp) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(r.Body, &v), string(r.Body))
	return v
}

type errorBody struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}
