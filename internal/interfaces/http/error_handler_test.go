package http_test

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/client-api/internal/application/dto"
	apphttp "github.com/jhoicas/client-api/internal/interfaces/http"
	"github.com/jhoicas/client-api/pkg/logger"
)

func decodeError(t *testing.T, body string) dto.ErrorResponse {
	t.Helper()
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp), body)
	return errResp
}

func TestErrorHandler_RutaInexistente_Retorna404NotFound(t *testing.T) {
	app := buildClientApp(&stubService{}, "")

	resp, body := send(t, app, http.MethodGet, "/v2/otra-cosa", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, body).Code)
}

func TestErrorHandler_FiberErrorConservaEstado(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppConfig{Name: testAppName, Logger: logger.Nop()})
	app.Get("/no-procesable", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "no procesable")
	})

	resp, body := send(t, app, http.MethodGet, "/no-procesable", "")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	errResp := decodeError(t, body)
	assert.Equal(t, "ERROR", errResp.Code)
	assert.Equal(t, "no procesable", errResp.Message)
}

func TestErrorHandler_PanicRetorna500Internal(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppConfig{Name: testAppName, Logger: logger.Nop()})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("estado imposible")
	})

	resp, body := send(t, app, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errResp := decodeError(t, body)
	assert.Equal(t, "INTERNAL", errResp.Code)
	assert.NotContains(t, body, "estado imposible")
}
