package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envaran/EnvaranMatch/internal/pkg/taxonomy"
)

func newValidateTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/register/validate", HandleRegisterValidate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleRegisterValidateStepPasses(t *testing.T) {
	app := newValidateTestApp()

	resp := postJSON(t, app, "/api/v1/register/validate", map[string]interface{}{
		"step": 2,
		"draft": map[string]interface{}{
			"fatherName":  "Kumar",
			"fatherAlive": "yes",
			"motherName":  "Lakshmi",
			"motherAlive": "yes",
		},
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["valid"])
}

func TestHandleRegisterValidateStepFails(t *testing.T) {
	app := newValidateTestApp()

	resp := postJSON(t, app, "/api/v1/register/validate", map[string]interface{}{
		"step":  2,
		"draft": map[string]interface{}{"fatherName": "Kumar"},
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])

	validation := body["validation"].(map[string]interface{})
	assert.Equal(t, "missing_fields", validation["code"])
	assert.Equal(t, float64(2), validation["step"])
}

func TestHandleRegisterValidateRejectsBadStep(t *testing.T) {
	app := newValidateTestApp()

	resp := postJSON(t, app, "/api/v1/register/validate", map[string]interface{}{
		"step":  9,
		"draft": map[string]interface{}{},
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleTaxonomyEndpoints(t *testing.T) {
	InitializeTaxonomyController(taxonomy.New(""))

	app := fiber.New()
	app.Get("/api/v1/taxonomy/castes", HandleTaxonomyCastes)
	app.Get("/api/v1/taxonomy/castes/:caste/subcastes", HandleTaxonomySubCastes)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/taxonomy/castes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["castes"], "BRAHMIN")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/taxonomy/castes/GOUNDER/subcastes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["known"])
	assert.Equal(t, []interface{}{"NILL"}, body["subCastes"])
}
