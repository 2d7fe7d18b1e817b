package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"cambiazo/internal/adapter/api/handler"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler.SetupHealthHandler()
	healthHandler := handler.GetHealthHandler()

	if assert.NoError(t, healthHandler.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "running")
	}
}

func TestVocabulariesEndpoint(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/vocabularies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	searchHandler := handler.NewSearchHandler(nil)

	if assert.NoError(t, searchHandler.GetVocabularies(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Managua")
		assert.Contains(t, rec.Body.String(), "Electrónica")
		assert.Contains(t, rec.Body.String(), "New")
	}
}
