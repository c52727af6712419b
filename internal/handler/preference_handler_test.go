package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTheme_Handler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/theme", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, NewPreferenceHandler(&mockPreferenceService{theme: "dark"}).GetTheme(c))
	assert.JSONEq(t, `{"theme":"dark"}`, rec.Body.String())
}

func TestSetTheme_Handler(t *testing.T) {
	svc := &mockPreferenceService{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, NewPreferenceHandler(svc).SetTheme(c))
	assert.Equal(t, []string{"dark"}, svc.setCalls)
	assert.JSONEq(t, `{"theme":"dark"}`, rec.Body.String())
}

func TestSetTheme_Handler_Invalid(t *testing.T) {
	svc := &mockPreferenceService{setErr: service.ErrInvalidTheme}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/theme", strings.NewReader(`{"theme":"sepia"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPreferenceHandler(svc).SetTheme(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
