package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/unpartial/api"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, mergeName string) *echo.Echo {
	t.Helper()
	d, err := newDefaults(mergeName,
		api.Record{`retries`: 3},
		api.Record{`server`: api.Record{`host`: `localhost`, `port`: 8080}})
	require.NoError(t, err)
	return CreateRouter(d, hclog.Default())
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFill_defaultStrategy(t *testing.T) {
	rec := post(testRouter(t, ``), `/fill`, `{"server": {"port": 9090}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"retries": 3, "server": {"port": 9090}}`, rec.Body.String())
}

func TestFill_strategyInQuery(t *testing.T) {
	rec := post(testRouter(t, ``), `/fill?merge=deep`, `{"server": {"port": 9090}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"retries": 3, "server": {"host": "localhost", "port": 9090}}`, rec.Body.String())
}

func TestFill_strategyInPath(t *testing.T) {
	rec := post(testRouter(t, `shallow`), `/fill/deep`, "server:\n  secure: true\n")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"retries": 3, "server": {"host": "localhost", "port": 8080, "secure": true}}`, rec.Body.String())
}

func TestFill_emptyBody(t *testing.T) {
	rec := post(testRouter(t, `deep`), `/fill`, ``)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"retries": 3, "server": {"host": "localhost", "port": 8080}}`, rec.Body.String())
}

func TestFill_unknownStrategy(t *testing.T) {
	rec := post(testRouter(t, ``), `/fill/first`, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message": "unknown fill strategy 'first'"}`, rec.Body.String())
}

func TestFill_bodyNotHash(t *testing.T) {
	rec := post(testRouter(t, ``), `/fill`, `[1, 2]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `does not contain a YAML hash`)
}

func TestLayers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, `/layers`, nil)
	rec := httptest.NewRecorder()
	testRouter(t, `deep`).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"merge": "deep", "superBase": {"retries": 3}, "base": {"server": {"host": "localhost", "port": 8080}}}`, rec.Body.String())
}

func TestNewDefaults_unknownStrategy(t *testing.T) {
	_, err := newDefaults(`hash`, nil, api.Record{})
	require.EqualError(t, err, `unknown fill strategy 'hash'`)
}
