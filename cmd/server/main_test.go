package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lauvinko/lauvinko"
	"github.com/lauvinko/lauvinko/lv"
)

func newTestServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	d, err := lauvinko.Load("../../data/dictionary.json")
	require.NoError(t, err)
	core, logs := observer.New(zap.InfoLevel)
	srv := httptest.NewServer(newHandler(d, zap.New(core), []string{"https://example.org"}))
	t.Cleanup(srv.Close)
	return srv, logs
}

func get(t *testing.T, srv *httptest.Server, path string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func historical(t *testing.T, text string) string {
	t.Helper()
	m, err := lv.ParseMorpheme(text)
	require.NoError(t, err)
	return m.Surface.HistoricalTranscription()
}

func TestEntries(t *testing.T) {
	srv, _ := newTestServer(t)

	var all entriesResponse
	resp := get(t, srv, "/api/entries", &all)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Greater(t, len(all.Entries), 9)

	var fientive entriesResponse
	get(t, srv, "/api/entries?category=fientive", &fientive)
	assert.Len(t, fientive.Entries, 5)

	resp = get(t, srv, "/api/entries?category=nounish", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEntry(t *testing.T) {
	srv, _ := newTestServer(t)

	var rice entryResponse
	resp := get(t, srv, "/api/entry?id=rice", &rice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "rice", rice.Ident)
	assert.Equal(t, "husked rice", rice.Definitions["pk"])
	assert.Equal(t, "rice", rice.Definitions["lv"])
	require.Len(t, rice.Forms, 4)
	assert.Equal(t, "gn", rice.Forms[0].Key)

	found := false
	for _, f := range rice.Forms {
		if f.Key == "gn.na" {
			found = true
			assert.Equal(t, historical(t, "o/k"), f.Historical)
		}
	}
	assert.True(t, found, "gn.na missing")

	var e errorResponse
	resp = get(t, srv, "/api/entry?id=nonesuch", &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, e.Error, "nonesuch")

	resp = get(t, srv, "/api/entry", &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, e.Error, "ID")
}

func TestEvolve(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		form, ctx, want string
	}{
		{"paaraye+N", "au", "pa/le+N"},
		{"paaraye+N", "", `pa\le+N`},
		{"okka", "na", "o/k"},
		{"peca", "au", "pe/c"},
	}
	for _, tc := range tests {
		var out evolveResponse
		resp := get(t, srv, "/api/evolve?form="+url.QueryEscape(tc.form)+"&ctx="+tc.ctx, &out)
		require.Equal(t, http.StatusOK, resp.StatusCode, tc.form)
		assert.Equal(t, historical(t, tc.want), out.Result.Historical, "%s %s", tc.form, tc.ctx)
		assert.NotEmpty(t, out.Proto.Falavay)
	}

	for _, path := range []string{
		"/api/evolve",
		"/api/evolve?form=okka&ctx=zz",
		"/api/evolve?form=okka&stress=x",
		"/api/evolve?form=okka&stress=5",
		"/api/evolve?form=qqq",
	} {
		resp := get(t, srv, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestParse(t *testing.T) {
	srv, _ := newTestServer(t)

	var out parseResponse
	resp := get(t, srv, "/api/parse?lang=lv&form="+url.QueryEscape("o/kka"), &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, historical(t, "o/kka"), out.Historical)
	assert.NotEmpty(t, out.Falavay)

	var pkOut parseResponse
	resp = get(t, srv, "/api/parse?lang=pk&form=okka", &pkOut)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, pkOut.Historical)
	assert.NotEmpty(t, pkOut.Romanization)

	for _, path := range []string{
		"/api/parse?lang=xx&form=okka",
		"/api/parse?lang=lv",
		"/api/parse?lang=lv&form=xx",
	} {
		resp := get(t, srv, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestGloss(t *testing.T) {
	srv, _ := newTestServer(t)

	var out glossResponse
	resp := get(t, srv, "/api/gloss?text="+url.QueryEscape("if-cut want-rice"), &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "if-cut want-rice", out.Analysis)
	assert.Equal(t, 2, out.Words)
	assert.Equal(t, historical(t, "tito/")+" "+historical(t, "evo/k"), out.Broad)

	resp = get(t, srv, "/api/gloss?text=cut.gn", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = get(t, srv, "/api/gloss?text=nonesuch", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/gloss", "text/plain", strings.NewReader("cut"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	srv, logs := newTestServer(t)

	resp := get(t, srv, "/api/entry?id=cut", nil)
	id := resp.Header.Get("X-Request-ID")
	assert.Len(t, id, 36)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/entry?id=cut", nil)
	require.NoError(t, err)
	const given = "0b1f6c52-93a4-4a8e-9a55-4f3f2c8e7d10"
	req.Header.Set("X-Request-ID", given)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, given, resp.Header.Get("X-Request-ID"))

	entries := logs.FilterMessage("request").FilterField(zap.String("request_id", given)).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/entry", entries[0].ContextMap()["path"])
}

func TestCORS(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/entries", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.org")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://example.org", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://elsewhere.test")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	srv, _ := newTestServer(t)
	get(t, srv, "/api/evolve?form=okka", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(b)
	assert.Contains(t, body, `lauvinko_http_requests_total{code="200",route="GET /api/evolve"}`)
	assert.Contains(t, body, "lauvinko_evolve_duration_seconds")
}
