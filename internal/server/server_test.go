// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/brand-engine/internal/logging"
	"github.com/pdiddy/brand-engine/internal/recommend"
	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const luxuryAnalysis = "Brand name: Aurum\n" +
	"A premium luxury boutique logo, elegant and refined. Gold lettering on black. [deep]"

func newTestServer(cfg types.ServerConfig) *Server {
	return New(recommend.New(taxonomy.Default()), cfg, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var e apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func analysisBody(t *testing.T, analysis, displayName string) string {
	t.Helper()
	data, err := json.Marshal(analysisRequest{Analysis: analysis, DisplayName: displayName})
	require.NoError(t, err)
	return string(data)
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(types.ServerConfig{}).Handler(), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRecommendations(t *testing.T) {
	h := newTestServer(types.ServerConfig{}).Handler()

	rec := do(t, h, http.MethodPost, "/v1/recommendations", analysisBody(t, luxuryAnalysis, "Aurum & Co"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, types.IndustryLuxury, got.Analysis.Industry)
	assert.Equal(t, "Aurum & Co", got.Config.BrandName)
	require.Len(t, got.Presets, 4)
	assert.Equal(t, "luxury-gold", got.Presets[0].PresetID)
	assert.Equal(t, recommend.Recommend(luxuryAnalysis, "Aurum & Co").Presets, got.Presets)
}

func TestRecommendationsEmptyAnalysis(t *testing.T) {
	h := newTestServer(types.ServerConfig{}).Handler()

	rec := do(t, h, http.MethodPost, "/v1/recommendations", `{"analysis": ""}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, types.DefaultIndustry, got.Analysis.Industry)
	assert.Len(t, got.Presets, 4)
}

func TestClassifications(t *testing.T) {
	h := newTestServer(types.ServerConfig{}).Handler()

	body := analysisBody(t, "```json\n{\"industry\":\"luxury\",\"colors\":[\"gold\",\"green\"]}\n```", "")
	rec := do(t, h, http.MethodPost, "/v1/classifications", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, types.IndustryLuxury, got.Industry)
	assert.Equal(t, []string{"gold", "green"}, got.Colors)
}

func TestBadRequests(t *testing.T) {
	h := newTestServer(types.ServerConfig{MaxBodyBytes: 64}).Handler()

	tests := []struct {
		name        string
		body        string
		contentType string
		status      int
		code        string
	}{
		{"empty body", "", "", http.StatusBadRequest, codeBadRequest},
		{"malformed json", `{"analysis": `, "", http.StatusBadRequest, codeBadRequest},
		{"unknown field", `{"text": "x"}`, "", http.StatusBadRequest, codeBadRequest},
		{"trailing data", `{"analysis": "x"} {"analysis": "y"}`, "", http.StatusBadRequest, codeBadRequest},
		{"too large", `{"analysis": "` + strings.Repeat("a", 200) + `"}`, "", http.StatusRequestEntityTooLarge, codeTooLarge},
		{"wrong content type", `{"analysis": "x"}`, "text/plain", http.StatusUnsupportedMediaType, codeUnsupportedMedia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.contentType != "" {
				headers["Content-Type"] = tt.contentType
			}
			rec := do(t, h, http.MethodPost, "/v1/recommendations", tt.body, headers)
			assert.Equal(t, tt.status, rec.Code)
			e := decodeError(t, rec)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.status, e.Status)
			assert.NotEmpty(t, e.RequestID)
		})
	}
}

func TestPresets(t *testing.T) {
	h := newTestServer(types.ServerConfig{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/presets", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list presetList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, taxonomy.Default().Catalog, list.Presets)

	rec = do(t, h, http.MethodGet, "/v1/presets/luxury-crown", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p types.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Royal Crown", p.Name)

	rec = do(t, h, http.MethodGet, "/v1/presets/made-up", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, decodeError(t, rec).Code)
}

func TestPrompt(t *testing.T) {
	h := newTestServer(types.ServerConfig{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/prompt?brand=Aurum", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got promptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Prompt, `The brand is called "Aurum".`)
}

func TestRoutingErrors(t *testing.T) {
	h := newTestServer(types.ServerConfig{}).Handler()

	rec := do(t, h, http.MethodGet, "/v2/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, decodeError(t, rec).Code)

	rec = do(t, h, http.MethodGet, "/v1/recommendations", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, codeMethodNotAllowed, decodeError(t, rec).Code)
}

func TestBearerToken(t *testing.T) {
	h := newTestServer(types.ServerConfig{APIToken: "s3cret"}).Handler()

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic s3cret", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer s3cret", http.StatusOK},
		{"case-insensitive scheme", "bearer s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.auth != "" {
				headers["Authorization"] = tt.auth
			}
			rec := do(t, h, http.MethodGet, "/v1/presets", "", headers)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, codeUnauthorized, decodeError(t, rec).Code)
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}

	// Health checks stay open.
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "", nil).Code)
}

func TestRecovererLogsPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	h := logging.InjectLogger(zap.New(core))(recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := do(t, h, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, codeInternal, decodeError(t, rec).Code)

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
}

func TestRequestsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := New(recommend.New(taxonomy.Default()), types.ServerConfig{}, zap.New(core)).Handler()

	do(t, h, http.MethodGet, "/v1/presets/luxury-gold", "", nil)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/v1/presets/{id}", entries[0].ContextMap()["route"])
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newTestServer(types.ServerConfig{}).Serve(ctx, ln)
	}()

	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	s := newTestServer(types.ServerConfig{Addr: "256.0.0.1:bad"})
	err := s.ListenAndServe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}
