package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobee/resume-tailor/internal/types"
)

const testResume = `Jane Doe
Berlin, Germany

Skills
------
Go | Python | SQL | Docker

Work experience/Projects
------------------------
Inventory Service
03/2021 - Present
- Built REST APIs in Go
`

type stubRenderer struct{}

func (stubRenderer) Render(_ context.Context, _ string) ([]byte, error) {
	return []byte("pdf-bytes"), nil
}

type stubCounter struct{}

func (stubCounter) CountPages(_ []byte) (int, error) { return 1, nil }

func newTestServer(t *testing.T, jwtSecret string) *Server {
	t.Helper()
	srv, err := New(Config{
		Port:       0,
		ResumeText: testResume,
		MaxPages:   2,
		Renderer:   stubRenderer{},
		Counter:    stubCounter{},
		JWTSecret:  jwtSecret,
	})
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewRequiresRenderer(t *testing.T) {
	_, err := New(Config{ResumeText: testResume})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestGenerate(t *testing.T) {
	srv := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/generate",
		types.GenerateRequest{JobText: "Go backend role with Docker", Label: "Acme"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Tailored)
	assert.True(t, resp.Fitted)
	assert.Equal(t, 1, resp.Pages)
	assert.NotEmpty(t, resp.HTMLArtifact)
	assert.NotEmpty(t, resp.PDFArtifact)
	assert.Nil(t, resp.Assessment)
	assert.Empty(t, resp.RunID) // no store configured

	// Both artifacts are retrievable by the returned ids.
	art := doJSON(t, srv.Handler(), http.MethodGet, "/artifacts/"+resp.PDFArtifact, nil, "")
	assert.Equal(t, http.StatusOK, art.Code)
	assert.Equal(t, "application/pdf", art.Header().Get("Content-Type"))
	assert.Equal(t, "pdf-bytes", art.Body.String())
	assert.Contains(t, art.Header().Get("Content-Disposition"), "Resume_Acme_")

	art = doJSON(t, srv.Handler(), http.MethodGet, "/artifacts/"+resp.HTMLArtifact, nil, "")
	assert.Equal(t, http.StatusOK, art.Code)
	assert.Contains(t, art.Body.String(), "<h1>Jane Doe</h1>")
}

func TestGenerateWithAssessment(t *testing.T) {
	srv := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/generate",
		types.GenerateRequest{JobText: "Go and Docker", Assess: true}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Assessment)
	assert.Contains(t, []string{"APPLY", "MAYBE", "NO"}, resp.Assessment.Recommendation)
}

func TestGenerateValidation(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/generate", types.GenerateRequest{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid JSON body", body["error"])
}

func TestAssess(t *testing.T) {
	srv := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/assess",
		types.AssessRequest{JobText: "Go developer with Docker and SQL"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var assessment types.FitAssessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessment))
	assert.NotEmpty(t, assessment.Recommendation)
	assert.GreaterOrEqual(t, assessment.Confidence, 0)
	assert.LessOrEqual(t, assessment.Confidence, 100)
}

func TestCoverLetterRequiresClient(t *testing.T) {
	srv := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/cover-letter",
		types.CoverLetterRequest{JobText: "Go developer"}, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestArtifactNotFound(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/artifacts/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/artifacts/4a2f0a62-24cd-4d0b-b2b1-2f0f3b6f3c11", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunEndpointsWithoutStore(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/runs", nil, "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/runs/4a2f0a62-24cd-4d0b-b2b1-2f0f3b6f3c11", nil, "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodDelete, "/runs/4a2f0a62-24cd-4d0b-b2b1-2f0f3b6f3c11", nil, "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestAuth(t *testing.T) {
	srv := newTestServer(t, "test-secret")

	// Health stays open.
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Missing and malformed tokens are rejected.
	rec = doJSON(t, srv.Handler(), http.MethodPost, "/assess",
		types.AssessRequest{JobText: "Go"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/assess",
		types.AssessRequest{JobText: "Go"}, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A token signed with another secret is rejected.
	otherToken, err := NewTokenService("other-secret").GenerateToken("tester")
	require.NoError(t, err)
	rec = doJSON(t, srv.Handler(), http.MethodPost, "/assess",
		types.AssessRequest{JobText: "Go"}, otherToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A properly issued token is accepted.
	token, err := srv.tokens.GenerateToken("tester")
	require.NoError(t, err)
	rec = doJSON(t, srv.Handler(), http.MethodPost, "/assess",
		types.AssessRequest{JobText: "Go"}, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("secret")
	token, err := svc.GenerateToken("jane")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane", claims.Subject)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
