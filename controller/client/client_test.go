package client_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frilance/connection"
	"frilance/controller/client"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, connection.EnsureSchema(db))

	router := gin.New()
	client.ClientController(router, db)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	token, err := services.CreateAccessToken("u-1", "dev@example.com", "user")
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateClientDefaultsToLead(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/clients", gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.StageLead, created.Status)
}

func TestMoveClientAcrossPipeline(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/clients", gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPatch, "/clients/"+created.ClientID+"/status", gin.H{"status": "proposal"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPatch, "/clients/"+created.ClientID+"/status", gin.H{"status": "won"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown stage is rejected")

	w = doJSON(t, router, http.MethodGet, "/clients/"+created.ClientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, model.StageProposal, fetched.Status)
}

func TestPipelineGroupsByStage(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []gin.H{
		{"name": "Acme", "status": "lead"},
		{"name": "Globex", "status": "active"},
		{"name": "Initech", "status": "lead"},
	} {
		w := doJSON(t, router, http.MethodPost, "/clients", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/pipeline", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var columns []struct {
		Stage   model.ClientStatus `json:"stage"`
		Clients []model.Client     `json:"clients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &columns))
	require.Len(t, columns, 5, "one column per stage, even when empty")
	assert.Equal(t, model.StageLead, columns[0].Stage)
	assert.Len(t, columns[0].Clients, 2)
	assert.Len(t, columns[1].Clients, 0)
	assert.Equal(t, model.StageActive, columns[4].Stage)
	assert.Len(t, columns[4].Clients, 1)
}

func TestDeleteClientNotFound(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodDelete, "/clients/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
