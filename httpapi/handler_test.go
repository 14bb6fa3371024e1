package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postFindPath(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/findpath", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	SetupRouter().ServeHTTP(rec, req)
	return rec
}

func TestFindPath_AStarOnUniformGrid(t *testing.T) {
	// GIVEN a 3x3 unit-cost grid, corner to corner
	rec := postFindPath(t, FindPathRequest{
		Agent: "AStar",
		Start: CoordPayload{Row: 0, Col: 0},
		Goal:  CoordPayload{Row: 2, Col: 2},
		Costs: [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp FindPathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// THEN the route makes 4 moves at unit cost plus the start tile
	assert.True(t, resp.Found)
	assert.Len(t, resp.Path, 5)
	assert.Equal(t, 5, resp.TotalCost)
	assert.Equal(t, CoordPayload{Row: 0, Col: 0}, resp.Path[0])
	assert.Equal(t, CoordPayload{Row: 2, Col: 2}, resp.Path[4])
	assert.NotEmpty(t, resp.RunID)
}

func TestFindPath_UnreachableGoal(t *testing.T) {
	rec := postFindPath(t, FindPathRequest{
		Agent: "DFS",
		Start: CoordPayload{Row: 0, Col: 0},
		Goal:  CoordPayload{Row: 0, Col: 2},
		Costs: [][]int{{1, -1, 1}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp FindPathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Path)
}

func TestFindPath_UnknownAgent(t *testing.T) {
	rec := postFindPath(t, FindPathRequest{
		Agent: "Dijkstra",
		Costs: [][]int{{1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown agent")
}

func TestFindPath_BadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/findpath", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	SetupRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindPath_OutOfBoundsEndpoint(t *testing.T) {
	rec := postFindPath(t, FindPathRequest{
		Agent: "AStar",
		Start: CoordPayload{Row: 5, Col: 5},
		Goal:  CoordPayload{Row: 0, Col: 0},
		Costs: [][]int{{1, 1}, {1, 1}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "out of bounds")
}

func TestAgents_ListsRegistry(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/agents", nil)
	rec := httptest.NewRecorder()
	SetupRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Agents []string `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"AStar", "BranchAndBound", "DFS", "Example"}, resp.Agents)
}
