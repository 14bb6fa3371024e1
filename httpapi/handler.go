package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/search"
)

// FindPathRequest is the POST /api/findpath body. Costs uses -1 for walls.
type FindPathRequest struct {
	Agent string       `json:"agent" binding:"required"`
	Start CoordPayload `json:"start"`
	Goal  CoordPayload `json:"goal"`
	Costs [][]int      `json:"costs" binding:"required"`
}

// CoordPayload is a JSON coordinate pair.
type CoordPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FindPathResponse reports the outcome of one search run.
type FindPathResponse struct {
	RunID           string         `json:"runId"`
	Agent           string         `json:"agent"`
	Found           bool           `json:"found"`
	Path            []CoordPayload `json:"path"`
	TotalCost       int            `json:"totalCost"`
	ExecutionTimeMs float64        `json:"executionTimeMs"`
}

// findPathHandler runs one search per request. Each run gets a UUID so log
// lines and responses can be correlated.
func findPathHandler(c *gin.Context) {
	var req FindPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	agent, err := search.NewAgent(req.Agent)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	g, err := grid.New(req.Costs)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.NewString()
	start := search.Coord{Row: req.Start.Row, Col: req.Start.Col}
	goal := search.Coord{Row: req.Goal.Row, Col: req.Goal.Col}
	logrus.Infof("run %s: %s search (%d,%d)->(%d,%d) on %dx%d grid",
		runID, agent.Name(), start.Row, start.Col, goal.Row, goal.Col, g.Rows(), g.Cols())

	began := time.Now()
	path, err := agent.FindPath(c.Request.Context(), g, start, goal)
	elapsed := time.Since(began)
	if err != nil {
		logrus.Warnf("run %s failed: %v", runID, err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "runId": runID})
		return
	}

	resp := FindPathResponse{
		RunID:           runID,
		Agent:           agent.Name(),
		Found:           !path.IsEmpty(),
		Path:            make([]CoordPayload, 0, len(path)),
		ExecutionTimeMs: float64(elapsed.Microseconds()) / 1000.0,
	}
	for _, coord := range path {
		resp.Path = append(resp.Path, CoordPayload{Row: coord.Row, Col: coord.Col})
	}
	if resp.Found {
		resp.TotalCost = path.TotalCost(g)
	}
	c.JSON(http.StatusOK, resp)
}

// agentsHandler lists the registered agent names.
func agentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": search.AgentNames()})
}
