package project

import (
	"database/sql"
	"errors"
	"math"
	"net/http"
	"time"

	"frilance/dto"
	"frilance/middleware"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func ProjectController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/projects", auth, func(c *gin.Context) { ListProjects(c, db) })
	router.GET("/projects/:id", auth, func(c *gin.Context) { GetProject(c, db) })
	router.POST("/projects", auth, func(c *gin.Context) { CreateProject(c, db) })
	router.PUT("/projects/:id", auth, func(c *gin.Context) { UpdateProject(c, db) })
	router.DELETE("/projects/:id", auth, func(c *gin.Context) { DeleteProject(c, db) })
}

func ListProjects(c *gin.Context, db *sql.DB) {
	projects, err := services.FetchProjects(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func GetProject(c *gin.Context, db *sql.DB) {
	project, err := services.GetProject(db, c.Param("id"))
	if errors.Is(err, services.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func CreateProject(c *gin.Context, db *sql.DB) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	now := time.Now()
	project := model.Project{
		ProjectID: uuid.New().String(),
		Status:    model.ProjectPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !applyProjectRequest(c, db, req, &project) {
		return
	}
	if err := services.InsertProject(db, project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func UpdateProject(c *gin.Context, db *sql.DB) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	project, err := services.GetProject(db, c.Param("id"))
	if errors.Is(err, services.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	if !applyProjectRequest(c, db, req, &project) {
		return
	}
	if err := services.UpdateProject(db, project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func DeleteProject(c *gin.Context, db *sql.DB) {
	err := services.DeleteProject(db, c.Param("id"))
	if errors.Is(err, services.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// applyProjectRequest copies the request into the project, validating status,
// deadline and the client link. It writes the error response itself and
// returns false when the request is rejected.
func applyProjectRequest(c *gin.Context, db *sql.DB, req dto.ProjectRequest, project *model.Project) bool {
	project.Name = req.Name
	project.Description = req.Description
	project.Budget = moneyFromFloat(req.Budget)
	project.Spent = moneyFromFloat(req.Spent)

	if req.Status != "" {
		status := model.ProjectStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
			return false
		}
		project.Status = status
	}

	deadline, err := dto.ParseDate(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline"})
		return false
	}
	project.Deadline = deadline

	project.ClientID = req.ClientID
	project.ClientName = ""
	if req.ClientID != "" {
		client, err := services.GetClient(db, req.ClientID)
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown client"})
			return false
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client"})
			return false
		}
		project.ClientName = client.Name
	}
	return true
}

func moneyFromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
