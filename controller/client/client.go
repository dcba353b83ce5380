package client

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"frilance/dto"
	"frilance/middleware"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ClientController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/clients", auth, func(c *gin.Context) { ListClients(c, db) })
	router.GET("/clients/:id", auth, func(c *gin.Context) { GetClient(c, db) })
	router.POST("/clients", auth, func(c *gin.Context) { CreateClient(c, db) })
	router.PUT("/clients/:id", auth, func(c *gin.Context) { UpdateClient(c, db) })
	router.PATCH("/clients/:id/status", auth, func(c *gin.Context) { MoveClientStage(c, db) })
	router.DELETE("/clients/:id", auth, func(c *gin.Context) { DeleteClient(c, db) })
	router.GET("/pipeline", auth, func(c *gin.Context) { GetPipeline(c, db) })
}

func ListClients(c *gin.Context, db *sql.DB) {
	clients, err := services.FetchClients(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context, db *sql.DB) {
	client, err := services.GetClient(db, c.Param("id"))
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func CreateClient(c *gin.Context, db *sql.DB) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	status := model.ClientStatus(req.Status)
	if req.Status == "" {
		status = model.StageLead
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pipeline stage"})
		return
	}

	now := time.Now()
	client := model.Client{
		ClientID:  uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := services.InsertClient(db, client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

func UpdateClient(c *gin.Context, db *sql.DB) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	client, err := services.GetClient(db, c.Param("id"))
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client"})
		return
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Company = req.Company
	client.Address = req.Address
	if req.Status != "" {
		status := model.ClientStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pipeline stage"})
			return
		}
		client.Status = status
	}

	if err := services.UpdateClient(db, client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// MoveClientStage is the backend of a card drag on the pipeline board.
func MoveClientStage(c *gin.Context, db *sql.DB) {
	var req dto.ClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	status := model.ClientStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pipeline stage"})
		return
	}

	err := services.SetClientStatus(db, c.Param("id"), status)
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client moved", "status": status})
}

func DeleteClient(c *gin.Context, db *sql.DB) {
	err := services.DeleteClient(db, c.Param("id"))
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

// GetPipeline groups clients by stage, one column per stage in board order.
func GetPipeline(c *gin.Context, db *sql.DB) {
	clients, err := services.FetchClients(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}

	columns := []gin.H{}
	for _, stage := range model.PipelineStages() {
		stageClients := []model.Client{}
		for _, cl := range clients {
			if cl.Status == stage {
				stageClients = append(stageClients, cl)
			}
		}
		columns = append(columns, gin.H{"stage": stage, "clients": stageClients})
	}
	c.JSON(http.StatusOK, columns)
}
