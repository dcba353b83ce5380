package meeting

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

func MeetingController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/meetings", auth, func(c *gin.Context) { ListMeetings(c, db) })
	router.POST("/meetings", auth, func(c *gin.Context) { CreateMeeting(c, db) })
	router.PUT("/meetings/:id", auth, func(c *gin.Context) { UpdateMeeting(c, db) })
	router.DELETE("/meetings/:id", auth, func(c *gin.Context) { DeleteMeeting(c, db) })
}

func ListMeetings(c *gin.Context, db *sql.DB) {
	meetings, err := services.FetchMeetings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meetings"})
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func CreateMeeting(c *gin.Context, db *sql.DB) {
	var req dto.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	now := time.Now()
	meeting := model.Meeting{
		MeetingID: uuid.New().String(),
		Status:    model.MeetingScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !applyMeetingRequest(c, db, req, &meeting) {
		return
	}
	if err := services.InsertMeeting(db, meeting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting"})
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

func UpdateMeeting(c *gin.Context, db *sql.DB) {
	var req dto.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	meeting, err := services.GetMeeting(db, c.Param("id"))
	if errors.Is(err, services.ErrMeetingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meeting"})
		return
	}

	if !applyMeetingRequest(c, db, req, &meeting) {
		return
	}
	if err := services.UpdateMeeting(db, meeting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

func DeleteMeeting(c *gin.Context, db *sql.DB) {
	err := services.DeleteMeeting(db, c.Param("id"))
	if errors.Is(err, services.ErrMeetingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted"})
}

func applyMeetingRequest(c *gin.Context, db *sql.DB, req dto.MeetingRequest, meeting *model.Meeting) bool {
	date, err := dto.ParseDate(req.Date)
	if err != nil || date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return false
	}

	meeting.Title = req.Title
	meeting.Date = *date
	meeting.Time = req.Time
	meeting.Attendees = req.Attendees
	meeting.Agenda = req.Agenda
	meeting.Notes = req.Notes

	if req.Status != "" {
		status := model.MeetingStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting status"})
			return false
		}
		meeting.Status = status
	}

	meeting.ClientID = req.ClientID
	meeting.ClientName = ""
	if req.ClientID != "" {
		client, cerr := services.GetClient(db, req.ClientID)
		if errors.Is(cerr, services.ErrClientNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown client"})
			return false
		}
		if cerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client"})
			return false
		}
		meeting.ClientName = client.Name
	}
	return true
}
