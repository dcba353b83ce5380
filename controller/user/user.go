package user

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"frilance/dto"
	"frilance/middleware"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func UserController(router *gin.Engine, db *sql.DB) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, db)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfile(c, db)
		})
		routes.DELETE("/account", func(c *gin.Context) {
			DeleteAccount(c, db)
		})
	}
}

func GetProfile(c *gin.Context, db *sql.DB) {
	userId := c.MustGet("userId").(string)

	user, err := services.GetUserByID(db, userId)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context, db *sql.DB) {
	userId := c.MustGet("userId").(string)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" && req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}
	if req.Name != "" && (len(req.Name) < 2 || len(req.Name) > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be between 2 and 100 characters"})
		return
	}

	hashed := ""
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		hashed = string(h)
	}

	err := services.UpdateUserProfile(db, userId, req.Name, hashed)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"userid":  userId,
	})
}

func DeleteAccount(c *gin.Context, db *sql.DB) {
	userId := c.MustGet("userId").(string)

	err := services.DeleteUser(db, userId)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
