package expense

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

func ExpenseController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/expenses", auth, func(c *gin.Context) { ListExpenses(c, db) })
	router.POST("/expenses", auth, func(c *gin.Context) { CreateExpense(c, db) })
	router.PUT("/expenses/:id", auth, func(c *gin.Context) { UpdateExpense(c, db) })
	router.DELETE("/expenses/:id", auth, func(c *gin.Context) { DeleteExpense(c, db) })
}

func ListExpenses(c *gin.Context, db *sql.DB) {
	expenses, err := services.FetchExpenses(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func CreateExpense(c *gin.Context, db *sql.DB) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil || date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	expense := model.Expense{
		ExpenseID:   uuid.New().String(),
		Description: req.Description,
		Amount:      amountFromFloat(req.Amount),
		Category:    req.Category,
		Date:        *date,
		CreatedAt:   time.Now(),
	}
	if err := services.InsertExpense(db, expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func UpdateExpense(c *gin.Context, db *sql.DB) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil || date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	expense := model.Expense{
		ExpenseID:   c.Param("id"),
		Description: req.Description,
		Amount:      amountFromFloat(req.Amount),
		Category:    req.Category,
		Date:        *date,
	}
	uerr := services.UpdateExpense(db, expense)
	if errors.Is(uerr, services.ErrExpenseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": uerr.Error()})
		return
	}
	if uerr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

func DeleteExpense(c *gin.Context, db *sql.DB) {
	err := services.DeleteExpense(db, c.Param("id"))
	if errors.Is(err, services.ErrExpenseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

func amountFromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
