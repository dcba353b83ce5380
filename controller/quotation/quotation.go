package quotation

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

func QuotationController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/quotations", auth, func(c *gin.Context) { ListQuotations(c, db) })
	router.GET("/quotations/:id", auth, func(c *gin.Context) { GetQuotation(c, db) })
	router.POST("/quotations", auth, func(c *gin.Context) { CreateQuotation(c, db) })
	router.PUT("/quotations/:id", auth, func(c *gin.Context) { UpdateQuotation(c, db) })
	router.DELETE("/quotations/:id", auth, func(c *gin.Context) { DeleteQuotation(c, db) })
}

func ListQuotations(c *gin.Context, db *sql.DB) {
	quotations, err := services.FetchQuotations(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quotations"})
		return
	}
	c.JSON(http.StatusOK, quotations)
}

func GetQuotation(c *gin.Context, db *sql.DB) {
	q, err := services.GetQuotation(db, c.Param("id"))
	if errors.Is(err, services.ErrQuotationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quotation"})
		return
	}
	c.JSON(http.StatusOK, q)
}

func CreateQuotation(c *gin.Context, db *sql.DB) {
	var req dto.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	now := time.Now()
	q, ok := quotationFromRequest(c, db, req, model.Quotation{
		QuotationID: uuid.New().String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if !ok {
		return
	}

	if err := services.InsertQuotation(db, q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quotation"})
		return
	}
	c.JSON(http.StatusCreated, q)
}

func UpdateQuotation(c *gin.Context, db *sql.DB) {
	var req dto.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	existing, err := services.GetQuotation(db, c.Param("id"))
	if errors.Is(err, services.ErrQuotationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quotation"})
		return
	}

	q, ok := quotationFromRequest(c, db, req, existing)
	if !ok {
		return
	}

	if err := services.UpdateQuotation(db, q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quotation"})
		return
	}
	c.JSON(http.StatusOK, q)
}

func DeleteQuotation(c *gin.Context, db *sql.DB) {
	err := services.DeleteQuotation(db, c.Param("id"))
	if errors.Is(err, services.ErrQuotationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quotation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted"})
}

func quotationFromRequest(c *gin.Context, db *sql.DB, req dto.QuotationRequest, base model.Quotation) (model.Quotation, bool) {
	status := model.QuotationStatus(req.Status)
	if req.Status == "" {
		status = model.QuotationDraft
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return model.Quotation{}, false
	}
	validUntil, err := dto.ParseDate(req.ValidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid valid-until date format"})
		return model.Quotation{}, false
	}
	settings, err := services.GetSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return model.Quotation{}, false
	}

	items := make([]model.LineItem, 0, len(req.Items))
	for _, in := range req.Items {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, services.NewLineItem(id, in.Description, in.Quantity, in.Rate))
	}
	tax := services.ResolveTax(items, req.TaxRate, req.Tax, settings.DefaultTaxRate)

	q := base
	q.QuotationNumber = req.QuotationNumber
	q.ProjectID = req.ProjectID
	q.ClientID = req.ClientID
	q.Items = items
	q.Subtotal = services.Subtotal(items)
	q.Tax = tax.Amount
	q.Total = services.Total(items, tax.Amount)
	q.Status = status
	q.ValidUntil = validUntil
	if tax.Mode == services.TaxRateDriven {
		rate := tax.Rate
		q.TaxRate = &rate
	} else {
		q.TaxRate = nil
	}

	q.ProjectName = ""
	q.ClientName = ""
	if q.ProjectID != "" {
		if project, err := services.GetProject(db, q.ProjectID); err == nil {
			q.ProjectName = project.Name
		}
	}
	if q.ClientID != "" {
		if client, err := services.GetClient(db, q.ClientID); err == nil {
			q.ClientName = client.Name
		}
	}
	return q, true
}
