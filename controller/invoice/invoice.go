package invoice

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

func InvoiceController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/invoices", auth, func(c *gin.Context) { ListInvoices(c, db) })
	router.GET("/invoices/:id", auth, func(c *gin.Context) { GetInvoice(c, db) })
	router.POST("/invoices", auth, func(c *gin.Context) { CreateInvoice(c, db) })
	router.PUT("/invoices/:id", auth, func(c *gin.Context) { UpdateInvoice(c, db) })
	router.DELETE("/invoices/:id", auth, func(c *gin.Context) { DeleteInvoice(c, db) })
}

func ListInvoices(c *gin.Context, db *sql.DB) {
	invoices, err := services.FetchInvoices(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func GetInvoice(c *gin.Context, db *sql.DB) {
	inv, err := services.GetInvoice(db, c.Param("id"))
	if errors.Is(err, services.ErrInvoiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func CreateInvoice(c *gin.Context, db *sql.DB) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	inv, ok := invoiceFromRequest(c, db, req, model.Invoice{
		InvoiceID: uuid.New().String(),
		CreatedAt: time.Now(),
	})
	if !ok {
		return
	}

	if err := services.InsertInvoice(db, inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func UpdateInvoice(c *gin.Context, db *sql.DB) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	existing, err := services.GetInvoice(db, c.Param("id"))
	if errors.Is(err, services.ErrInvoiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}

	inv, ok := invoiceFromRequest(c, db, req, existing)
	if !ok {
		return
	}

	if err := services.UpdateInvoice(db, inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func DeleteInvoice(c *gin.Context, db *sql.DB) {
	err := services.DeleteInvoice(db, c.Param("id"))
	if errors.Is(err, services.ErrInvoiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}

// invoiceFromRequest applies an edit on top of base, re-deriving every
// amount server side: item amounts from quantity and rate, then subtotal,
// tax and total. Responds with the error itself when the input is bad.
func invoiceFromRequest(c *gin.Context, db *sql.DB, req dto.InvoiceRequest, base model.Invoice) (model.Invoice, bool) {
	status := model.InvoiceStatus(req.Status)
	if req.Status == "" {
		status = model.InvoiceDraft
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return model.Invoice{}, false
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
		return model.Invoice{}, false
	}
	settings, err := services.GetSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return model.Invoice{}, false
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

	inv := base
	inv.InvoiceNumber = req.InvoiceNumber
	inv.ProjectID = req.ProjectID
	inv.ClientID = req.ClientID
	inv.Items = items
	inv.Subtotal = services.Subtotal(items)
	inv.Tax = tax.Amount
	inv.Total = services.Total(items, tax.Amount)
	inv.Status = status
	inv.DueDate = dueDate
	if tax.Mode == services.TaxRateDriven {
		rate := tax.Rate
		inv.TaxRate = &rate
	} else {
		inv.TaxRate = nil
	}
	if status == model.InvoicePaid && inv.PaidAt == nil {
		now := time.Now()
		inv.PaidAt = &now
	}
	if status != model.InvoicePaid {
		inv.PaidAt = nil
	}

	inv.ProjectName = ""
	inv.ClientName = ""
	if inv.ProjectID != "" {
		if project, err := services.GetProject(db, inv.ProjectID); err == nil {
			inv.ProjectName = project.Name
		}
	}
	if inv.ClientID != "" {
		if client, err := services.GetClient(db, inv.ClientID); err == nil {
			inv.ClientName = client.Name
		}
	}
	return inv, true
}
