package invoice_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frilance/connection"
	"frilance/controller/invoice"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, connection.EnsureSchema(db))

	router := gin.New()
	invoice.InvoiceController(router, db)
	return router, db
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

func eq(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	expected, err := decimal.NewFromString(want)
	require.NoError(t, err)
	assert.True(t, got.Equal(expected), "%s = %s, want %s", label, got, want)
}

func TestCreateInvoiceDerivesTotals(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-001",
		"taxRate":       10,
		"items": []gin.H{
			{"description": "Design", "quantity": 2, "rate": 50000},
			{"description": "Hosting", "quantity": 1, "rate": 25000},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	eq(t, "125000", inv.Subtotal, "subtotal")
	eq(t, "12500", inv.Tax, "tax")
	eq(t, "137500", inv.Total, "total")
	require.NotNil(t, inv.TaxRate)
	eq(t, "10", *inv.TaxRate, "taxRate")
	assert.Equal(t, model.InvoiceDraft, inv.Status)
	require.Len(t, inv.Items, 2)
	eq(t, "100000", inv.Items[0].Amount, "first line amount")
}

func TestCreateInvoiceManualTaxClearsRate(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-002",
		"tax":           5000,
		"items":         []gin.H{{"description": "Design", "quantity": 1, "rate": 100000}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	eq(t, "5000", inv.Tax, "tax")
	eq(t, "105000", inv.Total, "total")
	assert.Nil(t, inv.TaxRate, "manual tax leaves no rate behind")
}

func TestCreateInvoiceDefaultRateFromSettings(t *testing.T) {
	router, _ := setupRouter(t)

	// no taxRate and no tax: the business default of 11% applies
	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-003",
		"items":         []gin.H{{"description": "Design", "quantity": 1, "rate": 100000}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	eq(t, "11000", inv.Tax, "tax")
	eq(t, "111000", inv.Total, "total")
}

func TestCreateInvoiceEmptyItems(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-004",
		"taxRate":       10,
		"items":         []gin.H{},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	eq(t, "0", inv.Subtotal, "subtotal")
	eq(t, "0", inv.Tax, "tax")
	eq(t, "0", inv.Total, "total")
}

func TestUpdateInvoiceRecomputesRateDrivenTax(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-005",
		"taxRate":       10,
		"items":         []gin.H{{"description": "Design", "quantity": 1, "rate": 100000}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))

	w = doJSON(t, router, http.MethodPut, "/invoices/"+inv.InvoiceID, gin.H{
		"invoiceNumber": "INV-005",
		"taxRate":       10,
		"items":         []gin.H{{"description": "Design", "quantity": 3, "rate": 100000}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	eq(t, "300000", inv.Subtotal, "subtotal")
	eq(t, "30000", inv.Tax, "tax follows the items")
	eq(t, "330000", inv.Total, "total")
}

func TestMarkInvoicePaidSetsPaidAt(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-006",
		"items":         []gin.H{{"description": "Design", "quantity": 1, "rate": 100000}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Nil(t, inv.PaidAt)

	w = doJSON(t, router, http.MethodPut, "/invoices/"+inv.InvoiceID, gin.H{
		"invoiceNumber": "INV-006",
		"status":        "paid",
		"items":         []gin.H{{"description": "Design", "quantity": 1, "rate": 100000}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, model.InvoicePaid, inv.Status)
	assert.NotNil(t, inv.PaidAt)

	stored, err := services.GetInvoice(db, inv.InvoiceID)
	require.NoError(t, err)
	assert.NotNil(t, stored.PaidAt)
}

func TestInvoiceRoundTripKeepsItemOrder(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/invoices", gin.H{
		"invoiceNumber": "INV-007",
		"items": []gin.H{
			{"description": "Third", "quantity": 1, "rate": 3},
			{"description": "First", "quantity": 1, "rate": 1},
			{"description": "Second", "quantity": 1, "rate": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))

	stored, err := services.GetInvoice(db, inv.InvoiceID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 3)
	assert.Equal(t, "Third", stored.Items[0].Description)
	assert.Equal(t, "First", stored.Items[1].Description)
	assert.Equal(t, "Second", stored.Items[2].Description)
}
