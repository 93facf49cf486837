package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// SupplierController serves the supplier directory
type SupplierController struct {
	suppliers *services.SupplierService
}

// NewSupplierController creates a supplier controller
func NewSupplierController(suppliers *services.SupplierService) *SupplierController {
	return &SupplierController{suppliers: suppliers}
}

// ListSuppliers handles GET /api/v1/suppliers
func (sc *SupplierController) ListSuppliers(c *gin.Context) {
	suppliers := sc.suppliers.List()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    suppliers,
		"count":   len(suppliers),
	})
}

// GetSupplier handles GET /api/v1/suppliers/:id
func (sc *SupplierController) GetSupplier(c *gin.Context) {
	supplier, err := sc.suppliers.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusOK, supplier, nil)
}

// CreateSupplier handles POST /api/v1/suppliers. When a supplier with the
// same name exists it is returned with 200 instead of 201.
func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	var in models.SupplierInput
	if !bindJSON(c, &in) {
		return
	}

	supplier, created, err := sc.suppliers.Create(c.Request.Context(), in)
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondResult(c, status, supplier, err)
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id
func (sc *SupplierController) UpdateSupplier(c *gin.Context) {
	var patch models.SupplierPatch
	if !bindJSON(c, &patch) {
		return
	}

	supplier, err := sc.suppliers.Update(c.Request.Context(), c.Param("id"), patch)
	respondResult(c, http.StatusOK, supplier, err)
}

// DeleteSupplier handles DELETE /api/v1/suppliers/:id
func (sc *SupplierController) DeleteSupplier(c *gin.Context) {
	err := sc.suppliers.Delete(c.Request.Context(), c.Param("id"))
	respondResult(c, http.StatusOK, nil, err)
}

// SupplierInvoices handles GET /api/v1/suppliers/:id/invoices
func (sc *SupplierController) SupplierInvoices(c *gin.Context) {
	invoices, err := sc.suppliers.Invoices(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoices,
		"summary": services.SummarizeInvoices(invoiceList(invoices)),
	})
}

// SupplierSummaries handles GET /api/v1/supplier-summaries?sort=&direction=
func (sc *SupplierController) SupplierSummaries(c *gin.Context) {
	field := services.SupplierSortField(c.DefaultQuery("sort", string(services.SortByName)))
	if !field.Valid() {
		badRequest(c, "VALIDATION_ERROR", "sort must be one of name, category, total, paid, unpaid, invoiceCount")
		return
	}

	direction := strings.ToLower(c.DefaultQuery("direction", "asc"))
	if direction != "asc" && direction != "desc" {
		badRequest(c, "VALIDATION_ERROR", "direction must be asc or desc")
		return
	}

	overviews := sc.suppliers.Overviews(field, direction == "desc")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    overviews,
		"count":   len(overviews),
	})
}

func invoiceList(located []models.SupplierInvoice) []models.Invoice {
	out := make([]models.Invoice, len(located))
	for i, l := range located {
		out[i] = l.Invoice
	}
	return out
}
