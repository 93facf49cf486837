package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// InvoiceController serves invoices nested under project tasks
type InvoiceController struct {
	invoices *services.InvoiceService
}

// NewInvoiceController creates an invoice controller
func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

// AddInvoice handles POST /api/v1/projects/:id/phases/:phaseId/tasks/:taskId/invoices
func (ic *InvoiceController) AddInvoice(c *gin.Context) {
	var in models.InvoiceInput
	if !bindJSON(c, &in) {
		return
	}

	invoice, err := ic.invoices.Add(c.Request.Context(), c.Param("id"), c.Param("phaseId"), c.Param("taskId"), in)
	respondResult(c, http.StatusCreated, invoice, err)
}

// UpdateInvoice handles PUT .../tasks/:taskId/invoices/:invoiceId
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	var patch models.InvoicePatch
	if !bindJSON(c, &patch) {
		return
	}

	invoice, err := ic.invoices.Update(c.Request.Context(), c.Param("id"), c.Param("phaseId"), c.Param("taskId"), c.Param("invoiceId"), patch)
	respondResult(c, http.StatusOK, invoice, err)
}

// DeleteInvoice handles DELETE .../tasks/:taskId/invoices/:invoiceId
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	err := ic.invoices.Delete(c.Request.Context(), c.Param("id"), c.Param("phaseId"), c.Param("taskId"), c.Param("invoiceId"))
	respondResult(c, http.StatusOK, nil, err)
}
