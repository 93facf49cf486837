package services

import (
	"context"
	"testing"

	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	store     *Store
	projects  *ProjectService
	suppliers *SupplierService
	invoices  *InvoiceService
	summaries *SummaryService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	store := NewStore(NewMemoryKVStore())
	store.Hydrate(context.Background())

	m := testMutator()
	suppliers := NewSupplierService(store.Suppliers, WithSupplierProjects(store.Projects), WithSupplierMutator(m))
	return testServices{
		store:     store,
		projects:  NewProjectService(store.Projects, WithProjectMutator(m)),
		suppliers: suppliers,
		invoices: NewInvoiceService(
			WithProjectRepository(store.Projects),
			WithSupplierService(suppliers),
			WithInvoiceMutator(m),
		),
		summaries: NewSummaryService(store.Projects),
	}
}

func invoiceInput(ref models.SupplierRef, amount int64) models.InvoiceInput {
	return models.InvoiceInput{
		InvoiceNumber: "INV-9000",
		Supplier:      ref,
		Amount:        decimal.NewFromInt(amount),
		DueDate:       models.MustParseDate("2024-06-30"),
		Status:        models.InvoiceSent,
	}
}

func TestInvoiceService_NotConfigured(t *testing.T) {
	svc := NewInvoiceService()
	_, err := svc.Add(context.Background(), "1", "p1", "t1", models.InvoiceInput{})
	assert.EqualError(t, err, "project repository not set")
}

func TestInvoiceService_AddRegistersNewSupplier(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	before := len(s.suppliers.List())

	ref := models.SupplierRef{NewSupplier: &models.SupplierInput{Name: "Granite Works", Email: "billing@graniteworks.com"}}
	invoice, err := s.invoices.Add(ctx, "1", "p1", "t1", invoiceInput(ref, 700))
	require.NoError(t, err)
	assert.Equal(t, "Granite Works", invoice.Supplier.Name)
	assert.Equal(t, models.InvoiceSent, invoice.Status)
	assert.Len(t, s.suppliers.List(), before+1)

	summary, err := s.summaries.TaskSummary("1", "p1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "3200", summary.Total.String())
	assert.Equal(t, 2, summary.Count)

	// the same name again reuses the registered supplier
	_, err = s.invoices.Add(ctx, "1", "p1", "t1", invoiceInput(ref, 100))
	require.NoError(t, err)
	assert.Len(t, s.suppliers.List(), before+1)
}

func TestInvoiceService_AddToUnknownTaskRegistersNothing(t *testing.T) {
	s := newTestServices(t)
	before := len(s.suppliers.List())

	ref := models.SupplierRef{NewSupplier: &models.SupplierInput{Name: "Nobody Ltd"}}
	_, err := s.invoices.Add(context.Background(), "1", "p1", "missing", invoiceInput(ref, 10))
	assert.True(t, models.IsNotFound(err))
	assert.Len(t, s.suppliers.List(), before)

	_, err = s.invoices.Add(context.Background(), "404", "p1", "t1", invoiceInput(ref, 10))
	assert.True(t, models.IsNotFound(err))
}

func TestInvoiceService_AddValidation(t *testing.T) {
	s := newTestServices(t)

	_, err := s.invoices.Add(context.Background(), "1", "p1", "t1", invoiceInput(models.SupplierRef{}, 10))
	assert.True(t, models.IsValidation(err))

	_, err = s.invoices.Add(context.Background(), "1", "p1", "t1", invoiceInput(models.SupplierRef{SupplierID: "s999"}, 10))
	assert.True(t, models.IsNotFound(err))

	negative := invoiceInput(models.SupplierRef{SupplierID: "s2"}, -5)
	_, err = s.invoices.Add(context.Background(), "1", "p1", "t1", negative)
	assert.True(t, models.IsValidation(err))
}

func TestInvoiceService_UpdateReembedsSupplier(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	paid := models.InvoicePaid
	ref := models.SupplierRef{SupplierID: "s3"}
	invoice, err := s.invoices.Update(ctx, "1", "p1", "t2", "i2", models.InvoicePatch{Supplier: &ref, Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, "Power Pro Electric", invoice.Supplier.Name)
	assert.Equal(t, "billing@powerpro.com", invoice.Supplier.Email)
	assert.Equal(t, models.InvoicePaid, invoice.Status)

	summary, err := s.summaries.ProjectSummary("1")
	require.NoError(t, err)
	assert.Equal(t, "28800", summary.Total.String())
	assert.Equal(t, "3800", summary.Paid.String())

	_, err = s.invoices.Update(ctx, "1", "p1", "t2", "missing", models.InvoicePatch{Status: &paid})
	assert.True(t, models.IsNotFound(err))
}

func TestInvoiceService_UpdateRegistersNothingOnFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	before := len(s.suppliers.List())

	negative := decimal.NewFromInt(-5)
	ref := models.SupplierRef{NewSupplier: &models.SupplierInput{Name: "Harbor Glass"}}
	_, err := s.invoices.Update(ctx, "1", "p1", "t2", "i2", models.InvoicePatch{Supplier: &ref, Amount: &negative})
	assert.True(t, models.IsValidation(err))
	assert.Len(t, s.suppliers.List(), before)

	other := models.SupplierRef{NewSupplier: &models.SupplierInput{Name: "Summit Roofing"}}
	_, err = s.invoices.Update(ctx, "1", "p1", "t2", "missing", models.InvoicePatch{Supplier: &other})
	assert.True(t, models.IsNotFound(err))
	assert.Len(t, s.suppliers.List(), before)

	_, err = s.invoices.Update(ctx, "1", "p1", "missing", "i2", models.InvoicePatch{Supplier: &other})
	assert.True(t, models.IsNotFound(err))
	assert.Len(t, s.suppliers.List(), before)

	invoice, err := s.summaries.TaskSummary("1", "p1", "t2")
	require.NoError(t, err)
	assert.Equal(t, "3800", invoice.Total.String())

	// a valid patch with the same reference registers the supplier once
	updated, err := s.invoices.Update(ctx, "1", "p1", "t2", "i2", models.InvoicePatch{Supplier: &ref})
	require.NoError(t, err)
	assert.Equal(t, "Harbor Glass", updated.Supplier.Name)
	assert.Len(t, s.suppliers.List(), before+1)
}

func TestInvoiceService_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	require.NoError(t, s.invoices.Delete(ctx, "1", "p1", "t1", "i1"))
	require.NoError(t, s.invoices.Delete(ctx, "1", "p1", "t1", "i1"))
	require.NoError(t, s.invoices.Delete(ctx, "1", "p1", "gone", "i1"))

	summary, _ := s.summaries.ProjectSummary("1")
	assert.Equal(t, "26300", summary.Total.String())
	assert.Equal(t, 4, summary.Count)

	assert.True(t, models.IsNotFound(s.invoices.Delete(ctx, "404", "p1", "t1", "i1")))
}

func TestSummaryService_Summarize(t *testing.T) {
	s := newTestServices(t)

	tests := []struct {
		scope SummaryScope
		id    string
		total string
		count int
	}{
		{ScopeTask, "t9", "12500", 1},
		{ScopePhase, "p3", "10000", 2},
		{ScopeProject, "2", "4700", 2},
		{ScopeSupplier, "Premier Plumbing", "4700", 2},
		{ScopeSupplier, "Unknown Supplier", "0", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.scope)+"/"+tt.id, func(t *testing.T) {
			summary, err := s.summaries.Summarize(tt.scope, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.total, summary.Total.String())
			assert.Equal(t, tt.count, summary.Count)
		})
	}

	_, err := s.summaries.Summarize(ScopeTask, "missing")
	assert.True(t, models.IsNotFound(err))
	_, err = s.summaries.Summarize(ScopePhase, "missing")
	assert.True(t, models.IsNotFound(err))
	_, err = s.summaries.Summarize(ScopeProject, "missing")
	assert.True(t, models.IsNotFound(err))
	_, err = s.summaries.Summarize("building", "1")
	assert.True(t, models.IsValidation(err))
}

func TestSummaryService_NestedLookups(t *testing.T) {
	s := newTestServices(t)

	summary, err := s.summaries.PhaseSummary("1", "p2")
	require.NoError(t, err)
	assert.Equal(t, "12500", summary.Total.String())

	_, err = s.summaries.PhaseSummary("1", "p4")
	assert.True(t, models.IsNotFound(err))
	_, err = s.summaries.TaskSummary("2", "p4", "t1")
	assert.True(t, models.IsNotFound(err))
	_, err = s.summaries.ProjectSummary("404")
	assert.True(t, models.IsNotFound(err))
}

func TestProjectService_NestedDeletesNeedTheProject(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	assert.True(t, models.IsNotFound(s.projects.DeletePhase(ctx, "404", "p1")))
	assert.True(t, models.IsNotFound(s.projects.DeleteTask(ctx, "404", "p1", "t1")))
	_, err := s.projects.DeletePhoto(ctx, "404", "photo")
	assert.True(t, models.IsNotFound(err))

	assert.NoError(t, s.projects.DeletePhase(ctx, "1", "missing"))
	removed, err := s.projects.DeletePhoto(ctx, "1", "missing")
	assert.NoError(t, err)
	assert.Nil(t, removed)
}

func TestProjectService_ListFilters(t *testing.T) {
	s := newTestServices(t)

	assert.Len(t, s.projects.List(ProjectFilter{}), 5)
	assert.Len(t, s.projects.List(ProjectFilter{Status: models.StatusInProgress}), 2)

	found := s.projects.List(ProjectFilter{Search: "THEATER"})
	require.Len(t, found, 1)
	assert.Equal(t, "3", found[0].ID)
}

func TestSupplierService_Resolve(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	snapshot, err := s.suppliers.Resolve(ctx, models.SupplierRef{SupplierID: "s2"})
	require.NoError(t, err)
	assert.Equal(t, "Build Right Construction", snapshot.Name)
	require.NotNil(t, snapshot.Phone)
	assert.Equal(t, "555-0123", *snapshot.Phone)

	_, err = s.suppliers.Resolve(ctx, models.SupplierRef{
		SupplierID:  "s2",
		NewSupplier: &models.SupplierInput{Name: "Both"},
	})
	assert.True(t, models.IsValidation(err))

	snapshot, err = s.suppliers.Resolve(ctx, models.SupplierRef{
		NewSupplier: &models.SupplierInput{Name: "Power Pro Electric", Email: "other@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Power Pro Electric", snapshot.Name)
	assert.Len(t, s.suppliers.List(), 15)
}

func TestSupplierService_Invoices(t *testing.T) {
	s := newTestServices(t)

	invoices, err := s.suppliers.Invoices("s4")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "i3", invoices[0].ID)
	assert.Equal(t, "Kitchen Renovation", invoices[0].ProjectTitle)
	assert.Equal(t, "Install Base Cabinets", invoices[0].TaskTitle)

	invoices, err = s.suppliers.Invoices("s1")
	require.NoError(t, err)
	assert.NotNil(t, invoices)
	assert.Empty(t, invoices)

	_, err = s.suppliers.Invoices("s404")
	assert.True(t, models.IsNotFound(err))
}
