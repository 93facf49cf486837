package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/controllers"
	"github.com/kendall-kelly/renovation-manager-api/middleware"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// Dependencies are the services the HTTP layer is built from
type Dependencies struct {
	Store          *services.Store
	Images         services.ImageService
	UploadDir      string
	AllowedOrigins []string
	Mutator        *services.Mutator
}

// NewRouter wires every /api/v1 route onto a gin engine
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.Default()

	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	mutator := deps.Mutator
	if mutator == nil {
		mutator = services.NewMutator()
	}

	store := deps.Store
	projectService := services.NewProjectService(store.Projects, services.WithProjectMutator(mutator))
	supplierService := services.NewSupplierService(store.Suppliers,
		services.WithSupplierProjects(store.Projects),
		services.WithSupplierMutator(mutator),
	)
	invoiceService := services.NewInvoiceService(
		services.WithProjectRepository(store.Projects),
		services.WithSupplierService(supplierService),
		services.WithInvoiceMutator(mutator),
	)
	summaryService := services.NewSummaryService(store.Projects)

	health := controllers.NewHealthController(store)
	sessions := controllers.NewSessionController(store.Sessions, deps.Images)
	uploads := controllers.NewUploadController(deps.UploadDir)
	projects := controllers.NewProjectController(projectService, summaryService, deps.Images)
	photos := controllers.NewPhotoController(projectService, deps.Images)
	invoices := controllers.NewInvoiceController(invoiceService)
	suppliers := controllers.NewSupplierController(supplierService)
	summaries := controllers.NewSummaryController(summaryService)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health.HealthCheck)
		v1.GET("/store/status", health.StoreStatus)
		v1.POST("/session/login", sessions.Login)
		v1.POST("/session/logout", sessions.Logout)
		v1.GET("/uploads/:filename", uploads.GetUploadedImage)
	}

	protected := v1.Group("")
	protected.Use(middleware.RequireCurrentUser(store.Sessions))
	{
		protected.GET("/users/me", sessions.GetMyProfile)
		protected.PUT("/users/me", sessions.UpdateMyProfile)
		protected.PUT("/users/me/password", sessions.UpdateMyPassword)
		protected.POST("/users/me/profile-image", sessions.UploadProfileImage)

		protected.GET("/projects", projects.ListProjects)
		protected.POST("/projects", projects.CreateProject)
		protected.GET("/projects/:id", projects.GetProject)
		protected.PUT("/projects/:id", projects.UpdateProject)
		protected.DELETE("/projects/:id", projects.DeleteProject)
		protected.PUT("/projects/:id/share", projects.ShareProject)
		protected.GET("/projects/:id/summary", projects.ProjectSummary)

		protected.POST("/projects/:id/phases", projects.AddPhase)
		protected.PUT("/projects/:id/phases/:phaseId", projects.UpdatePhase)
		protected.DELETE("/projects/:id/phases/:phaseId", projects.DeletePhase)
		protected.GET("/projects/:id/phases/:phaseId/summary", projects.PhaseSummary)

		protected.POST("/projects/:id/phases/:phaseId/tasks", projects.AddTask)
		protected.PUT("/projects/:id/phases/:phaseId/tasks/:taskId", projects.UpdateTask)
		protected.DELETE("/projects/:id/phases/:phaseId/tasks/:taskId", projects.DeleteTask)
		protected.GET("/projects/:id/phases/:phaseId/tasks/:taskId/summary", projects.TaskSummary)

		protected.POST("/projects/:id/phases/:phaseId/tasks/:taskId/invoices", invoices.AddInvoice)
		protected.PUT("/projects/:id/phases/:phaseId/tasks/:taskId/invoices/:invoiceId", invoices.UpdateInvoice)
		protected.DELETE("/projects/:id/phases/:phaseId/tasks/:taskId/invoices/:invoiceId", invoices.DeleteInvoice)

		protected.POST("/projects/:id/photos", photos.UploadPhotos)
		protected.PUT("/projects/:id/photos/:photoId", photos.UpdatePhotoCaption)
		protected.DELETE("/projects/:id/photos/:photoId", photos.DeletePhoto)

		protected.GET("/suppliers", suppliers.ListSuppliers)
		protected.POST("/suppliers", suppliers.CreateSupplier)
		protected.GET("/suppliers/:id", suppliers.GetSupplier)
		protected.PUT("/suppliers/:id", suppliers.UpdateSupplier)
		protected.DELETE("/suppliers/:id", suppliers.DeleteSupplier)
		protected.GET("/suppliers/:id/invoices", suppliers.SupplierInvoices)
		protected.GET("/supplier-summaries", suppliers.SupplierSummaries)

		protected.GET("/summaries/:scope/:id", summaries.Summarize)
	}

	return router
}
