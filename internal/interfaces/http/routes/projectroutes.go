package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "quarry/internal/interfaces/http/handlers/project"
	workflowhandlers "quarry/internal/interfaces/http/handlers/workflow"
	"quarry/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler       *projecthandlers.ProjectHandler
	WorkflowHandler      *workflowhandlers.WorkflowHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	projects := engine.Group("/api/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	projects.Use(config.PermissionMiddleware.Authorize())
	{
		projects.POST("", config.ProjectHandler.CreateProject)
		projects.GET("", config.ProjectHandler.ListProjects)

		projects.GET("/:id/statuses", config.ProjectHandler.ListStatuses)
		projects.POST("/:id/statuses", config.ProjectHandler.CreateStatus)
		projects.GET("/:id/custom-fields", config.ProjectHandler.ListCustomFields)
		projects.POST("/:id/custom-fields", config.ProjectHandler.CreateCustomField)
		projects.GET("/:id/workflow", config.WorkflowHandler.GetWorkflow)
		projects.PUT("/:id/workflow", config.WorkflowHandler.UpsertWorkflow)
		projects.DELETE("/:id/workflow", config.WorkflowHandler.DeleteWorkflow)

		projects.GET("/:id", config.ProjectHandler.GetProject)
		projects.PUT("/:id", config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id", config.ProjectHandler.DeleteProject)
	}

	// Statuses and custom fields get their own top-level groups for
	// mutations addressed by their own IDs.
	statuses := engine.Group("/api/statuses")
	statuses.Use(config.AuthMiddleware.RequireAuth())
	statuses.Use(config.PermissionMiddleware.Authorize())
	{
		statuses.PUT("/:id", config.ProjectHandler.UpdateStatus)
		statuses.DELETE("/:id", config.ProjectHandler.DeleteStatus)
	}

	customFields := engine.Group("/api/custom-fields")
	customFields.Use(config.AuthMiddleware.RequireAuth())
	customFields.Use(config.PermissionMiddleware.Authorize())
	{
		customFields.DELETE("/:id", config.ProjectHandler.DeactivateCustomField)
	}

	priorities := engine.Group("/api/priorities")
	priorities.Use(config.AuthMiddleware.RequireAuth())
	priorities.Use(config.PermissionMiddleware.Authorize())
	{
		priorities.GET("", config.ProjectHandler.ListPriorities)
	}
}
