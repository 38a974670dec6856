package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quarry/internal/application/project/usecases"
	"quarry/internal/interfaces/http/middleware"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC         usecases.CreateProjectExecutor
	updateProjectUC         usecases.UpdateProjectExecutor
	deleteProjectUC         usecases.DeleteProjectExecutor
	getProjectUC            usecases.GetProjectExecutor
	listProjectsUC          usecases.ListProjectsExecutor
	createStatusUC          usecases.CreateStatusExecutor
	updateStatusUC          usecases.UpdateStatusExecutor
	deleteStatusUC          usecases.DeleteStatusExecutor
	listStatusesUC          usecases.ListStatusesExecutor
	listPrioritiesUC        usecases.ListPrioritiesExecutor
	createCustomFieldUC     usecases.CreateCustomFieldExecutor
	deactivateCustomFieldUC usecases.DeactivateCustomFieldExecutor
	listCustomFieldsUC      usecases.ListCustomFieldsExecutor
	logger                  logger.Interface
}

func NewProjectHandler(
	createProjectUC usecases.CreateProjectExecutor,
	updateProjectUC usecases.UpdateProjectExecutor,
	deleteProjectUC usecases.DeleteProjectExecutor,
	getProjectUC usecases.GetProjectExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	createStatusUC usecases.CreateStatusExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	deleteStatusUC usecases.DeleteStatusExecutor,
	listStatusesUC usecases.ListStatusesExecutor,
	listPrioritiesUC usecases.ListPrioritiesExecutor,
	createCustomFieldUC usecases.CreateCustomFieldExecutor,
	deactivateCustomFieldUC usecases.DeactivateCustomFieldExecutor,
	listCustomFieldsUC usecases.ListCustomFieldsExecutor,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC:         createProjectUC,
		updateProjectUC:         updateProjectUC,
		deleteProjectUC:         deleteProjectUC,
		getProjectUC:            getProjectUC,
		listProjectsUC:          listProjectsUC,
		createStatusUC:          createStatusUC,
		updateStatusUC:          updateStatusUC,
		deleteStatusUC:          deleteStatusUC,
		listStatusesUC:          listStatusesUC,
		listPrioritiesUC:        listPrioritiesUC,
		createCustomFieldUC:     createCustomFieldUC,
		deactivateCustomFieldUC: deactivateCustomFieldUC,
		listCustomFieldsUC:      listCustomFieldsUC,
		logger:                  logger.NewLogger(),
	}
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), req.ToCommand(middleware.CurrentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// GetProject handles GET /api/projects/:id. A non-numeric parameter is
// treated as a project key lookup.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	query := usecases.GetProjectQuery{}
	if projectID, err := utils.ParseUintParam(c, "id", "project"); err == nil {
		query.ProjectID = projectID
	} else {
		query.Key = c.Param("id")
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Projects, result.Total, page, pageSize)
}

// UpdateProject handles PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateProjectCommand{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		UpdatedBy:   middleware.CurrentUserID(c),
	}

	result, err := h.updateProjectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", result)
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteProjectCommand{
		ProjectID: projectID,
		DeletedBy: middleware.CurrentUserID(c),
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project deleted successfully", nil)
}

// CreateStatus handles POST /api/projects/:id/statuses
func (h *ProjectHandler) CreateStatus(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateStatusCommand{
		ProjectID:   projectID,
		Name:        req.Name,
		Color:       req.Color,
		IsCompleted: req.IsCompleted,
		SortOrder:   req.SortOrder,
		CreatedBy:   middleware.CurrentUserID(c),
	}

	result, err := h.createStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Status created successfully")
}

// UpdateStatus handles PUT /api/statuses/:id
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	statusID, err := utils.ParseUintParam(c, "id", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateStatusCommand{
		StatusID:    statusID,
		Name:        req.Name,
		Color:       req.Color,
		IsCompleted: req.IsCompleted,
		SortOrder:   req.SortOrder,
		UpdatedBy:   middleware.CurrentUserID(c),
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// DeleteStatus handles DELETE /api/statuses/:id
func (h *ProjectHandler) DeleteStatus(c *gin.Context) {
	statusID, err := utils.ParseUintParam(c, "id", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteStatusCommand{
		StatusID:  statusID,
		DeletedBy: middleware.CurrentUserID(c),
	}

	if err := h.deleteStatusUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status deleted successfully", nil)
}

// ListStatuses handles GET /api/projects/:id/statuses
func (h *ProjectHandler) ListStatuses(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listStatusesUC.Execute(c.Request.Context(), usecases.ListStatusesQuery{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPriorities handles GET /api/priorities
func (h *ProjectHandler) ListPriorities(c *gin.Context) {
	result, err := h.listPrioritiesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCustomField handles POST /api/projects/:id/custom-fields
func (h *ProjectHandler) CreateCustomField(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create custom field", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCustomFieldCommand{
		ProjectID: projectID,
		Key:       req.Key,
		Label:     req.Label,
		FieldType: req.FieldType,
		CreatedBy: middleware.CurrentUserID(c),
	}

	result, err := h.createCustomFieldUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Custom field created successfully")
}

// DeactivateCustomField handles DELETE /api/custom-fields/:id. The
// definition is retired, not erased; stored ticket values stay readable.
func (h *ProjectHandler) DeactivateCustomField(c *gin.Context) {
	fieldID, err := utils.ParseUintParam(c, "id", "custom field")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeactivateCustomFieldCommand{
		FieldID:   fieldID,
		UpdatedBy: middleware.CurrentUserID(c),
	}

	if err := h.deactivateCustomFieldUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Custom field deactivated successfully", nil)
}

// ListCustomFields handles GET /api/projects/:id/custom-fields
func (h *ProjectHandler) ListCustomFields(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCustomFieldsUC.Execute(c.Request.Context(), usecases.ListCustomFieldsQuery{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
