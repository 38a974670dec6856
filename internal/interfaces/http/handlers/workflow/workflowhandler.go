package workflow

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quarry/internal/application/workflow/usecases"
	"quarry/internal/interfaces/http/middleware"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/utils"
)

type WorkflowHandler struct {
	upsertWorkflowUC usecases.UpsertWorkflowExecutor
	getWorkflowUC    usecases.GetWorkflowExecutor
	deleteWorkflowUC usecases.DeleteWorkflowExecutor
	logger           logger.Interface
}

func NewWorkflowHandler(
	upsertWorkflowUC usecases.UpsertWorkflowExecutor,
	getWorkflowUC usecases.GetWorkflowExecutor,
	deleteWorkflowUC usecases.DeleteWorkflowExecutor,
) *WorkflowHandler {
	return &WorkflowHandler{
		upsertWorkflowUC: upsertWorkflowUC,
		getWorkflowUC:    getWorkflowUC,
		deleteWorkflowUC: deleteWorkflowUC,
		logger:           logger.NewLogger(),
	}
}

type UpsertWorkflowRequest struct {
	InitialStatuses []uint          `json:"initial_statuses" binding:"required,min=1"`
	Transitions     map[uint][]uint `json:"transitions"`
}

// emptyWorkflowResponse is what GET returns for a project with no stored
// workflow: every transition is permitted, nothing to enumerate.
type emptyWorkflowResponse struct {
	ProjectID       uint            `json:"project_id"`
	InitialStatuses []uint          `json:"initial_statuses"`
	Transitions     map[uint][]uint `json:"transitions"`
}

// UpsertWorkflow handles PUT /api/projects/:id/workflow
func (h *WorkflowHandler) UpsertWorkflow(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpsertWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert workflow", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpsertWorkflowCommand{
		ProjectID:       projectID,
		InitialStatuses: req.InitialStatuses,
		Transitions:     req.Transitions,
		UpdatedBy:       middleware.CurrentUserID(c),
	}

	result, err := h.upsertWorkflowUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workflow saved successfully", result)
}

// GetWorkflow handles GET /api/projects/:id/workflow
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getWorkflowUC.Execute(c.Request.Context(), usecases.GetWorkflowQuery{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result == nil {
		utils.SuccessResponse(c, http.StatusOK, "", emptyWorkflowResponse{
			ProjectID:       projectID,
			InitialStatuses: []uint{},
			Transitions:     map[uint][]uint{},
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteWorkflow handles DELETE /api/projects/:id/workflow
func (h *WorkflowHandler) DeleteWorkflow(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteWorkflowCommand{
		ProjectID: projectID,
		DeletedBy: middleware.CurrentUserID(c),
	}

	if err := h.deleteWorkflowUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workflow deleted successfully", nil)
}
