package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
	"bizfundraiser.backend/internal/interfaces/http/response"
	"bizfundraiser.backend/internal/usecases"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectUsecase *usecases.ProjectUsecase
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUsecase *usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// Create creates a PENDING project for the calling business
// POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUsecase.CreateProject(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, project)
}

// List lists projects with optional status filter and pagination
// GET /api/v1/projects?status=&page=&limit=
func (h *ProjectHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := entities.ProjectStatus(c.Query("status"))

	projects, meta, err := h.projectUsecase.ListProjects(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projects, meta)
}

// ListMine lists the calling business's own projects
// GET /api/v1/projects/mine
func (h *ProjectHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	projects, err := h.projectUsecase.ListOwnProjects(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// Get returns one project
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project id"))
		return
	}

	project, err := h.projectUsecase.GetProject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// Approve moves a PENDING project to APPROVED (admin only)
// POST /api/v1/projects/:id/approve
func (h *ProjectHandler) Approve(c *gin.Context) {
	h.review(c, h.projectUsecase.ApproveProject, "Project approved")
}

// Reject moves a PENDING project to REJECTED (admin only)
// POST /api/v1/projects/:id/reject
func (h *ProjectHandler) Reject(c *gin.Context) {
	h.review(c, h.projectUsecase.RejectProject, "Project rejected")
}

func (h *ProjectHandler) review(c *gin.Context, transition func(ctx context.Context, id uuid.UUID) error, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project id"))
		return
	}

	if err := transition(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": message})
}

// ListInvestments lists a project's investments (owner or admin)
// GET /api/v1/projects/:id/investments
func (h *ProjectHandler) ListInvestments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project id"))
		return
	}

	investments, err := h.projectUsecase.ListProjectInvestments(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investments)
}
