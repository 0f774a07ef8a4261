package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/artifyhq/artify-backend/internal/application"
	"github.com/artifyhq/artify-backend/internal/interface/middleware"
	"github.com/artifyhq/artify-backend/pkg/response"
	"github.com/artifyhq/artify-backend/pkg/validation"
)

// ProjectHandler exposes owner-scoped project CRUD. All routes sit behind
// the bearer-token middleware, so the caller identity is always present in
// the context.
type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	Name string          `json:"name" binding:"required"`
	Data json.RawMessage `json:"data"`
}

type updateProjectRequest struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

func callerID(c *gin.Context) int64 {
	return c.GetInt64(middleware.CtxUserIDKey)
}

func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid project id", nil)
		return 0, false
	}
	return id, true
}

// List GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.ListByOwner(callerID(c))
	if err != nil {
		h.Logger.WithError(err).Error("list projects failed")
		response.Error(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"projects": projects}, "projects")
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "project name is required", validation.ToDetails(err))
		return
	}
	sum, err := h.Svc.Create(callerID(c), req.Name, req.Data)
	if err != nil {
		if errors.Is(err, application.ErrProjectNameRequired) {
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("create project failed")
		response.Error(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"project": sum}, "Project created successfully")
}

// Get GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	detail, err := h.Svc.Get(id, callerID(c))
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail, "project")
}

// Update PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	// Both fields are optional, so an empty body is a valid no-op update.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sum, err := h.Svc.Update(id, callerID(c), application.UpdateInput{Name: req.Name, Data: req.Data})
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project": sum}, "Project updated successfully")
}

// Delete DELETE /api/projects/:id
// Repeating a delete is not an error: the second call reports deleted=false
// with a 200.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(id, callerID(c))
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": deleted}, "Project deleted successfully")
}

func (h *ProjectHandler) writeProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound):
		response.Error(c, http.StatusNotFound, "project not found", nil)
	case errors.Is(err, application.ErrNotProjectOwner):
		response.Error(c, http.StatusForbidden, "access denied", nil)
	default:
		h.Logger.WithError(err).Error("project operation failed")
		response.Error(c, http.StatusInternalServerError, "server error", nil)
	}
}
