package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/normalization"
	"github.com/docforge/docforge-backend/internal/services"
	"github.com/docforge/docforge-backend/internal/types"
)

type ProjectHandler struct {
	projectService    services.ProjectService
	outlineService    services.OutlineService
	generationService services.GenerationService
}

func NewProjectHandler(
	projectService services.ProjectService,
	outlineService services.OutlineService,
	generationService services.GenerationService,
) *ProjectHandler {
	return &ProjectHandler{
		projectService:    projectService,
		outlineService:    outlineService,
		generationService: generationService,
	}
}

func (ph *ProjectHandler) List(c *gin.Context) {
	projects, err := ph.projectService.ListProjects(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"projects": projects})
}

func (ph *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		DocumentType types.DocumentKind `json:"document_type"`
		Title        string             `json:"title"`
		Topic        string             `json:"topic"`
		Outline      []string           `json:"outline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	// Validation runs before the outline suggestion so a rejected request
	// never triggers a generation round-trip.
	title := normalization.TrimInputString(req.Title)
	topic := normalization.TrimInputString(req.Topic)
	if title == "" || topic == "" || !req.DocumentType.Valid() {
		RespondError(c, http.StatusBadRequest, "invalid_argument", errors.New("document_type, title and topic are required"))
		return
	}
	// A request without an outline gets one suggested for its topic.
	outline := req.Outline
	if len(outline) == 0 {
		outline = ph.outlineService.Suggest(c.Request.Context(), topic, req.DocumentType)
	}
	project, err := ph.projectService.CreateProject(c.Request.Context(), req.DocumentType, title, topic, outline)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"project": project})
}

func (ph *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ph.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "project deleted"})
}

func (ph *ProjectHandler) Sections(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	sections, err := ph.projectService.GetProjectSections(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sections": sections})
}

func (ph *ProjectHandler) Generate(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	sections, err := ph.generationService.GenerateProjectSections(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sections": sections})
}
