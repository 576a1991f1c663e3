package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/services"
)

type SectionHandler struct {
	projectService    services.ProjectService
	refinementService services.RefinementService
}

func NewSectionHandler(projectService services.ProjectService, refinementService services.RefinementService) *SectionHandler {
	return &SectionHandler{
		projectService:    projectService,
		refinementService: refinementService,
	}
}

func (sh *SectionHandler) Refine(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	content, err := sh.refinementService.RefineSection(c.Request.Context(), sectionID, req.Prompt)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"content": content})
}

func (sh *SectionHandler) History(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	records, err := sh.refinementService.ListHistory(c.Request.Context(), sectionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"history": records})
}

func (sh *SectionHandler) Feedback(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Liked *bool `json:"liked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := sh.projectService.UpdateSectionFeedback(c.Request.Context(), sectionID, req.Liked); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "feedback recorded"})
}

func (sh *SectionHandler) Comment(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Comment *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := sh.projectService.UpdateSectionComment(c.Request.Context(), sectionID, req.Comment); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "comment saved"})
}
