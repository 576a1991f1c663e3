package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docforge/docforge-backend/internal/normalization"
	"github.com/docforge/docforge-backend/internal/services"
	"github.com/docforge/docforge-backend/internal/types"
)

type AIHandler struct {
	outlineService services.OutlineService
}

func NewAIHandler(outlineService services.OutlineService) *AIHandler {
	return &AIHandler{outlineService: outlineService}
}

// SuggestOutline validates its inputs and then always answers 200 with a
// usable outline; an unavailable generation service degrades to the fixed
// fallback for the kind.
func (ai *AIHandler) SuggestOutline(c *gin.Context) {
	var req struct {
		Topic        string             `json:"topic"`
		DocumentType types.DocumentKind `json:"document_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	topic := normalization.TrimInputString(req.Topic)
	if topic == "" || !req.DocumentType.Valid() {
		RespondError(c, http.StatusBadRequest, "invalid_argument", errors.New("topic and document type are required"))
		return
	}
	outline := ai.outlineService.Suggest(c.Request.Context(), topic, req.DocumentType)
	RespondOK(c, gin.H{"outline": outline})
}
