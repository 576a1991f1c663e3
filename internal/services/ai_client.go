package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/types"
)

// AIClient is the generation-service capability handed to the engines.
// A nil AIClient is a valid configuration: every engine treats it exactly
// like a failing call and degrades to its fixed fallback value.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (gemini.Reply, error)
	Model() string
}

// completer wraps one generation round-trip: prompt in, plain text out,
// with an ai_call_log row for every attempt. It never returns an error;
// unconfigured, failing or garbled calls all yield PlaceholderText.
type completer struct {
	log           *logger.Logger
	ai            AIClient
	aiCallLogRepo repos.AICallLogRepo
}

func (c *completer) complete(ctx context.Context, callType string, userID, contextID *uuid.UUID, prompt string, cfg gemini.GenerationConfig) string {
	if c.ai == nil {
		c.audit(ctx, callType, userID, contextID, prompt, "", false, "generation client not configured", nil)
		return gemini.PlaceholderText
	}

	reply, err := c.ai.GenerateContent(ctx, prompt, cfg)
	if err != nil {
		c.log.Warn("Generation call failed", "call_type", callType, "error", err)
		c.audit(ctx, callType, userID, contextID, prompt, "", false, err.Error(), nil)
		return gemini.PlaceholderText
	}

	text := gemini.ExtractText(reply)
	c.audit(ctx, callType, userID, contextID, prompt, text, true, "", usageJSON(reply))
	return text
}

func (c *completer) audit(ctx context.Context, callType string, userID, contextID *uuid.UUID, prompt, response string, success bool, errMsg string, usage datatypes.JSON) {
	if c.aiCallLogRepo == nil {
		return
	}
	model := ""
	if c.ai != nil {
		model = c.ai.Model()
	}
	entry := &types.AICallLog{
		UserID:    userID,
		ContextID: contextID,
		CallType:  callType,
		Model:     model,
		Prompt:    prompt,
		Response:  response,
		Success:   success,
		Error:     errMsg,
		Usage:     usage,
	}
	if _, err := c.aiCallLogRepo.Create(ctx, nil, []*types.AICallLog{entry}); err != nil {
		// The audit trail is best effort; a failed insert must not fail
		// the generation call it describes.
		c.log.Warn("Failed to write ai_call_log row", "call_type", callType, "error", err)
	}
}

func usageJSON(reply gemini.Reply) datatypes.JSON {
	if reply == nil {
		return nil
	}
	raw, ok := reply["usageMetadata"]
	if !ok {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return datatypes.JSON(buf)
}
