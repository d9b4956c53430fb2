package agent

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"

	"github.com/pradeeppj/checkout-study/internal/flow"
	"github.com/pradeeppj/checkout-study/internal/planner"
)

// planTools declares the structured-output contract: one function whose
// arguments are the full flow plan, one entry per step.
var planTools = []llms.Tool{
	{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        planToolName,
			Description: "Submit the modality plan: one entry per checkout step, in step order.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"plan": map[string]any{
						"type":        "array",
						"description": "One entry per step.",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"step_id": map[string]any{
									"type": "string",
								},
								"preferred_mode": map[string]any{
									"type": "string",
									"enum": []string{"standard", "voice", "chat"},
								},
								"rationale": map[string]any{
									"type":        "string",
									"description": "Brief 1-2 sentence plain-English justification.",
								},
							},
							"required": []string{"step_id", "preferred_mode", "rationale"},
						},
					},
				},
				"required": []string{"plan"},
			},
		},
	},
}

// LLMPlanner implements planner.PlanningService with a single structured
// call to a language model.
type LLMPlanner struct {
	Model  llms.Model
	Logger zerolog.Logger
}

func NewLLMPlanner(model llms.Model, logger zerolog.Logger) *LLMPlanner {
	return &LLMPlanner{Model: model, Logger: logger}
}

// DecideFlowPlan serializes the step sequence, issues the one planning call,
// and decodes the returned plan. Any transport failure or response that does
// not fit the plan schema surfaces as a planner.ServiceError.
func (p *LLMPlanner) DecideFlowPlan(ctx context.Context, steps []flow.Step) (*planner.FlowPlan, error) {
	payload, err := json.Marshal(map[string]any{"steps": steps})
	if err != nil {
		return nil, &planner.ServiceError{Reason: "failed to serialize steps", Err: err}
	}

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(string(payload))},
		},
	}

	resp, err := p.Model.GenerateContent(ctx, messages,
		llms.WithTools(planTools),
		llms.WithToolChoice(map[string]any{
			"type":     "function",
			"function": map[string]any{"name": planToolName},
		}),
	)
	if err != nil {
		return nil, &planner.ServiceError{Reason: "call failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &planner.ServiceError{Reason: "response contained no choices"}
	}

	choice := resp.Choices[0]

	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil || tc.FunctionCall.Name != planToolName {
			continue
		}
		var plan planner.FlowPlan
		if err := json.Unmarshal([]byte(tc.FunctionCall.Arguments), &plan); err != nil {
			return nil, &planner.ServiceError{Reason: "failed to parse plan arguments", Err: err}
		}
		return &plan, nil
	}

	// Some providers answer with the JSON in the message body instead of a
	// tool call, often wrapped in a markdown fence.
	if choice.Content != "" {
		p.Logger.Debug().Msg("no tool call in response, trying message content")
		if raw := extractLastJSON(choice.Content); raw != "" {
			var plan planner.FlowPlan
			if err := json.Unmarshal([]byte(raw), &plan); err == nil {
				return &plan, nil
			}
		}
	}

	return nil, &planner.ServiceError{Reason: "response contained no flow plan"}
}

// extractLastJSON finds the last valid JSON object in a string, stripping a
// markdown code fence first if one wraps the whole response.
func extractLastJSON(s string) string {
	cleaned := stripCodeFence(s)

	end := strings.LastIndex(cleaned, "}")
	if end == -1 {
		return ""
	}

	balance := 0
	for i := end; i >= 0; i-- {
		switch cleaned[i] {
		case '}':
			balance++
		case '{':
			balance--
		}
		if balance == 0 && cleaned[i] == '{' {
			candidate := cleaned[i : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate
			}
			return ""
		}
	}
	return ""
}

func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	firstNewline := strings.Index(trimmed, "\n")
	if firstNewline == -1 {
		return s
	}
	lastFence := strings.LastIndex(trimmed, "```")
	if lastFence <= firstNewline {
		return s
	}
	return strings.TrimSpace(trimmed[firstNewline+1 : lastFence])
}
