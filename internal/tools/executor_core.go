package tools

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"contrib-credit/internal/adapter"
	"contrib-credit/internal/github"
	"contrib-credit/internal/memory"
	"contrib-credit/pkg/logger"
)

// ExecutionContext holds context for tool execution
type ExecutionContext struct {
	AgentID  string
	UserID   string
	Platform string // "http", "agent"
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Executor handles tool execution
type Executor struct {
	github     *github.Client
	recorder   *memory.Recorder
	httpClient *http.Client
	logger     *zap.Logger
}

// NewExecutor creates a new tool executor
func NewExecutor(client *github.Client, recorder *memory.Recorder) *Executor {
	return &Executor{
		github:   client,
		recorder: recorder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("tools"),
	}
}

// Execute runs a tool call and returns the result
func (e *Executor) Execute(ctx context.Context, execCtx *ExecutionContext, toolCall adapter.ToolCall) *ToolResult {
	e.logger.Debug("Executing tool",
		zap.String("tool", toolCall.Name),
		zap.String("agent_id", execCtx.AgentID),
		zap.String("user_id", execCtx.UserID),
	)

	switch toolCall.Name {
	case ToolContributorLookup:
		return e.executeContributorLookup(ctx, toolCall.Arguments)
	case ToolContributorBlogPreview:
		return e.executeContributorBlogPreview(ctx, toolCall.Arguments)

	default:
		e.logger.Warn("Unknown tool", zap.String("tool", toolCall.Name))
		return &ToolResult{
			Success: false,
			Error:   fmt.Sprintf("Unknown tool: %s", toolCall.Name),
		}
	}
}

// issueArg extracts the optional issue number from tool arguments. JSON
// numbers arrive as float64.
func issueArg(args map[string]interface{}) *int {
	if v, ok := args["issue"].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}
