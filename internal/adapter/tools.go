package adapter

import (
	"github.com/sashabaranov/go-openai"
)

// Tool represents a function that can be called by the host agent
type Tool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition defines a function that can be called
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolCall represents a function call issued by the host agent
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]interface{}
}

// ToOpenAITools converts tool definitions to the OpenAI function-calling
// format, which is what most tool-calling hosts consume at registration time.
func ToOpenAITools(tools []Tool) []openai.Tool {
	openaiTools := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		openaiTools = append(openaiTools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Parameters:  tool.Function.Parameters,
			},
		})
	}
	return openaiTools
}
