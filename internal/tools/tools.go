package tools

import (
	"contrib-credit/internal/adapter"
)

// Tool names - Contributor Tools
const (
	ToolContributorLookup      = "contributor_lookup"
	ToolContributorBlogPreview = "contributor_blog_preview"
)

// GetContributorTools returns the contributor-related tools offered to the host
func GetContributorTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolContributorLookup,
				Description: "Look up a GitHub contributor's public profile and render a changelog credit line thanking them. Also records a summary of the contributor to long-term memory.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"login": map[string]interface{}{
							"type":        "string",
							"description": "GitHub username of the contributor",
						},
						"issue": map[string]interface{}{
							"type":        "number",
							"description": "Issue number the contributor reported, if any",
						},
					},
					"required": []string{"login"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolContributorBlogPreview,
				Description: "Fetch the blog or website listed on a GitHub contributor's profile and return its title and description.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"login": map[string]interface{}{
							"type":        "string",
							"description": "GitHub username of the contributor",
						},
					},
					"required": []string{"login"},
				},
			},
		},
	}
}
