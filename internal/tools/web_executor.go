package tools

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ============================================================================
// Blog Preview Tool Implementation
// ============================================================================

func (e *Executor) executeContributorBlogPreview(ctx context.Context, args map[string]interface{}) *ToolResult {
	login, _ := args["login"].(string)
	if login == "" {
		return &ToolResult{Success: false, Error: "login is required"}
	}

	profile, err := e.github.FetchProfile(ctx, login)
	if err != nil {
		return &ToolResult{Success: false, Error: err.Error()}
	}

	if profile.BlogURL == nil {
		return &ToolResult{
			Success: true,
			Message: fmt.Sprintf("@%s has no blog listed on their profile", profile.Login),
		}
	}

	blogURL := normalizeBlogURL(*profile.BlogURL)

	e.logger.Debug("Previewing contributor blog",
		zap.String("login", profile.Login),
		zap.String("url", blogURL),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", blogURL, nil)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Failed to create request: %v", err)}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Failed to fetch blog: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Blog returned status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return &ToolResult{Success: false, Error: "Failed to parse blog HTML"}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	description, ok := doc.Find(`meta[name="description"]`).First().Attr("content")
	if !ok {
		description, _ = doc.Find(`meta[property="og:description"]`).First().Attr("content")
	}
	description = strings.TrimSpace(description)

	return &ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"login":       profile.Login,
			"url":         blogURL,
			"title":       title,
			"description": description,
		},
		Message: fmt.Sprintf("Previewed %s", blogURL),
	}
}

// normalizeBlogURL prepends https:// when the profile's blog field carries a
// bare host, which GitHub allows.
func normalizeBlogURL(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}
