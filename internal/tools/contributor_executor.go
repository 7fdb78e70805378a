package tools

import (
	"context"
	"encoding/json"

	"contrib-credit/internal/credit"
	"contrib-credit/pkg/errors"
)

// ============================================================================
// Contributor Lookup Tool Implementation
// ============================================================================

// lookupReport is the success shape returned to the host. Field order is the
// wire contract, so the struct order must not change.
type lookupReport struct {
	Login        string  `json:"login"`
	Name         *string `json:"name"`
	Twitter      *string `json:"twitter"`
	Bio          *string `json:"bio"`
	CreditLine   string  `json:"credit_line"`
	MemoryStored bool    `json:"memory_stored"`
}

// lookupFailure is the error shape returned to the host when the profile
// fetch fails. Login echoes the caller's original input.
type lookupFailure struct {
	Error string `json:"error"`
	Login string `json:"login"`
}

func (e *Executor) executeContributorLookup(ctx context.Context, args map[string]interface{}) *ToolResult {
	login, _ := args["login"].(string)
	if login == "" {
		return &ToolResult{Success: false, Error: "login is required"}
	}

	issueNumber := issueArg(args)

	profile, err := e.github.FetchProfile(ctx, login)
	if err != nil {
		// Fetch and schema failures short-circuit the pipeline: the
		// formatter and recorder never run.
		message := "unknown error"
		if errors.IsFetchError(err) || errors.IsSchemaError(err) {
			message = err.Error()
		}
		return &ToolResult{
			Success: false,
			Error:   message,
			Data:    renderReport(lookupFailure{Error: message, Login: login}),
		}
	}

	creditLine := credit.Format(profile, issueNumber)
	memoryStored := e.recorder.Record(ctx, profile, issueNumber)

	report := lookupReport{
		Login:        profile.Login,
		Name:         profile.DisplayName,
		Twitter:      profile.TwitterHandle,
		Bio:          profile.Bio,
		CreditLine:   creditLine,
		MemoryStored: memoryStored,
	}

	return &ToolResult{
		Success: true,
		Data:    renderReport(report),
		Message: creditLine,
	}
}

// renderReport serializes a report to the pretty-printed JSON string that is
// the tool's sole wire format.
func renderReport(report interface{}) string {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		// Reports are plain structs of strings and bools, so this does not
		// happen in practice.
		return `{"error": "failed to serialize report"}`
	}
	return string(data)
}
