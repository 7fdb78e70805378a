package memory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contrib-credit/internal/github"
	"contrib-credit/pkg/errors"
	"contrib-credit/pkg/logger"
)

// NoteStore is the slice of the memory store this recorder needs. The graph
// repository satisfies it; tests substitute failing implementations.
type NoteStore interface {
	StoreNote(ctx context.Context, information, tags string) error
}

// Recorder persists contributor summaries into the long-lived memory store.
// It is strictly best-effort: a failed write is logged and reported as false,
// never propagated to the pipeline.
type Recorder struct {
	store  NoteStore
	logger *zap.Logger
}

// NewRecorder creates a recorder over a note store. store may be nil when the
// memory store is unavailable; Record then reports false for every call.
func NewRecorder(store NoteStore) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger.Named("memory"),
	}
}

// Record writes a note summarizing the contributor and returns whether the
// write completed. The boolean carries no durability guarantee beyond
// "the store call returned without error".
func (r *Recorder) Record(ctx context.Context, profile *github.Profile, issueNumber *int) bool {
	if r.store == nil {
		r.logger.Warn("Memory store unavailable, skipping note",
			zap.String("login", profile.Login),
		)
		return false
	}

	information := buildInformation(profile, issueNumber)
	tags := strings.Join(buildTags(profile, issueNumber), ",")

	if err := r.store.StoreNote(ctx, information, tags); err != nil {
		rerr := errors.NewRecorderError("memory store write failed", err)
		r.logger.Warn("Failed to record contributor note",
			zap.String("login", profile.Login),
			zap.Error(rerr),
		)
		return false
	}

	return true
}

// buildInformation assembles the note text. Optional clauses are appended
// only when their source field is present, in this fixed order: twitter,
// issue, bio.
func buildInformation(profile *github.Profile, issueNumber *int) string {
	name := profile.Login
	if profile.DisplayName != nil {
		name = *profile.DisplayName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contributor @%s: %s", profile.Login, name)
	if profile.TwitterHandle != nil {
		fmt.Fprintf(&b, " (@%s on Twitter)", *profile.TwitterHandle)
	}
	if issueNumber != nil {
		fmt.Fprintf(&b, ". Filed issue #%d", *issueNumber)
	}
	if profile.Bio != nil {
		fmt.Fprintf(&b, ". Bio: '%s'", *profile.Bio)
	}
	return b.String()
}

// buildTags derives the ordered tag set: "contributor", the login, and an
// issue tag when an issue number is known. Empty entries are dropped and
// duplicates keep their first position.
func buildTags(profile *github.Profile, issueNumber *int) []string {
	candidates := []string{"contributor", profile.Login}
	if issueNumber != nil {
		candidates = append(candidates, fmt.Sprintf("issue-%d", *issueNumber))
	}

	seen := make(map[string]bool, len(candidates))
	tags := make([]string, 0, len(candidates))
	for _, tag := range candidates {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
