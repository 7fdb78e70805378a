package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"contrib-credit/pkg/logger"
)

// Repository handles all Neo4j database operations for the memory store.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Named("graph"),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

// StoreNote writes a free-text memory note with comma-joined tags. The note
// is write-only from this service's perspective; retrieval and semantic
// search belong to the store's other consumers.
func (r *Repository) StoreNote(ctx context.Context, information, tags string) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		CREATE (n:Note {
			id: $id,
			information: $information,
			tags: $tags,
			created_at: $createdAt
		})
	`

	noteID := uuid.New().String()
	_, err := session.Run(ctx, query, map[string]interface{}{
		"id":          noteID,
		"information": information,
		"tags":        tags,
		"createdAt":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to store note: %w", err)
	}

	r.logger.Debug("Stored memory note",
		zap.String("note_id", noteID),
		zap.String("tags", tags),
	)

	return nil
}
