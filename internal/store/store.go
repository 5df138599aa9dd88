// Package store defines the document store interfaces the pipeline
// services depend on. The Firestore implementation lives in the firestore
// subpackage; tests use in-memory fakes.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/bybysker/goal-tracker/internal/models"
)

// ProfileStore reads and writes the single user-profile document per user.
type ProfileStore interface {
	// GetProfile returns the user's profile, or (nil, nil) when none has
	// been saved yet. Absence is not an error.
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)

	// SaveProfile overwrites the user's profile document wholesale.
	SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error
}

// PlanStore persists generated goal/milestone/task trees.
type PlanStore interface {
	// CreatePlan writes the goal, its milestones, and their tasks in one
	// atomic batch with store-assigned ids, and returns the id-stamped
	// tree. A failure anywhere leaves no partial plan behind.
	CreatePlan(ctx context.Context, userID string, plan *models.Plan) (*models.Plan, error)

	// GetGoal returns one goal document by id.
	GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error)

	// ListGoals returns all goal documents for a user.
	ListGoals(ctx context.Context, userID string) ([]*models.Goal, error)
}

// ErrNotFound is returned by readers when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// StoreError represents a document store read or write failure.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError checks whether an error originated in the document store.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
