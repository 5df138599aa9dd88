// Package firestore implements the document store interfaces on
// Cloud Firestore, using path-addressed hierarchical collections:
// users/{uid}/userProfile/profile and
// users/{uid}/goals/{gid}/milestones/{mid}/tasks/{tid}.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bybysker/goal-tracker/internal/models"
	"github.com/bybysker/goal-tracker/internal/store"
)

// Store implements store.ProfileStore and store.PlanStore.
type Store struct {
	client *firestore.Client
}

var (
	_ store.ProfileStore = (*Store)(nil)
	_ store.PlanStore    = (*Store)(nil)
)

// NewStore creates a Firestore-backed store for the given project.
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) userDoc(userID string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(userID)
}

func (s *Store) profileCol(userID string) *firestore.CollectionRef {
	return s.userDoc(userID).Collection("userProfile")
}

func (s *Store) goalsCol(userID string) *firestore.CollectionRef {
	return s.userDoc(userID).Collection("goals")
}

func (s *Store) milestonesCol(userID, goalID string) *firestore.CollectionRef {
	return s.goalsCol(userID).Doc(goalID).Collection("milestones")
}

func (s *Store) tasksCol(userID, goalID, milestoneID string) *firestore.CollectionRef {
	return s.milestonesCol(userID, goalID).Doc(milestoneID).Collection("tasks")
}

// GetProfile returns the first document of the user's profile collection,
// or (nil, nil) when the collection is empty.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	iter := s.profileCol(userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, &store.StoreError{Op: "get", Path: s.profileCol(userID).Path, Err: err}
	}

	var profile models.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, &store.StoreError{Op: "decode", Path: snap.Ref.Path, Err: err}
	}
	return &profile, nil
}

// SaveProfile overwrites the profile document wholesale (full replace,
// not merge).
func (s *Store) SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error {
	ref := s.profileCol(userID).Doc("profile")
	if _, err := ref.Set(ctx, profile); err != nil {
		return &store.StoreError{Op: "set", Path: ref.Path, Err: err}
	}
	return nil
}

// CreatePlan writes the whole goal/milestone/task tree in a single
// transaction, so a failure leaves no partial plan persisted. Document ids
// are assigned by the store (NewDoc) and stamped into the returned tree
// together with the goal/milestone back-references.
func (s *Store) CreatePlan(ctx context.Context, userID string, plan *models.Plan) (*models.Plan, error) {
	goalRef := s.goalsCol(userID).NewDoc()

	stamped := &models.Plan{Goal: plan.Goal}
	stamped.Goal.ID = goalRef.ID

	type write struct {
		ref  *firestore.DocumentRef
		data any
	}
	writes := []write{{ref: goalRef, data: &stamped.Goal}}

	for _, pm := range plan.Milestones {
		msRef := s.milestonesCol(userID, goalRef.ID).NewDoc()

		milestone := pm.Milestone
		milestone.ID = msRef.ID
		milestone.GoalID = goalRef.ID

		stampedMs := models.PlanMilestone{Milestone: milestone}
		writes = append(writes, write{ref: msRef, data: &milestone})

		for _, task := range pm.Tasks {
			taskRef := s.tasksCol(userID, goalRef.ID, msRef.ID).NewDoc()

			task.ID = taskRef.ID
			task.GoalID = goalRef.ID
			task.MilestoneID = msRef.ID

			stampedMs.Tasks = append(stampedMs.Tasks, task)
			writes = append(writes, write{ref: taskRef, data: task})
		}

		stamped.Milestones = append(stamped.Milestones, stampedMs)
	}

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, w := range writes {
			if err := tx.Create(w.ref, w.data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &store.StoreError{Op: "create", Path: goalRef.Path, Err: err}
	}

	return stamped, nil
}

// GetGoal returns one goal document by id.
func (s *Store) GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	ref := s.goalsCol(userID).Doc(goalID)

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, store.ErrNotFound
		}
		return nil, &store.StoreError{Op: "get", Path: ref.Path, Err: err}
	}

	var goal models.Goal
	if err := snap.DataTo(&goal); err != nil {
		return nil, &store.StoreError{Op: "decode", Path: ref.Path, Err: err}
	}
	goal.ID = snap.Ref.ID
	return &goal, nil
}

// ListGoals returns all goal documents for a user.
func (s *Store) ListGoals(ctx context.Context, userID string) ([]*models.Goal, error) {
	iter := s.goalsCol(userID).Documents(ctx)
	defer iter.Stop()

	var out []*models.Goal
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &store.StoreError{Op: "list", Path: s.goalsCol(userID).Path, Err: err}
		}

		var goal models.Goal
		if err := snap.DataTo(&goal); err != nil {
			return nil, &store.StoreError{Op: "decode", Path: snap.Ref.Path, Err: err}
		}
		goal.ID = snap.Ref.ID
		out = append(out, &goal)
	}
	return out, nil
}

// Ping verifies connectivity to the backing Firestore project. Used by the
// extended health check.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return &store.StoreError{Op: "ping", Path: "/", Err: err}
	}
	return nil
}
