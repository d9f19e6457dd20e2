package registry

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is the process-wide mapping of activity name to activity record.
//
// Activity names are unique keys. The participant list of an activity never
// contains duplicate emails. All methods are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]Activity
}

// New creates a Registry populated from the given seed set.
// The seed is copied, so the caller's map can be reused or mutated freely.
func New(seed map[string]Activity) *Registry {
	activities := make(map[string]Activity, len(seed))
	for name, activity := range seed {
		activity.Participants = slices.Clone(activity.Participants)
		activities[name] = activity
	}
	return &Registry{activities: activities}
}

// List returns the full mapping of activity name to record, unfiltered.
// The returned map is a deep copy - mutating it does not affect the store.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out
}

// Signup appends email to the named activity's participant list.
//
// It fails with ErrCodeActivityNotFound if the activity does not exist and
// with ErrCodeAlreadySignedUp if the email is already a participant.
// MaxParticipants is not enforced (display-only).
func (r *Registry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return NewActivityNotFoundError()
	}

	if slices.Contains(activity.Participants, email) {
		return NewAlreadySignedUpError()
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[activityName] = activity

	return nil
}

// Unregister removes email from the named activity's participant list.
//
// It fails with ErrCodeActivityNotFound if the activity does not exist and
// with ErrCodeNotRegistered if the email is not a participant.
func (r *Registry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return NewActivityNotFoundError()
	}

	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return NewNotRegisteredError()
	}

	activity.Participants = slices.Delete(activity.Participants, i, i+1)
	r.activities[activityName] = activity

	return nil
}

// Get returns a copy of the named activity record.
func (r *Registry) Get(activityName string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return Activity{}, NewActivityNotFoundError()
	}

	activity.Participants = slices.Clone(activity.Participants)
	return activity, nil
}

// Len returns the number of activities in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

func (r *Registry) String() string {
	return fmt.Sprintf("registry with %d activities", r.Len())
}
