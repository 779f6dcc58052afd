package draftRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chamba/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "wizardDraft:"

// RedisDraftRepo implements DraftRepository on Redis. Drafts carry no TTL:
// a student can come back days later and resume where they left off.
type RedisDraftRepo struct {
	client *redis.Client
}

// NewRedisDraftRepo creates a DraftRepository backed by the given client.
func NewRedisDraftRepo(client *redis.Client) DraftRepository {
	return &RedisDraftRepo{client: client}
}

func (r *RedisDraftRepo) key(studentID string) string {
	return draftKeyPrefix + studentID
}

// Save writes the full draft under the student's key.
func (r *RedisDraftRepo) Save(draft *models.WizardDraft) error {
	if draft.StudentID == "" {
		return fmt.Errorf("draft is missing a student id")
	}
	draft.LastUpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard draft: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.client.Set(ctx, r.key(draft.StudentID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save wizard draft: %w", err)
	}
	return nil
}

// Get loads the draft for a student, or (nil, nil) when none exists.
func (r *RedisDraftRepo) Get(studentID string) (*models.WizardDraft, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(studentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard draft: %w", err)
	}

	var draft models.WizardDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard draft: %w", err)
	}
	return &draft, nil
}

// Delete removes the draft.
func (r *RedisDraftRepo) Delete(studentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, r.key(studentID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard draft: %w", err)
	}
	return nil
}
