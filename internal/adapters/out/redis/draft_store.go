// Package redis implements the draft cache on Redis. Draft payloads and the
// per-user draft-ID index are stored as JSON strings under separate keys
// sharing one TTL, every save pushes the expiry of both keys forward.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultDraftTTL keeps unfinished drafts for a week.
const DefaultDraftTTL = 7 * 24 * time.Hour

// DraftStore implements ports.DraftStore on a Redis client.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a Redis-backed draft store. A non-positive ttl
// falls back to DefaultDraftTTL.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}

	return &DraftStore{
		client: client,
		ttl:    ttl,
	}
}

// Save writes the draft payload under the given key, resetting its TTL.
func (s *DraftStore) Save(ctx context.Context, key ports.DraftKey, d draft.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	return s.client.Set(ctx, key.String(), payload, s.ttl).Err()
}

// Find reads the draft payload. Returns (nil, nil) when the key is absent
// or expired.
func (s *DraftStore) Find(ctx context.Context, key ports.DraftKey) (*draft.Draft, error) {
	raw, err := s.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var d draft.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}

	return &d, nil
}

// RegisterID adds the draft ID to the owner's draft-ID list. Adding an ID
// that is already listed is a no-op. The read-modify-write is not atomic,
// concurrent saves of two different new drafts can race; the booking wizard
// is driven by a single user session, so the window is acceptable.
func (s *DraftStore) RegisterID(ctx context.Context, key ports.DraftKey) error {
	ids, err := s.readIndex(ctx, key.IndexKey())
	if err != nil {
		return err
	}

	ids = appendDraftID(ids, key.DraftID.String())

	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal draft index: %w", err)
	}

	return s.client.Set(ctx, key.IndexKey(), payload, s.ttl).Err()
}

// IDs returns the owner's registered draft IDs.
func (s *DraftStore) IDs(ctx context.Context, userID kernel.UUID) ([]kernel.UUID, error) {
	key := ports.DraftKey{UserID: userID}
	raw, err := s.readIndex(ctx, key.IndexKey())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, entry := range raw {
		id, err := kernel.UUIDFromString(entry)
		if err != nil {
			return nil, fmt.Errorf("corrupt draft index entry %q: %w", entry, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *DraftStore) readIndex(ctx context.Context, indexKey string) ([]string, error) {
	raw, err := s.client.Get(ctx, indexKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal draft index: %w", err)
	}

	return ids, nil
}

// appendDraftID adds id to the list unless it is already present.
func appendDraftID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
