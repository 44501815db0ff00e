// Package ioprofile implements the user profile store on redis. A
// profile is stored as one JSON blob per user and every write replaces
// the whole mapping. This replace-not-merge contract mirrors the
// upstream store: two concurrent sessions editing the same profile will
// clobber each other. Documented limitation, not a bug.
package ioprofile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gnames/gnfmt"
	"github.com/redis/go-redis/v9"
	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/lifecycle"
	"github.com/safebite/safebite/pkg/profile"
)

type store struct {
	client *redis.Client
	undo   *undoBuffer
}

// New connects to redis and returns the ProfileStore.
func New(ctx context.Context, cfg *config.Config) (lifecycle.ProfileStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Profile.RedisAddr,
		Password: cfg.Profile.RedisPassword,
		DB:       cfg.Profile.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w",
			cfg.Profile.RedisAddr, err)
	}
	return &store{
		client: client,
		undo:   newUndoBuffer(cfg.Profile.UndoWindow),
	}, nil
}

func profileKey(userID string) string {
	return "safebite:profile:" + userID
}

// Get returns the user's whole profile; an empty profile when none is
// stored yet.
func (s *store) Get(ctx context.Context, userID string) (profile.Profile, error) {
	data, err := s.client.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return profile.Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", userID, err)
	}

	enc := gnfmt.GNjson{}
	var p profile.Profile
	if err := enc.Decode(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", userID, err)
	}
	return p, nil
}

// Put replaces the user's whole profile.
func (s *store) Put(ctx context.Context, userID string, p profile.Profile) error {
	enc := gnfmt.GNjson{}
	data, err := enc.Encode(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, profileKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", userID, err)
	}
	return nil
}

// Delete removes one ingredient and stashes it for undo. Deleting an
// unknown ingredient is a no-op.
func (s *store) Delete(ctx context.Context, userID, ingredientID string) error {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	e, ok := p[ingredientID]
	if !ok {
		return nil
	}

	delete(p, ingredientID)
	if err := s.Put(ctx, userID, p); err != nil {
		return err
	}

	s.undo.remember(userID, ingredientID, e)
	slog.Debug("Deleted profile ingredient",
		"user", userID, "ingredient", ingredientID)
	return nil
}

// Undo restores the most recently deleted ingredient within the undo
// window and returns its id.
func (s *store) Undo(ctx context.Context, userID string) (string, error) {
	ingredientID, e, ok := s.undo.take(userID)
	if !ok {
		return "", profile.ErrNothingToUndo
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	p[ingredientID] = e
	if err := s.Put(ctx, userID, p); err != nil {
		return "", err
	}

	slog.Debug("Restored profile ingredient",
		"user", userID, "ingredient", ingredientID)
	return ingredientID, nil
}

func (s *store) Close() error {
	return s.client.Close()
}
