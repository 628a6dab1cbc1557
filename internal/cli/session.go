package cli

import (
	"context"
	"errors"
	"fmt"

	"wheresmy/internal/local"
	"wheresmy/internal/model"
	"wheresmy/internal/remote"
	"wheresmy/internal/track"
)

// session wires a store to the mode picked at startup: a saved room code
// means remote mode against the sync server, otherwise the local slot.
// Switching modes takes an explicit room join or leave.
type session struct {
	cfg    Config
	slot   *local.Slot
	store  *track.Store
	client *remote.Client
	room   string
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, slot: local.Open(cfg.Path)}
	if code := s.slot.RoomCode(); code != "" {
		s.client = remote.NewClient(cfg.Server)
		s.room = code
		s.store = track.New(&remote.RoomSyncer{Client: s.client, Code: code})
	} else {
		s.store = track.New(s.slot)
	}

	if err := s.store.Load(ctx); err != nil {
		return nil, s.friendly(err)
	}
	return s, nil
}

// friendly rewraps remote failures as a retryable, user-visible message.
// Validation errors pass through untouched.
func (s *session) friendly(err error) error {
	if s.room == "" {
		return err
	}
	return roomFriendly(err)
}

func roomFriendly(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrRoomCodeTooShort) || errors.Is(err, remote.ErrRoomNotFound) {
		return err
	}
	return fmt.Errorf("could not reach the sync server, check your connection (%v)", err)
}
