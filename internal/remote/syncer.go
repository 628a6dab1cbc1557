package remote

import (
	"context"

	"wheresmy/internal/model"
)

// RoomSyncer binds a client and a room code to the store's sync contract,
// so a store in remote mode pushes every mutation to the room.
type RoomSyncer struct {
	Client *Client
	Code   string
}

func (r *RoomSyncer) Load(ctx context.Context) ([]model.Item, error) {
	return r.Client.Items(ctx, r.Code)
}

func (r *RoomSyncer) Put(ctx context.Context, item model.Item) error {
	return r.Client.Put(ctx, r.Code, item)
}

func (r *RoomSyncer) Remove(ctx context.Context, id int64) error {
	return r.Client.Remove(ctx, r.Code, id)
}

func (r *RoomSyncer) ReplaceAll(ctx context.Context, items []model.Item) error {
	return r.Client.ReplaceAll(ctx, r.Code, items)
}
