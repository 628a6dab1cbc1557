package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"wheresmy/internal/model"
	"wheresmy/internal/store"
)

// RoomsHandler handles room collection endpoints.
type RoomsHandler struct {
	DB  *sql.DB
	Hub *Hub
}

// roomCode normalizes and validates the code path segment, writing a 400 on
// failure. Length is checked after normalization.
func roomCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	code, err := model.ValidateRoomCode(r.PathValue("code"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return code, true
}

// Exists handles GET /api/rooms/{code}.
func (h *RoomsHandler) Exists(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCode(w, r)
	if !ok {
		return
	}

	exists, err := store.RoomExists(r.Context(), h.DB, code)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check room")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"exists": exists})
}

// List handles GET /api/rooms/{code}/items.
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCode(w, r)
	if !ok {
		return
	}

	items, err := store.ListRoomItems(r.Context(), h.DB, code)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list room items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// ReplaceAll handles PUT /api/rooms/{code}/items. It overwrites the entire
// room collection and is used for seeding a brand-new room.
func (h *RoomsHandler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCode(w, r)
	if !ok {
		return
	}

	var items []model.Item
	if err := decodeJSON(r, &items); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.ReplaceRoomItems(r.Context(), h.DB, code, items); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to replace room items")
		return
	}

	h.Hub.Notify(code)
	jsonResponse(w, http.StatusOK, map[string]int{"count": len(items)})
}

// Put handles PUT /api/rooms/{code}/items/{id}.
func (h *RoomsHandler) Put(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCode(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var item model.Item
	if err := decodeJSON(r, &item); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if item.ID != id {
		jsonError(w, http.StatusBadRequest, "item id does not match path")
		return
	}
	if item.Name == "" || item.Location == "" {
		jsonError(w, http.StatusBadRequest, "name and location required")
		return
	}

	if err := store.PutRoomItem(r.Context(), h.DB, code, item); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to put room item")
		return
	}

	h.Hub.Notify(code)
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/rooms/{code}/items/{id}. Deleting an absent
// item succeeds, matching idempotent-delete semantics.
func (h *RoomsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCode(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteRoomItem(r.Context(), h.DB, code, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete room item")
		return
	}

	h.Hub.Notify(code)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Feed handles GET /api/rooms/{code}/feed: it upgrades to a websocket and
// pushes the full room collection on connect and after every change.
func (h *RoomsHandler) Feed(w http.ResponseWriter, r *http.Request) {
	code, ok := roomCode(w, r)
	if !ok {
		return
	}

	if err := h.Hub.Serve(w, r, code); err != nil {
		slog.Error("feed session ended with error", "room", code, "error", err)
	}
}
