package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the sync API router with all endpoints registered.
// Every route shares one feed hub so mutations fan out to live subscribers.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	hub := NewHub(db)
	roomsHandler := &RoomsHandler{DB: db, Hub: hub}

	mux.HandleFunc("GET /api/rooms/{code}", roomsHandler.Exists)
	mux.HandleFunc("GET /api/rooms/{code}/items", roomsHandler.List)
	mux.HandleFunc("PUT /api/rooms/{code}/items", roomsHandler.ReplaceAll)
	mux.HandleFunc("PUT /api/rooms/{code}/items/{id}", roomsHandler.Put)
	mux.HandleFunc("DELETE /api/rooms/{code}/items/{id}", roomsHandler.Delete)
	mux.HandleFunc("GET /api/rooms/{code}/feed", roomsHandler.Feed)

	return mux
}
