package rest

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	"sanguo/internal/config"
	"sanguo/internal/service"
	"sanguo/internal/transport/rest/handler"
	"sanguo/internal/transport/rest/middleware"
	"sanguo/internal/transport/ws"

	_ "sanguo/docs" // registers the swagger spec
)

// Container holds all dependencies for the router
type Container struct {
	Config         *config.Config
	AuthService    *service.AuthService
	RoomService    *service.RoomService
	ArchiveService *service.ArchiveService
	Roster         handler.Roster
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(c.RoomService)
	gameHandler := handler.NewGameHandler(c.RoomService)
	catalogHandler := handler.NewCatalogHandler(c.Roster, c.ArchiveService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.RoomService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/rooms", roomHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods("POST", "OPTIONS")
	v1.HandleFunc("/catalog", catalogHandler.Catalog).Methods("GET", "OPTIONS")
	v1.HandleFunc("/games/recent", catalogHandler.RecentGames).Methods("GET", "OPTIONS")
	v1.HandleFunc("/games/{id}", catalogHandler.Game).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/rooms/{code}", wsHandler.RoomWS).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","rooms":%d}`, c.RoomService.LiveRooms())
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, `{"error":"swagger spec unavailable"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	// Participant routes (require participant auth)
	participantRoutes := v1.NewRoute().Subrouter()
	participantRoutes.Use(authMW.RequireParticipant)

	participantRoutes.HandleFunc("/rooms/{code}", roomHandler.Get).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/faction", roomHandler.Faction).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/start", roomHandler.Start).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/leaderboard", roomHandler.Leaderboard).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/history", catalogHandler.RoomHistory).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/selection", gameHandler.Select).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/resolve", gameHandler.Resolve).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/rooms/{code}/advance", gameHandler.Advance).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	origins, methods, headers := "*", "GET, POST, PUT, DELETE, OPTIONS", "Content-Type, Authorization"
	if cfg != nil {
		origins, methods, headers = cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
