// Package app wires the process together. MongoDB and Redis are optional:
// without them rooms still play, only the archive and the mirrors are off.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sanguo/internal/cache"
	"sanguo/internal/catalog"
	"sanguo/internal/config"
	"sanguo/internal/dialogue"
	"sanguo/internal/game"
	"sanguo/internal/repository"
	"sanguo/internal/service"
	"sanguo/internal/store"
	"sanguo/internal/transport/rest"
	"sanguo/internal/transport/ws"
)

type App struct {
	Config    *config.Config
	Container *rest.Container
	Dialogue  *dialogue.Pipeline

	mongoClient *mongo.Client
	redisClient *redis.Client
}

// New connects the optional stores and builds every service
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	cat := catalog.Default(cfg.Game.DefaultStats())
	if err := game.CheckRoster(cat, cfg.Game.MaxRounds); err != nil {
		return nil, fmt.Errorf("GAME_MAX_ROUNDS: %w", err)
	}
	authSvc := service.NewAuthService(cfg.JWTSecret)
	a.Dialogue = dialogue.NewPipelineFromConfig(&cfg.AI, &http.Client{})

	roomSvc := service.NewRoomService(
		store.NewRoomStore(),
		cat,
		cfg.Game,
		a.Dialogue,
		authSvc,
		service.NewAuditor(nil),
	)

	var games repository.GameRepo
	if cfg.MongoURI != "" {
		db, err := a.connectMongo(ctx)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		games = repository.NewGameRepo(db)
	} else {
		log.Println("Warning: MONGO_URI not set, finished games will not be archived")
	}
	archiveSvc := service.NewArchiveService(games)
	roomSvc.SetArchive(archiveSvc)

	if cfg.RedisURI != "" {
		if err := a.connectRedis(ctx); err != nil {
			a.Close(ctx)
			return nil, err
		}
		roomSvc.SetCaches(cache.NewRoomCache(a.redisClient), cache.NewLeaderboardCache(a.redisClient))
	} else {
		log.Println("Warning: REDIS_URI not set, room mirror and leaderboard cache disabled")
	}

	wsHub := ws.NewHub()
	roomSvc.SetBroadcaster(wsHub)
	log.Println("WebSocket hub started")

	a.Container = &rest.Container{
		Config:         cfg,
		AuthService:    authSvc,
		RoomService:    roomSvc,
		ArchiveService: archiveSvc,
		Roster:         cat,
		WSHub:          wsHub,
	}
	return a, nil
}

// Handler returns the HTTP router
func (a *App) Handler() http.Handler {
	return rest.NewRouter(a.Container)
}

func (a *App) connectMongo(ctx context.Context) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.Config.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	a.mongoClient = client

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Println("Connected to MongoDB")
	return client.Database(a.Config.MongoDB), nil
}

func (a *App) connectRedis(ctx context.Context) error {
	a.redisClient = redis.NewClient(&redis.Options{
		Addr: a.Config.RedisAddr(),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := a.redisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Println("Connected to Redis")
	return nil
}

// Close releases the store connections
func (a *App) Close(ctx context.Context) {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			log.Printf("close redis: %v", err)
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			log.Printf("disconnect mongo: %v", err)
		}
	}
}
