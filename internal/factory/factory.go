package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/MarinVandelet/qr-game-backend/internal/content"
	"github.com/MarinVandelet/qr-game-backend/internal/dependencies/clock"
	"github.com/MarinVandelet/qr-game-backend/internal/dependencies/random"
	"github.com/MarinVandelet/qr-game-backend/internal/services/hunt"
	"github.com/MarinVandelet/qr-game-backend/internal/services/quiz"
	"github.com/MarinVandelet/qr-game-backend/internal/services/room"
	"github.com/MarinVandelet/qr-game-backend/internal/session"
	"github.com/MarinVandelet/qr-game-backend/internal/sse"
	"github.com/MarinVandelet/qr-game-backend/internal/storage"
	"github.com/MarinVandelet/qr-game-backend/internal/storage/memory"
	redisstorage "github.com/MarinVandelet/qr-game-backend/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Ephemeral game state
	Sessions *session.Store

	// Services
	RoomController *room.Controller
	QuizController *quiz.Controller
	HuntController *hunt.Controller
	HubManager     *sse.HubManager
	Broadcaster    *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Content is the game content set (questions and hunt items)
	// If zero value, defaults to content.Default()
	Content content.Set
	// Timings configures the quiz phase durations (optional)
	// If zero value, defaults to quiz.DefaultTimings()
	Timings quiz.Timings
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	contentSet := cfg.Content
	if len(contentSet.Questions) == 0 && len(contentSet.Items) == 0 {
		contentSet = content.Default()
	}
	if err := contentSet.Validate(); err != nil {
		return nil, err
	}

	timings := cfg.Timings
	if timings == (quiz.Timings{}) {
		timings = quiz.DefaultTimings()
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, contentSet, timings, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	contentSet content.Set,
	timings quiz.Timings,
	logger *slog.Logger,
) *App {
	sessions := session.New()
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	roomController := room.NewController(store, clk, rnd)
	quizController := quiz.NewController(sessions, broadcaster, clk, contentSet.Questions, timings, logger)
	huntController := hunt.NewController(sessions, broadcaster, contentSet.Items, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Sessions:       sessions,
		RoomController: roomController,
		QuizController: quizController,
		HuntController: huntController,
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
	}
}
