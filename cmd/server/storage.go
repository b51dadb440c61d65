package main

import (
	"context"
	"fmt"

	"github.com/medtrack/medication-reminder/internal/api/handler"
	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/ports"
	"github.com/medtrack/medication-reminder/internal/infrastructure/db/memory"
	"github.com/medtrack/medication-reminder/internal/infrastructure/db/mongo"
	"github.com/medtrack/medication-reminder/internal/infrastructure/db/redis"
	"github.com/medtrack/medication-reminder/internal/infrastructure/db/sqlite"
	"github.com/medtrack/medication-reminder/internal/pkg/config"
)

// storage bundles the repositories and guard of the selected backend along
// with the readiness checks and cleanup they need.
type storage struct {
	backend     string
	medications ports.MedicationRepository
	users       ports.AuthRepository
	guard       ports.ActionGuard
	checks      map[string]handler.PingFunc
	closers     []func()
}

func (s *storage) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStorage(ctx context.Context, cfg *config.Config, seed []domain.Medication) (*storage, error) {
	s := &storage{
		backend: cfg.Storage.Backend,
		checks:  make(map[string]handler.PingFunc),
	}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		s.medications = memory.NewMedicationRepository(seed)
		s.users = memory.NewAuthRepository()

	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = client.Disconnect(context.Background()) })
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			s.close()
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		s.medications = mongo.NewMedicationRepository(db)
		s.users = mongo.NewAuthRepository(db)
		s.checks["mongodb"] = mongo.Ping(client)

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = db.Close() })
		s.medications = sqlite.NewMedicationRepository(db)
		s.users = sqlite.NewAuthRepository(db)
		s.checks["sqlite"] = db.PingContext

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if !cfg.Redis.Enabled {
		s.guard = memory.NewActionGuard()
		return s, nil
	}

	client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		s.close()
		return nil, err
	}
	s.closers = append(s.closers, func() { _ = client.Close() })
	s.guard = redis.NewActionGuard(client, 0)
	s.checks["redis"] = redis.Ping(client)
	return s, nil
}
