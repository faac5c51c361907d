package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/nats"
	"github.com/piresc/fleetdispatch/internal/pkg/rabbitmq"
)

// Overall and per-dependency states
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Checker probes one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a plain function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Postgres pings the primary database
func Postgres(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// Redis pings the position store or the rate limiter backend
func Redis(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NATS requires a live connection and a JetStream account that answers
func NATS(client *nats.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		if !client.IsConnected() {
			return errors.New("NATS not connected")
		}
		if _, err := client.GetJetStream().AccountInfo(ctx); err != nil {
			return fmt.Errorf("JetStream not available: %w", err)
		}
		return nil
	})
}

// RabbitMQ checks the delivery broker connection
func RabbitMQ(client *rabbitmq.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

type dependency struct {
	checker  Checker
	optional bool
}

// Service runs every registered check concurrently. A failing required
// dependency makes the service unhealthy; a failing optional one only
// degrades it.
type Service struct {
	mu   sync.RWMutex
	deps map[string]dependency
	log  *logger.ZapLogger
}

// NewService creates an empty health service
func NewService(zapLogger *logger.ZapLogger) *Service {
	return &Service{deps: make(map[string]dependency), log: zapLogger}
}

// Require registers a dependency the service cannot work without
func (s *Service) Require(name string, checker Checker) *Service {
	return s.add(name, checker, false)
}

// Optional registers a dependency whose loss the service tolerates, such as
// the fail-open login rate limiter
func (s *Service) Optional(name string, checker Checker) *Service {
	return s.add(name, checker, true)
}

func (s *Service) add(name string, checker Checker, optional bool) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deps[name] = dependency{checker: checker, optional: optional}
	return s
}

// Report is the body of /health/detailed
type Report struct {
	Status       string                `json:"status"`
	Timestamp    time.Time             `json:"timestamp"`
	Service      string                `json:"service"`
	Version      string                `json:"version,omitempty"`
	Dependencies map[string]Dependency `json:"dependencies"`
}

// Dependency is the outcome of one check
type Dependency struct {
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	Latency  string `json:"latency"`
	Error    string `json:"error,omitempty"`
}

// Check probes all dependencies and folds them into one status
func (s *Service) Check(ctx context.Context) Report {
	s.mu.RLock()
	deps := make(map[string]dependency, len(s.deps))
	for name, d := range s.deps {
		deps[name] = d
	}
	s.mu.RUnlock()

	results := make(map[string]Dependency, len(deps))
	var (
		wg  sync.WaitGroup
		rmu sync.Mutex
	)
	for name, d := range deps {
		wg.Add(1)
		go func(name string, d dependency) {
			defer wg.Done()
			start := time.Now()
			err := d.checker.CheckHealth(ctx)
			res := Dependency{Status: StatusHealthy, Optional: d.optional, Latency: time.Since(start).String()}
			if err != nil {
				res.Status = StatusUnhealthy
				res.Error = err.Error()
			}
			rmu.Lock()
			results[name] = res
			rmu.Unlock()
		}(name, d)
	}
	wg.Wait()

	report := Report{Status: StatusHealthy, Timestamp: time.Now(), Dependencies: results}
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		res := results[name]
		if res.Status == StatusHealthy {
			continue
		}
		if s.log != nil {
			s.log.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Bool("optional", res.Optional),
				logger.String("error", res.Error))
		}
		switch {
		case !res.Optional:
			report.Status = StatusUnhealthy
		case report.Status == StatusHealthy:
			report.Status = StatusDegraded
		}
	}
	return report
}
