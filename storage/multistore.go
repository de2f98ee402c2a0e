package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// MultiStore implements interfaces.ContractStore over multiple backends with
// fallback: fetches come from the first backend that has the object, stores
// go to every available backend.
type MultiStore struct {
	backends []interfaces.ContractStore
	log      *slog.Logger
}

// NewMultiStore creates a multi-backend contract store.
func NewMultiStore(backends []interfaces.ContractStore, logger *slog.Logger) *MultiStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MultiStore{
		backends: backends,
		log:      logger,
	}
}

// Fetch returns the object from the first available backend that has it.
func (m *MultiStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	start := time.Now()
	var errs []error

	for _, backend := range m.backends {
		if !backend.Available(ctx) {
			m.log.Debug("Store unavailable",
				slog.String("store", backend.Name()),
				slog.String("object", name))
			continue
		}

		data, err := backend.Fetch(ctx, name)
		if err == nil {
			m.log.Debug("Fetched object",
				slog.String("store", backend.Name()),
				slog.String("object", name),
				slog.Duration("duration", time.Since(start)))
			return data, nil
		}

		errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
		m.log.Debug("Failed to fetch from store",
			slog.String("store", backend.Name()),
			slog.String("object", name),
			"err", err)
	}

	m.log.Error("All stores failed to fetch object",
		slog.String("object", name),
		slog.Int("failed_stores", len(errs)),
		slog.Duration("duration", time.Since(start)))
	return nil, fmt.Errorf("all stores failed to fetch %s: %v", name, errs)
}

// Store saves the object to all available backends and returns the retrieval
// name reported by the first successful one.
func (m *MultiStore) Store(ctx context.Context, name string, data []byte) (string, error) {
	start := time.Now()
	var result string
	var success bool
	var errs []error

	for _, backend := range m.backends {
		if !backend.Available(ctx) {
			m.log.Debug("Store unavailable", slog.String("store", backend.Name()))
			continue
		}

		storedName, err := backend.Store(ctx, name, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
			m.log.Debug("Failed to store to backend",
				slog.String("store", backend.Name()),
				"err", err)
			continue
		}

		if !success {
			result = storedName
			success = true
			m.log.Info("Stored object",
				slog.String("store", backend.Name()),
				slog.String("object", storedName),
				slog.Duration("duration", time.Since(start)))
		}
	}

	if !success {
		m.log.Error("All stores failed to store object",
			slog.String("object", name),
			slog.Int("failed_stores", len(errs)),
			slog.Duration("duration", time.Since(start)))
		return "", fmt.Errorf("all stores failed to store %s: %v", name, errs)
	}
	return result, nil
}

// Available reports whether any backend is available.
func (m *MultiStore) Available(ctx context.Context) bool {
	for _, backend := range m.backends {
		if backend.Available(ctx) {
			return true
		}
	}
	return false
}

// Name returns a unique identifier for this store.
func (m *MultiStore) Name() string {
	return fmt.Sprintf("multi-%d", len(m.backends))
}

// LocationURI lists the member backends' URIs.
func (m *MultiStore) LocationURI() string {
	uri := "multi://"
	for i, backend := range m.backends {
		if i > 0 {
			uri += ","
		}
		uri += backend.LocationURI()
	}
	return uri
}
