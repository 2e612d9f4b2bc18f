package config

import "context"

//go:generate mockgen -destination=mocks/loader_mock.go -package=mocks . Loader

// Loader is the interface for a format-specific tour plan loader.
type Loader interface {
	// Load reads every plan file reachable from paths and merges them, in
	// order, into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
