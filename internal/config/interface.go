package config

import "context"

// Loader is the interface for a format-specific definition loader. Each
// implementation reads one definition file and translates it into the
// format-agnostic Model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
