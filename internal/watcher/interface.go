package watcher

import "context"

// Watcher monitors a drop folder for new audio files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per detected audio file
type EventHandler func(ctx context.Context, filePath string) error
