package inbox

import "context"

// Handler processes one file dropped into the inbox folder.
type Handler interface {
	Handle(ctx context.Context, filePath string) error
}
