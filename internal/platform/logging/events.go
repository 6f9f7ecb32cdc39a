package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogUIEvent records one gallery interaction (search, open, prev, next, close)
// for a browsing session at debug level.
func LogUIEvent(ctx context.Context, sessionID, event string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("ui.session", sessionID),
		zap.String("ui.event", event),
	}
	LoggerFromContext(ctx).Debug("ui event", append(base, fields...)...)
}
