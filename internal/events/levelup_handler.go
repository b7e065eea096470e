package events

import (
	"context"
	"log/slog"
)

// LevelUpLogHandler logs level-up events. It ignores events of other
// types so it can share an emitter with future handlers.
type LevelUpLogHandler struct {
	logger *slog.Logger
}

// NewLevelUpLogHandler creates a handler that records level-ups in the
// application log.
func NewLevelUpLogHandler(logger *slog.Logger) *LevelUpLogHandler {
	return &LevelUpLogHandler{
		logger: logger.With("component", "level_up_handler"),
	}
}

// HandleEvent implements the EventHandler interface.
func (h *LevelUpLogHandler) HandleEvent(ctx context.Context, event *Event) error {
	if event.Type != EventTypeLevelUp {
		return nil
	}

	var payload LevelUpPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		h.logger.Error("failed to decode level-up payload",
			"error", err,
			"event_id", event.ID)
		return err
	}

	h.logger.Info("user leveled up",
		"user_id", payload.UserID,
		"old_level", payload.OldLevel,
		"new_level", payload.NewLevel,
		"total_exp", payload.TotalExp)
	return nil
}
