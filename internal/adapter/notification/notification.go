package notification

import (
	"encoding/json"

	"go.uber.org/zap"
)

// LogNotifier records user notifications in the application log. A push
// or SMS channel can replace it behind the same port.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(userID uint64, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		n.logger.Warn("notification payload not serializable",
			zap.Uint64("user", userID), zap.String("event", event), zap.Error(err))
		return
	}

	n.logger.Info("user notification",
		zap.Uint64("user", userID),
		zap.String("event", event),
		zap.ByteString("payload", data))
}
