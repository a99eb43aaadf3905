// Package notify dispatches match notifications. The engine treats dispatch
// as fire and forget: a failed or dropped notification never affects the
// match itself.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/someday-app/matchengine/internal/logger"
)

// LogNotifier records notifications in the service log. Stands in for a push
// gateway in local and demo deployments.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// MatchCreated logs the notification that would be pushed to userID.
func (n *LogNotifier) MatchCreated(ctx context.Context, userID, counterpartyID, matchID string) {
	logger.FromContext(ctx).Info("match notification",
		zap.String("user_id", userID),
		zap.String("counterparty_id", counterpartyID),
		zap.String("match_id", matchID),
	)
}
