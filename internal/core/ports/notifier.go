package ports

import (
	"context"

	"go.trai.ch/wrp/internal/core/domain"
)

// Notifier shows desktop notifications.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
