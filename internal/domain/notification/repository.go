package notification

import (
	"context"

	"github.com/tasmimahana/cse470/internal/models"
)

type Repository interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}
