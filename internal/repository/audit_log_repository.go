package repository

import (
	"context"

	"foodorder/internal/domain/model"
)

// 監査ログの書き込み先。
type AuditLogRepository interface {
	//1件追記
	Append(ctx context.Context, entry model.AuditEntry) error
}
