package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"foodorder/internal/domain/model"
	repo "foodorder/internal/repository"
)

// 監査ログの日時フォーマット
const auditTimeLayout = "2006/01/02 15:04:05"

// ファイルに追記する監査ログ。
type auditLogFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewAuditLogFileRepository(path string) repo.AuditLogRepository {
	return &auditLogFileRepository{path: path}
}

func (r *auditLogFileRepository) Append(ctx context.Context, entry model.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(FormatAuditEntry(entry)); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// 1件分のテキスト
func FormatAuditEntry(e model.AuditEntry) string {
	token := e.Authorization
	if token == "" {
		token = "No Token"
	}
	body := e.Body
	if body == "" {
		body = "{}"
	}
	return fmt.Sprintf(
		"\nDateTime: %s\nMethod: %s\nURL: %s\nJWT Token: %s\nBody: %s\n-----------------------------------------\n",
		e.Time.Format(auditTimeLayout), e.Method, e.URL, token, body,
	)
}
