package model

import "time"

// リクエスト監査ログの1件。
// 「いつ」「何を」「どこに」「どのトークンで」「どんなbodyで」を残す。
type AuditEntry struct {
	Time time.Time

	Method string
	URL    string

	//Authorizationヘッダ（無ければ "No Token"）
	Authorization string

	//JSON文字列（無ければ空）
	Body string
}
