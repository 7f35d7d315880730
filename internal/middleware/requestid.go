// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader はリクエストIDを返すレスポンスヘッダー名。
const RequestIDHeader = "X-Request-ID"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// requestIDContextKey はリクエストコンテキストにリクエストIDを格納するためのキー。
var requestIDContextKey = contextKey("request_id")

// NewRequestIDMiddleware はリクエストごとにUUID v4のリクエストIDを発行し、
// レスポンスヘッダーとリクエストコンテキストに設定するミドルウェアを返す。
// クライアントがX-Request-IDヘッダーを送信した場合はその値を引き継ぐ。
func NewRequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext はリクエストコンテキストからリクエストIDを取り出す。
// ミドルウェアを通過していないコンテキストにはエラーを返す。
func RequestIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || id == "" {
		return "", fmt.Errorf("request ID not found in context")
	}
	return id, nil
}
