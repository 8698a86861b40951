package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const maxLoggedBodyBytes = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// sensitiveBodyKeys はJSONボディ内でマスキングするキー (小文字)
var sensitiveBodyKeys = map[string]bool{
	"password":      true,
	"token":         true,
	"access_token":  true,
	"refresh_token": true,
	"secret":        true,
}

// bodyRecorder はステータスコードとレスポンスボディを記録します。
type bodyRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *bodyRecorder) WriteHeader(statusCode int) {
	rec.statusCode = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

func (rec *bodyRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	if n > 0 && rec.body.Len() < maxLoggedBodyBytes {
		rec.body.Write(b[:n])
	}
	return n, err
}

func (rec *bodyRecorder) Flush() {
	if flusher, ok := rec.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// DetailLoggingMiddleware はリクエスト/レスポンスのヘッダーとボディを出力します。
// デバッグ用。4xx は Warn、5xx は Error、それ以外は Debug で出します。
func DetailLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := chimiddleware.GetReqID(r.Context())

			var reqBody []byte
			if r.Body != nil && r.ContentLength != 0 {
				b, err := io.ReadAll(r.Body)
				if err != nil {
					logger.ErrorContext(r.Context(), "Failed to read request body in middleware", slog.Any("error", err), slog.String("req_id", requestID))
				}
				reqBody = b
				r.Body = io.NopCloser(bytes.NewReader(b))
			}

			rec := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			logLevel := slog.LevelDebug
			if rec.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rec.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}
			if !logger.Enabled(r.Context(), logLevel) {
				return
			}

			logger.LogAttrs(r.Context(), logLevel, "HTTP exchange detail",
				slog.String("req_id", requestID),
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status_code", rec.statusCode),
				slog.Any("request_headers", formatHeaders(r.Header)),
				slog.Any("request_body", formatBody(r.Header.Get("Content-Type"), reqBody)),
				slog.Any("response_headers", formatHeaders(rec.Header())),
				slog.Any("response_body", formatBody(rec.Header().Get("Content-Type"), rec.body.Bytes())),
			)
		})
	}
}

// formatHeaders はヘッダーをスネークケースのキーに整形し、センシティブな値を伏せます。
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		lowerKey := strings.ToLower(key)
		logKey := strings.ReplaceAll(lowerKey, "-", "_")
		if sensitiveHeaders[lowerKey] {
			result[logKey] = "[SENSITIVE]"
		} else {
			result[logKey] = strings.Join(values, ", ")
		}
	}
	return result
}

func formatBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if !strings.HasPrefix(contentType, "application/json") {
		return fmt.Sprintf("[non-JSON body: %d bytes, Content-Type: %s]", len(body), contentType)
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Sprintf("[unparseable JSON body: %d bytes]", len(body))
	}
	return maskJSON(data)
}

func maskJSON(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			if sensitiveBodyKeys[strings.ToLower(k)] {
				val[k] = "[MASKED]"
				continue
			}
			val[k] = maskJSON(inner)
		}
		return val
	case []any:
		for i := range val {
			val[i] = maskJSON(val[i])
		}
		return val
	default:
		return v
	}
}
