// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ssat_prep/internal/config"
	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{Mode: config.AuthModeDev},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// newDevRouter はモックセッション付きのテスト用ルーターを作ります。学習者の存在確認はしません。
func newDevRouter(register func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.DevLearnerContextMiddleware(nil))
	register(r)
	return r
}

// createRequest はテスト用のHTTPリクエストを作成します。
// learnerID が指定されていれば X-Learner-ID ヘッダーを付けます。
func createRequest(t *testing.T, method, url string, body interface{}, learnerID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewBuffer(raw)
		}
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if learnerID != nil {
		req.Header.Set(middleware.LearnerIDHeader, learnerID.String())
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを読みます。
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "body: %s", rr.Body.String())
	return errResp.Error
}
