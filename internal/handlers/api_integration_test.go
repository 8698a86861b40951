//go:build integration

// api_integration_test.go は PostgreSQL コンテナを起動して API を通しで確認します。
// 実行: go test -tags=integration ./internal/handlers/...
package handlers_test

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"ssat_prep/internal/config"
	"ssat_prep/internal/handlers"
	"ssat_prep/internal/model"
	"ssat_prep/internal/repository"
	"ssat_prep/internal/service"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	integDB     *gorm.DB
	integLogger *slog.Logger
)

const dbContainerName = "test_postgres_ssat_prep"

func TestMain(m *testing.M) {
	integLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(integLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       dbContainerName,
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=ssat_prep",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	// devcontainer から動かす場合は INTEGRATION_DB_HOST=host.docker.internal
	dbHost := os.Getenv("INTEGRATION_DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	connectionURL := fmt.Sprintf("postgres://user:secret@%s:%s/ssat_prep?sslmode=disable", dbHost, resource.GetPort("5432/tcp"))
	integLogger.Info("PostgreSQL container started", slog.String("container_id_short", resource.Container.ID[:12]))

	if err = pool.Retry(func() error {
		var errRetry error
		integDB, errRetry = repository.NewDB("postgres", connectionURL, integLogger)
		return errRetry
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := repository.AutoMigrate(integDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func setupIntegrationRouter(t *testing.T) http.Handler {
	t.Helper()
	require.NotNil(t, integDB, "integDB should have been initialized in TestMain")

	cfg := testConfig()
	cfg.App = config.AppConfig{ReviewLimit: 20, MaxReviewLimit: 100, FocusCount: 10}

	learnerRepo := repository.NewGormLearnerRepository()
	wordRepo := repository.NewGormWordRepository()
	itemRepo := repository.NewGormReviewItemRepository()

	sqlDB, err := integDB.DB()
	require.NoError(t, err)

	return handlers.NewRouter(handlers.RouterDeps{
		Config:   cfg,
		Logger:   integLogger,
		Learners: service.NewLearnerService(integDB, learnerRepo),
		Words:    service.NewWordService(integDB, wordRepo, itemRepo),
		Reviews:  service.NewReviewService(integDB, wordRepo, itemRepo, cfg),
		DB:       sqlDB,
	})
}

func TestAPI_ReviewFlow(t *testing.T) {
	router := setupIntegrationRouter(t)

	// 学習者作成
	rr := serve(router, createRequest(t, http.MethodPost, "/api/v1/learners",
		map[string]string{"name": "integ-" + uuid.NewString()[:8], "test_level": "upper"}, nil))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var learner model.LearnerResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &learner))
	learnerID := learner.LearnerID

	// 単語登録 (綴りの重複は大文字小文字を区別しない)
	rr = serve(router, createRequest(t, http.MethodPost, "/api/v1/words",
		map[string]string{"term": "Laconic", "definition": "using very few words"}, &learnerID))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var word model.Word
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))

	rr = serve(router, createRequest(t, http.MethodPost, "/api/v1/words",
		map[string]string{"term": "laconic", "definition": "dup"}, &learnerID))
	assert.Equal(t, http.StatusConflict, rr.Code)

	// 未復習の単語はキューの先頭に NEW として出る
	rr = serve(router, createRequest(t, http.MethodGet, "/api/v1/reviews?limit=5", nil, &learnerID))
	require.Equal(t, http.StatusOK, rr.Code)
	var queue []model.ReviewQueueItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &queue))
	require.Len(t, queue, 1)
	assert.Equal(t, word.WordID, queue[0].WordID)
	assert.Equal(t, "NEW", string(queue[0].Label))

	// 結果送信
	path := "/api/v1/reviews/" + word.WordID.String()
	rr = serve(router, createRequest(t, http.MethodPut, path+"/result", map[string]int{"quality": 5}, &learnerID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var state model.ReviewStateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 6.0, state.IntervalDays)
	assert.Equal(t, 1, state.TimesCorrect)

	// 覚えた → 取り消し
	rr = serve(router, createRequest(t, http.MethodPut, path+"/mastered", nil, &learnerID))
	require.Equal(t, http.StatusOK, rr.Code)
	rr = serve(router, createRequest(t, http.MethodDelete, path+"/mastered", nil, &learnerID))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.False(t, state.IsMastered)
	assert.Equal(t, 30.0, state.IntervalDays)

	rr = serve(router, createRequest(t, http.MethodGet, "/api/v1/reviews/summary", nil, &learnerID))
	require.Equal(t, http.StatusOK, rr.Code)
	var summary model.ReviewSummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Due)

	// 削除すると復習履歴も消える
	rr = serve(router, createRequest(t, http.MethodDelete, "/api/v1/words/"+word.WordID.String(), nil, &learnerID))
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = serve(router, createRequest(t, http.MethodPut, path+"/star", nil, &learnerID))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Health(t *testing.T) {
	router := setupIntegrationRouter(t)
	rr := serve(router, createRequest(t, http.MethodGet, "/health", nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
