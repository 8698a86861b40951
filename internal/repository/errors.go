package repository

import (
	"context"
	"errors"
	"fmt"

	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isDuplicateKey は一意制約違反かどうかを判定します。
// postgres は SQLSTATE 23505、それ以外は GORM の TranslateError 結果で見ます。
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// dbError はDBエラーを呼び出し元の名前付きで包みます。
// レコードなしは model.ErrNotFound、一意制約違反は model.ErrConflict に置き換え、それ以外はリクエストのロガーに記録します。
func dbError(ctx context.Context, op string, err error, attrs ...any) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.ErrNotFound
	case isDuplicateKey(err):
		middleware.GetLogger(ctx).Warn("Duplicate key", append([]any{"op", op}, attrs...)...)
		return model.ErrConflict
	}
	middleware.GetLogger(ctx).Error("Database operation failed", append([]any{"op", op, "error", err}, attrs...)...)
	return fmt.Errorf("%s: %w", op, err)
}

// mustAffect は対象行がなかった更新・削除を model.ErrNotFound にします。
func mustAffect(result *gorm.DB) error {
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ofLearner は学習者の行に絞り込みます。
func ofLearner(learnerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("learner_id = ?", learnerID)
	}
}

// ofLearnerWord は学習者の特定の単語(または単語に紐づく行)に絞り込みます。
func ofLearnerWord(learnerID, wordID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("learner_id = ? AND word_id = ?", learnerID, wordID)
	}
}
