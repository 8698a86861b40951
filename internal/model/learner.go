package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SSAT の受験レベル
const (
	TestLevelElementary = "elementary"
	TestLevelMiddle     = "middle"
	TestLevelUpper      = "upper"
)

// Learner は学習者(単語帳の持ち主)です。
type Learner struct {
	LearnerID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name      string         `gorm:"unique;not null" json:"name"`
	TestLevel string         `gorm:"type:varchar(20);not null" json:"test_level"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// CreateLearnerRequest は学習者作成APIのリクエストボディ
type CreateLearnerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	TestLevel string `json:"test_level" validate:"omitempty,oneof=elementary middle upper"`
}

// LearnerResponse はクライアントに返す学習者情報
type LearnerResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Name      string    `json:"name"`
	TestLevel string    `json:"test_level"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLearnerResponse(l *Learner) *LearnerResponse {
	return &LearnerResponse{
		LearnerID: l.LearnerID,
		Name:      l.Name,
		TestLevel: l.TestLevel,
		CreatedAt: l.CreatedAt,
	}
}
