// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は学習者の単語帳に入っている語彙です。
type Word struct {
	WordID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	LearnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Term            string         `gorm:"not null" json:"term"`
	Definition      string         `gorm:"not null" json:"definition"`
	PartOfSpeech    string         `gorm:"type:varchar(20)" json:"part_of_speech,omitempty"`
	ExampleSentence string         `json:"example_sentence,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	ReviewItem *ReviewItem `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term            string `json:"term" validate:"required,max=100"`
	Definition      string `json:"definition" validate:"required,max=500"`
	PartOfSpeech    string `json:"part_of_speech" validate:"omitempty,oneof=noun verb adjective adverb preposition conjunction pronoun interjection"`
	ExampleSentence string `json:"example_sentence" validate:"omitempty,max=500"`
}

// 単語更新（全体）リクエストDTO
type PutWordRequest struct {
	Term            string `json:"term" validate:"required,max=100"`
	Definition      string `json:"definition" validate:"required,max=500"`
	PartOfSpeech    string `json:"part_of_speech" validate:"omitempty,oneof=noun verb adjective adverb preposition conjunction pronoun interjection"`
	ExampleSentence string `json:"example_sentence" validate:"omitempty,max=500"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	Term            *string `json:"term,omitempty" validate:"omitempty,min=1,max=100"`
	Definition      *string `json:"definition,omitempty" validate:"omitempty,min=1,max=500"`
	PartOfSpeech    *string `json:"part_of_speech,omitempty" validate:"omitempty,oneof=noun verb adjective adverb preposition conjunction pronoun interjection"`
	ExampleSentence *string `json:"example_sentence,omitempty" validate:"omitempty,max=500"`
}

// IsEmpty は更新対象のフィールドが1つも無いかを返します。
func (r *PatchWordRequest) IsEmpty() bool {
	return r.Term == nil && r.Definition == nil && r.PartOfSpeech == nil && r.ExampleSentence == nil
}
