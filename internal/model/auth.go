package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LearnerClaims はアクセストークンのクレームです。sub に学習者IDを入れます。
type LearnerClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
