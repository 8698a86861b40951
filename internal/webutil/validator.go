package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"
	"sync"

	"ssat_prep/internal/model"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

var (
	uni      *ut.UniversalTranslator
	transMu  sync.RWMutex
	trans    ut.Translator
	fieldsJA = map[string]string{
		"name":              "名前",
		"test_level":        "受験レベル",
		"term":              "単語",
		"definition":        "意味",
		"part_of_speech":    "品詞",
		"example_sentence":  "例文",
		"quality":           "評価",
		"is_correct":        "回答の正誤",
		"difficulty_rating": "難易度",
	}
)

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni = ut.New(english, english, ja.New())

	enTrans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(Validator, enTrans); err != nil {
		log.Fatal(err)
	}

	jaTrans, _ := uni.GetTranslator("ja")
	if err := ja_translations.RegisterDefaultTranslations(Validator, jaTrans); err != nil {
		log.Fatal(err)
	}
	registerJA(jaTrans, "required", "{0}は必須項目です。", false)
	registerJA(jaTrans, "min", "{0}は{1}文字以上で入力してください。", true)
	registerJA(jaTrans, "max", "{0}は{1}文字以下で入力してください。", true)

	trans = enTrans
}

// registerJA はフィールド名を日本語に置き換えたメッセージを登録します。
func registerJA(t ut.Translator, tag, msg string, withParam bool) {
	err := Validator.RegisterTranslation(tag, t, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName, ok := fieldsJA[fe.Field()]
		if !ok {
			fieldName = fe.Field()
		}
		var s string
		if withParam {
			s, _ = ut.T(tag, fieldName, fe.Param())
		} else {
			s, _ = ut.T(tag, fieldName)
		}
		return s
	})
	if err != nil {
		log.Fatal(err)
	}
}

// SetLocale はバリデーションメッセージの言語を切り替えます。未対応なら英語のままです。
func SetLocale(locale string) bool {
	t, found := uni.GetTranslator(strings.ToLower(locale))
	if !found {
		return false
	}
	transMu.Lock()
	trans = t
	transMu.Unlock()
	return true
}

// Translator は現在のトランスレータを返します。
func Translator() ut.Translator {
	transMu.RLock()
	defer transMu.RUnlock()
	return trans
}

// ValidateStruct はバリデーションを行い、失敗時は最初のエラーを翻訳した AppError を返します。
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	firstErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Translator()),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}
