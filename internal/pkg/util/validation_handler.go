package util

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var emailRegex = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = validate.RegisterValidation("blog_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("blog_password", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})
}

// ValidPassword 6-20 位，至少包含一个数字、一个小写字母和一个大写字母，不允许换行符
func ValidPassword(password string) bool {
	length := utf8.RuneCountInString(password)
	if length < 6 || length > 20 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case isLineTerminator(r):
			return false
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// FieldViolation 第一个未通过校验的字段及规则
type FieldViolation struct {
	Field string
	Tag   string
}

// CheckStruct 按字段声明顺序校验，只返回第一个失败的规则
func CheckStruct(dto any) (*FieldViolation, error) {
	err := validate.Struct(dto)
	if err == nil {
		return nil, nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return &FieldViolation{Field: vErrs[0].Field(), Tag: vErrs[0].Tag()}, nil
	}
	return nil, err
}
