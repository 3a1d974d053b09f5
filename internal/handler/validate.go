package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/xxxsen/renthub/internal/pkg/errcode"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
	"github.com/xxxsen/renthub/internal/pkg/response"
)

// requestValidator checks bound request bodies and renders failures as
// json field name to English message.
type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var overrides = map[string]string{
	"required": "{0} cannot be blank",
	"email":    "{0} should be valid",
	"datetime": "{0} must be a date in YYYY-MM-DD format",
}

func newRequestValidator() (*requestValidator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}
	for tag, text := range overrides {
		text := text
		err := v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error {
				return t.Add(tag, text, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, err := t.T(fe.Tag(), fe.Field())
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
		if err != nil {
			return nil, err
		}
	}
	return &requestValidator{validate: v, trans: trans}, nil
}

func (rv *requestValidator) check(req interface{}) map[string]string {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Translate(rv.trans)
	}
	return fields
}

// bind decodes the JSON body into req and validates it. It writes the
// failure response itself and reports whether the handler may go on.
func (rv *requestValidator) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, errcode.ErrInvalid, "invalid request")
		return false
	}
	if fields := rv.check(req); fields != nil {
		response.Fields(c, http.StatusBadRequest, errcode.ErrValidation, appErr.ErrValidation.Error(), fields)
		return false
	}
	return true
}
