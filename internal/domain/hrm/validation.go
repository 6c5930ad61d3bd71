package hrm

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type crossChecker interface {
	CrossCheck() []FieldIssue
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Date).ValidationValue()
	}, Date{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(decimal.Decimal).InexactFloat64()
	}, decimal.Decimal{})
	if err := v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, ok := fl.Field().Interface().(time.Time)
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks struct tags and cross-field rules and reports problems by
// JSON field path, sorted.
func Validate(v any) []FieldIssue {
	var issues []FieldIssue
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []FieldIssue{{Reason: err.Error()}}
		}
		for _, fe := range verrs {
			issues = append(issues, FieldIssue{Field: fieldPath(fe), Reason: reason(fe)})
		}
	}
	if c, ok := v.(crossChecker); ok {
		issues = append(issues, c.CrossCheck()...)
	}
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Field == issues[j].Field {
			return issues[i].Reason < issues[j].Reason
		}
		return issues[i].Field < issues[j].Field
	})
	return issues
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func reason(fe validator.FieldError) string {
	text := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid id"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		if text {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "date":
		return "must be a valid date in YYYY-MM-DD format"
	case "datetime":
		return "must be a time in HH:MM format"
	case "numeric":
		return "must contain digits only"
	case "alpha":
		return "must contain letters only"
	}
	return "is invalid"
}

type dateSpan struct {
	startField string
	start      Date
	endField   string
	end        Date
}

func dateOrder(spans ...dateSpan) []FieldIssue {
	var issues []FieldIssue
	for _, s := range spans {
		if s.start.IsZero() || s.end.IsZero() || !s.start.Valid() || !s.end.Valid() {
			continue
		}
		if s.end.Before(s.start) {
			issues = append(issues,
				FieldIssue{Field: s.startField, Reason: "must be on or before " + s.endField},
				FieldIssue{Field: s.endField, Reason: "must be on or after " + s.startField},
			)
		}
	}
	return issues
}
