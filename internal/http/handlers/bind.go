package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

// BindQuery binds and validates query parameters, answering 400 itself on
// failure. details.param names the first offending parameter.
func BindQuery(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindQuery(out); err != nil {
		RespondBadRequest(ctx, "Invalid query parameter", parseBindError(err, out, "form", ctx.Query))
		return false
	}
	return true
}

// BindURI is BindQuery for path parameters.
func BindURI(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindUri(out); err != nil {
		RespondBadRequest(ctx, "Invalid path parameter", parseBindError(err, out, "uri", ctx.Param))
		return false
	}
	return true
}

func parseBindError(err error, out interface{}, tagKey string, raw func(string) string) interface{} {
	rootType := baseStructType(out)

	var validatorError validator.ValidationErrors

	if errors.As(err, &validatorError) {
		fields := make([]FieldError, 0, len(validatorError))

		for _, fieldError := range validatorError {
			rule := fieldError.Tag()
			param := fieldError.Param()

			fields = append(fields, FieldError{
				Field:   paramName(rootType, fieldError.StructField(), tagKey),
				Rule:    rule,
				Param:   param,
				Message: validationMessage(rule, param),
			})
		}
		return gin.H{"param": fields[0].Field, "fields": fields}
	}

	// "page=abc" fails before validation runs
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return gin.H{
			"param":  unparsableParam(rootType, tagKey, raw),
			"reason": fmt.Sprintf("%q is not a valid %s", numErr.Num, kindOf(numErr)),
		}
	}

	return gin.H{"reason": err.Error()}
}

func baseStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

// paramName maps a Go field name to the name the client used.
func paramName(rootType reflect.Type, fieldName, tagKey string) string {
	if rootType == nil {
		return fieldName
	}

	sf, ok := rootType.FieldByName(fieldName)
	if !ok {
		return fieldName
	}

	return tagName(sf, tagKey)
}

// unparsableParam finds the numeric or boolean field whose raw value does
// not parse; strconv errors do not carry the field name.
func unparsableParam(rootType reflect.Type, tagKey string, raw func(string) string) string {
	if rootType == nil {
		return ""
	}

	for i := 0; i < rootType.NumField(); i++ {
		sf := rootType.Field(i)
		name := tagName(sf, tagKey)
		v := raw(name)
		if v == "" {
			continue
		}

		t := sf.Type
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		switch t.Kind() {
		case reflect.Int, reflect.Int64, reflect.Int32:
			if _, err := strconv.Atoi(v); err != nil {
				return name
			}
		case reflect.Bool:
			if _, err := strconv.ParseBool(v); err != nil {
				return name
			}
		}
	}
	return ""
}

func kindOf(err *strconv.NumError) string {
	if err.Func == "ParseBool" {
		return "boolean"
	}
	return "number"
}

func tagName(sf reflect.StructField, tagKey string) string {
	tag := sf.Tag.Get(tagKey)
	if tag == "" {
		return sf.Name
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "len":
		return "must be exactly " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
