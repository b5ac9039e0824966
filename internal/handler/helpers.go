package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"inventario/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0, min=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report json tag names in validation errors so `errors[].path` matches
	// the request body, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ── Response envelope ────────────────────────────────────────────────────────
// Success: {"status":"success","data":{...}} with optional "results" count.
// Client errors: {"status":"fail","message":...,"errors":[{path,message}]}.
// Server errors: {"status":"error","message":...}.

func respondSuccess(c *gin.Context, status int, data gin.H) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// respondList adds the "results" count the collection endpoints carry.
func respondList(c *gin.Context, key string, list interface{}, results int) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": results,
		"data":    gin.H{key: list},
	})
}

func respondError(c *gin.Context, err error) {
	e := apierror.AsError(err)
	switch e.Kind {
	case apierror.KindValidation:
		body := gin.H{"status": "fail", "message": e.Message}
		if len(e.Fields) > 0 {
			body["errors"] = e.Fields
		}
		c.JSON(http.StatusBadRequest, body)
	case apierror.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": e.Message})
	case apierror.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"status": "fail", "message": e.Message})
	default:
		// Persistence and unknown errors: log with cause, hide the detail.
		_ = c.Error(e)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
	}
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apierror.Validation("Invalid JSON body: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make([]apierror.FieldError, 0)
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, apierror.FieldError{
				Path:    fieldPath(fe),
				Message: validationMessage(fe),
			})
		}
		respondError(c, apierror.Validation("Validation error", fields...))
		return false
	}
	return true
}

// fieldPath strips the top-level struct name from the validator namespace:
// "CreateSalesOrderRequest.items[0].quantity" → "items.0.quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}

// parseID validates the numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, apierror.Validation("Validation error in ID parameter",
			apierror.FieldError{Path: "id", Message: "must be a positive integer"}))
		return 0, false
	}
	return uint(id), true
}
