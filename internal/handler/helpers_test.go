package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventario/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondError_KindToStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantState  string
	}{
		{"validation", apierror.Validation("bad input"), http.StatusBadRequest, "fail"},
		{"not found", apierror.NotFound("no such row"), http.StatusNotFound, "fail"},
		{"conflict", apierror.Conflict("duplicate"), http.StatusConflict, "fail"},
		{"persistence", apierror.Persistence("db down", errors.New("conn refused")), http.StatusInternalServerError, "error"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { respondError(c, tc.err) })

			w := performRequest(r, http.MethodGet, "/x", "")
			assert.Equal(t, tc.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tc.wantState, body["status"])
		})
	}
}

func TestRespondError_InternalDetailNeverLeaks(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		respondError(c, apierror.Persistence("Database operation failed",
			errors.New(`pq: relation "secret_table" does not exist`)))
	})

	w := performRequest(r, http.MethodGet, "/x", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret_table")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRespondError_ValidationIncludesFieldErrors(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		respondError(c, apierror.Validation("Validation error",
			apierror.FieldError{Path: "items.0.quantity", Message: "must be a positive integer"}))
	})

	w := performRequest(r, http.MethodGet, "/x", "")
	body := decodeBody(t, w)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok, "errors array present")
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "items.0.quantity", first["path"])
}

func TestBindAndValidate_ReportsJSONTagPaths(t *testing.T) {
	type req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var body req
		if !bindAndValidate(c, &body) {
			return
		}
		c.Status(http.StatusOK)
	})

	w := performRequest(r, http.MethodPost, "/x", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
	errs := body["errors"].([]interface{})
	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.(map[string]interface{})["path"].(string))
	}
	assert.Contains(t, paths, "name")
	assert.Contains(t, paths, "email")
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	type req struct {
		Name string `json:"name" validate:"required"`
	}

	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var body req
		if !bindAndValidate(c, &body) {
			return
		}
		c.Status(http.StatusOK)
	})

	w := performRequest(r, http.MethodPost, "/x", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fail", decodeBody(t, w)["status"])
}

func TestParseID_RejectsNonNumericAndZero(t *testing.T) {
	r := gin.New()
	r.GET("/x/:id", func(c *gin.Context) {
		if _, ok := parseID(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		w := performRequest(r, http.MethodGet, "/x/"+raw, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", raw)
	}
	w := performRequest(r, http.MethodGet, "/x/42", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindAndValidate_NestedSliceFieldPaths(t *testing.T) {
	type item struct {
		Quantity int `json:"quantity" validate:"required,gt=0"`
	}
	type req struct {
		Items []item `json:"items" validate:"required,min=1,dive"`
	}

	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var body req
		if !bindAndValidate(c, &body) {
			return
		}
		c.Status(http.StatusOK)
	})

	w := performRequest(r, http.MethodPost, "/x", `{"items":[{"quantity":2},{"quantity":-1}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "items.1.quantity", errs[0].(map[string]interface{})["path"])
}
