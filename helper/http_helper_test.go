package helper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.ErrorNotFound{Message: "x"}, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", models.ErrorConflict{Message: "x"}), http.StatusConflict},
		{models.ErrorUnauthorized{Message: "x"}, http.StatusUnauthorized},
		{models.ErrorForbidden{Message: "x"}, http.StatusForbidden},
		{models.ErrorValidation{Field: "icon", Message: "x"}, http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, h.GetStatusCode(tc.err))
	}
}

func TestBindAndValidateReportsJSONFieldNames(t *testing.T) {
	h := NewHTTPHelper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"","email":"nope","message":"hi"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.MessageRequest
	ok := h.BindAndValidate(c, &req)

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Code        int                 `json:"code"`
		CodeType    string              `json:"code_type"`
		CodeMessage map[string][]string `json:"code_message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validationError", body.CodeType)
	assert.Contains(t, body.CodeMessage, "name")
	assert.Contains(t, body.CodeMessage, "email")
	assert.NotContains(t, body.CodeMessage, "message")
}

func TestSendServiceErrorPrefixesOperation(t *testing.T) {
	h := NewHTTPHelper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.SendServiceError(c, "Failed to update skill", fmt.Errorf("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to update skill: connection reset")
}

func TestBearerToken(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, BearerToken(c))

	c.Request.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, BearerToken(c))

	c.Request.Header.Set("Authorization", "Bearer abc.def")
	assert.Equal(t, "abc.def", BearerToken(c))
}
