package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	res "terminal-terrace/mp-article/pkg/response"
)

type pageQuery struct {
	Offset int `form:"offset" binding:"min=0"`
	Limit  int `form:"limit" binding:"min=1,max=100"`
}

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) res.Response {
	t.Helper()
	var body res.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorResponseStatus(t *testing.T) {
	tests := []struct {
		code   res.ResponseCode
		status int
	}{
		{res.InvalidParameter, http.StatusBadRequest},
		{res.Unauthorized, http.StatusUnauthorized},
		{res.NotFound, http.StatusNotFound},
		{res.NoNextArticle, http.StatusNotFound},
		{res.Fail, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		c, w := newContext("/")
		ErrorResponse(c, res.NewBusinessError(res.WithErrorCode(tt.code), res.WithErrorMessage("x")))
		assert.Equal(t, tt.status, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, tt.code, body.Code)
	}
}

func TestValidationErrorResponse(t *testing.T) {
	c, w := newContext("/?limit=500")
	var q pageQuery
	err := c.ShouldBindQuery(&q)
	require.Error(t, err)

	ValidationErrorResponse(c, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, res.InvalidParameter, body.Code)
	assert.Equal(t, "字段 'limit' 不能大于 100", body.Message)
}

func TestValidationErrorResponseBadType(t *testing.T) {
	c, w := newContext("/?limit=abc")
	var q pageQuery
	err := c.ShouldBindQuery(&q)
	require.Error(t, err)

	ValidationErrorResponse(c, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "参数错误")
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "has_content", toSnakeCase("HasContent"))
	assert.Equal(t, "limit", toSnakeCase("Limit"))
}
