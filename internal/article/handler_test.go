package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/mp-article/internal/middleware"
	"terminal-terrace/mp-article/internal/testutils"
	"terminal-terrace/mp-article/pkg/authsdk"
	"terminal-terrace/mp-article/pkg/response"
)

const handlerSecret = "article-handler-secret"

type envelope struct {
	Success bool                  `json:"success"`
	Code    response.ResponseCode `json:"code"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
}

func setupHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutils.SetupTestDB(t)
	r := gin.New()
	RegisterRoutes(
		r.Group("/api/v1/wx/articles"),
		NewArticleHandler(NewArticleService(db, ServiceOptions{})),
		middleware.JWTAuth(handlerSecret),
	)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authsdk.Claims{
		UserID:   1,
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(handlerSecret))
	require.NoError(t, err)

	return r, db, signed
}

func doRequest(t *testing.T, r *gin.Engine, req *http.Request, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandler_ListArticles(t *testing.T) {
	r, db, token := setupHandlerTest(t)

	f := testutils.CreateTestFeed(db, testutils.WithFeedName("学生会"))
	for i := 0; i < 7; i++ {
		testutils.CreateTestArticle(db, f.ID, testutils.WithPublishAt(hoursAfter(i)))
	}

	// 默认每页 5 条
	w, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles", nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	var list ArticleListResponse
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Equal(t, int64(7), list.Total)
	assert.Len(t, list.List, DefaultLimit)
	assert.Equal(t, "学生会", list.List[0].MpName)
	assert.Nil(t, list.List[0].Content)

	// POST 同样读取 query string，忽略 Content-Type 和空请求体
	query := url.Values{"offset": {"5"}, "limit": {"5"}, "has_content": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wx/articles?"+query.Encode(), nil)
	req.Header.Set("Content-Type", "application/json")
	w, body = doRequest(t, r, req, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Len(t, list.List, 2)
	assert.NotNil(t, list.List[0].Content)
}

func TestHandler_ListArticlesPostJSON(t *testing.T) {
	r, db, token := setupHandlerTest(t)

	f := testutils.CreateTestFeed(db)
	for i := 0; i < 3; i++ {
		testutils.CreateTestArticle(db, f.ID, testutils.WithPublishAt(hoursAfter(i)))
	}

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"json body ignored", `{"limit":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/wx/articles?offset=0&limit=2", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w, body := doRequest(t, r, req, token)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, response.Success, body.Code)

			var list ArticleListResponse
			require.NoError(t, json.Unmarshal(body.Data, &list))
			assert.Equal(t, int64(3), list.Total)
			assert.Len(t, list.List, 2)
		})
	}
}

func TestHandler_ListArticlesValidation(t *testing.T) {
	r, _, token := setupHandlerTest(t)

	for _, query := range []string{"limit=0", "limit=101", "offset=-1", "limit=abc"} {
		w, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles?"+query, nil), token)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Equal(t, response.InvalidParameter, body.Code, query)
		assert.False(t, body.Success)
	}
}

func TestHandler_AuthRequired(t *testing.T) {
	r, db, _ := setupHandlerTest(t)
	f := testutils.CreateTestFeed(db)
	a := testutils.CreateTestArticle(db, f.ID)

	for _, target := range []string{
		"/api/v1/wx/articles",
		"/api/v1/wx/articles/" + a.ID + "/next",
		"/api/v1/wx/articles/" + a.ID + "/prev",
	} {
		w, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, target, nil), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
		assert.Equal(t, response.Unauthorized, body.Code)
	}

	// 详情无需认证
	w, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles/"+a.ID, nil), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
}

func TestHandler_DeleteThenGet(t *testing.T) {
	r, db, token := setupHandlerTest(t)
	f := testutils.CreateTestFeed(db)
	a := testutils.CreateTestArticle(db, f.ID)

	w, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles/"+a.ID+"?content=true", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	var item ArticleItem
	require.NoError(t, json.Unmarshal(body.Data, &item))
	require.NotNil(t, item.Content)

	w, body = doRequest(t, r, httptest.NewRequest(http.MethodDelete, "/api/v1/wx/articles/"+a.ID, nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "文章已标记为删除", body.Message)

	w, body = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles/"+a.ID, nil), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.NotFound, body.Code)

	w, body = doRequest(t, r, httptest.NewRequest(http.MethodDelete, "/api/v1/wx/articles/missing", nil), token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.NotFound, body.Code)
}

func TestHandler_Neighbors(t *testing.T) {
	r, db, token := setupHandlerTest(t)
	f := testutils.CreateTestFeed(db)
	older := testutils.CreateTestArticle(db, f.ID, testutils.WithPublishAt(hoursAfter(1)))
	newer := testutils.CreateTestArticle(db, f.ID, testutils.WithPublishAt(hoursAfter(2)))

	w, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles/"+older.ID+"/next", nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	var item ArticleItem
	require.NoError(t, json.Unmarshal(body.Data, &item))
	assert.Equal(t, newer.ID, item.ID)

	w, body = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles/"+newer.ID+"/next", nil), token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.NoNextArticle, body.Code)
	assert.Equal(t, "没有下一篇文章", body.Message)

	w, body = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/wx/articles/"+older.ID+"/prev", nil), token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.NoPrevArticle, body.Code)
	assert.Equal(t, "没有上一篇文章", body.Message)
}
