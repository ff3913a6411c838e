package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/mp-article/internal/model/article"
	"terminal-terrace/mp-article/internal/model/event"
	"terminal-terrace/mp-article/internal/model/feed"
)

// CreateTestFeed creates a feed with a unique id and name
func CreateTestFeed(db *gorm.DB, opts ...FeedOption) *feed.Feed {
	uniqueID := uuid.New().String()

	testFeed := &feed.Feed{
		ID:     "MP_WXS_" + uniqueID,
		MpName: fmt.Sprintf("test_feed_%s", uniqueID[:8]),
		Status: 1,
	}

	for _, opt := range opts {
		opt(testFeed)
	}

	if err := db.Create(testFeed).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test feed: %v", err))
	}

	return testFeed
}

// FeedOption configures test feed
type FeedOption func(*feed.Feed)

func WithFeedID(id string) FeedOption {
	return func(f *feed.Feed) {
		f.ID = id
	}
}

func WithFeedName(name string) FeedOption {
	return func(f *feed.Feed) {
		f.MpName = name
	}
}

// CreateTestArticle creates a normal article belonging to mpID
func CreateTestArticle(db *gorm.DB, mpID string, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()

	testArticle := &article.Article{
		ID:          uniqueID,
		MpID:        mpID,
		Title:       fmt.Sprintf("test_article_%s", uniqueID[:8]),
		URL:         fmt.Sprintf("https://mp.weixin.qq.com/s/%s", uniqueID),
		Description: "test description",
		Content:     "<p>test content</p>",
		Status:      article.StatusNormal,
		PublishTime: time.Now().Unix(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

func WithArticleID(id string) ArticleOption {
	return func(a *article.Article) {
		a.ID = id
	}
}

func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

func WithURL(url string) ArticleOption {
	return func(a *article.Article) {
		a.URL = url
	}
}

func WithDescription(desc string) ArticleOption {
	return func(a *article.Article) {
		a.Description = desc
	}
}

func WithContent(content string) ArticleOption {
	return func(a *article.Article) {
		a.Content = content
	}
}

func WithStatus(status article.Status) ArticleOption {
	return func(a *article.Article) {
		a.Status = status
	}
}

// WithPublishAt sets publish_at and keeps publish_time in sync
func WithPublishAt(t time.Time) ArticleOption {
	return func(a *article.Article) {
		a.PublishAt = &t
		a.PublishTime = t.Unix()
	}
}

// WithPublishTime sets only the legacy publish_time, leaving publish_at NULL
func WithPublishTime(ts int64) ArticleOption {
	return func(a *article.Article) {
		a.PublishAt = nil
		a.PublishTime = ts
	}
}

func WithCreatedAt(t time.Time) ArticleOption {
	return func(a *article.Article) {
		a.CreatedAt = t
	}
}

// CreateTestEvent creates an event row for the given article
func CreateTestEvent(db *gorm.DB, articleID string, opts ...EventOption) *event.Event {
	testEvent := &event.Event{
		ArticleID:         articleID,
		ArticleURL:        fmt.Sprintf("https://mp.weixin.qq.com/s/%s", articleID),
		RegistrationTitle: "报名",
	}

	for _, opt := range opts {
		opt(testEvent)
	}

	if err := db.Create(testEvent).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test event: %v", err))
	}

	return testEvent
}

// EventOption configures test event
type EventOption func(*event.Event)

func WithEventTime(eventTime string) EventOption {
	return func(e *event.Event) {
		e.EventTime = eventTime
	}
}
