package feed

import "time"

// Feed 公众号表，本服务只读
type Feed struct {
	ID        string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	MpName    string    `gorm:"type:varchar(255)" json:"mp_name"`
	MpCover   string    `gorm:"type:varchar(255)" json:"mp_cover"`
	MpIntro   string    `gorm:"type:varchar(255)" json:"mp_intro"`
	Status    int       `gorm:"default:1" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feed) TableName() string {
	return "feeds"
}
