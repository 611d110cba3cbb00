package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type Review struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	ProductID uint64    `gorm:"column:product_id;not null;index" json:"product_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Title     string    `gorm:"column:title;type:text" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// SentimentAnalysis is the persisted output of the review sentiment
// analyzer. Keywords keeps every matched token in encounter order,
// duplicates included.
type SentimentAnalysis struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID       string         `gorm:"column:review_id;type:uuid;not null;index" json:"review_id"`
	SentimentScore float64        `gorm:"column:sentiment_score;type:numeric" json:"sentiment_score"`
	SentimentLabel string         `gorm:"column:sentiment_label;not null" json:"sentiment_label"`
	Confidence     float64        `gorm:"column:confidence;type:numeric" json:"confidence"`
	Keywords       datatypes.JSON `gorm:"column:keywords;type:jsonb" json:"keywords"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SentimentAnalysis) TableName() string {
	return "sentiment_analysis"
}
