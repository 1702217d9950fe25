package model

import (
	"strings"
	"time"
)

type TextSource string

const (
	SourceReddit TextSource = "reddit"
	SourceNews   TextSource = "news"
)

func ParseTextSource(s string) (TextSource, bool) {
	switch src := TextSource(strings.ToLower(strings.TrimSpace(s))); src {
	case SourceReddit, SourceNews:
		return src, true
	default:
		return "", false
	}
}

// Classifier labels as emitted by FinBERT-style models.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"score"`
}

// TextItem is a single post or article fetched for a ticker.
type TextItem struct {
	Source    TextSource `json:"source"`
	RawText   string     `json:"text"`
	CreatedAt time.Time  `json:"timestamp"`
}

type SentimentMention struct {
	TextItem
	Sentiment float64 `json:"sentiment"`
}

// SentimentSummary keeps Timestamps, Scores and Mentions index-aligned.
type SentimentSummary struct {
	Ticker     string             `json:"ticker"`
	Source     TextSource         `json:"source"`
	Timestamps []time.Time        `json:"timestamps"`
	Scores     []float64          `json:"scores"`
	Mentions   []SentimentMention `json:"mentions"`
}

type HeatmapCell struct {
	Ticker           string  `json:"ticker"`
	AverageSentiment float64 `json:"average_sentiment"`
	Mentions         int     `json:"mentions"`
	Positive         int     `json:"positive"`
	Negative         int     `json:"negative"`
}

type HeatmapResponse struct {
	Cells []HeatmapCell `json:"cells"`
}
