package models

// Sentiment classifies the emotional tone of a headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Bias labels the editorial lean of an item. Every item is currently
// tagged center; real classification is a future concern.
type Bias string

const BiasCenter Bias = "center"

// NewsItem is the canonical, presentation-agnostic representation of one
// news story. Items are built fresh for every request and never persisted.
type NewsItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Image     string    `json:"image"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	Category  string    `json:"category"`
	Source    string    `json:"source"`
	Timestamp string    `json:"timestamp"`
	Sentiment Sentiment `json:"sentiment"`
	Bias      Bias      `json:"bias"`
	Link      string    `json:"link,omitempty"`
}
