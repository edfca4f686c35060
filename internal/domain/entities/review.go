package entities

// Review is a customer review shown on the marketing site.
type Review struct {
	AuthorName   string `json:"author_name" mapstructure:"author_name"`
	Rating       int    `json:"rating" mapstructure:"rating"`
	Text         string `json:"text" mapstructure:"text"`
	RelativeTime string `json:"relative_time,omitempty" mapstructure:"relative_time"`
	Time         int64  `json:"time,omitempty" mapstructure:"time"`
	PhotoURL     string `json:"profile_photo_url,omitempty" mapstructure:"profile_photo_url"`
}

type ReviewSource string

const (
	ReviewSourceGoogle   ReviewSource = "google"
	ReviewSourceFallback ReviewSource = "fallback"
)

type ReviewSummary struct {
	Rating       float64      `json:"rating"`
	TotalRatings int          `json:"total_ratings"`
	Reviews      []Review     `json:"reviews"`
	Source       ReviewSource `json:"source"`
}
