package notification

import "time"

type Category string

const (
	CategoryOverdue    Category = "overdue"
	CategorySummary    Category = "summary"
	CategoryAnalytics  Category = "analytics"
	CategoryEngagement Category = "engagement"
)

// Notification is a farmer-scoped in-app message.
type Notification struct {
	ID        string
	FarmerID  string
	Category  Category
	Title     string
	Body      string
	Metadata  map[string]any
	IsRead    bool
	CreatedAt time.Time
}
