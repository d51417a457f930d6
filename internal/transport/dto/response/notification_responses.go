package response

type NotificationResponse struct {
	NotificationId string `json:"notification_id"`
	UserId         string `json:"user_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	ArticleId      string `json:"article_id,omitempty"`
	RelatedUserId  string `json:"related_user_id,omitempty"`
	ActionUrl      string `json:"action_url,omitempty"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
	ReadAt         string `json:"read_at,omitempty"`
}
