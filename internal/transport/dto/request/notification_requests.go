package request

type CreateNotificationRequest struct {
	UserId        string `json:"user_id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	ArticleId     string `json:"article_id,omitempty"`
	RelatedUserId string `json:"related_user_id,omitempty"`
	ActionUrl     string `json:"action_url,omitempty"`
}

type MarkReadRequest struct {
	NotificationId string `json:"-"`
	CallerId       string `json:"-"`
}

type ListNotificationsRequest struct {
	UnreadOnly bool   `json:"-"`
	CallerId   string `json:"-"`
}
