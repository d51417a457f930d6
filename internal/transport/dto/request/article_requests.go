package request

type CreateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	// filled from auth claims, never from the body
	CallerId   string `json:"-"`
	CallerRole string `json:"-"`
}

type TransitionRequest struct {
	Action       string `json:"action"`
	TargetUserId string `json:"target_user_id,omitempty"`
	Comments     string `json:"comments,omitempty"`

	ArticleId  string `json:"-"`
	CallerId   string `json:"-"`
	CallerRole string `json:"-"`
}
