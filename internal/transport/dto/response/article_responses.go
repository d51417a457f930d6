package response

type ArticleResponse struct {
	ArticleId string `json:"article_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorId  string `json:"author_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type TransitionResponse struct {
	ArticleId  string `json:"article_id"`
	Action     string `json:"action"`
	FromStatus string `json:"from_status"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"updated_at"`
}

type WorkflowEntryResponse struct {
	ArticleId  string `json:"article_id"`
	FromUserId string `json:"from_user_id"`
	ToUserId   string `json:"to_user_id,omitempty"`
	FromRole   string `json:"from_role"`
	ToRole     string `json:"to_role,omitempty"`
	Action     string `json:"action"`
	Comments   string `json:"comments,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type StatsResponse struct {
	Articles map[string]int64 `json:"articles_by_status"`
}
