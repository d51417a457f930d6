package response

type AssignmentResponse struct {
	AssignmentId string `json:"assignment_id"`
	ArticleId    string `json:"article_id"`
	ReviewerId   string `json:"reviewer_id"`
	Status       string `json:"status"`
	AssignedAt   string `json:"assigned_at"`
}

type ReviewRequestResponse struct {
	RequestId  string `json:"request_id"`
	EditorId   string `json:"editor_id"`
	ReviewerId string `json:"reviewer_id"`
	ArticleId  string `json:"article_id,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type RespondReviewRequestResponse struct {
	RequestId          string `json:"request_id"`
	Status             string `json:"status"`
	AssignmentsCreated int    `json:"assignments_created"`
}
