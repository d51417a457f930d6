package request

type CreateAssignmentRequest struct {
	ArticleId  string `json:"article_id"`
	ReviewerId string `json:"reviewer_id"`

	CallerId   string `json:"-"`
	CallerRole string `json:"-"`
}

type SendReviewRequestRequest struct {
	ReviewerId string `json:"reviewer_id"`
	ArticleId  string `json:"article_id,omitempty"`

	CallerId   string `json:"-"`
	CallerRole string `json:"-"`
}

type RespondReviewRequestRequest struct {
	Decision string `json:"decision"`

	RequestId string `json:"-"`
	CallerId  string `json:"-"`
}
