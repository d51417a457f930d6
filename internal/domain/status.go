package domain

// ArticleStatus is the closed set of manuscript lifecycle states.
// Only the lifecycle engine writes it.
type ArticleStatus string

const (
	StatusDraft            ArticleStatus = "draft"
	StatusSubmitted        ArticleStatus = "submitted"
	StatusUnderReview      ArticleStatus = "under_review"
	StatusWithEditor       ArticleStatus = "with_editor"
	StatusAccepted         ArticleStatus = "accepted"
	StatusWithAdmin        ArticleStatus = "with_admin"
	StatusPublished        ArticleStatus = "published"
	StatusRejected         ArticleStatus = "rejected"
	StatusRevisionRequired ArticleStatus = "revision_required"
)

// Terminal reports whether no further transition may leave s.
// A terminal article re-enters the flow only as a new draft.
func (s ArticleStatus) Terminal() bool {
	return s == StatusPublished || s == StatusRejected
}

func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusWithEditor,
		StatusAccepted, StatusWithAdmin, StatusPublished, StatusRejected,
		StatusRevisionRequired:
		return true
	}
	return false
}

// NonTerminalStatuses returns every state a reject may start from.
func NonTerminalStatuses() []ArticleStatus {
	return []ArticleStatus{
		StatusDraft,
		StatusSubmitted,
		StatusUnderReview,
		StatusWithEditor,
		StatusAccepted,
		StatusWithAdmin,
		StatusRevisionRequired,
	}
}

type Action string

const (
	ActionSubmit                Action = "submit"
	ActionAssignAssistantEditor Action = "assign_assistant_editor"
	ActionSendToPeerReview      Action = "send_to_peer_review"
	ActionApprove               Action = "approve"
	ActionPublish               Action = "publish"
	ActionReject                Action = "reject"
	ActionRequestRevision       Action = "request_revision"
	ActionForward               Action = "forward"
)

type Role string

const (
	RoleAuthor        Role = "author"
	RoleReviewer      Role = "reviewer"
	RoleEditor        Role = "editor"
	RoleAdministrator Role = "administrator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAuthor, RoleReviewer, RoleEditor, RoleAdministrator:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentCompleted AssignmentStatus = "completed"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// NotificationType is the closed enum consumed by the notification UI.
type NotificationType string

const (
	NotificationArticleAssigned       NotificationType = "article_assigned"
	NotificationReviewSubmitted       NotificationType = "review_submitted"
	NotificationApprovalRequired      NotificationType = "approval_required"
	NotificationArticlePublished      NotificationType = "article_published"
	NotificationArticleRejected       NotificationType = "article_rejected"
	NotificationRevisionRequested     NotificationType = "revision_requested"
	NotificationCommentAdded          NotificationType = "comment_added"
	NotificationReviewRequestResponse NotificationType = "review_request_response"
	NotificationReviewRequestSent     NotificationType = "review_request_sent"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationArticleAssigned, NotificationReviewSubmitted,
		NotificationApprovalRequired, NotificationArticlePublished,
		NotificationArticleRejected, NotificationRevisionRequested,
		NotificationCommentAdded, NotificationReviewRequestResponse,
		NotificationReviewRequestSent:
		return true
	}
	return false
}
