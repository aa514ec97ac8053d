package models

import (
	"time"

	"github.com/architect/learnpath/internal/learnpath/scoring"
)

// User represents a learner
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"unique" json:"email"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// Quiz type values for QuizAttempt.
const (
	QuizTypeDiagnostic = "diagnostic"
	QuizTypeTopic      = "topic"
	QuizTypeReassess   = "reassess"
)

// QuizAttempt is the durable record of one scored submission.
// Created exactly once per submission and never updated or deleted.
// The mastery, incorrect-question and report snapshots are stored as
// JSON text columns.
type QuizAttempt struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"index;not null" json:"user_id"`
	User               *User     `gorm:"foreignKey:UserID" json:"-"`
	OverallScore       float64   `json:"overall_score"`
	TotalQuestions     int       `json:"total_questions"`
	CorrectCount       int       `json:"correct_count"`
	IncorrectCount     int       `json:"incorrect_count"`
	SkippedCount       int       `json:"skipped_count"`
	TopicMastery       string    `gorm:"type:text" json:"-"` // JSON []scoring.TopicScore
	IncorrectQuestions string    `gorm:"type:text" json:"-"` // JSON []scoring.IncorrectQuestion
	DetailedReport     string    `gorm:"type:text" json:"-"` // JSON []scoring.QuestionReport
	QuizType           string    `gorm:"default:diagnostic" json:"quiz_type"`
	CreatedAt          time.Time `json:"created_at"`
}

// QuestionAttempt records per-question correctness history. The
// recommendation engine excludes ever-correctly-answered questions
// from practice candidates based on these rows.
type QuestionAttempt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	QuestionID     uint      `gorm:"index;not null" json:"question_id"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// Recommendation type values.
const (
	RecommendationTypeQuestion   = "question"
	RecommendationTypeVideo      = "video"
	RecommendationTypeTopicFocus = "topic_focus"
)

// SourceRuleBased is the only recommendation producer modeled here.
const SourceRuleBased = "rule_based"

// Recommendation is one actionable suggestion for a user. The active
// set (is_completed = false) is fully replaced on every engine run.
type Recommendation struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Type        string     `gorm:"not null" json:"type"` // question, video, topic_focus
	ContentID   *uint      `json:"content_id,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ActionURL   string     `json:"action_url"`
	Source      string     `gorm:"default:rule_based" json:"source"`
	Priority    int        `json:"priority"` // 1-5, 5 most urgent
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// SubtopicProgress tracks roadmap subtopic completion per user.
type SubtopicProgress struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	SubtopicID  uint       `gorm:"index;not null" json:"subtopic_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserProgress is the per-topic mastery rollup, refreshed on each
// scored submission that touches the topic.
type UserProgress struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	TopicID      uint       `gorm:"index;not null" json:"topic_id"`
	MasteryScore float64    `json:"mastery_score"`
	Attempts     int        `json:"attempts"`
	LastAttempt  *time.Time `json:"last_attempt,omitempty"`
}

// API Request/Response DTOs

// SubmitAssessmentRequest - answers keyed by question id (string keys
// on the wire), plus skipped ids and the ids actually shown to the
// user. Shown bounds scoring to the administered quiz.
type SubmitAssessmentRequest struct {
	Answers  map[string]int `json:"answers" binding:"required"`
	Skipped  []uint         `json:"skipped"`
	Shown    []uint         `json:"shown"`
	QuizType string         `json:"quiz_type" binding:"omitempty,oneof=diagnostic topic reassess"`
}

// SubmitAssessmentResponse - the scored result. The recommendation
// fields report the best-effort secondary effect separately from the
// scoring outcome: a submission can succeed while generation fails.
type SubmitAssessmentResponse struct {
	AttemptID                uint                        `json:"attempt_id"`
	OverallScore             float64                     `json:"overall_score"`
	TopicMastery             []scoring.TopicScore        `json:"topic_mastery"`
	TotalQuestions           int                         `json:"total_questions"`
	Answered                 int                         `json:"answered"`
	CorrectCount             int                         `json:"correct_count"`
	IncorrectCount           int                         `json:"incorrect_count"`
	SkippedCount             int                         `json:"skipped_count"`
	DetailedReport           []scoring.QuestionReport    `json:"detailed_report"`
	IncorrectQuestions       []scoring.IncorrectQuestion `json:"incorrect_questions"`
	RecommendationsGenerated bool                        `json:"recommendations_generated"`
	RecommendationError      string                      `json:"recommendation_error,omitempty"`
}

// AttemptSummary - history listing entry without the report payloads.
type AttemptSummary struct {
	ID             uint      `json:"id"`
	OverallScore   float64   `json:"overall_score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	SkippedCount   int       `json:"skipped_count"`
	QuizType       string    `json:"quiz_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// AttemptDetailResponse - one attempt with its full snapshots.
type AttemptDetailResponse struct {
	AttemptSummary
	TopicMastery       []scoring.TopicScore        `json:"topic_mastery"`
	DetailedReport     []scoring.QuestionReport    `json:"detailed_report"`
	IncorrectQuestions []scoring.IncorrectQuestion `json:"incorrect_questions"`
}

// TopicProgress - completed/total subtopic counts for one topic.
type TopicProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ToggleSubtopicRequest - pointer so an explicit false binds.
type ToggleSubtopicRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// ToggleSubtopicResponse - toggle outcome plus recomputed topic progress.
type ToggleSubtopicResponse struct {
	SubtopicID     uint          `json:"subtopic_id"`
	Completed      bool          `json:"completed"`
	Message        string        `json:"message"`
	TopicID        uint          `json:"topic_id"`
	TopicCompleted bool          `json:"topic_completed"`
	TopicProgress  TopicProgress `json:"topic_progress"`
}

// RecommendationResponse - active recommendation as served to clients.
type RecommendationResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	ContentID   *uint     `json:"content_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ActionURL   string    `json:"action_url"`
	Source      string    `json:"source"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}
