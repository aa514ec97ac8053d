package services

import (
	"encoding/json"
	"strconv"

	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/common/validation"
	"github.com/architect/learnpath/internal/learnpath/catalog"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/repository"
	"github.com/architect/learnpath/internal/learnpath/scoring"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssessmentService scores submissions and owns the attempt history.
// Scoring and the attempt write are the primary effect of a
// submission; recommendation generation runs after it as best-effort
// and can never fail the submission.
type AssessmentService struct {
	attempts *repository.AttemptRepository
	answers  *repository.QuestionAttemptRepository
	progress *repository.ProgressRepository
	engine   *RecommendationEngine
	log      *zap.Logger
}

func NewAssessmentService(db *gorm.DB, engine *RecommendationEngine, log *zap.Logger) *AssessmentService {
	return &AssessmentService{
		attempts: repository.NewAttemptRepository(db),
		answers:  repository.NewQuestionAttemptRepository(db),
		progress: repository.NewProgressRepository(db),
		engine:   engine,
		log:      log,
	}
}

const historyLimit = 50

// SubmitAssessment scores the submission against the question pool,
// appends the attempt record, then triggers recommendation
// generation. The attempt write is fatal on failure; everything after
// it is reported in the response but never propagated as an error.
func (s *AssessmentService) SubmitAssessment(userID uint, req models.SubmitAssessmentRequest) (*models.SubmitAssessmentResponse, error) {
	if verrs := validation.Validate(req); verrs != nil {
		return nil, errors.Validation("invalid submission", validation.Describe(verrs))
	}

	quizType := req.QuizType
	if quizType == "" {
		quizType = models.QuizTypeDiagnostic
	}

	result := scoring.Score(catalog.Questions(), req.Answers, req.Skipped, req.Shown)

	attempt, err := buildAttempt(userID, quizType, result)
	if err != nil {
		return nil, err
	}
	attemptID, err := s.attempts.Create(attempt)
	if err != nil {
		return nil, err
	}

	s.recordAnswerHistory(userID, req.Answers, result.Report)
	s.updateTopicRollups(userID, result.TopicMastery)

	resp := &models.SubmitAssessmentResponse{
		AttemptID:                attemptID,
		OverallScore:             result.OverallScore,
		TopicMastery:             result.TopicMastery,
		TotalQuestions:           result.TotalQuestions,
		Answered:                 result.AnsweredCount,
		CorrectCount:             result.CorrectCount,
		IncorrectCount:           result.IncorrectCount,
		SkippedCount:             result.SkippedCount,
		DetailedReport:           result.Report,
		IncorrectQuestions:       result.IncorrectQuestions,
		RecommendationsGenerated: true,
	}

	if err := s.engine.GenerateFromAssessment(userID, result.TopicMastery); err != nil {
		s.log.Error("recommendation generation failed after scored attempt",
			zap.Uint("user_id", userID),
			zap.Uint("attempt_id", attemptID),
			zap.Error(err))
		resp.RecommendationsGenerated = false
		resp.RecommendationError = err.Error()
	}

	return resp, nil
}

// AttemptHistory lists the user's attempts, newest first, summary
// fields only.
func (s *AssessmentService) AttemptHistory(userID uint) ([]*models.AttemptSummary, error) {
	attempts, err := s.attempts.ListByUser(userID, historyLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.AttemptSummary, len(attempts))
	for i, a := range attempts {
		summaries[i] = &models.AttemptSummary{
			ID:             a.ID,
			OverallScore:   a.OverallScore,
			TotalQuestions: a.TotalQuestions,
			CorrectCount:   a.CorrectCount,
			IncorrectCount: a.IncorrectCount,
			SkippedCount:   a.SkippedCount,
			QuizType:       a.QuizType,
			CreatedAt:      a.CreatedAt,
		}
	}
	return summaries, nil
}

// AttemptDetail returns one attempt with its full report, scoped to
// the owning user.
func (s *AssessmentService) AttemptDetail(userID, attemptID uint) (*models.AttemptDetailResponse, error) {
	attempt, err := s.attempts.GetByID(userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, errors.NotFound("quiz attempt")
	}

	detail := &models.AttemptDetailResponse{
		AttemptSummary: models.AttemptSummary{
			ID:             attempt.ID,
			OverallScore:   attempt.OverallScore,
			TotalQuestions: attempt.TotalQuestions,
			CorrectCount:   attempt.CorrectCount,
			IncorrectCount: attempt.IncorrectCount,
			SkippedCount:   attempt.SkippedCount,
			QuizType:       attempt.QuizType,
			CreatedAt:      attempt.CreatedAt,
		},
	}

	if err := unmarshalSnapshot(attempt.TopicMastery, &detail.TopicMastery); err != nil {
		return nil, err
	}
	if err := unmarshalSnapshot(attempt.DetailedReport, &detail.DetailedReport); err != nil {
		return nil, err
	}
	if err := unmarshalSnapshot(attempt.IncorrectQuestions, &detail.IncorrectQuestions); err != nil {
		return nil, err
	}

	return detail, nil
}

func buildAttempt(userID uint, quizType string, result scoring.Result) (*models.QuizAttempt, error) {
	masteryJSON, err := json.Marshal(result.TopicMastery)
	if err != nil {
		return nil, errors.Internal("failed to encode mastery snapshot", err.Error())
	}
	incorrectJSON, err := json.Marshal(result.IncorrectQuestions)
	if err != nil {
		return nil, errors.Internal("failed to encode incorrect questions", err.Error())
	}
	reportJSON, err := json.Marshal(result.Report)
	if err != nil {
		return nil, errors.Internal("failed to encode detailed report", err.Error())
	}

	return &models.QuizAttempt{
		UserID:             userID,
		OverallScore:       result.OverallScore,
		TotalQuestions:     result.TotalQuestions,
		CorrectCount:       result.CorrectCount,
		IncorrectCount:     result.IncorrectCount,
		SkippedCount:       result.SkippedCount,
		TopicMastery:       string(masteryJSON),
		IncorrectQuestions: string(incorrectJSON),
		DetailedReport:     string(reportJSON),
		QuizType:           quizType,
	}, nil
}

// recordAnswerHistory appends per-question correctness rows for every
// answered question. Practice-candidate exclusion reads these later;
// a failure here degrades future recommendations, not this submission.
func (s *AssessmentService) recordAnswerHistory(userID uint, answers map[string]int, report []scoring.QuestionReport) {
	var rows []*models.QuestionAttempt
	for _, entry := range report {
		if entry.Status == scoring.StatusNotAttempted {
			continue
		}
		selected := answers[strconv.FormatUint(uint64(entry.QuestionID), 10)]
		rows = append(rows, &models.QuestionAttempt{
			UserID:         userID,
			QuestionID:     entry.QuestionID,
			SelectedAnswer: selected,
			IsCorrect:      entry.Status == scoring.StatusCorrect,
		})
	}

	if err := s.answers.CreateBatch(rows); err != nil {
		s.log.Error("failed to record answer history",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}

func (s *AssessmentService) updateTopicRollups(userID uint, mastery []scoring.TopicScore) {
	for _, t := range mastery {
		if t.Total == 0 {
			continue
		}
		if err := s.progress.UpsertTopicMastery(userID, t.TopicID, t.Mastery); err != nil {
			s.log.Error("failed to update topic mastery rollup",
				zap.Uint("user_id", userID),
				zap.Uint("topic_id", t.TopicID),
				zap.Error(err))
		}
	}
}

func unmarshalSnapshot(data string, out interface{}) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return errors.Internal("failed to decode attempt snapshot", err.Error())
	}
	return nil
}
