package scoring

import (
	"testing"

	"github.com/architect/learnpath/internal/learnpath/catalog"
	"github.com/stretchr/testify/assert"
)

func testPool() []catalog.Question {
	return []catalog.Question{
		{ID: 1, TopicID: 1, Topic: "Arrays & Strings", Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Difficulty: "easy"},
		{ID: 2, TopicID: 1, Topic: "Arrays & Strings", Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Difficulty: "medium"},
		{ID: 3, TopicID: 6, Topic: "Graphs", Text: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Difficulty: "hard"},
		{ID: 4, TopicID: 6, Topic: "Graphs", Text: "q4", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3, Difficulty: "medium"},
	}
}

func TestScore_SingleCorrectAnswer(t *testing.T) {
	result := Score(testPool(), map[string]int{"1": 0}, nil, nil)

	assert.Equal(t, 1.0, result.OverallScore)
	assert.Equal(t, 1, result.AnsweredCount)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 0, result.IncorrectCount)
	assert.Equal(t, 4, result.TotalQuestions)
}

func TestScore_AllCorrect(t *testing.T) {
	answers := map[string]int{"1": 0, "2": 1, "3": 2, "4": 3}
	result := Score(testPool(), answers, nil, nil)

	assert.Equal(t, 1.0, result.OverallScore)
	assert.Equal(t, 4, result.CorrectCount)
	assert.Empty(t, result.IncorrectQuestions)

	for _, ts := range result.TopicMastery {
		assert.Equal(t, 1.0, ts.Mastery)
	}
}

func TestScore_MixedAnswers(t *testing.T) {
	answers := map[string]int{"1": 0, "2": 0, "3": 2, "4": 0}
	result := Score(testPool(), answers, nil, nil)

	assert.Equal(t, 0.5, result.OverallScore)
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 2, result.IncorrectCount)
	assert.Len(t, result.IncorrectQuestions, 2)
}

func TestScore_TopicMasteryPerTopic(t *testing.T) {
	// Arrays both correct, Graphs both wrong.
	answers := map[string]int{"1": 0, "2": 1, "3": 0, "4": 0}
	result := Score(testPool(), answers, nil, nil)

	assert.Len(t, result.TopicMastery, 2)
	// Topics come out in pool order.
	assert.Equal(t, "Arrays & Strings", result.TopicMastery[0].Topic)
	assert.Equal(t, 1.0, result.TopicMastery[0].Mastery)
	assert.Equal(t, "Graphs", result.TopicMastery[1].Topic)
	assert.Equal(t, 0.0, result.TopicMastery[1].Mastery)
	assert.Equal(t, 2, result.TopicMastery[1].Total)
}

func TestScore_SkipPrecedence(t *testing.T) {
	// Question 1 is both answered and skipped: skip wins.
	answers := map[string]int{"1": 0, "2": 1}
	result := Score(testPool(), answers, []uint{1}, nil)

	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 1, result.AnsweredCount)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 1.0, result.OverallScore)

	assert.Equal(t, StatusNotAttempted, result.Report[0].Status)
	assert.Empty(t, result.Report[0].SelectedText)
}

func TestScore_ShownRestrictsEvaluation(t *testing.T) {
	// Only questions 3 and 4 were administered; the answer for 1
	// refers to a question outside the quiz and is ignored.
	answers := map[string]int{"1": 0, "3": 2}
	result := Score(testPool(), answers, nil, []uint{3, 4})

	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 1, result.AnsweredCount)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Len(t, result.TopicMastery, 1)
	assert.Equal(t, "Graphs", result.TopicMastery[0].Topic)
}

func TestScore_InvalidAnswerIndex(t *testing.T) {
	result := Score(testPool(), map[string]int{"1": 99}, nil, nil)

	assert.Equal(t, 1, result.IncorrectCount)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, InvalidAnswerText, result.Report[0].SelectedText)
	assert.Equal(t, StatusIncorrect, result.Report[0].Status)

	assert.Len(t, result.IncorrectQuestions, 1)
	assert.Equal(t, InvalidAnswerText, result.IncorrectQuestions[0].SelectedText)
}

func TestScore_NegativeAnswerIndex(t *testing.T) {
	result := Score(testPool(), map[string]int{"2": -1}, nil, nil)

	assert.Equal(t, 1, result.IncorrectCount)
	assert.Equal(t, InvalidAnswerText, result.Report[1].SelectedText)
}

func TestScore_EmptySubmission(t *testing.T) {
	result := Score(testPool(), map[string]int{}, nil, nil)

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, 0, result.AnsweredCount)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Len(t, result.Report, 4)
	for _, r := range result.Report {
		assert.Equal(t, StatusNotAttempted, r.Status)
	}
	// Unanswered topics have zero mastery, not NaN.
	for _, ts := range result.TopicMastery {
		assert.Equal(t, 0.0, ts.Mastery)
		assert.Equal(t, 0, ts.Total)
	}
}

func TestScore_AllSkipped(t *testing.T) {
	result := Score(testPool(), map[string]int{}, []uint{1, 2, 3, 4}, nil)

	assert.Equal(t, 4, result.SkippedCount)
	assert.Equal(t, 0, result.AnsweredCount)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, 2, result.TopicMastery[0].Skipped)
}

func TestScore_UnattemptedAffectsNoCounter(t *testing.T) {
	// Question 2 neither answered nor skipped.
	answers := map[string]int{"1": 0}
	result := Score(testPool(), answers, nil, []uint{1, 2})

	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 1, result.AnsweredCount)
	assert.Equal(t, 0, result.SkippedCount)
	assert.Equal(t, StatusNotAttempted, result.Report[1].Status)
	assert.Equal(t, 1, result.TopicMastery[0].Total)
}

func TestScore_ReportCarriesAnswerTexts(t *testing.T) {
	answers := map[string]int{"3": 0}
	result := Score(testPool(), answers, nil, []uint{3})

	r := result.Report[0]
	assert.Equal(t, "c", r.CorrectText)
	assert.Equal(t, "a", r.SelectedText)
	assert.Equal(t, StatusIncorrect, r.Status)
}

func TestScore_FullCatalogPool(t *testing.T) {
	pool := catalog.Questions()
	answers := make(map[string]int)
	result := Score(pool, answers, nil, nil)

	assert.Equal(t, len(pool), result.TotalQuestions)
	assert.Len(t, result.TopicMastery, 8)
}
