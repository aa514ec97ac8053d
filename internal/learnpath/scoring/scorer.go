package scoring

import (
	"strconv"

	"github.com/architect/learnpath/internal/learnpath/catalog"
)

// Answer status values in the detailed report.
const (
	StatusCorrect      = "correct"
	StatusIncorrect    = "incorrect"
	StatusNotAttempted = "not_attempted"
)

// InvalidAnswerText is recorded when a submitted option index is out
// of range for the question. Bad input degrades that one entry, it
// never fails the submission.
const InvalidAnswerText = "Invalid answer"

// TopicScore aggregates per-topic counters for one scored quiz.
// Total counts answered (non-skipped) questions only.
type TopicScore struct {
	Topic   string  `json:"topic"`
	TopicID uint    `json:"topic_id"`
	Mastery float64 `json:"mastery"`
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Skipped int     `json:"skipped"`
}

// QuestionReport is one entry of the question-by-question report.
type QuestionReport struct {
	QuestionID   uint   `json:"question_id"`
	Topic        string `json:"topic"`
	Text         string `json:"text"`
	Status       string `json:"status"`
	CorrectText  string `json:"correct_text"`
	SelectedText string `json:"selected_text,omitempty"`
}

// IncorrectQuestion is the compact review entry for a wrong answer.
type IncorrectQuestion struct {
	QuestionID   uint   `json:"question_id"`
	Topic        string `json:"topic"`
	Text         string `json:"text"`
	SelectedText string `json:"selected_text"`
	CorrectText  string `json:"correct_text"`
}

// Result is the full outcome of scoring one submission.
type Result struct {
	OverallScore       float64             `json:"overall_score"`
	TopicMastery       []TopicScore        `json:"topic_mastery"`
	TotalQuestions     int                 `json:"total_questions"`
	AnsweredCount      int                 `json:"answered"`
	CorrectCount       int                 `json:"correct_count"`
	IncorrectCount     int                 `json:"incorrect_count"`
	SkippedCount       int                 `json:"skipped_count"`
	Report             []QuestionReport    `json:"detailed_report"`
	IncorrectQuestions []IncorrectQuestion `json:"incorrect_questions"`
}

// Score evaluates a submission against the question pool. When shown
// is non-empty only those questions are evaluated, so scoring covers
// the quiz that was actually administered rather than the whole pool.
// A question id present in both skipped and answers counts as skipped.
func Score(pool []catalog.Question, answers map[string]int, skipped []uint, shown []uint) Result {
	evaluated := pool
	if len(shown) > 0 {
		shownSet := make(map[uint]bool, len(shown))
		for _, id := range shown {
			shownSet[id] = true
		}
		evaluated = nil
		for _, q := range pool {
			if shownSet[q.ID] {
				evaluated = append(evaluated, q)
			}
		}
	}

	skippedSet := make(map[uint]bool, len(skipped))
	for _, id := range skipped {
		skippedSet[id] = true
	}

	res := Result{TotalQuestions: len(evaluated)}

	// Per-topic accumulation keyed by topic name, emitted in pool order.
	byTopic := make(map[string]*TopicScore)
	var topicOrder []string

	for _, q := range evaluated {
		ts, ok := byTopic[q.Topic]
		if !ok {
			ts = &TopicScore{Topic: q.Topic, TopicID: q.TopicID}
			byTopic[q.Topic] = ts
			topicOrder = append(topicOrder, q.Topic)
		}

		report := QuestionReport{
			QuestionID:  q.ID,
			Topic:       q.Topic,
			Text:        q.Text,
			CorrectText: q.Options[q.CorrectIndex],
		}

		selected, answered := answers[strconv.FormatUint(uint64(q.ID), 10)]

		switch {
		case skippedSet[q.ID]:
			ts.Skipped++
			res.SkippedCount++
			report.Status = StatusNotAttempted

		case answered:
			ts.Total++
			res.AnsweredCount++

			if selected >= 0 && selected < len(q.Options) {
				report.SelectedText = q.Options[selected]
			} else {
				report.SelectedText = InvalidAnswerText
			}

			if selected == q.CorrectIndex {
				ts.Correct++
				res.CorrectCount++
				report.Status = StatusCorrect
			} else {
				res.IncorrectCount++
				report.Status = StatusIncorrect
				res.IncorrectQuestions = append(res.IncorrectQuestions, IncorrectQuestion{
					QuestionID:   q.ID,
					Topic:        q.Topic,
					Text:         q.Text,
					SelectedText: report.SelectedText,
					CorrectText:  report.CorrectText,
				})
			}

		default:
			// Never attempted: appears in the report, affects no counter.
			report.Status = StatusNotAttempted
		}

		res.Report = append(res.Report, report)
	}

	for _, name := range topicOrder {
		ts := byTopic[name]
		if ts.Total > 0 {
			ts.Mastery = float64(ts.Correct) / float64(ts.Total)
		}
		res.TopicMastery = append(res.TopicMastery, *ts)
	}

	if res.AnsweredCount > 0 {
		res.OverallScore = float64(res.CorrectCount) / float64(res.AnsweredCount)
	}

	return res
}
