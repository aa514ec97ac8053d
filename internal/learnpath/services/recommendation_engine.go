package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/architect/learnpath/internal/learnpath/catalog"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/repository"
	"github.com/architect/learnpath/internal/learnpath/scoring"
	"github.com/architect/learnpath/pkg/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecommendationEngine derives a user's next recommendation set from
// mastery and progress signals. Every run builds the complete next
// set in memory and commits it with one atomic replace, so the active
// set is always the output of a single run.
type RecommendationEngine struct {
	cfg       config.RecommendationConfig
	recs      *repository.RecommendationRepository
	attempts  *repository.AttemptRepository
	answers   *repository.QuestionAttemptRepository
	subtopics *repository.SubtopicProgressRepository
	rng       *rand.Rand
	log       *zap.Logger
}

// NewRecommendationEngine wires the engine over one database handle.
// A zero cfg.Seed seeds the practice-question draw from the clock;
// tests pass a fixed seed for reproducible selection.
func NewRecommendationEngine(db *gorm.DB, cfg config.RecommendationConfig, log *zap.Logger) *RecommendationEngine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RecommendationEngine{
		cfg:       cfg,
		recs:      repository.NewRecommendationRepository(db),
		attempts:  repository.NewAttemptRepository(db),
		answers:   repository.NewQuestionAttemptRepository(db),
		subtopics: repository.NewSubtopicProgressRepository(db),
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
}

// GenerateFromAssessment is the post-assessment entry point. Weak
// topics (answered at least once, mastery below the threshold) get
// practice questions; the single worst topic may additionally get a
// video; a clean result gets a progression nudge instead.
func (e *RecommendationEngine) GenerateFromAssessment(userID uint, mastery []scoring.TopicScore) error {
	set := newRecommendationSet(userID)

	var weak []scoring.TopicScore
	for _, t := range mastery {
		if t.Total > 0 && t.Mastery < e.cfg.WeakMasteryThreshold {
			weak = append(weak, t)
		}
	}

	if len(weak) == 0 {
		set.addProgression()
		return e.commit(userID, set)
	}

	// Cap at the first N weak topics in result order. Historically
	// this is list order, not severity order; callers depend on it.
	if len(weak) > e.cfg.MaxWeakTopics {
		weak = weak[:e.cfg.MaxWeakTopics]
	}

	correctIDs, err := e.answers.CorrectQuestionIDs(userID)
	if err != nil {
		return err
	}

	for _, t := range weak {
		e.addPracticeQuestions(set, t.Topic, correctIDs, e.cfg.PracticePerTopic)
	}

	if worst, ok := worstTopic(mastery); ok && worst.Mastery < e.cfg.VideoMasteryThreshold {
		set.addTopicVideo(worst.Topic)
	}

	return e.commit(userID, set)
}

// GenerateFromProgress is the subtopic-toggle entry point.
func (e *RecommendationEngine) GenerateFromProgress(userID, topicID, subtopicID uint, completed bool, progress models.TopicProgress) error {
	set := newRecommendationSet(userID)

	topicName := fmt.Sprintf("Topic %d", topicID)
	if topic, ok := catalog.TopicByID(topicID); ok {
		topicName = topic.Name
	}

	progressPct := 0.0
	if progress.Total > 0 {
		progressPct = float64(progress.Completed) / float64(progress.Total)
	}

	if !completed {
		// Undo: the subtopic still needs work, surface it again.
		if st, _, ok := catalog.FindSubtopic(subtopicID); ok {
			set.addNextSubtopic(st)
		}
		return e.commit(userID, set)
	}

	if progressPct >= 1.0 {
		e.addNextTopic(set, topicID)
		set.addTopicQuiz(topicID, topicName)
		return e.commit(userID, set)
	}

	// Topic still in progress: surface the first uncompleted subtopic.
	subtopicList := catalog.SubtopicsForTopic(topicID)
	subtopicIDs := make([]uint, len(subtopicList))
	for i, st := range subtopicList {
		subtopicIDs[i] = st.ID
	}
	completedIDs, err := e.subtopics.CompletedIDs(userID, subtopicIDs)
	if err != nil {
		return err
	}
	for _, st := range subtopicList {
		if !completedIDs[st.ID] {
			set.addNextSubtopic(st)
			break
		}
	}

	if err := e.addPracticeFromQuizHistory(set, userID, topicName); err != nil {
		return err
	}

	return e.commit(userID, set)
}

// GenerateDaily is the dashboard-triggered fallback: with no fresh
// assessment to read, it treats the topics behind the user's recent
// incorrect answers as weak and reuses the assessment path.
func (e *RecommendationEngine) GenerateDaily(userID uint) error {
	recent, err := e.answers.RecentIncorrect(userID, 20)
	if err != nil {
		return err
	}

	failures := make(map[string]int)
	var order []string
	for _, qa := range recent {
		q, ok := catalog.QuestionByID(qa.QuestionID)
		if !ok {
			continue
		}
		if _, seen := failures[q.Topic]; !seen {
			order = append(order, q.Topic)
		}
		failures[q.Topic]++
	}

	if len(failures) == 0 {
		set := newRecommendationSet(userID)
		set.addProgression()
		return e.commit(userID, set)
	}

	// Most-failed topics first; ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return failures[order[i]] > failures[order[j]]
	})

	mastery := make([]scoring.TopicScore, 0, len(order))
	for _, topic := range order {
		mastery = append(mastery, scoring.TopicScore{
			Topic:   topic,
			Mastery: 0.3, // synthetic weak signal
			Total:   failures[topic],
		})
	}

	return e.GenerateFromAssessment(userID, mastery)
}

// ActiveRecommendations returns the user's current set, best first.
func (e *RecommendationEngine) ActiveRecommendations(userID uint) ([]*models.Recommendation, error) {
	return e.recs.ActiveForUser(userID, e.cfg.ActiveLimit)
}

// CompleteRecommendation marks one recommendation done for the user.
func (e *RecommendationEngine) CompleteRecommendation(userID, recID uint) error {
	return e.recs.Complete(userID, recID)
}

func (e *RecommendationEngine) commit(userID uint, set *recommendationSet) error {
	if err := e.recs.ReplaceForUser(userID, set.items); err != nil {
		return err
	}
	e.log.Info("recommendations replaced",
		zap.Uint("user_id", userID),
		zap.Int("count", len(set.items)))
	return nil
}

// addPracticeQuestions draws up to count practice candidates for the
// named topic: pool questions the user has never answered correctly,
// selected uniformly at random. An unresolvable topic name is skipped
// without error.
func (e *RecommendationEngine) addPracticeQuestions(set *recommendationSet, topicName string, correctIDs []uint, count int) {
	topic, ok := catalog.MatchTopic(topicName)
	if !ok {
		e.log.Warn("no catalog topic for weak-topic name", zap.String("topic", topicName))
		return
	}

	answered := make(map[uint]bool, len(correctIDs))
	for _, id := range correctIDs {
		answered[id] = true
	}

	var candidates []catalog.Question
	for _, q := range catalog.QuestionsForTopic(topic.ID) {
		if !answered[q.ID] {
			candidates = append(candidates, q)
		}
	}

	if count > len(candidates) {
		count = len(candidates)
	}
	for _, idx := range e.rng.Perm(len(candidates))[:count] {
		q := candidates[idx]
		set.addPracticeQuestion(topic.ID, q, topicName)
	}
}

// addPracticeFromQuizHistory inspects the user's recent attempts and
// injects practice questions when any of them recorded weak mastery
// for the topic.
func (e *RecommendationEngine) addPracticeFromQuizHistory(set *recommendationSet, userID uint, topicName string) error {
	recent, err := e.attempts.RecentByUser(userID, e.cfg.RecentAttemptWindow)
	if err != nil {
		return err
	}

	for _, attempt := range recent {
		if attempt.TopicMastery == "" {
			continue
		}
		var mastery []scoring.TopicScore
		if err := json.Unmarshal([]byte(attempt.TopicMastery), &mastery); err != nil {
			e.log.Warn("unreadable mastery snapshot",
				zap.Uint("attempt_id", attempt.ID), zap.Error(err))
			continue
		}
		for _, tm := range mastery {
			if strings.Contains(tm.Topic, topicName) && tm.Mastery < e.cfg.WeakMasteryThreshold {
				correctIDs, err := e.answers.CorrectQuestionIDs(userID)
				if err != nil {
					return err
				}
				e.addPracticeQuestions(set, topicName, correctIDs, e.cfg.PracticePerTopic)
				return nil
			}
		}
	}
	return nil
}

// addNextTopic recommends the roadmap topic after the given one, or a
// full reassessment when the user just finished the last topic.
func (e *RecommendationEngine) addNextTopic(set *recommendationSet, topicID uint) {
	if next, ok := catalog.NextTopic(topicID); ok {
		description := next.Description
		if description == "" {
			description = fmt.Sprintf("Start learning %s", next.Name)
		}
		set.add(&models.Recommendation{
			Type:        models.RecommendationTypeTopicFocus,
			Title:       fmt.Sprintf("Next Topic: %s", next.Name),
			Description: description,
			ActionURL:   "/roadmap",
			Source:      models.SourceRuleBased,
			Priority:    5,
		})
		return
	}

	set.add(&models.Recommendation{
		Type:        models.RecommendationTypeQuestion,
		Title:       "Take Full Reassessment",
		Description: "Test your overall DSA knowledge with a complete assessment",
		ActionURL:   "/assessment?mode=reassess",
		Source:      models.SourceRuleBased,
		Priority:    5,
	})
}

// worstTopic finds the lowest-mastery topic among those with at least
// one answered question; earlier entries win ties.
func worstTopic(mastery []scoring.TopicScore) (scoring.TopicScore, bool) {
	var worst scoring.TopicScore
	found := false
	for _, t := range mastery {
		if t.Total == 0 {
			continue
		}
		if !found || t.Mastery < worst.Mastery {
			worst = t
			found = true
		}
	}
	return worst, found
}

// recommendationSet accumulates one run's output with in-run dedup:
// question recommendations are unique per (content id, type), the
// rest per action URL.
type recommendationSet struct {
	userID    uint
	items     []*models.Recommendation
	seenByKey map[string]bool
}

func newRecommendationSet(userID uint) *recommendationSet {
	return &recommendationSet{
		userID:    userID,
		seenByKey: make(map[string]bool),
	}
}

func (s *recommendationSet) add(rec *models.Recommendation) {
	key := rec.Type + "|" + rec.ActionURL
	if rec.ContentID != nil {
		key = fmt.Sprintf("%s|%d", rec.Type, *rec.ContentID)
	}
	if s.seenByKey[key] {
		return
	}
	s.seenByKey[key] = true

	rec.UserID = s.userID
	s.items = append(s.items, rec)
}

func (s *recommendationSet) addPracticeQuestion(topicID uint, q catalog.Question, topicName string) {
	contentID := q.ID
	s.add(&models.Recommendation{
		Type:      models.RecommendationTypeQuestion,
		ContentID: &contentID,
		Title:     fmt.Sprintf("Practice: %s", topicName),
		Description: fmt.Sprintf(
			"You struggled with %s. Try this %s question to reinforce your understanding.",
			topicName, q.Difficulty),
		ActionURL: fmt.Sprintf("/assessment?topic=%d", topicID),
		Source:    models.SourceRuleBased,
		Priority:  5,
	})
}

func (s *recommendationSet) addTopicVideo(topicName string) {
	video, ok := catalog.VideoForTopic(topicName)
	if !ok {
		return
	}
	s.add(&models.Recommendation{
		Type:        models.RecommendationTypeVideo,
		Title:       video.Title,
		Description: fmt.Sprintf("Watch this video to strengthen your understanding of %s.", topicName),
		ActionURL:   video.URL,
		Source:      models.SourceRuleBased,
		Priority:    3,
	})
}

func (s *recommendationSet) addNextSubtopic(st catalog.Subtopic) {
	s.add(&models.Recommendation{
		Type:        models.RecommendationTypeTopicFocus,
		Title:       fmt.Sprintf("Next: %s", st.Name),
		Description: st.Description,
		ActionURL:   "/roadmap",
		Source:      models.SourceRuleBased,
		Priority:    5,
	})
	if st.VideoURL != "" {
		s.add(&models.Recommendation{
			Type:        models.RecommendationTypeVideo,
			Title:       fmt.Sprintf("Video: %s", st.Name),
			Description: st.Description,
			ActionURL:   st.VideoURL,
			Source:      models.SourceRuleBased,
			Priority:    3,
		})
	}
}

func (s *recommendationSet) addTopicQuiz(topicID uint, topicName string) {
	s.add(&models.Recommendation{
		Type:        models.RecommendationTypeQuestion,
		Title:       fmt.Sprintf("Quiz: %s", topicName),
		Description: fmt.Sprintf("Test your %s knowledge", topicName),
		ActionURL:   fmt.Sprintf("/assessment?topic=%d", topicID),
		Source:      models.SourceRuleBased,
		Priority:    4,
	})
}

func (s *recommendationSet) addProgression() {
	s.add(&models.Recommendation{
		Type:        models.RecommendationTypeTopicFocus,
		Title:       "Continue Learning",
		Description: "Continue to the next topic in your roadmap.",
		ActionURL:   "/roadmap",
		Source:      models.SourceRuleBased,
		Priority:    2,
	})
}
