package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionPoolIntegrity(t *testing.T) {
	questions := Questions()
	assert.Len(t, questions, 40)

	perTopic := make(map[uint]int)
	for _, q := range questions {
		perTopic[q.TopicID]++
		assert.NotEmpty(t, q.Text)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectIndex, 0)
		assert.Less(t, q.CorrectIndex, len(q.Options))
	}

	for _, topic := range Topics() {
		assert.Equal(t, 5, perTopic[topic.ID], "topic %d question count", topic.ID)
	}
}

func TestTopicsInLearningOrder(t *testing.T) {
	topics := Topics()
	assert.Len(t, topics, 8)

	for i, topic := range topics {
		assert.Equal(t, uint(i+1), topic.ID)
		assert.Equal(t, i+1, topic.Order)
	}
}

func TestNextTopic(t *testing.T) {
	next, ok := NextTopic(1)
	assert.True(t, ok)
	assert.Equal(t, "Linked Lists", next.Name)

	// The last topic has no successor.
	_, ok = NextTopic(8)
	assert.False(t, ok)
}

func TestSubtopicsHaveVideos(t *testing.T) {
	total := 0
	for _, topic := range Topics() {
		subs := SubtopicsForTopic(topic.ID)
		assert.NotEmpty(t, subs, "topic %d has no subtopics", topic.ID)
		for _, st := range subs {
			assert.NotEmpty(t, st.VideoURL, "subtopic %d has no video", st.ID)
		}
		total += len(subs)
	}
	assert.Equal(t, 51, total)
}

func TestFindSubtopic(t *testing.T) {
	st, topicID, ok := FindSubtopic(1)
	assert.True(t, ok)
	assert.Equal(t, uint(1), topicID)
	assert.Equal(t, "Array Basics", st.Name)

	_, _, ok = FindSubtopic(9999)
	assert.False(t, ok)
}

func TestMatchTopic_Exact(t *testing.T) {
	topic, ok := MatchTopic("Graphs")
	assert.True(t, ok)
	assert.Equal(t, uint(6), topic.ID)
}

func TestMatchTopic_DriftedPoolTag(t *testing.T) {
	// The question pool tags sorting questions "Sorting" while the
	// roadmap names the topic "Sorting Algorithms".
	topic, ok := MatchTopic("Sorting")
	assert.True(t, ok)
	assert.Equal(t, "Sorting Algorithms", topic.Name)
}

func TestMatchTopic_AmpersandPrefix(t *testing.T) {
	topic, ok := MatchTopic("Arrays & Hashing")
	assert.True(t, ok)
	assert.Equal(t, "Arrays & Strings", topic.Name)
}

func TestMatchTopic_Substring(t *testing.T) {
	topic, ok := MatchTopic("Linked")
	assert.True(t, ok)
	assert.Equal(t, "Linked Lists", topic.Name)
}

func TestMatchTopic_ExactWinsOverPartial(t *testing.T) {
	topic, ok := MatchTopic("Dynamic Programming")
	assert.True(t, ok)
	assert.Equal(t, uint(8), topic.ID)
}

func TestMatchTopic_NoMatch(t *testing.T) {
	_, ok := MatchTopic("Quantum Computing")
	assert.False(t, ok)

	_, ok = MatchTopic("")
	assert.False(t, ok)

	_, ok = MatchTopic("   ")
	assert.False(t, ok)
}

func TestVideoForTopic(t *testing.T) {
	video, ok := VideoForTopic("Graphs")
	assert.True(t, ok)
	assert.NotEmpty(t, video.Title)
	assert.NotEmpty(t, video.URL)
}

func TestVideoForTopic_PartialMatch(t *testing.T) {
	exact, ok := VideoForTopic("Arrays & Strings")
	assert.True(t, ok)

	// A drifted name resolves to the same entry every run.
	partial, ok2 := VideoForTopic("Arrays")
	assert.True(t, ok2)
	assert.Equal(t, exact.URL, partial.URL)
}

func TestVideoForTopic_NoMatch(t *testing.T) {
	_, ok := VideoForTopic("Knot Theory")
	assert.False(t, ok)
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(1)
	assert.True(t, ok)
	assert.Equal(t, uint(1), q.TopicID)

	_, ok = QuestionByID(999)
	assert.False(t, ok)
}

func TestQuestionsForTopic(t *testing.T) {
	questions := QuestionsForTopic(6)
	assert.Len(t, questions, 5)
	for _, q := range questions {
		assert.Equal(t, "Graphs", q.Topic)
	}

	assert.Empty(t, QuestionsForTopic(99))
}
