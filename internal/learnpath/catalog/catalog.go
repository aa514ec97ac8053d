package catalog

import "strings"

// Question is a quiz item from the diagnostic pool. CorrectIndex is
// 0-based into Options.
type Question struct {
	ID           uint     `json:"id"`
	TopicID      uint     `json:"topic_id"`
	Topic        string   `json:"topic"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"-"`
	Difficulty   string   `json:"difficulty"` // easy, medium, hard
}

// Topic is a roadmap topic in learning order.
type Topic struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	Prerequisites []uint `json:"prerequisites"`
}

// Subtopic is a roadmap unit within a topic, with its video resource.
type Subtopic struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

// Video is a curated resource for a whole topic.
type Video struct {
	Title string
	URL   string
}

// Questions returns the full diagnostic pool in catalog order.
func Questions() []Question {
	return questionPool
}

// QuestionsForTopic returns the pool questions tagged with the topic.
func QuestionsForTopic(topicID uint) []Question {
	var out []Question
	for _, q := range questionPool {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up a single pool question.
func QuestionByID(id uint) (Question, bool) {
	for _, q := range questionPool {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Topics returns all topics in learning order.
func Topics() []Topic {
	return topics
}

// TopicByID looks up a topic by id.
func TopicByID(id uint) (Topic, bool) {
	for _, t := range topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// NextTopic returns the topic following the given one in the roadmap,
// or false when the given topic is the last.
func NextTopic(id uint) (Topic, bool) {
	return TopicByID(id + 1)
}

// SubtopicsForTopic returns the roadmap subtopics for a topic in order.
func SubtopicsForTopic(topicID uint) []Subtopic {
	return subtopicsByTopic[topicID]
}

// FindSubtopic locates a subtopic and the topic it belongs to.
func FindSubtopic(subtopicID uint) (Subtopic, uint, bool) {
	for _, t := range topics {
		for _, st := range subtopicsByTopic[t.ID] {
			if st.ID == subtopicID {
				return st, t.ID, true
			}
		}
	}
	return Subtopic{}, 0, false
}

// MatchTopic resolves a topic from a display name. Question pool tags
// and catalog names drifted apart historically ("Sorting" vs "Sorting
// Algorithms"), so exact lookup alone is not enough. Precedence:
// exact match, then the name segment before an "&" separator as a
// prefix, then substring containment in either direction.
func MatchTopic(name string) (Topic, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Topic{}, false
	}

	for _, t := range topics {
		if t.Name == name {
			return t, true
		}
	}

	prefix := strings.TrimSpace(strings.SplitN(name, "&", 2)[0])
	if prefix != "" {
		for _, t := range topics {
			if strings.HasPrefix(t.Name, prefix) {
				return t, true
			}
		}
	}

	for _, t := range topics {
		if strings.Contains(t.Name, name) || strings.Contains(name, t.Name) {
			return t, true
		}
	}

	return Topic{}, false
}

// VideoForTopic resolves a curated topic video by name, exact first,
// then partial containment in either direction. The table is ordered
// so partial matches resolve the same way every run.
func VideoForTopic(name string) (Video, bool) {
	for _, e := range topicVideos {
		if e.Name == name {
			return e.Video, true
		}
	}
	for _, e := range topicVideos {
		if strings.Contains(name, e.Name) || strings.Contains(e.Name, name) {
			return e.Video, true
		}
	}
	return Video{}, false
}
