package topic

// MaxMinutes caps estimatedMinutes at one day.
const MaxMinutes = 1440

// Topic is a single study unit: a markdown lesson plus the flashcards that
// go with it. A Topic is immutable for the lifetime of a run.
type Topic struct {
	ID               string          `json:"topicId" yaml:"topicId"`
	Title            string          `json:"title" yaml:"title"`
	EstimatedMinutes int             `json:"estimatedMinutes" yaml:"estimatedMinutes"`
	LearningContent  LearningContent `json:"learningContent" yaml:"learningContent"`
	Questions        []Question      `json:"questions" yaml:"questions"`

	// SchemaVersion is the optional semver of the topic file format.
	SchemaVersion string `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
}

// LearningContent holds the lesson body and its summary bullets.
type LearningContent struct {
	Markdown  string   `json:"markdown" yaml:"markdown"`
	KeyPoints []string `json:"keyPoints" yaml:"keyPoints"`
}

// Question is one flashcard. The front face shows Question, the back face
// shows Answer.
type Question struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`

	// AnswerLanguage, when set, marks the answer as source code in that
	// language so the back face can be syntax highlighted.
	AnswerLanguage string `json:"answerLanguage,omitempty" yaml:"answerLanguage,omitempty"`
}

// DurationSeconds returns EstimatedMinutes * 60.
func (t Topic) DurationSeconds() int {
	return t.EstimatedMinutes * 60
}

// QuestionAt returns the question at index i and false when i is out of range.
func (t Topic) QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(t.Questions) {
		return Question{}, false
	}
	return t.Questions[i], true
}

// WithMinutes returns a copy of t with EstimatedMinutes replaced.
// Values outside [1, MaxMinutes] leave t unchanged.
func (t Topic) WithMinutes(minutes int) Topic {
	if minutes <= 0 || minutes > MaxMinutes {
		return t
	}
	out := t.clone()
	out.EstimatedMinutes = minutes
	return out
}

func (t Topic) clone() Topic {
	out := t
	out.LearningContent.KeyPoints = append([]string(nil), t.LearningContent.KeyPoints...)
	out.Questions = append([]Question(nil), t.Questions...)
	return out
}
