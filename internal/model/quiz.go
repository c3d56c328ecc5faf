package model

// QuizQuestion is one question of the quiz content set. Content is static
// configuration; it is never mutated at runtime.
type QuizQuestion struct {
	QuestionText string   `json:"questionText"`
	ImageURL     string   `json:"imageUrl"`
	Answers      []string `json:"answers"`
	CorrectIndex int      `json:"correctIndex"`
}

// Valid reports whether the correct-answer index is within bounds
func (q QuizQuestion) Valid() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Answers)
}
