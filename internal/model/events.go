package model

// EventName identifies a broadcast event. The names and payload field names
// below are the wire contract clients depend on.
type EventName string

const (
	// Quiz events
	EventPhase        EventName = "phase"
	EventQuestionData EventName = "questionData"
	EventAnswerResult EventName = "answerResult"
	EventGameStart    EventName = "gameStart"
	EventQuizEnd      EventName = "quizEnd"

	// Scavenger hunt events
	EventHuntStart    EventName = "game2Start"
	EventHuntProgress EventName = "game2Progress"
	EventHuntComplete EventName = "game2Complete"
)

// PhaseType names a timed interval of the quiz
type PhaseType string

const (
	PhaseLoading PhaseType = "LOADING"
	PhaseThink   PhaseType = "THINK"
	PhaseAnswer  PhaseType = "ANSWER"
	PhaseResult  PhaseType = "RESULT"
)

// PhaseEvent announces a timed quiz phase. Duration is in milliseconds;
// StartTime is Unix milliseconds so clients can reconstruct a local
// countdown as startTime + duration - now.
type PhaseEvent struct {
	Type             PhaseType `json:"type"`
	QuestionIndex    *int      `json:"questionIndex,omitempty"`
	Duration         int64     `json:"duration"`
	StartTime        int64     `json:"startTime"`
	ActivePlayerID   PlayerID  `json:"activePlayerId,omitempty"`
	ActivePlayerName string    `json:"activePlayerName,omitempty"`
	CorrectIndex     *int      `json:"correctIndex,omitempty"`
}

// QuestionDataEvent carries a question to render. The correct index is
// deliberately absent.
type QuestionDataEvent struct {
	QuestionText string   `json:"questionText"`
	ImageURL     string   `json:"imageUrl"`
	Answers      []string `json:"answers"`
}

// AnswerResultEvent echoes a submission against the current question
type AnswerResultEvent struct {
	CorrectIndex int `json:"correctIndex"`
	ChosenIndex  int `json:"chosenIndex"`
}

// GameStartEvent signals the end of the pre-quiz loading screen
type GameStartEvent struct{}

// QuizEndEvent carries the final score for a room's quiz run
type QuizEndEvent struct {
	Score   int  `json:"score"`
	Success bool `json:"success"`
}

// HuntStartEvent opens the scavenger hunt with the first expected scanner
type HuntStartEvent struct {
	NextPlayerID   PlayerID `json:"nextPlayerId"`
	NextPlayerName string   `json:"nextPlayerName"`
	Hint           string   `json:"hint"`
	Progress       int      `json:"progress"`
	Total          int      `json:"total"`
	Found          []string `json:"found"`
}

// HuntProgressEvent reports a validated scan and names the next scanner
type HuntProgressEvent struct {
	Found          []string `json:"found"`
	Progress       int      `json:"progress"`
	Total          int      `json:"total"`
	NextPlayerID   PlayerID `json:"nextPlayerId"`
	NextPlayerName string   `json:"nextPlayerName"`
	Hint           string   `json:"hint"`
}

// HuntCompleteEvent reports that every item has been found
type HuntCompleteEvent struct {
	Found []string `json:"found"`
	Total int      `json:"total"`
}
