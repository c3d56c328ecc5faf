package session

import (
	"sync"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

// QuizSession is the ephemeral state of one room's quiz run
type QuizSession struct {
	Generation    uint64
	QuestionIndex int
	Score         int
}

// HuntSession is the ephemeral state of one room's scavenger hunt.
// Order[i] is the player expected to scan item Items[i]; Cursor is the
// index of the next expected scan; Found records validated item tokens
// in scan order.
type HuntSession struct {
	Order  []model.Player
	Items  []model.HuntItem
	Cursor int
	Found  []string
}

// Complete reports whether every item has been validated
func (h *HuntSession) Complete() bool {
	return h.Cursor >= len(h.Items)
}

// Store holds all ephemeral per-room game state, keyed by room code.
// Nothing here is persisted; sessions are replaced wholesale on restart
// or re-start. Every mutation happens under the store lock so a late
// answer submission can never race a question-index advance.
type Store struct {
	mu      sync.Mutex
	quizzes map[model.RoomCode]*QuizSession
	hunts   map[model.RoomCode]*HuntSession
	lastGen uint64
}

// New creates an empty session store
func New() *Store {
	return &Store{
		quizzes: make(map[model.RoomCode]*QuizSession),
		hunts:   make(map[model.RoomCode]*HuntSession),
	}
}

// StartQuiz installs a fresh quiz session for the room and returns its
// generation token. Any previous session for the room is superseded; a
// loop still running against the old generation must stop broadcasting.
func (s *Store) StartQuiz(code model.RoomCode) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastGen++
	s.quizzes[code] = &QuizSession{Generation: s.lastGen}
	return s.lastGen
}

// OwnsQuiz reports whether gen is still the live generation for the room
func (s *Store) OwnsQuiz(code model.RoomCode, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.quizzes[code]
	return ok && sess.Generation == gen
}

// SetQuestionIndex advances the current question for the room. It is a
// no-op returning false when gen has been superseded.
func (s *Store) SetQuestionIndex(code model.RoomCode, gen uint64, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.quizzes[code]
	if !ok || sess.Generation != gen {
		return false
	}
	sess.QuestionIndex = index
	return true
}

// ApplyAnswer judges a submission against the room's current question
// index and increments the score when judge reports it correct. It returns
// the question index the submission was applied to, and false when the
// room has no active quiz session. Repeated submissions are each applied
// independently; there is no per-player deduplication.
func (s *Store) ApplyAnswer(code model.RoomCode, judge func(questionIndex int) bool) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.quizzes[code]
	if !ok {
		return 0, false
	}
	if judge(sess.QuestionIndex) {
		sess.Score++
	}
	return sess.QuestionIndex, true
}

// QuizScore returns the room's accumulated score
func (s *Store) QuizScore(code model.RoomCode) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.quizzes[code]
	if !ok {
		return 0, false
	}
	return sess.Score, true
}

// EndQuiz discards the room's quiz session if gen still owns it
func (s *Store) EndQuiz(code model.RoomCode, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.quizzes[code]; ok && sess.Generation == gen {
		delete(s.quizzes, code)
	}
}

// StartHunt installs a fresh hunt session for the room, replacing any
// previous one
func (s *Store) StartHunt(code model.RoomCode, order []model.Player, items []model.HuntItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hunts[code] = &HuntSession{
		Order: order,
		Items: items,
		Found: []string{},
	}
}

// WithHunt runs fn on the room's hunt session under the store lock,
// returning false when the room has no active hunt
func (s *Store) WithHunt(code model.RoomCode, fn func(*HuntSession)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.hunts[code]
	if !ok {
		return false
	}
	fn(sess)
	return true
}

// EndHunt discards the room's hunt session
func (s *Store) EndHunt(code model.RoomCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hunts, code)
}
