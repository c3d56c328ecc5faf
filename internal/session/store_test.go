package session

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
}

func (s *StoreSuite) players(ids ...string) []model.Player {
	out := make([]model.Player, len(ids))
	for i, id := range ids {
		out[i] = model.Player{ID: model.PlayerID(id), FirstName: id}
	}
	return out
}

// Quiz session tests

func (s *StoreSuite) TestStartQuizReturnsIncreasingGenerations() {
	gen1 := s.store.StartQuiz("AAAAA")
	gen2 := s.store.StartQuiz("AAAAA")
	s.Greater(gen2, gen1)
}

func (s *StoreSuite) TestOwnsQuiz() {
	gen := s.store.StartQuiz("AAAAA")
	s.True(s.store.OwnsQuiz("AAAAA", gen))
	s.False(s.store.OwnsQuiz("AAAAA", gen+1))
	s.False(s.store.OwnsQuiz("BBBBB", gen))
}

func (s *StoreSuite) TestRestartSupersedesPreviousGeneration() {
	gen1 := s.store.StartQuiz("AAAAA")
	gen2 := s.store.StartQuiz("AAAAA")

	s.False(s.store.OwnsQuiz("AAAAA", gen1))
	s.True(s.store.OwnsQuiz("AAAAA", gen2))
	s.False(s.store.SetQuestionIndex("AAAAA", gen1, 3))
	s.True(s.store.SetQuestionIndex("AAAAA", gen2, 3))
}

func (s *StoreSuite) TestApplyAnswerScoresCorrectSubmissions() {
	gen := s.store.StartQuiz("AAAAA")
	s.Require().True(s.store.SetQuestionIndex("AAAAA", gen, 2))

	questionIndex, ok := s.store.ApplyAnswer("AAAAA", func(qi int) bool { return qi == 2 })
	s.True(ok)
	s.Equal(2, questionIndex)

	score, ok := s.store.QuizScore("AAAAA")
	s.True(ok)
	s.Equal(1, score)
}

func (s *StoreSuite) TestApplyAnswerIncorrectSubmissionLeavesScore() {
	s.store.StartQuiz("AAAAA")

	_, ok := s.store.ApplyAnswer("AAAAA", func(int) bool { return false })
	s.True(ok)

	score, _ := s.store.QuizScore("AAAAA")
	s.Equal(0, score)
}

func (s *StoreSuite) TestApplyAnswerNoSession() {
	_, ok := s.store.ApplyAnswer("AAAAA", func(int) bool { return true })
	s.False(ok)
}

func (s *StoreSuite) TestRepeatedAnswersAllCount() {
	s.store.StartQuiz("AAAAA")

	for i := 0; i < 3; i++ {
		_, ok := s.store.ApplyAnswer("AAAAA", func(int) bool { return true })
		s.True(ok)
	}

	score, _ := s.store.QuizScore("AAAAA")
	s.Equal(3, score)
}

func (s *StoreSuite) TestEndQuizOnlyForOwningGeneration() {
	gen1 := s.store.StartQuiz("AAAAA")
	gen2 := s.store.StartQuiz("AAAAA")

	// A superseded run cannot tear down the live session
	s.store.EndQuiz("AAAAA", gen1)
	s.True(s.store.OwnsQuiz("AAAAA", gen2))

	s.store.EndQuiz("AAAAA", gen2)
	s.False(s.store.OwnsQuiz("AAAAA", gen2))
	_, ok := s.store.QuizScore("AAAAA")
	s.False(ok)
}

// Hunt session tests

func (s *StoreSuite) TestStartHuntAndMutate() {
	order := s.players("a", "b")
	items := []model.HuntItem{{Token: "t1"}, {Token: "t2"}}
	s.store.StartHunt("AAAAA", order, items)

	ok := s.store.WithHunt("AAAAA", func(h *HuntSession) {
		s.False(h.Complete())
		h.Found = append(h.Found, "t1")
		h.Cursor++
	})
	s.True(ok)

	ok = s.store.WithHunt("AAAAA", func(h *HuntSession) {
		s.Equal(1, h.Cursor)
		s.Equal([]string{"t1"}, h.Found)
	})
	s.True(ok)
}

func (s *StoreSuite) TestWithHuntNoSession() {
	called := false
	ok := s.store.WithHunt("AAAAA", func(h *HuntSession) { called = true })
	s.False(ok)
	s.False(called)
}

func (s *StoreSuite) TestHuntComplete() {
	h := &HuntSession{Items: []model.HuntItem{{Token: "t1"}}, Cursor: 1}
	s.True(h.Complete())
}

func (s *StoreSuite) TestEndHunt() {
	s.store.StartHunt("AAAAA", s.players("a"), []model.HuntItem{{Token: "t1"}})
	s.store.EndHunt("AAAAA")

	ok := s.store.WithHunt("AAAAA", func(h *HuntSession) {})
	s.False(ok)
}

// Quiz and hunt sessions are independent per room

func (s *StoreSuite) TestQuizAndHuntCoexist() {
	s.store.StartQuiz("AAAAA")
	s.store.StartHunt("AAAAA", s.players("a"), []model.HuntItem{{Token: "t1"}})

	_, quizOK := s.store.QuizScore("AAAAA")
	huntOK := s.store.WithHunt("AAAAA", func(h *HuntSession) {})
	s.True(quizOK)
	s.True(huntOK)
}
