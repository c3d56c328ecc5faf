package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/MarinVandelet/qr-game-backend/internal/dependencies/clock"
	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/session"
)

// PassScore is the minimum score a room needs for the quiz to count as won
const PassScore = 4

// Publisher broadcasts named events to all subscribers of a room
type Publisher interface {
	Publish(roomCode model.RoomCode, event model.EventName, payload any)
}

// Timings configures the duration of each quiz phase
type Timings struct {
	GameLoading     time.Duration
	QuestionLoading time.Duration
	Settle          time.Duration
	Think           time.Duration
	Answer          time.Duration
	Result          time.Duration
}

// DefaultTimings returns the standard phase durations
func DefaultTimings() Timings {
	return Timings{
		GameLoading:     1500 * time.Millisecond,
		QuestionLoading: 800 * time.Millisecond,
		Settle:          50 * time.Millisecond,
		Think:           10 * time.Second,
		Answer:          20 * time.Second,
		Result:          5 * time.Second,
	}
}

// Controller runs the timed quiz loop for rooms and judges answer
// submissions. One goroutine per active quiz drives the phase sequence;
// a re-start supersedes the previous run via the session generation token.
type Controller struct {
	sessions  *session.Store
	publisher Publisher
	clock     clock.Clock
	questions []model.QuizQuestion
	timings   Timings
	logger    *slog.Logger
}

// NewController creates a new quiz Controller
func NewController(
	sessions *session.Store,
	publisher Publisher,
	clock clock.Clock,
	questions []model.QuizQuestion,
	timings Timings,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sessions:  sessions,
		publisher: publisher,
		clock:     clock,
		questions: questions,
		timings:   timings,
		logger:    logger.With(slog.String("component", "quiz")),
	}
}

// StartQuiz begins a quiz run for the room. The phase loop runs on its own
// goroutine, detached from the caller's request lifetime. Starting again
// while a run is in flight supersedes it: the old loop falls silent at its
// next broadcast.
func (c *Controller) StartQuiz(ctx context.Context, code model.RoomCode, players []model.Player) error {
	if len(players) == 0 {
		return model.ErrRoomEmpty
	}
	if len(c.questions) == 0 {
		return model.ErrNoQuestions
	}

	gen := c.sessions.StartQuiz(code)
	c.logger.Info("quiz started",
		slog.String("room", string(code)),
		slog.Int("players", len(players)),
		slog.Int("questions", len(c.questions)))

	go c.runQuiz(context.WithoutCancel(ctx), code, gen, players)
	return nil
}

// SubmitAnswer judges a submission against the room's current question and
// broadcasts the outcome. Submissions for a room with no active quiz are
// ignored. Every submission is judged against whatever question is current
// at the moment it arrives; there is no per-player deduplication.
func (c *Controller) SubmitAnswer(ctx context.Context, code model.RoomCode, playerID model.PlayerID, chosenIndex int) error {
	var correctIndex int
	questionIndex, ok := c.sessions.ApplyAnswer(code, func(qi int) bool {
		correctIndex = c.questions[qi].CorrectIndex
		return chosenIndex == correctIndex
	})
	if !ok {
		c.logger.Debug("answer ignored - no active quiz",
			slog.String("room", string(code)),
			slog.String("player_id", string(playerID)))
		return nil
	}

	c.logger.Info("answer submitted",
		slog.String("room", string(code)),
		slog.String("player_id", string(playerID)),
		slog.Int("question_index", questionIndex),
		slog.Int("chosen_index", chosenIndex),
		slog.Bool("correct", chosenIndex == correctIndex))

	c.publisher.Publish(code, model.EventAnswerResult, model.AnswerResultEvent{
		CorrectIndex: correctIndex,
		ChosenIndex:  chosenIndex,
	})
	return nil
}

// runQuiz drives the full phase sequence for one quiz run
func (c *Controller) runQuiz(ctx context.Context, code model.RoomCode, gen uint64, players []model.Player) {
	// Pre-game loading screen
	if !c.publishPhase(code, gen, model.PhaseEvent{
		Type:     model.PhaseLoading,
		Duration: c.timings.GameLoading.Milliseconds(),
	}) {
		return
	}
	if !c.wait(ctx, c.timings.GameLoading) {
		return
	}
	if !c.publishOwned(code, gen, model.EventGameStart, model.GameStartEvent{}) {
		return
	}

	for i, question := range c.questions {
		if !c.sessions.SetQuestionIndex(code, gen, i) {
			return
		}
		qi := i

		// Per-question loading screen, then the question itself. The short
		// settle delay lets clients render before the countdown begins.
		if !c.publishPhase(code, gen, model.PhaseEvent{
			Type:          model.PhaseLoading,
			QuestionIndex: &qi,
			Duration:      c.timings.QuestionLoading.Milliseconds(),
		}) {
			return
		}
		if !c.wait(ctx, c.timings.QuestionLoading) {
			return
		}

		if !c.publishOwned(code, gen, model.EventQuestionData, model.QuestionDataEvent{
			QuestionText: question.QuestionText,
			ImageURL:     question.ImageURL,
			Answers:      question.Answers,
		}) {
			return
		}
		if !c.wait(ctx, c.timings.Settle) {
			return
		}

		if !c.publishPhase(code, gen, model.PhaseEvent{
			Type:          model.PhaseThink,
			QuestionIndex: &qi,
			Duration:      c.timings.Think.Milliseconds(),
		}) {
			return
		}
		if !c.wait(ctx, c.timings.Think) {
			return
		}

		// Responder rotates through the roster in join order
		responder := players[i%len(players)]
		if !c.publishPhase(code, gen, model.PhaseEvent{
			Type:             model.PhaseAnswer,
			QuestionIndex:    &qi,
			Duration:         c.timings.Answer.Milliseconds(),
			ActivePlayerID:   responder.ID,
			ActivePlayerName: responder.FirstName,
		}) {
			return
		}
		if !c.wait(ctx, c.timings.Answer) {
			return
		}

		correctIndex := question.CorrectIndex
		if !c.publishPhase(code, gen, model.PhaseEvent{
			Type:          model.PhaseResult,
			QuestionIndex: &qi,
			Duration:      c.timings.Result.Milliseconds(),
			CorrectIndex:  &correctIndex,
		}) {
			return
		}
		if !c.wait(ctx, c.timings.Result) {
			return
		}
	}

	score, ok := c.sessions.QuizScore(code)
	if !ok || !c.sessions.OwnsQuiz(code, gen) {
		return
	}

	c.logger.Info("quiz finished",
		slog.String("room", string(code)),
		slog.Int("score", score),
		slog.Bool("success", score >= PassScore))

	// The session is kept around after the run ends so late submissions
	// still get an answerResult echo; a re-start replaces it wholesale.
	c.publisher.Publish(code, model.EventQuizEnd, model.QuizEndEvent{
		Score:   score,
		Success: score >= PassScore,
	})
}

// publishPhase stamps the phase with the current time and broadcasts it,
// returning false when gen has been superseded
func (c *Controller) publishPhase(code model.RoomCode, gen uint64, phase model.PhaseEvent) bool {
	phase.StartTime = c.clock.Now().UnixMilli()
	return c.publishOwned(code, gen, model.EventPhase, phase)
}

// publishOwned broadcasts only while gen is still the room's live run
func (c *Controller) publishOwned(code model.RoomCode, gen uint64, event model.EventName, payload any) bool {
	if !c.sessions.OwnsQuiz(code, gen) {
		c.logger.Debug("quiz run superseded",
			slog.String("room", string(code)),
			slog.Uint64("generation", gen))
		return false
	}
	c.publisher.Publish(code, event, payload)
	return true
}

// wait blocks for d, returning false when the context is cancelled first
func (c *Controller) wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-c.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	StartQuiz(ctx context.Context, code model.RoomCode, players []model.Player) error
	SubmitAnswer(ctx context.Context, code model.RoomCode, playerID model.PlayerID, chosenIndex int) error
}

var _ ControllerInterface = (*Controller)(nil)
