// Package session runs one player's game: it owns the score, level, lives
// and streak record and moves through the idle, active, feedback and
// game-over phases. A Session is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/kids-arcade/internal/distractor"
	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

var (
	// ErrGameOver is returned for round operations after the game ended.
	ErrGameOver = errors.New("session: game is over")

	// ErrNotStarted is returned before Start has been called.
	ErrNotStarted = errors.New("session: not started")

	// ErrWrongPhase is returned when an operation does not fit the phase.
	ErrWrongPhase = errors.New("session: wrong phase")
)

const (
	eventStart  = "start"
	eventAnswer = "answer"
	eventNext   = "next"
	eventEnd    = "end"
)

// Config configures a new session.
type Config struct {
	Table  level.Table
	Rules  Rules
	Source rng.Source
	Logger *log.Logger
	ID     string
}

// Session is a single player's game.
type Session struct {
	id         string
	rules      Rules
	policy     *level.Policy
	src        rng.Source
	logger     *log.Logger
	machine    *fsm.FSM
	state      State
	options    problem.AnswerSet
	startLevel int
}

// New creates an idle session.
func New(cfg Config) *Session {
	if cfg.Table.Len() == 0 {
		cfg.Table = level.DefaultTable()
	}
	if cfg.Source == nil {
		cfg.Source = rng.New(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	s := &Session{
		id:     cfg.ID,
		rules:  cfg.Rules,
		policy: level.NewPolicy(cfg.Table, cfg.Rules.LevelDown),
		src:    cfg.Source,
		logger: cfg.Logger.With("session", cfg.ID),
		state:  State{Level: 1, Phase: PhaseIdle},
	}

	s.machine = fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(PhaseIdle)}, Dst: string(PhaseActive)},
			{Name: eventAnswer, Src: []string{string(PhaseActive)}, Dst: string(PhaseFeedback)},
			{Name: eventNext, Src: []string{string(PhaseFeedback)}, Dst: string(PhaseActive)},
			{Name: eventEnd, Src: []string{string(PhaseActive), string(PhaseFeedback)}, Dst: string(PhaseGameOver)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.state.Phase = Phase(e.Dst)
				s.logger.Debug("phase change", "from", e.Src, "to", e.Dst, "event", e.Event)
			},
		},
	)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Rules returns the session rules.
func (s *Session) Rules() Rules {
	return s.rules
}

// Policy returns the level policy in use.
func (s *Session) Policy() *level.Policy {
	return s.policy
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return Phase(s.machine.Current())
}

// Start begins a new game in mode at startLevel, discarding any previous
// state whatever the current phase.
func (s *Session) Start(mode problem.Mode, startLevel int) error {
	startLevel = s.policy.Table().Clamp(startLevel)
	s.startLevel = startLevel

	s.state = State{
		Mode:  mode,
		Level: startLevel,
		Lives: s.rules.Lives,
		Phase: PhaseIdle,
	}
	s.machine.SetState(string(PhaseIdle))

	s.newRound(true)
	if err := s.machine.Event(context.Background(), eventStart); err != nil {
		return fmt.Errorf("session: cannot start: %w", err)
	}

	s.logger.Info("game started", "mode", mode, "level", startLevel, "lives", s.state.Lives)
	return nil
}

// Restart starts again with the last mode and starting level.
func (s *Session) Restart() error {
	return s.Start(s.state.Mode, s.startLevel)
}

// Submit evaluates raw player input for the current problem. Quiz modes
// move to feedback after every answer; sequence modes stay active until
// the last bubble is popped.
func (s *Session) Submit(raw string) (Result, error) {
	if err := s.require(PhaseActive); err != nil {
		return Result{}, err
	}

	var res Result
	if s.state.Mode.IsSequence() {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			value = -1
		}
		res = EvaluatePop(&s.state, value, s.policy, s.rules)
	} else {
		res = Evaluate(&s.state, problem.ParseAnswer(raw), s.policy, s.rules)
	}

	if res.LevelChanged {
		s.logger.Info("level changed", "direction", res.Direction, "level", res.NewLevel)
	}

	switch {
	case res.GameOver:
		if err := s.machine.Event(context.Background(), eventEnd); err != nil {
			return res, fmt.Errorf("session: cannot end game: %w", err)
		}
		s.logger.Info("game over", "score", s.state.Score, "level", s.state.Level)
	case !s.state.Mode.IsSequence() || res.RoundComplete:
		if err := s.machine.Event(context.Background(), eventAnswer); err != nil {
			return res, fmt.Errorf("session: cannot record answer: %w", err)
		}
	}
	return res, nil
}

// NextRound generates the next problem at the current level.
func (s *Session) NextRound() error {
	if err := s.require(PhaseFeedback); err != nil {
		return err
	}
	s.newRound(false)
	if err := s.machine.Event(context.Background(), eventNext); err != nil {
		return fmt.Errorf("session: cannot advance round: %w", err)
	}
	return nil
}

// Tick advances a timed round by one second. It reports whether the timer
// ran out, which ends the game. Untimed sessions and non-active phases
// ignore ticks.
func (s *Session) Tick() (bool, error) {
	if !s.rules.Timed() || s.Phase() != PhaseActive {
		return false, nil
	}

	s.state.TimeLeft--
	if s.state.TimeLeft > 0 {
		return false, nil
	}

	s.state.TimeLeft = 0
	if err := s.machine.Event(context.Background(), eventEnd); err != nil {
		return true, fmt.Errorf("session: cannot end game: %w", err)
	}
	s.logger.Info("time is up", "score", s.state.Score, "level", s.state.Level)
	return true, nil
}

// Problem returns a copy of the current problem, or nil before Start.
func (s *Session) Problem() *problem.Problem {
	if s.state.Problem == nil {
		return nil
	}
	p := *s.state.Problem
	return &p
}

// Options returns the current answer set. Sequence rounds have none.
func (s *Session) Options() problem.AnswerSet {
	out := make(problem.AnswerSet, len(s.options))
	copy(out, s.options)
	return out
}

// Remaining returns the unpopped bubbles of a sequence round in display
// order.
func (s *Session) Remaining() []int {
	if s.state.Problem == nil || s.state.Problem.Sequence == nil {
		return nil
	}
	var out []int
	for _, n := range s.state.Problem.Sequence.Numbers {
		if !s.state.Progress.Popped[n] {
			out = append(out, n)
		}
	}
	return out
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() State {
	st := s.state
	st.Phase = s.Phase()
	st.Problem = s.Problem()
	st.Progress.Popped = make(map[int]bool, len(s.state.Progress.Popped))
	for k, v := range s.state.Progress.Popped {
		st.Progress.Popped[k] = v
	}
	return st
}

// Params returns the level parameters for the current level.
func (s *Session) Params() level.Params {
	return s.policy.ParametersFor(s.state.Level)
}

func (s *Session) newRound(first bool) {
	params := s.policy.ParametersFor(s.state.Level)
	p := problem.Generate(s.state.Mode, params, s.src)

	s.state.Problem = &p
	s.state.Round++
	s.state.Progress = newProgress()
	s.options = distractor.ForProblem(p, s.rules.distractorOptions(p.Mode), s.src)

	// The clock restarts at the beginning of a game and for every new
	// bubble round.
	if first || s.state.Mode.IsSequence() {
		s.state.TimeLeft = s.rules.RoundTime(s.state.Level, first)
	}

	s.logger.Debug("new round", "round", s.state.Round, "mode", p.Mode, "level", p.Level)
}

func (s *Session) require(want Phase) error {
	current := s.Phase()
	if current == want {
		return nil
	}
	switch current {
	case PhaseGameOver:
		return ErrGameOver
	case PhaseIdle:
		return ErrNotStarted
	default:
		return fmt.Errorf("%w: %s, want %s", ErrWrongPhase, current, want)
	}
}
