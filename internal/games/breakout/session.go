package breakout

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/loop"
)

// State is a step of the session lifecycle.
type State int

const (
	StateSetup           State = iota // Building the board
	StateWaitingToLaunch              // Ball on the paddle, no ticking
	StateRunning                      // Ball in play, ticks re-arm
	StatePaused                       // Ticks suspended
	StateRoundLost                    // Ball lost, waiting for the respawn delay
	StateWon                          // All bricks destroyed
	StateGameOver                     // No lives left
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateWaitingToLaunch:
		return "waiting"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateRoundLost:
		return "round_lost"
	case StateWon:
		return "won"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateGameOver
}

// Option configures a Session.
type Option func(*Session)

// WithDisplay sets the display collaborator. Default is NopDisplay.
func WithDisplay(d Display) Option {
	return func(s *Session) {
		s.display = d
	}
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session owns every entity, the score, the lives and the tick cadence.
// All methods must be called from the scheduler's single logical thread.
type Session struct {
	cfg     config.GameConfig
	board   Board
	sched   loop.Scheduler
	display Display
	logger  *log.Logger

	world  *World
	paddle *Paddle
	ball   *Ball

	state  State
	paused bool
	lives  int
	score  int
	ticks  uint64

	// gen identifies the live tick cadence. Every armed tick captures it and
	// does nothing if it changed before the tick fired.
	gen uint64
}

// NewSession validates cfg, builds the board and leaves the session waiting
// for launch.
func NewSession(cfg config.GameConfig, sched loop.Scheduler, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if sched == nil {
		return nil, errors.New("nil scheduler")
	}

	board, err := boardFor(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		board:   board,
		sched:   sched,
		display: NopDisplay{},
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setup()
	return s, nil
}

// boardFor picks the custom pattern if there is one, else the named layout.
func boardFor(cfg config.GameConfig) (Board, error) {
	if len(cfg.Bricks.Pattern) > 0 {
		return ParseBoard("custom", cfg.Bricks.Pattern)
	}
	cols := Columns(cfg.Field.Width, cfg.Bricks.Margin, cfg.Bricks.Width)
	return BuiltinBoard(cfg.Bricks.Layout, cols)
}

// setup builds a fresh game: paddle, bricks, zero score, full lives.
func (s *Session) setup() {
	s.state = StateSetup
	s.world = NewWorld(s.cfg.Field.Width, s.cfg.Field.Height)
	s.ball = nil
	s.paused = false
	s.lives = s.cfg.Gameplay.Lives
	s.score = 0
	s.ticks = 0

	s.paddle = NewPaddle(s.world.NextID(), s.cfg.Field.Width/2, s.cfg.Paddle.Y, s.cfg.Paddle.Width, s.cfg.Paddle.Height)
	s.world.Add(s.paddle)
	s.display.DrawShape(shapeOf(s.paddle))

	bc := s.cfg.Bricks
	for r, row := range s.board.Rows {
		for c, hits := range row {
			if hits == 0 {
				continue
			}
			cx := bc.Margin + float64(c)*bc.Width + bc.Width/2
			cy := bc.Top + float64(r)*bc.Height
			brick := NewBrick(s.world.NextID(), cx, cy, bc.Width, bc.Height, hits)
			s.world.Add(brick)
			s.display.DrawShape(shapeOf(brick))
		}
	}

	s.logger.Debug("board ready", "layout", s.board.Name, "bricks", s.world.Bricks(), "lives", s.lives)
	s.waitForLaunch()
}

// waitForLaunch spawns a ball on the paddle and prompts for launch.
func (s *Session) waitForLaunch() {
	s.AddBall()
	s.updateHUD()
	s.display.SetText(LabelMessage, MessageStart)
	s.setState(StateWaitingToLaunch)
}

// AddBall destroys the current ball, if any, and spawns a new one above the
// paddle center, attached to it.
func (s *Session) AddBall() {
	if s.ball != nil {
		s.world.Remove(s.ball.ID())
		s.display.Delete(s.ball.ID())
	}
	bc := s.cfg.Ball
	s.ball = NewBall(s.world.NextID(), s.paddle.Bounds().CenterX(), bc.SpawnY, bc.Radius, bc.BaseSpeed, bc.SpeedIncrement)
	s.world.Add(s.ball)
	s.paddle.Attach(s.ball)
	s.display.DrawShape(shapeOf(s.ball))
}

// Handle dispatches one input action. It reports whether the action changed
// anything. ActionQuit is left to the host.
func (s *Session) Handle(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return s.MovePaddle(-1)
	case core.ActionRight:
		return s.MovePaddle(1)
	case core.ActionLaunch:
		return s.Launch()
	case core.ActionPause:
		return s.TogglePause()
	case core.ActionRestart:
		return s.Restart()
	default:
		return false
	}
}

// MovePaddle moves the paddle one step in dir (-1 left, +1 right).
// Moves that would leave the field are dropped. The paddle is frozen after
// the game ended.
func (s *Session) MovePaddle(dir int) bool {
	switch s.state {
	case StateWaitingToLaunch, StateRunning, StatePaused, StateRoundLost:
	default:
		return false
	}
	if !s.paddle.Move(float64(dir)*s.cfg.Paddle.Step, s.cfg.Field.Width) {
		return false
	}
	s.world.Sync(s.paddle)
	s.display.DrawShape(shapeOf(s.paddle))
	if b := s.paddle.Attached(); b != nil {
		s.world.Sync(b)
		s.display.DrawShape(shapeOf(b))
	}
	return true
}

// Launch releases the ball and starts the tick cadence.
func (s *Session) Launch() bool {
	if s.state != StateWaitingToLaunch {
		return false
	}
	s.display.ClearText(LabelMessage)
	s.paddle.Detach()
	s.setState(StateRunning)
	s.Tick()
	return true
}

// TogglePause flips between running and paused. Resuming ticks right away.
func (s *Session) TogglePause() bool {
	switch s.state {
	case StateRunning:
		s.paused = true
		s.gen++
		s.display.SetText(LabelMessage, MessagePaused)
		s.setState(StatePaused)
	case StatePaused:
		s.paused = false
		s.display.ClearText(LabelMessage)
		s.setState(StateRunning)
		s.Tick()
	default:
		return false
	}
	return true
}

// Restart rebuilds the game after it ended.
func (s *Session) Restart() bool {
	if !s.state.Terminal() {
		return false
	}
	s.gen++
	for _, id := range s.world.IDs() {
		s.display.Delete(id)
	}
	s.display.ClearText(LabelMessage)
	s.display.ClearText(LabelIndicator)
	s.logger.Info("restart")
	s.setup()
	return true
}

// Tick runs one simulation step: collisions, then the win and loss checks,
// then the move. A tick that does not end the round arms the next one.
// Outside of the running state it does nothing.
func (s *Session) Tick() {
	if s.state != StateRunning || s.paused {
		return
	}
	s.ticks++
	s.checkCollisions()

	switch {
	case s.world.Bricks() == 0:
		s.ball.Freeze()
		s.finish(StateWon, MessageWon)
	case s.ball.Bounds().Bottom >= s.cfg.Field.Height:
		s.loseLife()
	default:
		s.ball.Update(s.cfg.Field.Width)
		s.world.Sync(s.ball)
		s.display.DrawShape(shapeOf(s.ball))
		s.armTick()
	}
}

// armTick schedules the next tick and retires any tick already pending.
func (s *Session) armTick() {
	s.gen++
	gen := s.gen
	s.sched.After(s.cfg.Timing.TickInterval, func() {
		if gen != s.gen {
			return
		}
		s.Tick()
	})
}

// checkCollisions resolves the bodies overlapping the ball, then scores and
// removes the bricks that were hit.
func (s *Session) checkCollisions() {
	ids := s.world.Overlapping(s.ball.ID())
	if len(ids) == 0 {
		return
	}

	bodies := s.world.Resolve(ids)
	for _, brick := range s.ball.Collide(bodies) {
		s.score += s.cfg.Gameplay.PointsPerHit
		if brick.Destroyed() {
			s.world.Remove(brick.ID())
			s.display.Delete(brick.ID())
			s.logger.Debug("brick destroyed", "id", brick.ID(), "left", s.world.Bricks())
		} else {
			s.display.Fill(brick.ID(), brick.Color())
		}
		s.updateHUD()
	}
}

// loseLife handles the ball leaving the field through the bottom.
func (s *Session) loseLife() {
	s.ball.Freeze()
	s.lives--
	s.logger.Debug("life lost", "lives", s.lives, "score", s.score)

	if s.lives < 0 {
		s.finish(StateGameOver, MessageGameOver)
		return
	}

	s.setState(StateRoundLost)
	s.display.SetText(LabelIndicator, IndicatorLost)
	s.sched.After(s.cfg.Timing.LifeLostDelay, func() {
		s.display.ClearText(LabelIndicator)
		if s.state == StateRoundLost {
			s.waitForLaunch()
		}
	})
}

// finish enters a terminal state. No tick is armed afterwards.
func (s *Session) finish(state State, message string) {
	s.gen++
	s.display.SetText(LabelMessage, message)
	s.setState(state)
	s.logger.Info("game finished", "outcome", state, "score", s.score, "ticks", s.ticks)
}

func (s *Session) updateHUD() {
	s.display.SetText(LabelLives, fmt.Sprintf("Lives: %d", s.lives))
	s.display.SetText(LabelScore, fmt.Sprintf("Score: %d", s.score))
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.logger.Debug("state", "from", s.state, "to", state)
	s.state = state
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// Lives returns the remaining lives. It is -1 once the game is over.
func (s *Session) Lives() int {
	return s.lives
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of ticks run since setup.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Ball returns the current ball.
func (s *Session) Ball() *Ball {
	return s.ball
}

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle {
	return s.paddle
}

// World returns the entity registry.
func (s *Session) World() *World {
	return s.world
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}
