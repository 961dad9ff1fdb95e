package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Mode is the top-level game mode.
type Mode int

const (
	ModeDemo Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDemo:
		return "demo"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Reason explains why a game ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfTime
	ReasonOutOfLives
)

// String returns the reason shown in the game-over dialog.
func (r Reason) String() string {
	switch r {
	case ReasonOutOfTime:
		return "out of time"
	case ReasonOutOfLives:
		return "out of lives"
	default:
		return ""
	}
}

// statusSeconds is how long a transient status message stays up.
const statusSeconds = 3

// StateMachine drives demo, play, pause, game over and the help overlay.
type StateMachine struct {
	mode          Mode
	paused        bool
	help          bool
	resumePending bool
	helpIndex     int
	reason        Reason
	duration      int
	remaining     int
	status        string
	statusTicks   int
}

// NewStateMachine starts in demo mode with the help overlay showing.
func NewStateMachine(duration int) *StateMachine {
	return &StateMachine{
		mode:      ModeDemo,
		help:      true,
		duration:  duration,
		remaining: duration,
	}
}

func (s *StateMachine) Mode() Mode            { return s.mode }
func (s *StateMachine) Paused() bool          { return s.paused }
func (s *StateMachine) HelpVisible() bool     { return s.help }
func (s *StateMachine) HelpIndex() int        { return s.helpIndex }
func (s *StateMachine) Reason() Reason        { return s.reason }
func (s *StateMachine) RemainingSeconds() int { return s.remaining }
func (s *StateMachine) Status() string        { return s.status }

// GameOverDialog reports whether the game-over dialog should be drawn.
// Help keeps priority over it.
func (s *StateMachine) GameOverDialog() bool {
	return s.mode == ModeGameOver && !s.help
}

// BackClosesHelp reports whether escape dismisses the help overlay.
// Help opened mid-game only closes with space, which also resumes play.
func (s *StateMachine) BackClosesHelp() bool {
	return s.help && s.mode == ModeDemo
}

// HandleAction applies one input action. Actions that mean nothing in the
// current mode are ignored.
func (s *StateMachine) HandleAction(a core.Action, w *World) {
	switch a {
	case core.ActionSelect:
		switch {
		case s.mode == ModeDemo || s.mode == ModeGameOver:
			w.StartNewGame()
		case s.help && s.resumePending:
			s.help = false
			s.resumePending = false
			s.setPaused(false, w)
		default:
			s.setPaused(!s.paused, w)
		}

	case core.ActionBack:
		if s.BackClosesHelp() || s.mode == ModeGameOver {
			s.enterDemo(w)
		}

	case core.ActionHelp:
		if s.help {
			return
		}
		switch s.mode {
		case ModeDemo:
			s.help = true
			s.helpIndex = 0
		case ModePlaying:
			s.help = true
			s.helpIndex = 0
			s.resumePending = true
			s.setPaused(true, w)
		}

	case core.ActionLeft:
		if s.help {
			s.helpIndex = core.Wrap(s.helpIndex-1, len(HelpScreens))
		} else if s.canMove() {
			w.player.MoveLeft()
		}

	case core.ActionRight:
		if s.help {
			s.helpIndex = core.Wrap(s.helpIndex+1, len(HelpScreens))
		} else if s.canMove() {
			w.player.MoveRight()
		}

	case core.ActionUp:
		if s.canMove() {
			w.player.MoveUp()
		}

	case core.ActionDown:
		if s.canMove() {
			w.player.MoveDown()
		}

	case core.ActionSkinNext:
		w.tracker.SetLivesIcon(w.player.NextSkin())

	case core.ActionSkinPrev:
		w.tracker.SetLivesIcon(w.player.PreviousSkin())

	case core.ActionToggleSound:
		w.sound.SetMuted(!w.sound.Muted())
		if w.sound.Muted() {
			s.setStatus("Sound off", w)
		} else {
			s.setStatus("Sound on", w)
		}

	case core.ActionDebug:
		w.logDebugReadout()
	}
}

func (s *StateMachine) canMove() bool {
	return s.mode == ModePlaying && !s.paused && !s.help
}

// Update recomputes the timer and latches game over.
func (s *StateMachine) Update(w *World) {
	if s.statusTicks > 0 {
		s.statusTicks--
		if s.statusTicks == 0 {
			s.status = ""
		}
	}

	if s.paused {
		return
	}

	s.remaining = max(0, s.duration-w.stopwatch.ElapsedSeconds())

	if s.mode != ModePlaying {
		return
	}
	switch {
	case w.tracker.Lives() == 0:
		s.gameOver(ReasonOutOfLives, w)
	case s.remaining <= 0:
		s.gameOver(ReasonOutOfTime, w)
	}
}

func (s *StateMachine) gameOver(r Reason, w *World) {
	s.mode = ModeGameOver
	s.reason = r
	s.setPaused(true, w)
	s.setStatus("Game over: "+r.String(), w)
	w.sound.Play(SoundGameOver)
	w.logger.Debug("game over", "reason", r, "score", w.tracker.Score()+w.tracker.Pending())
}

// begin switches into a fresh Playing round.
func (s *StateMachine) begin() {
	s.mode = ModePlaying
	s.paused = false
	s.help = false
	s.resumePending = false
	s.reason = ReasonNone
	s.remaining = s.duration
	s.status = ""
	s.statusTicks = 0
}

func (s *StateMachine) enterDemo(w *World) {
	s.mode = ModeDemo
	s.help = false
	s.resumePending = false
	s.reason = ReasonNone
	s.setPaused(false, w)
	s.setStatus("Press space to play, h for help", w)
}

// setPaused keeps the stopwatch in step with the pause flag.
func (s *StateMachine) setPaused(paused bool, w *World) {
	s.paused = paused
	if paused {
		w.stopwatch.Stop()
	} else {
		w.stopwatch.Start()
	}
}

func (s *StateMachine) setStatus(msg string, w *World) {
	s.status = msg
	s.statusTicks = statusSeconds * w.tickRate
}
