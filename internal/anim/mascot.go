package anim

import (
	"math/rand/v2"
	"sync"
	"time"

	"sakura/internal/log"
)

type Expression string

const (
	Normal    Expression = "normal"
	Happy     Expression = "happy"
	Excited   Expression = "excited"
	Concerned Expression = "concerned"
	Curious   Expression = "curious"
	Sleepy    Expression = "sleepy"
)

// ExpressionFor maps a page id to the mascot mood; unknown pages are normal.
func ExpressionFor(page string) Expression {
	switch page {
	case "dashboard":
		return Happy
	case "income":
		return Excited
	case "expenses":
		return Concerned
	case "charts":
		return Curious
	case "notes":
		return Sleepy
	default:
		return Normal
	}
}

// Face returns the eye glyphs.
func (e Expression) Face() string {
	switch e {
	case Happy:
		return "◕   ◕"
	case Excited:
		return "★   ★"
	case Concerned:
		return "°   °"
	case Curious:
		return "◉   ◉"
	case Sleepy:
		return "-   -"
	default:
		return "•   •"
	}
}

func (e Expression) Mouth() string {
	switch e {
	case Happy:
		return "𝜔"
	case Excited:
		return "ᵕ"
	default:
		return "‿"
	}
}

// Speech is the bubble shown while the mascot plays.
func (e Expression) Speech() string {
	switch e {
	case Happy:
		return "Nya~!"
	case Excited:
		return "Money!"
	case Concerned:
		return "Careful!"
	case Curious:
		return "Hmm?"
	default:
		return "Zzz..."
	}
}

type Sound string

const (
	Meow  Sound = "meow"
	Purr  Sound = "purr"
	Chirp Sound = "chirp"
)

var sounds = [...]Sound{Meow, Purr, Chirp}

type Position struct {
	X, Y float64
}

type MascotState struct {
	Expression Expression
	Hovered    bool
	Playing    bool
	Twitching  bool
	Position   Position
	// TailPhase is the tail angle in degrees, [0, 360).
	TailPhase int
}

type MascotConfig struct {
	PlayDuration time.Duration

	TwitchInterval  time.Duration
	TwitchThreshold float64
	TwitchFlash     time.Duration

	MoveInterval  time.Duration
	MoveThreshold float64
	// Bounds is the area new positions are drawn from.
	Bounds Position

	TailInterval time.Duration
	TailStep     int
}

func DefaultMascotConfig() MascotConfig {
	return MascotConfig{
		PlayDuration:    time.Second,
		TwitchInterval:  3 * time.Second,
		TwitchThreshold: 0.7,
		TwitchFlash:     300 * time.Millisecond,
		MoveInterval:    5 * time.Second,
		MoveThreshold:   0.8,
		Bounds:          Position{X: 1280, Y: 800},
		TailInterval:    50 * time.Millisecond,
		TailStep:        10,
	}
}

// Mascot is the cat's state machine. Idle behaviour only runs while it is
// mounted on a scheduler.
type Mascot struct {
	cfg MascotConfig

	mu          sync.Mutex
	logger      *log.Logger
	rng         *rand.Rand
	state       MascotState
	sched       *Scheduler
	timers      []*Timer
	playTimer   *Timer
	playGen     uint64
	twitchTimer *Timer
	twitchGen   uint64
}

func NewMascot(cfg MascotConfig, rng *rand.Rand, logger *log.Logger) *Mascot {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Mascot{
		cfg:    cfg,
		rng:    rng,
		logger: logger.WithComponent(log.ComponentMascot),
		state: MascotState{
			Expression: ExpressionFor("dashboard"),
			Position:   Position{X: cfg.Bounds.X / 2, Y: cfg.Bounds.Y / 2},
		},
	}
}

// OnPageChanged updates the expression for the page now shown.
func (m *Mascot) OnPageChanged(page string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Expression = ExpressionFor(page)
	m.logger.Debug("Page changed",
		log.FieldPage, page,
		log.FieldExpression, string(m.state.Expression))
}

func (m *Mascot) CurrentExpression() Expression {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Expression
}

func (m *Mascot) Hover(hovered bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Hovered = hovered
}

// Click makes the mascot play for the configured duration, restarting the
// countdown when it is already playing, and returns the sound it makes.
// An unmounted mascot only makes the sound.
func (m *Mascot) Click() Sound {
	m.mu.Lock()
	defer m.mu.Unlock()

	sound := sounds[m.rng.IntN(len(sounds))]
	if m.sched == nil {
		return sound
	}

	m.playGen++
	gen := m.playGen
	if m.playTimer != nil {
		m.playTimer.Stop()
	}
	m.playTimer = m.sched.After("mascot-play", m.cfg.PlayDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.playGen == gen {
			m.state.Playing = false
		}
	})
	// Nothing would end the play once the scheduler is gone.
	m.state.Playing = m.playTimer.live()
	m.logger.Debug("Mascot clicked", "sound", string(sound), "playing", m.state.Playing)
	return sound
}

func (m *Mascot) setLogger(l *log.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = l
}

// State returns a copy of the current state.
func (m *Mascot) State() MascotState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Speech returns the bubble text while playing and "" otherwise.
func (m *Mascot) Speech() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.Playing {
		return ""
	}
	return m.state.Expression.Speech()
}

func (m *Mascot) Face() string {
	return m.CurrentExpression().Face()
}

// Mount starts the idle timers on s. Mounting again moves the mascot to the
// new scheduler.
func (m *Mascot) Mount(s *Scheduler) {
	m.Unmount()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sched = s
	m.timers = []*Timer{
		s.Every("mascot-twitch", m.cfg.TwitchInterval, m.maybeTwitch),
		s.Every("mascot-move", m.cfg.MoveInterval, m.maybeMove),
		s.Every("mascot-tail", m.cfg.TailInterval, m.wagTail),
	}
}

// Unmount stops every mascot timer and clears transient flags.
func (m *Mascot) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.timers {
		t.Stop()
	}
	for _, t := range []*Timer{m.playTimer, m.twitchTimer} {
		if t != nil {
			t.Stop()
		}
	}
	m.timers, m.playTimer, m.twitchTimer, m.sched = nil, nil, nil, nil
	m.state.Playing = false
	m.state.Twitching = false
}

func (m *Mascot) maybeTwitch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sched == nil || m.rng.Float64() <= m.cfg.TwitchThreshold {
		return
	}
	m.twitchGen++
	gen := m.twitchGen
	if m.twitchTimer != nil {
		m.twitchTimer.Stop()
	}
	m.twitchTimer = m.sched.After("mascot-twitch-flash", m.cfg.TwitchFlash, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.twitchGen == gen {
			m.state.Twitching = false
		}
	})
	m.state.Twitching = m.twitchTimer.live()
}

func (m *Mascot) maybeMove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rng.Float64() <= m.cfg.MoveThreshold {
		return
	}
	m.state.Position = Position{
		X: m.rng.Float64() * m.cfg.Bounds.X,
		Y: m.rng.Float64() * m.cfg.Bounds.Y,
	}
}

func (m *Mascot) wagTail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.TailPhase = (m.state.TailPhase + m.cfg.TailStep) % 360
}
