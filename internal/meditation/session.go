// Package meditation drives the guided meditation timer: four fixed phases
// advanced by one-second ticks, with audio faded in when a phase with
// audio begins and faded out when it ends.
package meditation

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Phase is one step of the guided session.
type Phase struct {
	Name     string `json:"name"`
	Seconds  int    `json:"seconds"`
	Audio    bool   `json:"audio"`
	Guidance string `json:"guidance"`
}

var phases = []Phase{
	{Name: "Body Relaxation", Seconds: 60, Guidance: "Sit comfortably, close your eyes and let each part of the body soften."},
	{Name: "Breath Awareness", Seconds: 180, Guidance: "Rest your attention on the natural flow of the breath."},
	{Name: "OM Resonance", Seconds: 300, Audio: true, Guidance: "Listen to the OM and let its vibration fill the body."},
	{Name: "Silence", Seconds: 180, Guidance: "Remain in stillness and simply be."},
}

// Plan returns a copy of the phase table.
func Plan() []Phase {
	return append([]Phase(nil), phases...)
}

// TotalSeconds is the length of a full session.
func TotalSeconds() int {
	total := 0
	for _, p := range phases {
		total += p.Seconds
	}
	return total
}

// Volume and fade timings.
const (
	TargetVolume = 0.6
	FadeSteps    = 20
	FadeDuration = 2000 * time.Millisecond
	StopFade     = 1000 * time.Millisecond
)

// Audio is the playback surface the session drives.
type Audio interface {
	Play() error
	Pause()
	SetVolume(v float64)
	SetMuted(muted bool)
}

// Sleeper waits between fade steps.
type Sleeper func(time.Duration)

// Fader steps an Audio's volume linearly.
type Fader struct {
	Audio Audio
	Steps int
	Sleep Sleeper
}

// Fade moves the volume from `from` to `to` over d in f.Steps steps. The
// last step sets `to` exactly.
func (f Fader) Fade(from, to float64, d time.Duration) {
	steps := f.Steps
	if steps <= 0 {
		steps = FadeSteps
	}
	sleep := f.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	interval := d / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		sleep(interval)
		if i == steps {
			f.Audio.SetVolume(to)
			break
		}
		f.Audio.SetVolume(from + (to-from)*float64(i)/float64(steps))
	}
}

// Status is the session's run state.
type Status string

const (
	Idle    Status = "idle"
	Running Status = "running"
)

// ErrRunning is returned by Start when a session is already in progress.
var ErrRunning = errors.New("meditation session already running")

// State is a snapshot of the session.
type State struct {
	Status         Status `json:"status"`
	PhaseIndex     int    `json:"phase_index"`
	PhaseName      string `json:"phase_name"`
	PhaseRemaining int    `json:"phase_remaining"`
	TotalRemaining int    `json:"total_remaining"`
	Playing        bool   `json:"playing"`
	Muted          bool   `json:"muted"`
	// AudioError is the last playback failure since Start.
	AudioError string `json:"audio_error,omitempty"`
}

// Session is the meditation state machine. It is safe for concurrent use;
// audio fades run while the session lock is held.
type Session struct {
	mu    sync.Mutex
	audio Audio
	fader Fader

	status    Status
	phase     int
	remaining int
	playing   bool
	muted     bool
	audioErr  error
}

// Option configures a Session.
type Option func(*Session)

// WithSleeper replaces time.Sleep in fades.
func WithSleeper(s Sleeper) Option {
	return func(sess *Session) { sess.fader.Sleep = s }
}

// NewSession returns an idle session driving a.
func NewSession(a Audio, opts ...Option) *Session {
	s := &Session{
		audio:     a,
		fader:     Fader{Audio: a, Steps: FadeSteps, Sleep: time.Sleep},
		status:    Idle,
		remaining: TotalSeconds(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start begins a session from the first phase.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Running {
		return ErrRunning
	}
	s.status = Running
	s.phase = 0
	s.remaining = TotalSeconds()
	s.audioErr = nil
	if phases[0].Audio {
		return s.fadeIn()
	}
	return nil
}

// Tick advances the session by one second and returns the new state. It is
// a no-op while idle. Reaching zero stops the session.
func (s *Session) Tick() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Running {
		return s.snapshot()
	}

	s.remaining--
	if s.remaining <= 0 {
		s.stop()
		return s.snapshot()
	}

	prev := s.phase
	next, _ := locate(TotalSeconds() - s.remaining)
	if next != prev {
		s.phase = next
		switch {
		case phases[next].Audio && !phases[prev].Audio:
			// the session keeps running silently; callers see AudioError
			s.fadeIn()
		case !phases[next].Audio && phases[prev].Audio:
			s.fader.Fade(TargetVolume, 0, FadeDuration)
			s.audio.Pause()
			s.playing = false
		}
	}
	return s.snapshot()
}

// Stop ends the session at any point and resets it.
func (s *Session) Stop() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
	return s.snapshot()
}

// ToggleMute flips the muted flag without touching volume or playback.
func (s *Session) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	s.audio.SetMuted(s.muted)
	return s.muted
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Run ticks the session on every value from tick until it goes idle or ctx
// is done. It returns the final state.
func (s *Session) Run(ctx context.Context, tick <-chan time.Time) State {
	for {
		select {
		case <-ctx.Done():
			return s.State()
		case <-tick:
			if st := s.Tick(); st.Status == Idle {
				return st
			}
		}
	}
}

func (s *Session) fadeIn() error {
	s.audio.SetVolume(0)
	if err := s.audio.Play(); err != nil {
		s.audioErr = err
		return err
	}
	s.playing = true
	s.fader.Fade(0, TargetVolume, FadeDuration)
	return nil
}

func (s *Session) stop() {
	if s.playing {
		s.fader.Fade(TargetVolume, 0, StopFade)
	}
	s.audio.Pause()
	s.playing = false
	s.status = Idle
	s.phase = 0
	s.remaining = TotalSeconds()
}

func (s *Session) snapshot() State {
	_, left := locate(TotalSeconds() - s.remaining)
	if s.status == Idle {
		left = phases[0].Seconds
	}
	st := State{
		Status:         s.status,
		PhaseIndex:     s.phase,
		PhaseName:      phases[s.phase].Name,
		PhaseRemaining: left,
		TotalRemaining: s.remaining,
		Playing:        s.playing,
		Muted:          s.muted,
	}
	if s.audioErr != nil {
		st.AudioError = s.audioErr.Error()
	}
	return st
}

// locate walks the phase table and returns the phase containing elapsed
// seconds and the seconds left in it.
func locate(elapsed int) (int, int) {
	acc := 0
	for i, p := range phases {
		acc += p.Seconds
		if elapsed < acc {
			return i, acc - elapsed
		}
	}
	return len(phases) - 1, 0
}
