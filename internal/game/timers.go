package game

import (
	"time"

	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/vocab"
)

const (
	// SessionTickInterval is the period of the session countdown.
	SessionTickInterval = time.Second

	// WordTickInterval is the period of the per-word countdown.
	WordTickInterval = 10 * time.Millisecond

	// ComboBreakWindow is how long the combo-break flag stays up.
	ComboBreakWindow = time.Second

	// tickWarnSeconds is the threshold at or below which each session tick
	// emits a tick notification.
	tickWarnSeconds = 10

	comboBreakTicks = int(ComboBreakWindow / WordTickInterval)
)

// Timers identifies the two periodic tasks of one playing phase. A driver
// arms both after Start and passes Epoch back on every firing.
type Timers struct {
	Epoch uint64
}

// Timers returns the token for the live timers. The token goes stale on
// the next phase exit.
func (g *Game) Timers() Timers {
	return Timers{Epoch: g.epoch}
}

func (g *Game) cancelTimers() {
	g.epoch++
}

func (g *Game) live(epoch uint64) bool {
	return g.phase == PhasePlaying && epoch == g.epoch
}

// SessionTick advances the session countdown by one second. It reports
// whether the driver should rearm the timer.
func (g *Game) SessionTick(epoch uint64) (rearm bool) {
	if !g.live(epoch) {
		return false
	}
	s := g.state
	if s.sessionLeft <= tickWarnSeconds {
		g.emit(notify.Tick)
	}
	s.sessionLeft--
	if s.sessionLeft <= 0 {
		s.sessionLeft = 0
		g.finish(EndTimeUp)
		return false
	}
	return true
}

// WordTick advances the per-word countdown by one WordTickInterval. When the
// countdown reaches zero the word is counted as a miss, once. It reports
// whether the driver should rearm the timer.
func (g *Game) WordTick(epoch uint64) (rearm bool) {
	if !g.live(epoch) {
		return false
	}
	s := g.state
	if s.comboBreakTicks > 0 {
		s.comboBreakTicks--
	}
	if s.wordTicks < s.wordLimitTicks {
		s.wordTicks++
	}
	if s.wordTicks >= s.wordLimitTicks && !s.wordExpired {
		s.wordExpired = true
		g.log.Debug().Str("session_id", s.ID).Str("word", s.current.Input).Msg("word timed out")
		g.miss()
	}
	return g.live(epoch)
}

// wordLimitTicks converts the per-word budget into whole ticks, rounding up.
func wordLimitTicks(t vocab.Timing) int {
	n := int((t.PerWord + WordTickInterval - 1) / WordTickInterval)
	if n < 1 {
		n = 1
	}
	return n
}
