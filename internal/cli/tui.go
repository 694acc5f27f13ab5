package cli

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdant-cli/verdant/internal/chime"
	"github.com/verdant-cli/verdant/pkg/plant"
	"github.com/verdant-cli/verdant/pkg/session"
	"github.com/verdant-cli/verdant/pkg/timer"
)

// tickMsg carries the wall clock into Update.
type tickMsg time.Time

const tickInterval = 250 * time.Millisecond

// growModel is the bubbletea model for an interactive session. It owns
// the timer, the plant being grown, and the session record; the plant's
// age is the study phase's progress.
type growModel struct {
	cfg       Config
	kinds     []plant.Kind
	tmr       *timer.Timer
	plant     *plant.Plant
	rec       *session.Record
	store     *session.FileStore
	bell      *chime.Player
	plantsDir string

	saved    []string // drawings saved this run
	err      error
	quitting bool
}

func newGrowModel(cfg Config, store *session.FileStore, bell *chime.Player, plantsDir string) (growModel, error) {
	kinds, err := cfg.EnabledKinds()
	if err != nil {
		return growModel{}, err
	}

	m := growModel{
		cfg:   cfg,
		kinds: kinds,
		tmr: timer.New(timer.Config{
			Study:  time.Duration(cfg.StudyMinutes) * time.Minute,
			Break:  time.Duration(cfg.BreakMinutes) * time.Minute,
			Cycles: cfg.Cycles,
		}),
		store:     store,
		bell:      bell,
		plantsDir: plantsDir,
	}

	now := time.Now()
	m.tmr.Start(now)
	if err := m.startStudy(now); err != nil {
		return growModel{}, err
	}
	return m, nil
}

// startStudy picks a fresh plant for the study phase that just began.
func (m *growModel) startStudy(now time.Time) error {
	kind := m.kinds[rand.IntN(len(m.kinds))]

	p, err := plant.New(kind)
	if err != nil {
		return err
	}
	study := time.Duration(m.cfg.StudyMinutes) * time.Minute
	if err := p.SetMaxAge(m.cfg.MaxAge(study)); err != nil {
		return err
	}
	if err := p.SetAge(0); err != nil {
		return err
	}

	m.plant = p
	m.rec = session.NewRecord(string(kind), study, now)
	return nil
}

// finishStudy saves the grown plant and closes the session record.
func (m *growModel) finishStudy(now time.Time) {
	path := filepath.Join(m.plantsDir, session.Key(now)+".svg")
	if err := m.plant.SetAge(1); err != nil {
		m.err = err
		return
	}
	if err := m.plant.SaveSVG(path, m.cfg.Width, m.cfg.Height); err != nil {
		m.err = err
		return
	}
	m.saved = append(m.saved, path)

	m.rec.FinishedAt = now
	m.rec.SVGPath = path
	if err := m.store.Save(m.rec); err != nil {
		m.err = err
	}
}

func (m growModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m growModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			now := time.Now()
			if m.tmr.Paused() {
				m.tmr.Resume(now)
			} else {
				m.tmr.Pause(now)
			}
		case "r":
			m.tmr.Reset()
			now := time.Now()
			m.tmr.Start(now)
			if err := m.startStudy(now); err != nil {
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		ev := m.tmr.Tick(now)

		switch ev {
		case timer.EventStudyDone:
			m.finishStudy(now)
			m.bell.StudyDone()
		case timer.EventBreakDone:
			m.bell.BreakDone()
			if err := m.startStudy(now); err != nil {
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}
		case timer.EventAllDone:
			m.bell.BreakDone()
			m.quitting = true
			return m, tea.Quit
		}

		if m.tmr.Phase() == timer.PhaseStudy {
			if err := m.plant.SetAge(m.tmr.Progress(now)); err != nil {
				m.err = err
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m growModel) View() string {
	if m.quitting {
		return ""
	}

	now := time.Now()
	var b strings.Builder

	b.WriteString(styleTitle.Render("Verdant"))
	b.WriteString("\n\n")

	clock := styleClock
	label := "Studying"
	switch m.tmr.Phase() {
	case timer.PhaseBreak:
		clock = styleBreak
		label = "On a break"
	case timer.PhaseDone:
		label = "Done"
	}
	if m.tmr.Paused() {
		label += " (paused)"
	}
	if m.tmr.Cycles() > 1 {
		label += fmt.Sprintf("  %d/%d", m.tmr.Cycle(), m.tmr.Cycles())
	}

	b.WriteString(styleLabel.Render(label))
	b.WriteString("\n")
	b.WriteString(clock.Render(formatClock(m.tmr.Remaining(now))))
	b.WriteString("\n\n")

	if m.tmr.Phase() == timer.PhaseStudy {
		b.WriteString(styleLabel.Render(fmt.Sprintf("Growing a %s", m.plant.Kind())))
		b.WriteString("\n")
		b.WriteString(growthBar(m.plant.Age(), 30))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(styleError.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(styleDim.Render("space pause  r restart  q quit"))
	b.WriteString("\n")
	return b.String()
}

// growthBar renders the plant's smoothed growth as a fixed-width bar, so
// the bar eases exactly like the drawing does.
func growthBar(age float64, width int) string {
	filled := int(plant.Smooth(age) * float64(width))
	if filled > width {
		filled = width
	}
	return styleBarFill.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", width-filled))
}

// formatClock renders a countdown, hiding hours and minutes while they
// are zero: "42", "5:07", "1:05:07".
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d", minutes, seconds)
	default:
		return fmt.Sprintf("%d", seconds)
	}
}
