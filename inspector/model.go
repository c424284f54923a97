// Package inspector is a terminal debugger for the video and backup
// cores: a live register table and interrupt log driven by bubbletea,
// in the style of newhook-6502's monitor.
package inspector

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.design/x/clipboard"
	"golang.org/x/term"

	"github.com/nullrouted/tinyadvance/backup"
	"github.com/nullrouted/tinyadvance/video"
)

const dotsPerStep = 4 // one full dot of video.CLOCK_PER_DOT master ticks

type stepTick struct{}

func doStep() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg {
		return stepTick{}
	})
}

// Model is the inspector's bubbletea model: a video.Lcd and backup.Flash
// stepped from a SyntheticClock, with a log of the 12 most recent
// interrupts.
type Model struct {
	lcd   *video.Lcd
	flash *backup.Flash
	clock *SyntheticClock

	paused bool
	width  int
	height int
	events []string
	clipOK bool
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1).
			Width(40)

	logStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#43BF6D")).
			Padding(1).
			Width(40)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9DCCF"))
)

// NewModel constructs an inspector around a fresh video core and the
// given flash chip size (in bytes), querying the real terminal size up
// front so the first render is sized correctly even before bubbletea's
// own WindowSizeMsg arrives.
func NewModel(flashSize int) *Model {
	m := &Model{
		lcd:   video.New(),
		flash: backup.New(flashSize),
		clock: &SyntheticClock{},
	}

	if w, h, err := term.GetSize(0); err == nil {
		m.width, m.height = w, h
	}

	if err := clipboard.Init(); err == nil {
		m.clipOK = true
	}

	return m
}

func (m *Model) SetInterrupt(kind video.InterruptKind) {
	m.events = append(m.events, fmt.Sprintf("line %3d: %s", m.lcd.Line(), kind))
	if len(m.events) > 12 {
		m.events = m.events[len(m.events)-12:]
	}
}

func (m *Model) Init() tea.Cmd {
	return doStep()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTick:
		if !m.paused {
			m.clock.Advance(dotsPerStep * 64)
			m.lcd.Tick(m.clock.Now(), m)
		}
		return m, doStep()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		case "s":
			if m.paused {
				m.clock.Advance(dotsPerStep)
				m.lcd.Tick(m.clock.Now(), m)
			}
		case "c":
			if m.clipOK {
				clipboard.Write(clipboard.FmtText, []byte(m.registerDump()))
			}
		}
	}
	return m, nil
}

func (m *Model) registerDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DISPCNT=%04X DISPSTAT=%04X VCOUNT=%04X\n",
		m.lcd.Read16(0x000), m.lcd.Read16(0x004), m.lcd.Read16(0x006))
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, "BG%dCNT=%04X\n", i, m.lcd.Read16(uint32(0x008+i*2)))
	}
	fmt.Fprintf(&b, "BLDCNT=%04X BLDALPHA=%04X BLDY=%04X\n",
		m.lcd.Read16(0x050), m.lcd.Read16(0x052), m.lcd.Read16(0x054))
	fmt.Fprintf(&b, "flash=%s\n", m.flash.BackupType())
	return b.String()
}

func (m *Model) View() string {
	status := "running"
	if m.paused {
		status = "paused"
	}

	header := titleStyle.Render(fmt.Sprintf("tinyadvance inspector — %s — frame %d line %d", status, m.lcd.Frame(), m.lcd.Line()))

	regs := panelStyle.Render("Registers\n\n" + m.registerDump())

	var eventsText strings.Builder
	for _, e := range m.events {
		eventsText.WriteString(e)
		eventsText.WriteString("\n")
	}
	events := logStyle.Render("Interrupts\n\n" + eventsText.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, regs, events)

	help := helpStyle.Render("p/space: pause • s: step one dot • c: copy registers • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
