// Package tui implements the interactive palette editor.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/palette"
	"github.com/jmylchreest/swatch/internal/store"
	"github.com/jmylchreest/swatch/internal/tui/components"
	"github.com/jmylchreest/swatch/internal/tui/styles"
)

// copiedFor is how long "Copied!" replaces the hex code after a copy.
const copiedFor = time.Second

// Options configures the palette editor.
type Options struct {
	Engine       *palette.Engine
	Store        *store.Store
	Clipboard    clipboard.Writer
	Exporter     export.Exporter
	ExportDir    string
	Background   string
	DefaultCount int
	Logger       hclog.Logger
}

// copiedExpiredMsg restores the hex label of a copied swatch.
type copiedExpiredMsg struct {
	seq int
}

type paletteModel struct {
	opts Options

	selected int

	adding bool
	input  textinput.Model

	copied    int // index showing "Copied!", -1 for none
	copiedSeq int

	status    string
	statusErr bool

	width  int
	height int
}

// RunPalette starts the full-window palette editor. The working palette is
// written back to the store's session when the editor exits.
func RunPalette(opts Options) error {
	m := newPaletteModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(paletteModel); ok {
		return fm.persistSession()
	}
	return nil
}

func newPaletteModel(opts Options) paletteModel {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Background == "" {
		opts.Background = string(colour.White)
	}
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = palette.DefaultCount
	}
	if opts.Exporter == nil {
		opts.Exporter = export.NewCSS()
	}

	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 10

	m := paletteModel{
		opts:   opts,
		input:  ti,
		copied: -1,
	}

	if opts.Engine.Len() == 0 {
		m.apply(palette.GenerateCmd{Count: opts.DefaultCount})
	}
	return m
}

func (m paletteModel) Init() tea.Cmd {
	return nil
}

func (m paletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case copiedExpiredMsg:
		if msg.seq == m.copiedSeq {
			m.copied = -1
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m paletteModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case " ", "g":
		m.apply(palette.GenerateCmd{Count: m.opts.DefaultCount})

	case "a":
		if m.opts.Engine.Len() >= palette.MaxSwatches {
			m.setError(fmt.Errorf("%w: maximum %d colours allowed", palette.ErrPaletteFull, palette.MaxSwatches))
			return m, nil
		}
		m.adding = true
		m.input.SetValue("")
		m.status = ""
		cmd := m.input.Focus()
		return m, cmd

	case "x", "delete", "backspace":
		if m.apply(palette.RemoveCmd{Index: m.selected}) {
			m.copied = -1
			m.clampSelection()
		}

	case "l":
		m.apply(palette.ToggleLockCmd{Index: m.selected})

	case "c", "enter":
		return m.copySelected()

	case "s":
		m.save()

	case "e":
		m.export()

	case "left", "h", "shift+tab":
		if m.selected > 0 {
			m.selected--
		}

	case "right", "tab":
		if m.selected < m.opts.Engine.Len()-1 {
			m.selected++
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		idx := int(msg.Runes[0] - '1')
		if msg.String() == "0" {
			idx = 9
		}
		if idx < m.opts.Engine.Len() {
			m.selected = idx
		}
	}

	return m, nil
}

func (m paletteModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.apply(palette.AddCmd{Color: value}) {
			m.adding = false
			m.input.Blur()
			m.selected = m.opts.Engine.Len() - 1
			if added, err := m.opts.Engine.At(m.selected); err == nil {
				m.setInfo("Added " + string(added.Color))
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply runs cmd against the engine and reports failures in the status line.
func (m *paletteModel) apply(cmd palette.Command) bool {
	if err := m.opts.Engine.Apply(cmd); err != nil {
		m.opts.Logger.Debug("command failed", "command", cmd.Name(), "error", err)
		m.setError(err)
		return false
	}
	m.opts.Logger.Debug("command applied", "command", cmd.Name(), "colours", m.opts.Engine.Len())
	m.status = ""
	return true
}

func (m paletteModel) copySelected() (tea.Model, tea.Cmd) {
	s, err := m.opts.Engine.At(m.selected)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if m.opts.Clipboard == nil {
		m.setError(fmt.Errorf("no clipboard available"))
		return m, nil
	}
	if err := m.opts.Clipboard.Copy(s.Color); err != nil {
		m.setError(err)
		return m, nil
	}

	m.copied = m.selected
	m.copiedSeq++
	seq := m.copiedSeq
	return m, tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return copiedExpiredMsg{seq: seq}
	})
}

func (m *paletteModel) save() {
	if m.opts.Store == nil {
		m.setError(fmt.Errorf("no store configured"))
		return
	}
	n, err := m.opts.Store.Append(m.opts.Engine.Swatches())
	if err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("Palette saved! (%d saved)", n))
}

func (m *paletteModel) export() {
	path, err := export.Write(m.opts.ExportDir, m.opts.Exporter, m.opts.Engine.Swatches())
	if err != nil {
		m.setError(err)
		return
	}
	m.setInfo("Exported " + path)
}

func (m paletteModel) persistSession() error {
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store.SaveSession(m.opts.Engine.Swatches())
}

func (m *paletteModel) clampSelection() {
	n := m.opts.Engine.Len()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *paletteModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *paletteModel) setInfo(s string) {
	m.status = s
	m.statusErr = false
}

func (m paletteModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "palette", fmt.Sprintf("%d/%d", m.opts.Engine.Len(), palette.MaxSwatches))
	footer := components.Footer(m.width, m.bindings())

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	body := lipgloss.JoinVertical(lipgloss.Center, m.renderSwatches(), "", m.renderStatus())

	content := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m paletteModel) bindings() []components.KeyBinding {
	if m.adding {
		return []components.KeyBinding{
			{Key: "enter", Desc: "add"},
			{Key: "esc", Desc: "cancel"},
		}
	}
	return []components.KeyBinding{
		{Key: "space", Desc: "generate"},
		{Key: "a", Desc: "add"},
		{Key: "x", Desc: "remove"},
		{Key: "l", Desc: "lock"},
		{Key: "c", Desc: "copy"},
		{Key: "s", Desc: "save"},
		{Key: "e", Desc: "export"},
		{Key: "←/→", Desc: "select"},
		{Key: "q", Desc: "quit"},
	}
}

func (m paletteModel) renderSwatches() string {
	swatches := m.opts.Engine.Swatches()
	if len(swatches) == 0 {
		return styles.MutedText.Render("Palette is empty. Press space to generate or a to add a colour.")
	}

	blockW := 14
	if m.width > 0 {
		blockW = min(max((m.width-4)/len(swatches)-2, 9), 18)
	}

	blocks := make([]string, len(swatches))
	for i, s := range swatches {
		blocks[i] = m.renderSwatch(i, s, blockW)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m paletteModel) renderSwatch(i int, s palette.Swatch, width int) string {
	rgb, err := colour.ParseHex(string(s.Color))
	if err != nil {
		return styles.ErrorText.Render(err.Error())
	}
	text := colour.ReadableText(rgb)

	contrast := "?"
	if r, err := colour.Rate(string(s.Color), m.opts.Background); err == nil {
		contrast = fmt.Sprintf("%s %.2f", styles.LevelBadge(r.Level), r.Ratio)
	}

	code := string(s.Color)
	if i == m.copied {
		code = "Copied!"
	}

	lock := " "
	if s.Locked {
		lock = "✓ locked"
	}

	inner := lipgloss.NewStyle().
		Background(lipgloss.Color(string(s.Color))).
		Foreground(lipgloss.Color(string(text.Hex()))).
		Width(width).
		Height(7).
		Align(lipgloss.Center).
		Render(strings.Join([]string{"", lock, "", contrast, code}, "\n"))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.DimGray)
	if i == m.selected {
		border = border.BorderForeground(styles.Blue)
	}

	label := styles.MutedText.Render(fmt.Sprintf("%d", i+1))
	return lipgloss.JoinVertical(lipgloss.Center, border.Render(inner), label)
}

func (m paletteModel) renderStatus() string {
	if m.adding {
		line := "Add colour: " + m.input.View()
		if m.statusErr {
			line += "\n" + styles.ErrorText.Render(m.status)
		}
		return line
	}
	if m.status == "" {
		return styles.MutedText.Render("Contrast rated against " + m.opts.Background)
	}
	if m.statusErr {
		return styles.ErrorText.Render(m.status)
	}
	return styles.SuccessText.Render(m.status)
}
