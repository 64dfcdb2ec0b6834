package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type explorerState int

const (
	statePick explorerState = iota
	stateInspect
	stateArrayLen
)

type baseChoice struct {
	name string
	typ  retrocc.Type
}

type explorerModel struct {
	cur      retrocc.Type
	lenInput textinput.Model
	inputErr string
	choices  []baseChoice
	selected int
	sign     retrocc.CharSign
	state    explorerState
}

func newExplorerModel(sign retrocc.CharSign) *explorerModel {
	return &explorerModel{
		sign:  sign,
		state: statePick,
		choices: []baseChoice{
			{"char", retrocc.Type{types.DefaultChar(sign), retrocc.TEnd}},
			{"int", types.TypeInt},
			{"unsigned int", types.TypeUint},
			{"long", types.TypeLong},
			{"unsigned long", types.TypeUlong},
			{"float", retrocc.Type{retrocc.TFloat, retrocc.TEnd}},
			{"double", retrocc.Type{retrocc.TDouble, retrocc.TEnd}},
			{"void", types.TypeVoid},
			{"struct point", wrapStruct("point", 4)},
			{"implicit function", types.ImplicitFuncType()},
		},
	}
}

func (m *explorerModel) Init() tea.Cmd {
	return nil
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case statePick:
			return m.updatePick(msg)
		case stateInspect:
			return m.updateInspect(msg)
		case stateArrayLen:
			return m.updateArrayLen(msg)
		}
	}
	return m, nil
}

func (m *explorerModel) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.choices)-1 {
			m.selected++
		}
	case "enter":
		m.cur = types.Dup(m.choices[m.selected].typ)
		m.state = stateInspect
	}
	return m, nil
}

func (m *explorerModel) updateInspect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "p":
		old := m.cur
		m.cur = types.PointerTo(old)
		types.Free(old)

	case "a":
		ti := textinput.New()
		ti.Placeholder = "element count, 0 for []"
		ti.Prompt = "length: "
		ti.Width = 20
		ti.Focus()
		m.lenInput = ti
		m.inputErr = ""
		m.state = stateArrayLen

	case "d":
		if types.IsTypeArray(m.cur) {
			old := m.cur
			m.cur = types.ArrayToPointer(old)
			types.Free(old)
		}

	case "esc":
		types.Free(m.cur)
		m.cur = nil
		m.state = statePick
	}
	return m, nil
}

func (m *explorerModel) updateArrayLen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		count, err := strconv.ParseUint(m.lenInput.Value(), 10, 32)
		if err != nil {
			m.inputErr = "not a valid element count"
			return m, nil
		}
		old := m.cur
		m.cur = wrapArray(old, uint32(count))
		types.Free(old)
		m.state = stateInspect

	case "esc":
		m.state = stateInspect

	default:
		var cmd tea.Cmd
		m.lenInput, cmd = m.lenInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *explorerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Type Explorer"))
	fmt.Fprintf(&b, " default char: %s\n\n", m.sign)

	switch m.state {
	case statePick:
		b.WriteString("Pick a base type:\n\n")
		for i, c := range m.choices {
			line := "  " + c.name
			if i == m.selected {
				line = selectedStyle.Render("> " + c.name)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateInspect:
		m.viewInspect(&b)

	case stateArrayLen:
		fmt.Fprintf(&b, "Array of %s\n\n", typeStyle.Render(types.Render(m.cur)))
		b.WriteString(m.lenInput.View())
		b.WriteByte('\n')
		if m.inputErr != "" {
			b.WriteString(errorStyle.Render(m.inputErr))
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter wrap • esc cancel"))
	}

	return b.String()
}

func (m *explorerModel) viewInspect(b *strings.Builder) {
	fmt.Fprintf(b, "Type:  %s\n", typeStyle.Render(types.Render(m.cur)))
	fmt.Fprintf(b, "Raw:   %s\n", valueStyle.Render(types.RenderRaw(m.cur)))

	if size := types.SizeOf(m.cur); size == 0 {
		fmt.Fprintf(b, "Size:  %s\n", errorStyle.Render("unknown (incomplete type)"))
	} else {
		fmt.Fprintf(b, "Size:  %s\n", valueStyle.Render(strconv.FormatUint(uint64(size), 10)))
	}

	if !types.IsTypeVoid(m.cur) {
		fmt.Fprintf(b, "Class: %s\n", valueStyle.Render(types.CodegenClass(m.cur).String()))
	}

	if isFuncLike(m.cur) {
		fmt.Fprintf(b, "Sig:   %s\n", typeStyle.Render(types.RenderSignature("f", m.cur)))
	}

	b.WriteString("\n")
	help := "p pointer-to • a array-of • esc back • q quit"
	if types.IsTypeArray(m.cur) {
		help = "p pointer-to • a array-of • d decay • esc back • q quit"
	}
	b.WriteString(helpStyle.Render(help))
}

func isFuncLike(t retrocc.Type) bool {
	if types.IsTypeFunc(t) {
		return true
	}
	return types.IsTypePtr(t) && types.IsTypeFunc(t[1:])
}

func runExplorer(sign retrocc.CharSign) error {
	p := tea.NewProgram(newExplorerModel(sign), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
