package ui

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrInputCanceled is returned when the user leaves the prompt with esc or
// ctrl+c.
var ErrInputCanceled = errors.New("input canceled")

// InputModel 单行输入模型：enter 提交，esc / ctrl+c 取消
type InputModel struct {
	textInput textinput.Model
	value     string
	canceled  bool
	done      bool
}

// NewInputModel 创建单行输入模型
func NewInputModel(prompt, placeholder string) *InputModel {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = styles.Placeholder
	ti.CharLimit = 0
	ti.Focus()
	return &InputModel{textInput: ti}
}

// Init 实现 tea.Model 接口
func (m *InputModel) Init() tea.Cmd { return textinput.Blink }

// Update 处理按键事件
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.value = m.textInput.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View 渲染
func (m *InputModel) View() string {
	if m.done {
		return ""
	}
	hint := DefaultStyles().Hint.Render("(enter to confirm, esc to cancel)")
	return m.textInput.View() + "\n" + hint + "\n"
}

// Result reports the submitted line and whether the prompt was canceled.
func (m *InputModel) Result() (string, bool) {
	return m.value, m.canceled
}

// ReadLine reads one line of input. On a terminal it shows a single line
// prompt; otherwise it reads up to the first newline. End of input with no
// data yields an empty line.
func ReadLine(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return readLineTTY(f, out)
	}
	return readLinePlain(in)
}

func readLineTTY(in io.Reader, out io.Writer) (string, error) {
	model := NewInputModel("Commit message: ", "leave empty for an automatic message")
	final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(*InputModel)
	if !ok {
		return "", errors.New("unexpected input model")
	}
	value, canceled := m.Result()
	if canceled {
		return "", ErrInputCanceled
	}
	return value, nil
}

func readLinePlain(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
