package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders seven text inputs (name, email, password, password confirmation,
// height, weight and goal) and dispatches an async registration command on
// form submission. On success a [RegisterResult] message is produced; the
// model then resets the form and navigates back to the menu, passing a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with seven pre-configured text
// inputs. The name field receives focus immediately; the password fields use
// masked echo.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 7)

	fields[0] = textinput.New()
	fields[0].Placeholder = "name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 64
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "height, cm"
	fields[4].Width = 40

	fields[5] = textinput.New()
	fields[5].Placeholder = "weight, kg"
	fields[5].Width = 40

	fields[6] = textinput.New()
	fields[6].Placeholder = "goal (e.g. lose weight)"
	fields[6].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] — clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the menu.
//   - esc              — cancels and navigates back to the menu.
//   - tab              — moves focus to the next input.
//   - shift+tab        — moves focus to the previous input.
//   - enter            — validates inputs (passwords must match; height and
//     weight must be positive numbers) and dispatches the async command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Email: result.Email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			registration, err := m.collectForm()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(registration)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a
// two-column table with all seven input fields, a submission indicator, and
// an optional error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Name             │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Height, cm       │ [")
	b.WriteString(m.inputs[4].View())
	b.WriteString("]\n")
	b.WriteString("Weight, kg       │ [")
	b.WriteString(m.inputs[5].View())
	b.WriteString("]\n")
	b.WriteString("Goal             │ [")
	b.WriteString(m.inputs[6].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTRATION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// collectForm validates the inputs and builds the registration payload.
// It returns a non-empty message string when validation fails.
func (m *RegisterModel) collectForm() (models.RegisterRequest, string) {
	name := strings.TrimSpace(m.inputs[0].Value())
	email := strings.TrimSpace(m.inputs[1].Value())
	pass := m.inputs[2].Value()
	repeat := m.inputs[3].Value()
	heightRaw := strings.TrimSpace(m.inputs[4].Value())
	weightRaw := strings.TrimSpace(m.inputs[5].Value())
	goal := strings.TrimSpace(m.inputs[6].Value())

	if name == "" || email == "" || pass == "" || repeat == "" || heightRaw == "" || weightRaw == "" {
		return models.RegisterRequest{}, "All fields except goal are required"
	}
	if pass != repeat {
		return models.RegisterRequest{}, "Passwords do not match"
	}

	height, err := strconv.ParseFloat(heightRaw, 64)
	if err != nil || height <= 0 {
		return models.RegisterRequest{}, "Height must be a positive number"
	}
	weight, err := strconv.ParseFloat(weightRaw, 64)
	if err != nil || weight <= 0 {
		return models.RegisterRequest{}, "Weight must be a positive number"
	}

	return models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: pass,
		Height:   height,
		Weight:   weight,
		Goal:     goal,
	}, ""
}

func (m *RegisterModel) cmdRegister(registration models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, registration)
		return RegisterResult{
			Err:   err,
			Email: registration.Email,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
