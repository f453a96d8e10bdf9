package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

// Screens of the logged-in program. List screens are switched with number
// hotkeys; form screens are entered from their parent list and left with esc.
const (
	screenFoodLog     = "foodlog"
	screenCatalog     = "catalog"
	screenProgress    = "progress"
	screenProfile     = "profile"
	screenAddLog      = "addlog"
	screenAddProgress = "addprogress"
	screenEditProfile = "editprofile"
)

type foodLogsLoadedMsg struct {
	entries []models.FoodLogEntry
	err     error
}

type foodsLoadedMsg struct {
	foods []models.Food
	err   error
}

type progressLoadedMsg struct {
	records []models.Progress
	err     error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type foodLogSavedMsg struct {
	log models.FoodLog
	err error
}

type progressSavedMsg struct {
	record models.Progress
	err    error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type summaryCopiedMsg struct {
	date models.Date
	err  error
}

// mainLoopModel is the Bubble Tea model of the logged-in client. It owns all
// screens of the main loop: the food-log list with daily totals, the food
// catalog, the progress list, the profile view, and the three forms that feed
// them. The model quits either on logout ('l', reported to the caller) or on
// plain quit ('q'/ctrl+c).
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen string
	logout bool

	user     models.User
	logs     []models.FoodLogEntry
	foods    []models.Food
	progress []models.Progress

	// cursor is the selected row of the active list screen.
	cursor  int
	loading bool
	status  string
	errMsg  string

	// Form state. inputs is rebuilt every time a form screen is opened;
	// pendingFood* carry the catalog selection into the add-log form.
	inputs          []textinput.Model
	focus           int
	submitting      bool
	pendingFoodID   int64
	pendingFoodName string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	user, _ := services.AuthService.CurrentUser()

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		screen:   screenFoodLog,
		user:     user,
		loading:  true,
	}
}

// Init implements [tea.Model]. Loads the food log and refreshes the profile
// in the background.
func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadFoodLogs(), m.cmdLoadProfile())
}

// Update implements [tea.Model].
func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case foodLogsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.logs = msg.entries
		m.clampCursor()
		return m, nil

	case foodsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.foods = msg.foods
		m.clampCursor()
		return m, nil

	case progressLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.progress = msg.records
		m.clampCursor()
		return m, nil

	case profileLoadedMsg:
		if msg.err == nil {
			m.user = msg.user
		}
		return m, nil

	case foodLogSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Logged %s on %s", m.pendingFoodName, msg.log.Date)
		m.screen = screenFoodLog
		m.loading = true
		return m, m.cmdLoadFoodLogs()

	case progressSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Progress for %s recorded", msg.record.Date)
		m.screen = screenProgress
		m.loading = true
		return m, m.cmdLoadProgress()

	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.user
		m.status = "Profile updated"
		m.screen = screenProfile
		return m, nil

	case summaryCopiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Summary for %s copied to clipboard", msg.date)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToForm(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.isFormScreen() {
		return m.handleFormKey(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		m.services.AuthService.Logout()
		return m, tea.Quit
	case "1":
		return m.switchScreen(screenFoodLog, m.cmdLoadFoodLogs())
	case "2":
		return m.switchScreen(screenCatalog, m.cmdLoadFoods())
	case "3":
		return m.switchScreen(screenProgress, m.cmdLoadProgress())
	case "4":
		m.screen = screenProfile
		m.cursor = 0
		m.status = ""
		return m, m.cmdLoadProfile()
	case "r":
		return m.refreshActiveScreen()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.activeListLen()-1 {
			m.cursor++
		}
		return m, nil
	}

	switch m.screen {
	case screenFoodLog:
		switch key {
		case "a":
			return m.switchScreen(screenCatalog, m.cmdLoadFoods())
		case "c":
			return m, m.cmdCopyDailySummary(m.selectedLogDate())
		}
	case screenCatalog:
		if key == "enter" || key == "a" {
			if len(m.foods) == 0 {
				return m, nil
			}
			m.openAddLogForm(m.foods[m.cursor])
			return m, textinput.Blink
		}
	case screenProgress:
		if key == "p" || key == "a" {
			m.openAddProgressForm()
			return m, textinput.Blink
		}
	case screenProfile:
		if key == "e" {
			m.openEditProfileForm()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m mainLoopModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.submitting = false
		m.errMsg = ""
		switch m.screen {
		case screenAddLog:
			m.screen = screenCatalog
		case screenAddProgress:
			m.screen = screenProgress
		case screenEditProfile:
			m.screen = screenProfile
		}
		return m, nil
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
		return m.submitForm()
	}

	return m.forwardToForm(msg)
}

func (m mainLoopModel) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.isFormScreen() || len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenAddLog:
		quantity, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
		if err != nil || quantity <= 0 {
			m.errMsg = "Quantity must be a positive number"
			return m, nil
		}
		date, err := models.ParseDate(m.inputs[1].Value())
		if err != nil {
			m.errMsg = "Date must be in YYYY-MM-DD format"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSaveFoodLog(m.pendingFoodID, quantity, date)

	case screenAddProgress:
		date, err := models.ParseDate(m.inputs[0].Value())
		if err != nil {
			m.errMsg = "Date must be in YYYY-MM-DD format"
			return m, nil
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
		if err != nil || weight <= 0 {
			m.errMsg = "Weight must be a positive number"
			return m, nil
		}
		calories, err := strconv.Atoi(strings.TrimSpace(m.inputs[2].Value()))
		if err != nil || calories < 0 {
			m.errMsg = "Calorie intake must be a non-negative integer"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSaveProgress(date, weight, calories)

	case screenEditProfile:
		name := strings.TrimSpace(m.inputs[0].Value())
		email := strings.TrimSpace(m.inputs[1].Value())
		password := m.inputs[2].Value()
		if name == "" || email == "" {
			m.errMsg = "Name and email are required"
			return m, nil
		}
		height, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[3].Value()), 64)
		if err != nil || height <= 0 {
			m.errMsg = "Height must be a positive number"
			return m, nil
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[4].Value()), 64)
		if err != nil || weight <= 0 {
			m.errMsg = "Weight must be a positive number"
			return m, nil
		}

		update := models.UserUpdateRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Height:   height,
			Weight:   weight,
			Goal:     strings.TrimSpace(m.inputs[5].Value()),
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSaveProfile(update)
	}

	return m, nil
}

// View implements [tea.Model].
func (m mainLoopModel) View() string {
	switch m.screen {
	case screenFoodLog:
		return m.viewFoodLog()
	case screenCatalog:
		return m.viewCatalog()
	case screenProgress:
		return m.viewProgress()
	case screenProfile:
		return m.viewProfile()
	case screenAddLog:
		return m.viewAddLogForm()
	case screenAddProgress:
		return m.viewAddProgressForm()
	case screenEditProfile:
		return m.viewEditProfileForm()
	}
	return renderPage("FITNESS TRACKER", "", mainHotKeys(""))
}

func (m mainLoopModel) viewFoodLog() string {
	var b strings.Builder
	b.WriteString(m.statusLine())

	if m.loading {
		b.WriteString("Loading food log...\n")
	} else if len(m.logs) == 0 {
		b.WriteString("No food logged yet. Press 'a' to pick a food from the catalog.\n")
	} else {
		b.WriteString(fmt.Sprintf("%-12s │ %-20s │ %6s │ %5s │ %6s │ %6s │ %6s\n",
			"Date", "Food", "Qty", "Cal", "Prot", "Fat", "Carb"))
		b.WriteString(strings.Repeat("─", 80))
		b.WriteString("\n")

		for i, entry := range m.logs {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-10s │ %-20s │ %6s │ %5d │ %6s │ %6s │ %6s\n",
				cursor,
				entry.Date,
				fitText(dashIfEmpty(entry.FoodName), 20),
				formatFloat(entry.Quantity),
				entry.Calories,
				formatFloat(entry.Protein),
				formatFloat(entry.Fat),
				formatFloat(entry.Carbohydrates)))
		}

		summary := summarizeDay(m.logs, m.selectedLogDate())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Totals for %s: %d entries, %d kcal, protein %s g, fat %s g, carbs %s g\n",
			summary.Date,
			summary.Entries,
			summary.Calories,
			formatFloat(summary.Protein),
			formatFloat(summary.Fat),
			formatFloat(summary.Carbohydrates)))
	}

	b.WriteString(m.errorLine())
	return renderPage("FOOD LOG", strings.TrimRight(b.String(), "\n"),
		mainHotKeys("a: add entry │ c: copy day summary │ r: refresh │ ↑/↓: navigate"))
}

func (m mainLoopModel) viewCatalog() string {
	var b strings.Builder
	b.WriteString(m.statusLine())

	if m.loading {
		b.WriteString("Loading food catalog...\n")
	} else if len(m.foods) == 0 {
		b.WriteString("The food catalog is empty.\n")
	} else {
		b.WriteString(fmt.Sprintf("%-4s │ %-20s │ %5s │ %6s │ %6s │ %6s\n",
			"ID", "Name", "Cal", "Prot", "Fat", "Carb"))
		b.WriteString(strings.Repeat("─", 62))
		b.WriteString("\n")

		for i, food := range m.foods {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-2d │ %-20s │ %5d │ %6s │ %6s │ %6s\n",
				cursor,
				food.FoodID,
				fitText(food.Name, 20),
				food.Calories,
				formatFloat(food.Protein),
				formatFloat(food.Fat),
				formatFloat(food.Carbohydrates)))
		}
	}

	b.WriteString(m.errorLine())
	return renderPage("FOOD CATALOG", strings.TrimRight(b.String(), "\n"),
		mainHotKeys("enter: log selected food │ r: refresh │ ↑/↓: navigate"))
}

func (m mainLoopModel) viewProgress() string {
	var b strings.Builder
	b.WriteString(m.statusLine())

	if m.loading {
		b.WriteString("Loading progress...\n")
	} else if len(m.progress) == 0 {
		b.WriteString("No progress recorded yet. Press 'p' to record a check-in.\n")
	} else {
		b.WriteString(fmt.Sprintf("%-12s │ %10s │ %6s │ %8s\n",
			"Date", "Weight, kg", "BMI", "Calories"))
		b.WriteString(strings.Repeat("─", 46))
		b.WriteString("\n")

		for i, record := range m.progress {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-10s │ %10s │ %6s │ %8d\n",
				cursor,
				record.Date,
				formatFloat(record.Weight),
				formatFloat(record.BMI),
				record.CalorieIntake))
		}
	}

	b.WriteString(m.errorLine())
	return renderPage("PROGRESS", strings.TrimRight(b.String(), "\n"),
		mainHotKeys("p: record check-in │ r: refresh │ ↑/↓: navigate"))
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder
	b.WriteString(m.statusLine())

	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼──────────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("Name       │ %s\n", dashIfEmpty(m.user.Name)))
	b.WriteString(fmt.Sprintf("Email      │ %s\n", dashIfEmpty(m.user.Email)))
	b.WriteString(fmt.Sprintf("Height, cm │ %s\n", formatFloat(m.user.Height)))
	b.WriteString(fmt.Sprintf("Weight, kg │ %s\n", formatFloat(m.user.Weight)))
	b.WriteString(fmt.Sprintf("BMI        │ %s\n", formatFloat(utils.CalculateBMI(m.user.Weight, m.user.Height))))
	b.WriteString(fmt.Sprintf("Goal       │ %s\n", dashIfEmpty(m.user.Goal)))

	b.WriteString(m.errorLine())
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		mainHotKeys("e: edit profile"))
}

func (m mainLoopModel) viewAddLogForm() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Logging: %s\n\n", m.pendingFoodName))
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Quantity │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Date     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	b.WriteString(m.errorLine())
	return renderPage("LOG FOOD", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewAddProgressForm() string {
	var b strings.Builder
	b.WriteString("Field          │ Value\n")
	b.WriteString("───────────────┼──────────────────────────────────────\n")
	b.WriteString("Date           │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Weight, kg     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Calorie intake │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("\nThe BMI is computed from your profile height before saving.\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	b.WriteString(m.errorLine())
	return renderPage("RECORD PROGRESS", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewEditProfileForm() string {
	var b strings.Builder
	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼──────────────────────────────────────\n")
	b.WriteString("Name         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email        │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("New password │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Height, cm   │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Weight, kg   │ [")
	b.WriteString(m.inputs[4].View())
	b.WriteString("]\n")
	b.WriteString("Goal         │ [")
	b.WriteString(m.inputs[5].View())
	b.WriteString("]\n")
	b.WriteString("\nLeave the password empty to keep the current one.\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	b.WriteString(m.errorLine())
	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: save")
}

func (m *mainLoopModel) openAddLogForm(food models.Food) {
	m.pendingFoodID = food.FoodID
	m.pendingFoodName = food.Name

	quantityInput := textinput.New()
	quantityInput.Placeholder = "1"
	quantityInput.Width = 20
	quantityInput.Focus()

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.Width = 20
	dateInput.SetValue(models.Today().String())

	m.inputs = []textinput.Model{quantityInput, dateInput}
	m.focus = 0
	m.errMsg = ""
	m.status = ""
	m.screen = screenAddLog
}

func (m *mainLoopModel) openAddProgressForm() {
	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.Width = 20
	dateInput.SetValue(models.Today().String())
	dateInput.Focus()

	weightInput := textinput.New()
	weightInput.Placeholder = "weight, kg"
	weightInput.Width = 20
	if m.user.Weight > 0 {
		weightInput.SetValue(formatFloat(m.user.Weight))
	}

	caloriesInput := textinput.New()
	caloriesInput.Placeholder = "calories eaten today"
	caloriesInput.Width = 20

	m.inputs = []textinput.Model{dateInput, weightInput, caloriesInput}
	m.focus = 0
	m.errMsg = ""
	m.status = ""
	m.screen = screenAddProgress
}

func (m *mainLoopModel) openEditProfileForm() {
	nameInput := textinput.New()
	nameInput.Width = 40
	nameInput.SetValue(m.user.Name)
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Width = 40
	emailInput.SetValue(m.user.Email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "leave empty to keep"
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	heightInput := textinput.New()
	heightInput.Width = 40
	heightInput.SetValue(formatFloat(m.user.Height))

	weightInput := textinput.New()
	weightInput.Width = 40
	weightInput.SetValue(formatFloat(m.user.Weight))

	goalInput := textinput.New()
	goalInput.Width = 40
	goalInput.SetValue(m.user.Goal)

	m.inputs = []textinput.Model{nameInput, emailInput, passwordInput, heightInput, weightInput, goalInput}
	m.focus = 0
	m.errMsg = ""
	m.status = ""
	m.screen = screenEditProfile
}

func (m mainLoopModel) cmdLoadFoodLogs() tea.Cmd {
	ctx := m.ctx
	foodLogs := m.services.FoodLogService

	return func() tea.Msg {
		entries, err := foodLogs.List(ctx)
		return foodLogsLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdLoadFoods() tea.Cmd {
	ctx := m.ctx
	foods := m.services.FoodService

	return func() tea.Msg {
		list, err := foods.List(ctx, 0, 100)
		return foodsLoadedMsg{foods: list, err: err}
	}
}

func (m mainLoopModel) cmdLoadProgress() tea.Cmd {
	ctx := m.ctx
	progress := m.services.ProgressService

	return func() tea.Msg {
		records, err := progress.List(ctx)
		return progressLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profile := m.services.ProfileService

	return func() tea.Msg {
		user, err := profile.Get(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdSaveFoodLog(foodID int64, quantity float64, date models.Date) tea.Cmd {
	ctx := m.ctx
	foodLogs := m.services.FoodLogService

	return func() tea.Msg {
		log, err := foodLogs.Log(ctx, foodID, quantity, date)
		return foodLogSavedMsg{log: log, err: err}
	}
}

func (m mainLoopModel) cmdSaveProgress(date models.Date, weight float64, calories int) tea.Cmd {
	ctx := m.ctx
	progress := m.services.ProgressService

	return func() tea.Msg {
		record, err := progress.Record(ctx, date, weight, calories)
		return progressSavedMsg{record: record, err: err}
	}
}

func (m mainLoopModel) cmdSaveProfile(update models.UserUpdateRequest) tea.Cmd {
	ctx := m.ctx
	profile := m.services.ProfileService

	return func() tea.Msg {
		user, err := profile.Update(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdCopyDailySummary(date models.Date) tea.Cmd {
	ctx := m.ctx
	foodLogs := m.services.FoodLogService

	return func() tea.Msg {
		summary, err := foodLogs.DailySummary(ctx, date)
		if err != nil {
			return summaryCopiedMsg{date: date, err: err}
		}

		text := fmt.Sprintf("%s: %d entries, %d kcal, protein %s g, fat %s g, carbs %s g",
			summary.Date,
			summary.Entries,
			summary.Calories,
			formatFloat(summary.Protein),
			formatFloat(summary.Fat),
			formatFloat(summary.Carbohydrates))

		return summaryCopiedMsg{date: date, err: clipboard.WriteAll(text)}
	}
}

func (m mainLoopModel) switchScreen(screen string, load tea.Cmd) (tea.Model, tea.Cmd) {
	m.screen = screen
	m.cursor = 0
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m, load
}

func (m mainLoopModel) refreshActiveScreen() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenFoodLog:
		m.loading = true
		return m, m.cmdLoadFoodLogs()
	case screenCatalog:
		m.loading = true
		return m, m.cmdLoadFoods()
	case screenProgress:
		m.loading = true
		return m, m.cmdLoadProgress()
	case screenProfile:
		return m, m.cmdLoadProfile()
	}
	return m, nil
}

func (m mainLoopModel) isFormScreen() bool {
	switch m.screen {
	case screenAddLog, screenAddProgress, screenEditProfile:
		return true
	}
	return false
}

func (m mainLoopModel) activeListLen() int {
	switch m.screen {
	case screenFoodLog:
		return len(m.logs)
	case screenCatalog:
		return len(m.foods)
	case screenProgress:
		return len(m.progress)
	}
	return 0
}

func (m *mainLoopModel) clampCursor() {
	if max := m.activeListLen() - 1; m.cursor > max {
		if max < 0 {
			max = 0
		}
		m.cursor = max
	}
}

// selectedLogDate is the day the summary hotkey operates on: the date of the
// selected food-log row, or today when the list is empty.
func (m mainLoopModel) selectedLogDate() models.Date {
	if len(m.logs) == 0 || m.cursor >= len(m.logs) {
		return models.Today()
	}
	return m.logs[m.cursor].Date
}

func (m mainLoopModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	return "OK: " + m.status + "\n\n"
}

func (m mainLoopModel) errorLine() string {
	if m.errMsg == "" {
		return ""
	}
	return "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
}

func (m *mainLoopModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *mainLoopModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func summarizeDay(entries []models.FoodLogEntry, date models.Date) models.NutritionSummary {
	summary := models.NutritionSummary{Date: date}
	for _, entry := range entries {
		if entry.Date.String() != date.String() {
			continue
		}
		summary.Entries++
		summary.Calories += entry.Calories
		summary.Protein += entry.Protein
		summary.Fat += entry.Fat
		summary.Carbohydrates += entry.Carbohydrates
	}
	return summary
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func mainHotKeys(screenKeys string) string {
	base := "1: food log │ 2: catalog │ 3: progress │ 4: profile │ l: log out │ q: quit"
	if screenKeys == "" {
		return base
	}
	return screenKeys + "\n  " + base
}
