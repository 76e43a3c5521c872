package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/calendar"
	"github.com/mealtable/mealtable/internal/config"
	"github.com/mealtable/mealtable/internal/database"
	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/goals"
	"github.com/mealtable/mealtable/internal/inventory"
	"github.com/mealtable/mealtable/internal/nutrition"
	"github.com/mealtable/mealtable/internal/recipes"
	"github.com/mealtable/mealtable/internal/stats"
	"github.com/mealtable/mealtable/internal/store"
	dashviews "github.com/mealtable/mealtable/internal/tui/views/dashboard"
	goalviews "github.com/mealtable/mealtable/internal/tui/views/goals"
	groceryviews "github.com/mealtable/mealtable/internal/tui/views/grocery"
	pantryviews "github.com/mealtable/mealtable/internal/tui/views/pantry"
	planviews "github.com/mealtable/mealtable/internal/tui/views/planner"
	recipeviews "github.com/mealtable/mealtable/internal/tui/views/recipes"
	"github.com/mealtable/mealtable/internal/util"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 120

// Module represents a view module in the application.
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModulePantry    Module = "pantry"
	ModuleCalendar  Module = "calendar"
	ModuleGrocery   Module = "grocery"
	ModuleGoals     Module = "goals"
	ModuleRecipes   Module = "recipes"
	ModuleHelp      Module = "help"
)

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	db     *database.DB
	config *config.Config
	bus    *events.Bus

	// Services
	ledger     *inventory.Ledger
	statsSvc   *stats.Service
	planner    *calendar.Planner
	goalsSvc   *goals.Service
	recipesSvc *recipes.Service

	// Views
	logView      *dashviews.LogView
	pantryView   *pantryviews.PantryView
	calendarView *planviews.CalendarView
	groceryView  *groceryviews.GroceryView
	goalsView    *goalviews.GoalsView
	catalogView  *recipeviews.CatalogView

	// Active forms (nil when closed)
	mealForm       *dashviews.MealForm
	ingredientForm *pantryviews.IngredientForm
	planForm       *planviews.PlanForm
	goalsForm      *goalviews.GoalsForm
	profileForm    *goalviews.ProfileForm

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	// Current view
	currentModule  Module
	previousModule Module
	showDetail     bool // Show recipe detail instead of list

	// Alerts
	alerts []Alert
}

// Alert represents a transient status message.
type Alert struct {
	Level   AlertLevel
	Message string
	Time    time.Time
}

// AlertLevel indicates the severity of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertWarning
	AlertCritical
)

// tickMsg is sent periodically to update the UI.
type tickMsg time.Time

// New creates a new App instance wired to all services.
func New(db *database.DB, cfg *config.Config) *App {
	ctx := context.Background()

	st := store.New(db)
	bus := events.NewBus()
	idGen := util.NewIDGenerator()

	ledger := inventory.NewLedger(ctx, st, bus)
	statsSvc := stats.NewService(st, bus, idGen)
	planner := calendar.NewPlanner(ctx, st, bus, statsSvc, idGen)
	goalsSvc := goals.NewService(ctx, st, bus, statsSvc)

	catalog := recipes.NewCatalog()
	recipesSvc := recipes.NewService(st, catalog, statsSvc, ledger)

	source := calendar.CatalogSource{Catalog: catalog}

	a := &App{
		db:            db,
		config:        cfg,
		bus:           bus,
		ledger:        ledger,
		statsSvc:      statsSvc,
		planner:       planner,
		goalsSvc:      goalsSvc,
		recipesSvc:    recipesSvc,
		logView:       dashviews.NewLogView(statsSvc),
		pantryView:    pantryviews.NewPantryView(ledger),
		calendarView:  planviews.NewCalendarView(planner),
		groceryView:   groceryviews.NewGroceryView(planner, source, ledger),
		goalsView:     goalviews.NewGoalsView(goalsSvc),
		catalogView:   recipeviews.NewCatalogView(recipesSvc),
		theme:         NewTheme(cfg.Display.ColorScheme),
		keys:          DefaultKeyMap(),
		currentModule: ModuleDashboard,
		alerts:        []Alert{},
	}

	// Keep the planner reconciled with the nutrition log, then keep
	// the views current as events cascade.
	planner.Start(ctx)

	bus.Subscribe(events.DashboardUpdated, func(events.Event) {
		a.logView.Refresh(context.Background())
	})
	bus.Subscribe(events.InventoryUpdated, func(events.Event) {
		a.pantryView.Refresh()
		a.groceryView.Refresh(context.Background())
	})
	bus.Subscribe(events.CalendarUpdated, func(events.Event) {
		a.groceryView.Refresh(context.Background())
	})
	bus.Subscribe(events.GoalsUpdated, func(events.Event) {
		a.goalsView.Refresh(context.Background())
	})

	a.refreshAll(ctx)

	return a
}

// refreshAll reloads every view from its service.
func (a *App) refreshAll(ctx context.Context) {
	a.logView.Refresh(ctx)
	a.pantryView.Refresh()
	a.groceryView.Refresh(ctx)
	a.goalsView.Refresh(ctx)
	a.catalogView.Refresh(ctx)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
	)
}

// tickCmd returns a command that sends tick messages.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type mealSavedMsg struct {
	err error
}

type ingredientSavedMsg struct {
	err error
}

type planSavedMsg struct {
	err error
}

type goalsSavedMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type recipeActionMsg struct {
	action string
	done   string
	name   string
	err    error
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.updateViewDimensions()
		return a, nil

	case tickMsg:
		return a, tickCmd()

	case mealSavedMsg:
		a.mealForm = nil
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to log meal: "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Meal logged")
		}
		return a, nil

	case ingredientSavedMsg:
		a.ingredientForm = nil
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to add ingredient: "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Ingredient added")
		}
		return a, nil

	case planSavedMsg:
		a.planForm = nil
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to plan meal: "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Meal planned")
		}
		return a, nil

	case goalsSavedMsg:
		a.goalsForm = nil
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to save targets: "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Targets updated")
		}
		return a, nil

	case profileSavedMsg:
		a.profileForm = nil
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to save profile: "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Profile updated")
		}
		return a, nil

	case recipeActionMsg:
		if msg.err != nil {
			a.AddAlert(AlertWarning, fmt.Sprintf("Could not %s %s: %v", msg.action, msg.name, msg.err))
		} else {
			a.AddAlert(AlertInfo, fmt.Sprintf("%s %s", msg.done, msg.name))
		}
		a.catalogView.Refresh(context.Background())
		return a, nil
	}

	return a, nil
}

// updateViewDimensions propagates the terminal size to the list views.
func (a *App) updateViewDimensions() {
	rows := ContentHeight(a.height, 12)
	a.logView.SetVisibleRows(rows)
	a.pantryView.SetVisibleRows(rows)
	a.catalogView.SetVisibleRows(rows)
}

// activeForm reports whether any form currently captures input.
func (a *App) activeForm() bool {
	return a.mealForm != nil || a.ingredientForm != nil || a.planForm != nil ||
		a.goalsForm != nil || a.profileForm != nil
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle quit confirmation first (modal takes priority)
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
			return a, nil
		}
		return a, nil
	}

	// Handle form modes BEFORE global keys - forms need all input
	if a.activeForm() {
		return a.handleFormKeys(msg)
	}

	// Global key bindings (only when not in input mode)
	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	// Function key navigation (always available)
	if a.keys.IsFunctionKey(msg) {
		module := a.keys.GetFunctionKeyModule(msg)
		ctx := context.Background()
		switch module {
		case "quit":
			a.showConfirm = true
		case "help":
			a.previousModule = a.currentModule
			a.currentModule = ModuleHelp
		case "dashboard":
			a.currentModule = ModuleDashboard
			a.showDetail = false
			a.logView.Refresh(ctx)
			a.goalsView.Refresh(ctx)
		case "pantry":
			a.currentModule = ModulePantry
			a.showDetail = false
			a.pantryView.Refresh()
		case "calendar":
			a.currentModule = ModuleCalendar
			a.showDetail = false
		case "grocery":
			a.currentModule = ModuleGrocery
			a.showDetail = false
			a.groceryView.Refresh(ctx)
		case "goals":
			a.currentModule = ModuleGoals
			a.showDetail = false
			a.goalsView.Refresh(ctx)
		case "recipes":
			a.currentModule = ModuleRecipes
			a.showDetail = false
			a.catalogView.Refresh(ctx)
		}
		return a, nil
	}

	// Back navigation (only when not in input mode)
	if a.keys.Back.Matches(msg) {
		if a.showDetail {
			a.showDetail = false
			return a, nil
		}
		if a.currentModule == ModuleHelp && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	// Module-specific key handling
	switch a.currentModule {
	case ModuleDashboard:
		return a.handleDashboardKeys(msg)
	case ModulePantry:
		return a.handlePantryKeys(msg)
	case ModuleCalendar:
		return a.handleCalendarKeys(msg)
	case ModuleGrocery:
		return a.handleGroceryKeys(msg)
	case ModuleGoals:
		return a.handleGoalsKeys(msg)
	case ModuleRecipes:
		return a.handleRecipeKeys(msg)
	}

	return a, nil
}

// handleFormKeys routes key presses to whichever form is open.
func (a *App) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch {
	case a.mealForm != nil:
		a.mealForm.HandleKey(key)
		if a.mealForm.IsCancelled() {
			a.mealForm = nil
			return a, nil
		}
		if a.mealForm.IsSubmitted() {
			return a, a.saveMeal()
		}

	case a.ingredientForm != nil:
		a.ingredientForm.HandleKey(key)
		if a.ingredientForm.IsCancelled() {
			a.ingredientForm = nil
			return a, nil
		}
		if a.ingredientForm.IsSubmitted() {
			return a, a.saveIngredient()
		}

	case a.planForm != nil:
		a.planForm.HandleKey(key)
		if a.planForm.IsCancelled() {
			a.planForm = nil
			return a, nil
		}
		if a.planForm.IsSubmitted() {
			return a, a.savePlan()
		}

	case a.goalsForm != nil:
		a.goalsForm.HandleKey(key)
		if a.goalsForm.IsCancelled() {
			a.goalsForm = nil
			return a, nil
		}
		if a.goalsForm.IsSubmitted() {
			return a, a.saveGoals()
		}

	case a.profileForm != nil:
		a.profileForm.HandleKey(key)
		if a.profileForm.IsCancelled() {
			a.profileForm = nil
			return a, nil
		}
		if a.profileForm.IsSubmitted() {
			return a, a.saveProfile()
		}
	}

	return a, nil
}

// handleDashboardKeys handles key presses in the dashboard module.
func (a *App) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "up", "k":
		a.logView.MoveUp()
	case "down", "j":
		a.logView.MoveDown()
	case "a":
		a.mealForm = dashviews.NewMealForm()
	case "d":
		meal := a.logView.SelectedMeal()
		if meal != nil {
			name := meal.Name
			if a.statsSvc.RemoveMeal(ctx, meal.ID) {
				a.AddAlert(AlertInfo, "Removed "+name)
			}
		}
	case "r":
		a.statsSvc.Reset(ctx)
		a.AddAlert(AlertInfo, "Today's log cleared")
	}

	return a, nil
}

// handlePantryKeys handles key presses in the pantry module.
func (a *App) handlePantryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "up", "k":
		a.pantryView.MoveUp()
	case "down", "j":
		a.pantryView.MoveDown()
	case "pgup":
		a.pantryView.PageUp()
	case "pgdown":
		a.pantryView.PageDown()
	case "a":
		a.ingredientForm = pantryviews.NewIngredientForm()
	case "+", "=":
		if ing := a.pantryView.SelectedIngredient(); ing != nil {
			a.ledger.UpdateQuantity(ctx, ing.ID, ing.Quantity+1)
		}
	case "-", "_":
		if ing := a.pantryView.SelectedIngredient(); ing != nil {
			a.ledger.UpdateQuantity(ctx, ing.ID, ing.Quantity-1)
		}
	case "d":
		if ing := a.pantryView.SelectedIngredient(); ing != nil {
			name := ing.Name
			if a.ledger.RemoveIngredient(ctx, ing.ID) {
				a.AddAlert(AlertInfo, "Removed "+name)
			}
		}
	}

	return a, nil
}

// handleCalendarKeys handles key presses in the calendar module.
func (a *App) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "left", "h":
		a.calendarView.MoveLeft()
	case "right", "l":
		a.calendarView.MoveRight()
	case "up", "k":
		a.calendarView.MoveUp()
	case "down", "j":
		a.calendarView.MoveDown()
	case "pgup":
		a.calendarView.PrevMonth()
	case "pgdown":
		a.calendarView.NextMonth()
	case "t":
		a.calendarView.GoToToday()
	case "n", "tab":
		a.calendarView.NextMeal()
	case "a":
		a.planForm = planviews.NewPlanForm(a.calendarView.CursorDate())
	case "d":
		meal := a.calendarView.SelectedMeal()
		if meal != nil {
			name := meal.Name
			if a.planner.RemoveMeal(ctx, a.calendarView.CursorDate(), meal.ID) {
				a.AddAlert(AlertInfo, "Removed "+name)
			}
		}
	}

	return a, nil
}

// handleGroceryKeys handles key presses in the grocery module.
func (a *App) handleGroceryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "up", "k":
		a.groceryView.MoveUp()
	case "down", "j":
		a.groceryView.MoveDown()
	case " ", "enter":
		a.groceryView.ToggleSelected(ctx)
	}

	return a, nil
}

// handleGoalsKeys handles key presses in the goals module.
func (a *App) handleGoalsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "e":
		a.goalsForm = goalviews.NewGoalsForm(a.goalsSvc.Goals())
	case "p":
		a.profileForm = goalviews.NewProfileForm(a.goalsSvc.Profile(ctx))
	case "s":
		suggested := a.goalsSvc.SuggestedCalories(ctx)
		if suggested <= 0 {
			a.AddAlert(AlertWarning, "Set a profile first to get a suggestion")
			return a, nil
		}
		current := a.goalsSvc.Goals()
		if err := a.goalsSvc.SetGoals(ctx, suggested, current.DailyProtein, current.DailyCarbs, current.DailyFat); err != nil {
			a.AddAlert(AlertWarning, "Failed to apply suggestion: "+err.Error())
		} else {
			a.AddAlert(AlertInfo, fmt.Sprintf("Calorie target set to %.0f", suggested))
		}
	}

	return a, nil
}

// handleRecipeKeys handles key presses in the recipes module.
func (a *App) handleRecipeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showDetail {
		switch msg.String() {
		case "esc":
			a.showDetail = false
		case "a":
			return a, a.addRecipe()
		case "r":
			return a, a.removeRecipe()
		case "c":
			return a, a.cookRecipe()
		}
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		a.catalogView.MoveUp()
	case "down", "j":
		a.catalogView.MoveDown()
	case "enter":
		if a.catalogView.SelectedRecipe() != nil {
			a.showDetail = true
		}
	case "a":
		return a, a.addRecipe()
	case "r":
		return a, a.removeRecipe()
	case "c":
		return a, a.cookRecipe()
	}

	return a, nil
}

// saveMeal logs the meal from the open form.
func (a *App) saveMeal() tea.Cmd {
	form := a.mealForm
	return func() tea.Msg {
		name, calories, protein, carbs, fat, err := form.GetData()
		if err != nil {
			return mealSavedMsg{err: err}
		}
		_, err = a.statsSvc.AddMeal(context.Background(), name, calories, protein, carbs, fat)
		return mealSavedMsg{err: err}
	}
}

// saveIngredient adds the ingredient from the open form.
func (a *App) saveIngredient() tea.Cmd {
	form := a.ingredientForm
	return func() tea.Msg {
		name, quantity, unit, err := form.GetData()
		if err != nil {
			return ingredientSavedMsg{err: err}
		}
		if _, ok := a.ledger.AddIngredient(context.Background(), name, quantity, unit); !ok {
			return ingredientSavedMsg{err: fmt.Errorf("invalid ingredient")}
		}
		return ingredientSavedMsg{}
	}
}

// savePlan adds the planned meal from the open form.
func (a *App) savePlan() tea.Cmd {
	form := a.planForm
	return func() tea.Msg {
		name, mealType, calories, err := form.GetData()
		if err != nil {
			return planSavedMsg{err: err}
		}
		if _, ok := a.planner.AddMeal(context.Background(), form.Date(), mealType, name, calories, ""); !ok {
			return planSavedMsg{err: fmt.Errorf("%s is already planned for that day", name)}
		}
		return planSavedMsg{}
	}
}

// saveGoals persists the targets from the open form.
func (a *App) saveGoals() tea.Cmd {
	form := a.goalsForm
	return func() tea.Msg {
		calories, protein, carbs, fat, err := form.GetData()
		if err != nil {
			return goalsSavedMsg{err: err}
		}
		err = a.goalsSvc.SetGoals(context.Background(), calories, protein, carbs, fat)
		return goalsSavedMsg{err: err}
	}
}

// saveProfile persists the profile from the open form.
func (a *App) saveProfile() tea.Cmd {
	form := a.profileForm
	return func() tea.Msg {
		profile, err := form.GetData()
		if err != nil {
			return profileSavedMsg{err: err}
		}
		if !a.goalsSvc.SetProfile(context.Background(), profile) {
			return profileSavedMsg{err: fmt.Errorf("could not save profile")}
		}
		return profileSavedMsg{}
	}
}

// addRecipe adds the selected recipe to the dashboard.
func (a *App) addRecipe() tea.Cmd {
	recipe := a.catalogView.SelectedRecipe()
	if recipe == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := a.recipesSvc.Add(context.Background(), recipe.ID)
		return recipeActionMsg{action: "add", done: "Added", name: recipe.Name, err: err}
	}
}

// removeRecipe removes the selected recipe from the dashboard.
func (a *App) removeRecipe() tea.Cmd {
	recipe := a.catalogView.SelectedRecipe()
	if recipe == nil {
		return nil
	}
	return func() tea.Msg {
		if !a.recipesSvc.Remove(context.Background(), recipe.ID) {
			return recipeActionMsg{action: "remove", name: recipe.Name, err: fmt.Errorf("not on your dashboard")}
		}
		return recipeActionMsg{action: "remove", done: "Removed", name: recipe.Name}
	}
}

// cookRecipe logs the selected recipe as a meal and consumes pantry stock.
func (a *App) cookRecipe() tea.Cmd {
	recipe := a.catalogView.SelectedRecipe()
	if recipe == nil {
		return nil
	}
	return func() tea.Msg {
		err := a.recipesSvc.Cook(context.Background(), recipe.ID)
		return recipeActionMsg{action: "cook", done: "Cooked", name: recipe.Name, err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("MealTable shutting down...")
	}

	var b strings.Builder

	// Header
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	// Alert bar
	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	// Main content area
	contentHeight := a.height - 6 // header, alert, footer
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	// Footer/status bar
	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("MEALTABLE v%s", Version)

	today := a.logView.Today()
	goalCalories := a.goalsSvc.Goals().DailyCalories
	var summary string
	if today != nil {
		summary = fmt.Sprintf("TODAY: %.0f / %.0f CAL", today.Calories, goalCalories)
	} else {
		summary = fmt.Sprintf("TODAY: 0 / %.0f CAL", goalCalories)
	}

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(summary) - 2
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(summary)

	separator := a.theme.DrawDoubleLine(a.width)

	return header + "\n" + separator
}

// renderAlertBar renders the current time and most recent alert.
func (a *App) renderAlertBar() string {
	timeStr := time.Now().Format(a.config.Display.DateFormat + " " + a.config.Display.TimeFormat)

	var alertText string
	if len(a.alerts) > 0 {
		alert := a.alerts[0]
		switch alert.Level {
		case AlertCritical:
			alertText = a.theme.AlertCrit.Render(alert.Message)
		case AlertWarning:
			alertText = a.theme.AlertWarn.Render(alert.Message)
		default:
			alertText = a.theme.Alert.Render(alert.Message)
		}
	} else {
		alertText = a.theme.Muted.Render("Ready")
	}

	timeDisplay := a.theme.Value.Render(timeStr)
	divider := a.theme.StatusDivider.Render()

	return timeDisplay + divider + alertText
}

// renderContent renders the main content area based on current module.
func (a *App) renderContent(height int) string {
	content := a.getModuleContent()

	// Constrain content width to MaxContentWidth
	contentWidth := a.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	// Center the content container within the terminal
	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(content))
}

// getModuleContent returns the content for the current module.
func (a *App) getModuleContent() string {
	switch a.currentModule {
	case ModuleDashboard:
		return a.renderDashboard()
	case ModulePantry:
		return a.renderPantry()
	case ModuleCalendar:
		return a.renderCalendar()
	case ModuleGrocery:
		return a.groceryView.Render(a.width, a.height-6)
	case ModuleGoals:
		return a.renderGoals()
	case ModuleRecipes:
		return a.renderRecipes()
	case ModuleHelp:
		return a.renderHelp()
	default:
		return ""
	}
}

// renderDashboard renders the daily nutrition log with goal progress.
func (a *App) renderDashboard() string {
	if a.mealForm != nil {
		return a.mealForm.Render()
	}

	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ DAILY NUTRITION LOG ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.renderGreeting())
	b.WriteString("\n\n")

	today := a.logView.Today()
	targets := a.goalsSvc.Goals()
	if today != nil {
		b.WriteString(a.renderMacroBar("Calories", today.Calories, targets.DailyCalories, ""))
		b.WriteString(a.renderMacroBar("Protein", today.Protein, targets.DailyProtein, "g"))
		b.WriteString(a.renderMacroBar("Carbs", today.Carbs, targets.DailyCarbs, "g"))
		b.WriteString(a.renderMacroBar("Fat", today.Fat, targets.DailyFat, "g"))
	}
	b.WriteString("\n")

	b.WriteString(a.logView.Render(a.width, a.height-14))

	return b.String()
}

// renderGreeting renders the time-of-day greeting line.
func (a *App) renderGreeting() string {
	hour := time.Now().Hour()
	var greeting string
	switch {
	case hour < 12:
		greeting = "Good morning"
	case hour < 18:
		greeting = "Good afternoon"
	default:
		greeting = "Good evening"
	}

	if a.config.App.UserName != "" {
		greeting += ", " + a.config.App.UserName
	}

	date := time.Now().Format("Monday, January 2")
	return a.theme.Subtitle.Render(greeting) + a.theme.Muted.Render("  "+date)
}

// renderMacroBar renders one labeled goal progress bar.
func (a *App) renderMacroBar(label string, current, target float64, unit string) string {
	barWidth := 30
	if a.width < 70 {
		barWidth = 16
	}

	level := nutrition.Classify(current, target)

	return fmt.Sprintf("  %s %s %s %s\n",
		a.theme.Label.Render(PadRight(label+":", 10)),
		a.theme.ProgressBar(current, target, barWidth),
		a.theme.Value.Render(fmt.Sprintf("%.0f%s / %.0f%s", current, unit, target, unit)),
		a.theme.Muted.Render("("+level.String()+")"),
	)
}

// renderPantry renders the pantry module.
func (a *App) renderPantry() string {
	if a.ingredientForm != nil {
		return a.ingredientForm.Render()
	}
	return a.pantryView.Render(a.width, a.height-6)
}

// renderCalendar renders the calendar module.
func (a *App) renderCalendar() string {
	if a.planForm != nil {
		return a.planForm.Render()
	}
	return a.calendarView.Render(a.width, a.height-6)
}

// renderGoals renders the goals module.
func (a *App) renderGoals() string {
	if a.goalsForm != nil {
		return a.goalsForm.Render()
	}
	if a.profileForm != nil {
		return a.profileForm.Render()
	}
	return a.goalsView.Render(a.width, a.height-6)
}

// renderRecipes renders the recipes module.
func (a *App) renderRecipes() string {
	if a.showDetail {
		return a.catalogView.RenderDetail(a.catalogView.SelectedRecipe())
	}
	return a.catalogView.Render(a.width, a.height-6)
}

// renderHelp renders the help screen.
func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("NAVIGATION"))
	b.WriteString("\n\n")

	navItems := [][2]string{
		{"F1", "Help"},
		{"F2", "Dashboard"},
		{"F3", "Pantry"},
		{"F4", "Meal Calendar"},
		{"F5", "Grocery List"},
		{"F6", "Goals & Profile"},
		{"F7", "Recipes"},
		{"F10", "Quit"},
	}

	for _, item := range navItems {
		line := fmt.Sprintf("    %-8s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("CONTROLS"))
	b.WriteString("\n\n")

	ctrlItems := [][2]string{
		{"Up/Down", "Navigate"},
		{"Enter", "Select"},
		{"Esc", "Back/Cancel"},
		{"a", "Add item"},
		{"d", "Delete item"},
		{"Tab", "Next field"},
	}

	for _, item := range ctrlItems {
		line := fmt.Sprintf("    %-8s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	// Center the dialog
	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)

	help := a.keys.StatusBarHelp()

	return separator + "\n" + a.theme.Footer.Render(help)
}

// AddAlert adds a new alert to the display.
func (a *App) AddAlert(level AlertLevel, message string) {
	a.alerts = append([]Alert{{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}}, a.alerts...)

	// Keep only last 10 alerts
	if len(a.alerts) > 10 {
		a.alerts = a.alerts[:10]
	}
}

// ClearAlerts removes all alerts.
func (a *App) ClearAlerts() {
	a.alerts = []Alert{}
}

// Run starts the TUI application.
func Run(ctx context.Context, db *database.DB, cfg *config.Config) error {
	app := New(db, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Handle context cancellation
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
