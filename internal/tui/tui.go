// Package tui provides the live terminal dashboard: task cards with
// countdown timers, filtering, the summary strip, and the card actions.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"duedash/internal/actions"
	"duedash/internal/board"
	"duedash/internal/countdown"
	"duedash/internal/feed"
)

// Loader supplies the task list. Load never fails; fallback data stands in
// for an unreachable feed.
type Loader interface {
	Load(ctx context.Context) []feed.Task
	LastSync() time.Time
}

// Options configure the dashboard.
type Options struct {
	Refresh         time.Duration
	Location        *time.Location
	DiscountPercent float64
	BillingEmail    string
	ShowSummary     bool
	OpenURL         func(string) error // nil uses the platform opener
}

// Mode indicates the current input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuery
	ModeInvoice
	ModeHelp
)

// keyMap defines the dashboard keybindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Query    key.Binding
	Status   key.Binding
	Reload   key.Binding
	Calendar key.Binding
	Invoice  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the single-line help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Query, k.Status, k.Calendar, k.Invoice, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Query, k.Status, k.Reload},
		{k.Calendar, k.Invoice},
		{k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
	Query:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Status:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Calendar: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
	Invoice:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invoice")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model represents the dashboard state
type Model struct {
	loader Loader
	opts   Options
	ctx    context.Context

	// Data
	tasks    []feed.Task
	filtered []feed.Task
	states   []string

	// Filter inputs
	queryInput textinput.Model
	statusIdx  int // 0 = all, otherwise states[statusIdx-1]

	// Selection and mode
	cursor int
	mode   Mode

	// Scheduling. generation is the countdown timer identity: a tick
	// carrying an older generation belongs to a torn-down timer and is
	// dropped.
	now        time.Time
	generation int
	reloadGen  int
	loading    bool

	// Transient status line
	notice string

	invoiceTask  *feed.Task
	invoiceQuote actions.Quote

	// UI dimensions
	width  int
	height int

	keys keyMap
	help help.Model

	// Styles
	titleStyle    lipgloss.Style
	footerStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	keyStyle      lipgloss.Style
	dimStyle      lipgloss.Style
	noticeStyle   lipgloss.Style
	summaryStyle  lipgloss.Style
	dialogStyle   lipgloss.Style
	badgeTodo     lipgloss.Style
	badgeProgress lipgloss.Style
	badgeDone     lipgloss.Style
	sevNormal     lipgloss.Style
	sevWarning    lipgloss.Style
	sevCritical   lipgloss.Style
}

// Message types
type tasksLoadedMsg struct {
	tasks []feed.Task
}

type reloadTickMsg struct {
	gen int
}

type countdownTickMsg struct {
	gen int
	now time.Time
}

// New creates a new dashboard model
func New(l Loader, opts Options) *Model {
	if opts.Refresh <= 0 {
		opts.Refresh = 120 * time.Second
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.OpenURL == nil {
		opts.OpenURL = actions.OpenURL
	}

	ti := textinput.New()
	ti.Placeholder = "key, summary, state, assignee..."
	ti.CharLimit = 128
	ti.Prompt = "/"

	return &Model{
		loader:     l,
		opts:       opts,
		ctx:        context.Background(),
		queryInput: ti,
		now:        time.Now(),
		loading:    true,
		keys:       defaultKeyMap,
		help:       help.New(),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		keyStyle: lipgloss.NewStyle().
			Bold(true),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		noticeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("215")),
		summaryStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		dialogStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		badgeTodo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		badgeProgress: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("75")).
			Padding(0, 1),
		badgeDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("42")).
			Padding(0, 1),
		sevNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		sevWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		sevCritical: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(l Loader, opts Options) error {
	p := tea.NewProgram(New(l, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the dashboard
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.countdownTick())
}

func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		return tasksLoadedMsg{tasks: m.loader.Load(m.ctx)}
	}
}

// scheduleReload arms the next full-feed reload. It is called only after the
// previous load completes, so at most one reload is in flight.
func (m *Model) scheduleReload() tea.Cmd {
	m.reloadGen++
	gen := m.reloadGen
	return tea.Tick(m.opts.Refresh, func(time.Time) tea.Msg {
		return reloadTickMsg{gen: gen}
	})
}

func (m *Model) countdownTick() tea.Cmd {
	gen := m.generation
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg{gen: gen, now: t}
	})
}

// startLoad begins a feed reload unless one is already in flight.
func (m *Model) startLoad() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	m.reloadGen++ // retire any scheduled reload so chains never multiply
	return m.loadTasks()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.loading = false
		m.states = board.States(m.tasks)
		if m.statusIdx > len(m.states) {
			m.statusIdx = 0
		}
		m.applyFilter()
		return m, tea.Batch(m.scheduleReload(), m.countdownTick())

	case reloadTickMsg:
		if msg.gen != m.reloadGen {
			return m, nil
		}
		return m, m.startLoad()

	case countdownTickMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		// Countdowns only: no refetch, no refiltering.
		m.now = msg.now
		return m, m.countdownTick()

	case tea.KeyMsg:
		switch m.mode {
		case ModeQuery:
			return m.handleQueryMode(msg)
		case ModeInvoice:
			return m.handleInvoiceMode(msg)
		case ModeHelp:
			return m.handleHelpMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Query):
		m.mode = ModeQuery
		m.queryInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Status):
		m.statusIdx = (m.statusIdx + 1) % (len(m.states) + 1)
		m.applyFilter()
		return m, m.countdownTick()

	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad()

	case key.Matches(msg, m.keys.Calendar):
		if t, ok := m.selectedTask(); ok {
			link, err := actions.CalendarLink(t, m.opts.Location)
			if err != nil {
				m.notice = firstLine(err.Error())
				return m, nil
			}
			if err := m.opts.OpenURL(link); err != nil {
				m.notice = firstLine(err.Error())
				return m, nil
			}
			m.notice = "Opened calendar event for " + t.Key
		}
		return m, nil

	case key.Matches(msg, m.keys.Invoice):
		if t, ok := m.selectedTask(); ok {
			task := t
			m.invoiceTask = &task
			m.invoiceQuote = actions.NewQuote(t.Gas, m.opts.DiscountPercent)
			m.mode = ModeInvoice
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	if msg.Type == tea.KeyEsc {
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleQueryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = ModeNormal
		m.queryInput.Blur()
		return m, nil

	case tea.KeyEsc:
		m.mode = ModeNormal
		m.queryInput.Reset()
		m.queryInput.Blur()
		m.applyFilter()
		return m, m.countdownTick()
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	// Live filtering: the visible set tracks every keystroke.
	m.applyFilter()
	return m, tea.Batch(cmd, m.countdownTick())
}

func (m *Model) handleInvoiceMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if m.invoiceTask != nil {
			link := actions.MailtoLink(*m.invoiceTask, m.invoiceQuote, m.opts.BillingEmail)
			if err := m.opts.OpenURL(link); err != nil {
				m.notice = firstLine(err.Error())
			} else {
				m.notice = "Invoice request drafted for " + m.invoiceTask.Key
			}
		}
		m.invoiceTask = nil
		m.mode = ModeNormal
		return m, nil

	case "n", "N", "esc":
		m.invoiceTask = nil
		m.mode = ModeNormal
		return m, nil
	}

	if msg.Type == tea.KeyEsc {
		m.invoiceTask = nil
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter", "?":
		m.mode = ModeNormal
	}
	return m, nil
}

// applyFilter recomputes the visible set and retires the running countdown
// timer so ticks never operate on a stale task list.
func (m *Model) applyFilter() {
	m.filtered = board.Filter(m.tasks, m.queryInput.Value(), m.currentStatus())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	m.generation++
	m.now = time.Now()
}

func (m *Model) currentStatus() string {
	if m.statusIdx == 0 || m.statusIdx > len(m.states) {
		return ""
	}
	return m.states[m.statusIdx-1]
}

func (m *Model) selectedTask() (feed.Task, bool) {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return feed.Task{}, false
	}
	return m.filtered[m.cursor], true
}

// View renders the dashboard
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		m.width = 80
		m.height = 24
	}

	switch m.mode {
	case ModeInvoice:
		return m.centerDialog(m.renderInvoiceDialog())
	case ModeHelp:
		return m.centerDialog(m.renderHelpDialog())
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")

	if m.opts.ShowSummary {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString("\n")
		b.WriteString(m.dimStyle.Render("No tasks match the current filters."))
		b.WriteString("\n")
	} else {
		for i, t := range m.filtered {
			b.WriteString(m.renderCard(t, i == m.cursor))
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.titleStyle.Render("duedash")
	sync := ""
	if last := m.loader.LastSync(); !last.IsZero() {
		sync = m.dimStyle.Render("last update: " + last.In(m.opts.Location).Format("15:04:05"))
	}
	if m.loading {
		sync = m.dimStyle.Render("refreshing...")
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(sync)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + sync
}

func (m *Model) renderFilterLine() string {
	query := m.queryInput.View()
	if m.mode != ModeQuery && m.queryInput.Value() == "" {
		query = m.dimStyle.Render("/ to search")
	}

	status := "status: All"
	if s := m.currentStatus(); s != "" {
		status = "status: " + s
	}

	return query + "   " + m.dimStyle.Render(status)
}

func (m *Model) renderSummary() string {
	s := board.Summarize(m.filtered, m.now)
	cells := []string{
		fmt.Sprintf("Tasks %d", s.Total),
		fmt.Sprintf("Cost $%s", money(s.TotalGas)),
		fmt.Sprintf("Overdue %d", s.Overdue),
		fmt.Sprintf("Due soon %d", s.DueSoon),
	}
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = m.summaryStyle.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderCard(t feed.Task, selected bool) string {
	var b strings.Builder

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render("▌")

	cursor := "  "
	if selected {
		cursor = "> "
	}

	key := t.Key
	if key == "" {
		key = "—"
	}
	summary := t.Summary
	if summary == "" {
		summary = "Untitled Task"
	}
	head := m.keyStyle.Render(key) + " " + summary
	if selected {
		head = m.selectedStyle.Render(key + " " + summary)
	}
	b.WriteString(cursor + bar + " " + head + "\n")

	meta := []string{}
	if t.State != "" {
		meta = append(meta, m.stateBadge(t.State))
	}
	if t.Assignee != "" {
		meta = append(meta, m.dimStyle.Render("@ "+t.Assignee))
	}
	meta = append(meta, m.dimStyle.Render("$"+money(t.Gas)))
	b.WriteString("  " + bar + " " + strings.Join(meta, "  ") + "\n")

	delta := countdown.Remaining(m.now, t.Due)
	parts := countdown.Split(delta)
	timer := m.severityStyle(countdown.Classify(delta)).Render(parts.String())

	pct := countdown.Progress(m.now, t.Start, t.Due)
	dates := m.dimStyle.Render(m.fmtDate(t.Start) + " → " + m.fmtDate(t.Due))
	b.WriteString(fmt.Sprintf("  %s %s  %s %3d%%  %s\n", bar, timer, progressBar(pct, 12), pct, dates))

	b.WriteString("\n")
	return b.String()
}

func (m *Model) stateBadge(state string) string {
	s := strings.ToLower(state)
	switch {
	case strings.Contains(s, "progress"):
		return m.badgeProgress.Render(state)
	case strings.Contains(s, "complete") || strings.Contains(s, "done"):
		return m.badgeDone.Render(state)
	default:
		return m.badgeTodo.Render(state)
	}
}

func (m *Model) severityStyle(s countdown.Severity) lipgloss.Style {
	switch s {
	case countdown.SeverityCritical:
		return m.sevCritical
	case countdown.SeverityWarning:
		return m.sevWarning
	default:
		return m.sevNormal
	}
}

func (m *Model) fmtDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.In(m.opts.Location).Format("Jan 2, 2006")
}

func (m *Model) renderInvoiceDialog() string {
	t := m.invoiceTask
	if t == nil {
		return ""
	}
	q := m.invoiceQuote
	return m.dialogStyle.Render(fmt.Sprintf(
		"Request Invoice\n\n%s - %s\n\nOriginal:       $%s\nDiscount (%g%%): -$%s\nFinal:          $%s\n\n%s",
		t.Key, t.Summary,
		money(q.Original), q.Percent, money(q.Discount), money(q.Final),
		m.footerStyle.Render("y: send request  n: cancel"),
	))
}

func (m *Model) renderHelpDialog() string {
	helpText := `Help - Key Bindings

Navigation:
  j/↓    Move down
  k/↑    Move up

Filtering:
  /      Search key, summary, state, assignee
  s      Cycle status filter

Actions:
  c      Export selected task to calendar
  i      Request invoice for selected task
  r      Reload the feed now

General:
  ?      Show this help
  q      Quit

Press any key to close`

	return m.dialogStyle.Render(helpText)
}

func (m *Model) centerDialog(dialog string) string {
	lines := strings.Split(dialog, "\n")
	dialogHeight := len(lines)
	dialogWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > dialogWidth {
			dialogWidth = w
		}
	}

	topPad := (m.height - dialogHeight) / 2
	leftPad := (m.width - dialogWidth) / 2
	if topPad < 0 {
		topPad = 0
	}
	if leftPad < 0 {
		leftPad = 0
	}

	var b strings.Builder
	for i := 0; i < topPad; i++ {
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", leftPad))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// progressBar renders an elapsed-percentage bar of the given cell width.
func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := width * pct / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// money formats an amount with thousands separators, keeping fractional
// cents only when present.
func money(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
