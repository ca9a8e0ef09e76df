package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tobyns/momentum/internal/config"
	"github.com/tobyns/momentum/internal/database/repository"
	"github.com/tobyns/momentum/internal/gesture"
	"github.com/tobyns/momentum/internal/nav"
	"github.com/tobyns/momentum/internal/service"
	"github.com/tobyns/momentum/internal/trace"
)

// Route identifiers. The first three form the fixed swipe order; the detail
// route sits outside it and is therefore not swipeable.
const (
	RouteToday      = "today"
	RouteTasks      = "tasks"
	RouteStats      = "stats"
	RouteTaskDetail = "task-detail"
)

// Pointer coordinates arrive in terminal cells, which are far coarser than
// the units the gesture thresholds are written in. One cell scales to ten
// units, one wheel notch to thirty.
const (
	cellUnits  = 10.0
	rowUnits   = 10.0
	wheelNotch = 30.0
)

// frameInterval approximates one display refresh for scroll coalescing.
const frameInterval = 16 * time.Millisecond

type Repos struct {
	Tasks  *repository.TaskRepo
	Traces *repository.TraceRepo
}

type Services struct {
	Tasks   *service.TaskService
	Recover *service.RecoverService
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeJump
	modeNewTask
	modeSearch
	modeNotes
)

// routeRef is shared between Model copies so the swipe navigator always sees
// the route a gesture started on.
type routeRef struct {
	cur string
}

// Model is the bubbletea model for the whole app.
type Model struct {
	ctx   context.Context
	cfg   config.Config
	repos Repos
	svc   Services
	rec   *trace.Recorder // nil when tracing is off
	stats *trace.Stats
	log   *zap.Logger

	width  int
	height int

	order  nav.Order
	active int
	detail *detailScreen
	route  *routeRef
	keys   *KeyRegistry

	chrome *gesture.VisibilityTracker
	frames *gesture.Manual
	armed  bool
	scroll float64

	swipe    *gesture.Navigator
	dragging bool

	mode   inputMode
	input  textinput.Model
	search string // active title filter on the task lists

	status    string
	statusErr bool
	quitting  bool

	today  []repository.Task
	all    []repository.Task
	counts map[string]int
	traceN int
	cursor map[string]int
}

// New wires the app model. rec, stats and log are optional.
func New(ctx context.Context, cfg config.Config, repos Repos, svc Services, rec *trace.Recorder, stats *trace.Stats, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	order := nav.NewOrder(RouteToday, RouteTasks, RouteStats)
	route := &routeRef{cur: RouteToday}

	frames := &gesture.Manual{}
	chrome := gesture.NewVisibilityTracker(gesture.ScrollConfig{
		SafeZone:          cfg.Gesture.SafeZone,
		ScrollUpThreshold: cfg.Gesture.ScrollUpThreshold,
		Disabled:          !cfg.Gesture.ChromeAutoHide,
	}, frames, nil)

	swipe := &gesture.Navigator{
		Detector: gesture.NewSwipeDetector(gesture.SwipeConfig{
			SwipeThreshold:      cfg.Gesture.SwipeThreshold,
			VelocityThreshold:   cfg.Gesture.VelocityThreshold,
			MaxVerticalMovement: cfg.Gesture.MaxVerticalMovement,
		}),
		Order:   order,
		Current: func() string { return route.cur },
	}

	input := textinput.New()
	input.CharLimit = 120
	input.Width = 50

	return Model{
		ctx:    ctx,
		input:  input,
		cfg:    cfg,
		repos:  repos,
		svc:    svc,
		rec:    rec,
		stats:  stats,
		log:    log,
		order:  order,
		route:  route,
		keys:   NewKeyRegistry(DefaultBindings()),
		chrome: chrome,
		frames: frames,
		swipe:  swipe,
		status: "Ready",
		width:  100,
		height: 32,
		counts: map[string]int{},
		cursor: map[string]int{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), m.loadCountsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		return m.handleFrame()

	case TabSwitchMsg:
		m.switchRoute(msg.Route)
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.all = msg.all
		m.today = msg.today
		m.clampCursors()
		if m.detail != nil {
			for _, t := range msg.all {
				if t.ID == m.detail.task.ID {
					m.detail.task = t
					break
				}
			}
		}
		return m, nil

	case countsLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.counts = msg.counts
		m.traceN = msg.traceN
		return m, nil

	case taskMutatedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus(msg.status)
		return m, tea.Batch(m.loadTasksCmd(), m.loadCountsCmd())

	case recoveredMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		if len(msg.ids) == 0 {
			m.setStatus("Nothing to recover")
			return m, nil
		}
		m.setStatus(pluralf("Recovered %d task", len(msg.ids)))
		return m, tea.Batch(m.loadTasksCmd(), m.loadCountsCmd())

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.isErr
		return m, nil
	}
	return m, nil
}

// handleFrame fires the coalesced scroll evaluation and reports edges to the
// trace recorder.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.armed = false
	prev := m.chrome.Visible()
	m.frames.Fire()
	cur := m.chrome.Visible()
	if cur != prev {
		if m.rec != nil {
			m.rec.Visibility(cur, m.scroll)
		}
		m.log.Debug("chrome visibility changed", zap.Bool("visible", cur), zap.Float64("pos", m.scroll))
	}
	return m, nil
}

func (m *Model) switchRoute(route string) {
	idx := m.order.IndexOf(route)
	if idx < 0 {
		return
	}
	m.active = idx
	m.detail = nil
	m.scroll = 0
	m.route.cur = route
	// the new surface starts at the top, inside the safe zone
	m.chrome.Observe(gesture.ScrollSample{Pos: 0, At: time.Now()}, gesture.Surface{Root: true})
	m.frames.Fire()
}

func (m *Model) openDetail(t repository.Task) {
	m.detail = &detailScreen{task: t}
	m.route.cur = RouteTaskDetail
}

func (m *Model) closeDetail() {
	m.detail = nil
	m.route.cur = m.order.Routes()[m.active]
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// activeRoute is the tab route, ignoring any detail screen on top.
func (m Model) activeRoute() string {
	return m.order.Routes()[m.active]
}

// visibleTasks returns the list backing the active tab.
func (m Model) visibleTasks() []repository.Task {
	if m.activeRoute() == RouteToday {
		return m.today
	}
	return m.all
}

func (m *Model) clampCursors() {
	for route, c := range m.cursor {
		var n int
		switch route {
		case RouteToday:
			n = len(m.today)
		case RouteTasks:
			n = len(m.all)
		}
		if n == 0 {
			m.cursor[route] = 0
		} else if c >= n {
			m.cursor[route] = n - 1
		}
	}
}

// Close releases everything the model subscribed to.
func (m Model) Close() {
	m.chrome.Close()
}
