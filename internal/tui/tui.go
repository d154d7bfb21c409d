package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/shopfront/internal/logger"
	"github.com/idilsaglam/shopfront/internal/model"
	"github.com/idilsaglam/shopfront/internal/shop"
	"github.com/idilsaglam/shopfront/internal/ui"
)

// feedbackExpiredMsg ends an "Added!" window.
type feedbackExpiredMsg shop.Feedback

type Model struct {
	session  *shop.Session
	keys     keyMap
	help     help.Model
	feedback time.Duration
	log      *logger.Logger

	cursor     int // catalog row
	cartCursor int // cart row
	receipt    *shop.Receipt
	errMsg     string
	width      int
}

func New(session *shop.Session, feedback time.Duration, log *logger.Logger) Model {
	return Model{
		session:  session,
		keys:     newKeyMap(),
		help:     help.New(),
		feedback: feedback,
		log:      log,
	}
}

// Run starts the Bubble Tea program on the alternate screen.
func Run(session *shop.Session, feedback time.Duration, log *logger.Logger) error {
	p := tea.NewProgram(New(session, feedback, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case feedbackExpiredMsg:
		m.session.ExpireFeedback(shop.Feedback(msg))
		return m, nil

	case tea.KeyMsg:
		// The order confirmation blocks until acknowledged.
		if m.receipt != nil {
			m.receipt = nil
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.session.CartOpen() {
			return m.updateCart(msg)
		}
		return m.updateCatalog(msg)
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := m.session.View().Cards
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(cards)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextFilter):
		m.selectFilter(m.filterIndex() + 1)
	case key.Matches(msg, m.keys.PrevFilter):
		m.selectFilter(m.filterIndex() - 1)
	case key.Matches(msg, m.keys.PickFilter):
		m.selectFilter(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Cart):
		m.session.ToggleCart()
		m.cartCursor = 0
	case key.Matches(msg, m.keys.Add):
		if m.cursor >= len(cards) {
			return m, nil
		}
		return m.add(cards[m.cursor].ProductID)
	}
	return m, nil
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.session.Store().Lines()
	current := func() (int, bool) {
		if m.cartCursor < len(lines) {
			return lines[m.cartCursor].ID, true
		}
		return 0, false
	}
	switch {
	case key.Matches(msg, m.keys.Cart), key.Matches(msg, m.keys.Close):
		m.session.CloseCart()
	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}
	case key.Matches(msg, m.keys.Inc):
		if id, ok := current(); ok {
			m.setErr(m.session.ChangeQuantity(id, 1))
		}
	case key.Matches(msg, m.keys.Dec):
		if id, ok := current(); ok {
			m.setErr(m.session.ChangeQuantity(id, -1))
		}
	case key.Matches(msg, m.keys.Remove):
		if id, ok := current(); ok {
			m.setErr(m.session.Remove(id))
		}
	case key.Matches(msg, m.keys.Checkout):
		r, ok, err := m.session.Checkout()
		m.setErr(err)
		if ok {
			m.receipt = &r
		}
	}
	if n := len(m.session.Store().Lines()); m.cartCursor >= n {
		m.cartCursor = max(n-1, 0)
	}
	return m, nil
}

func (m Model) add(productID int) (tea.Model, tea.Cmd) {
	fb, ok, err := m.session.Add(productID)
	m.setErr(err)
	if !ok {
		return m, nil
	}
	return m, tea.Tick(m.feedback, func(time.Time) tea.Msg {
		return feedbackExpiredMsg(fb)
	})
}

func (m *Model) setErr(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	m.log.Error("cart update failed", zap.Error(err))
	m.errMsg = err.Error()
}

func (m Model) filterIndex() int {
	for i, f := range model.Filters() {
		if f == m.session.Filter() {
			return i
		}
	}
	return 0
}

func (m *Model) selectFilter(i int) {
	filters := model.Filters()
	i = (i + len(filters)) % len(filters)
	m.session.SetFilter(filters[i])
	m.cursor = 0
}

func (m Model) View() string {
	t := ui.Current()
	v := m.session.View()

	var b strings.Builder
	b.WriteString(m.header(v))
	b.WriteString("\n\n")

	grid := m.catalogView(v)
	if v.CartOpen {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.cartView(v))
	}
	b.WriteString(grid)

	if m.receipt != nil {
		b.WriteString("\n\n")
		b.WriteString(ui.Box(
			t.Success.Render("Order placed successfully! Total: "+m.receipt.Total) + "\n" +
				t.Muted.Render("press any key"),
		))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + t.Error.Render(t.SymFail+" "+m.errMsg))
	}

	m.keys.cartOpenState = v.CartOpen
	b.WriteString("\n\n" + m.help.View(m.keys))
	return ui.Box(b.String())
}

func (m Model) header(v shop.View) string {
	t := ui.Current()
	tabs := make([]string, 0, len(model.Filters()))
	for _, f := range model.Filters() {
		if string(f) == v.Filter {
			tabs = append(tabs, t.Active.Render(f.Label()))
		} else {
			tabs = append(tabs, t.Muted.Render(" "+f.Label()+" "))
		}
	}
	badge := t.Accent.Render(fmt.Sprintf("%s %d", t.SymCart, v.Summary.Count))
	return t.Title.Render("Shop") + "   " + strings.Join(tabs, " ") + "   " + badge
}

func (m Model) catalogView(v shop.View) string {
	t := ui.Current()
	if len(v.Cards) == 0 {
		return t.Muted.Render("No products")
	}
	rows := make([]string, 0, len(v.Cards))
	for i, c := range v.Cards {
		button := "[" + c.Button.Label() + "]"
		if v.CartOpen {
			// dimmed behind the cart overlay
			rows = append(rows, t.Dimmed.Render(fmt.Sprintf("  %s %-20s %-12s %10s  %s", c.Icon, c.Title, c.Category, c.Price, button)))
			continue
		}
		prefix := "  "
		if i == m.cursor {
			prefix = t.Selected.Render("> ")
		}
		if c.Button == shop.ButtonJustAdded {
			button = t.Disabled.Render(button)
		} else {
			button = t.Accent.Render(button)
		}
		rows = append(rows, fmt.Sprintf("%s%s %-20s %s %s  %s",
			prefix, c.Icon, c.Title,
			t.Muted.Render(fmt.Sprintf("%-12s", c.Category)),
			t.Price.Render(fmt.Sprintf("%10s", c.Price)),
			button,
		))
	}
	return strings.Join(rows, "\n")
}

func (m Model) cartView(v shop.View) string {
	t := ui.Current()
	rows := []string{t.Title.Render("Your Cart"), ""}
	for i, l := range v.Lines {
		if l.Placeholder {
			rows = append(rows, t.Muted.Render(l.Title))
			continue
		}
		prefix := "  "
		if i == m.cartCursor {
			prefix = t.Selected.Render("> ")
		}
		rows = append(rows,
			fmt.Sprintf("%s%s %s", prefix, l.Icon, l.Title),
			fmt.Sprintf("    %s  − %d +  %s", t.Price.Render(l.Price), l.Quantity, t.Muted.Render("= "+l.Subtotal)),
		)
	}
	rows = append(rows, "", "Total: "+t.Price.Render(v.Summary.Total))
	return ui.Box(strings.Join(rows, "\n"))
}
