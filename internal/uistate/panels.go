package uistate

// DefaultCategories are the category tabs rendered by the frontend markup.
var DefaultCategories = []string{"Life", "Sports", "Weather", "Nature"}

// Tabs tracks the active category tab. Exactly one tab is active; switching
// tabs never re-fetches, since every panel is loaded once on page load.
type Tabs struct {
	names  []string
	active string
}

func NewTabs(names []string, active string) *Tabs {
	t := &Tabs{names: names}
	t.Activate(active)
	if t.active == "" && len(names) > 0 {
		t.active = names[0]
	}
	return t
}

// Activate switches to the named tab and reports whether the name was known.
// Unknown names leave the active tab unchanged.
func (t *Tabs) Activate(name string) bool {
	for _, n := range t.names {
		if n == name {
			t.active = n
			return true
		}
	}
	return false
}

func (t *Tabs) Active() string { return t.active }

type PanelState int

const (
	PanelLoading PanelState = iota
	PanelLoaded
	PanelFailed
)

// Panel is one category's display area. Each panel is written only by its own
// fetch, so the four initial fetches may complete in any order.
type Panel struct {
	state PanelState
	cards []Card
	err   string
}

func (p *Panel) State() PanelState { return p.state }
func (p *Panel) Error() string     { return p.err }
func (p *Panel) Cards() []Card     { return p.cards }

// ToggleCard flips one card's expansion without touching the others.
func (p *Panel) ToggleCard(i int) {
	if i < 0 || i >= len(p.cards) {
		return
	}
	p.cards[i].Toggle()
}

// Card is a news card's two-state body toggle. Cards start collapsed.
type Card struct {
	expanded bool
}

func (c *Card) Toggle() { c.expanded = !c.expanded }

func (c Card) Expanded() bool { return c.expanded }

func (c Card) Label() string {
	if c.expanded {
		return "Collapse"
	}
	return "Read more"
}

// Panels holds one panel per category.
type Panels struct {
	byCategory map[string]*Panel
}

func NewPanels(categories []string) *Panels {
	p := &Panels{byCategory: make(map[string]*Panel, len(categories))}
	for _, name := range categories {
		p.byCategory[name] = &Panel{state: PanelLoading}
	}
	return p
}

// Panel returns the named category's panel, or nil for an unknown category.
func (p *Panels) Panel(category string) *Panel {
	return p.byCategory[category]
}

// SetNews marks the category's fetch complete with count collapsed cards.
func (p *Panels) SetNews(category string, count int) {
	panel := p.byCategory[category]
	if panel == nil {
		return
	}
	panel.state = PanelLoaded
	panel.cards = make([]Card, count)
	panel.err = ""
}

// SetError replaces the category's grid with an error placeholder instead of
// leaving a perpetual loading indicator.
func (p *Panels) SetError(category, message string) {
	panel := p.byCategory[category]
	if panel == nil {
		return
	}
	panel.state = PanelFailed
	panel.cards = nil
	panel.err = message
}
