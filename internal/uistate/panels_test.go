package uistate

import "testing"

func TestTabs(t *testing.T) {
	tabs := NewTabs(DefaultCategories, "Life")

	if tabs.Active() != "Life" {
		t.Fatalf("expected initial tab Life, got %q", tabs.Active())
	}

	if !tabs.Activate("Weather") {
		t.Fatal("expected Weather to be a known tab")
	}
	if tabs.Active() != "Weather" {
		t.Fatalf("expected active tab Weather, got %q", tabs.Active())
	}

	// Unknown names leave the active tab unchanged.
	if tabs.Activate("Gossip") {
		t.Error("unknown tab must not activate")
	}
	if tabs.Active() != "Weather" {
		t.Errorf("active tab changed to %q on unknown name", tabs.Active())
	}
}

func TestTabs_UnknownInitialFallsBackToFirst(t *testing.T) {
	tabs := NewTabs(DefaultCategories, "Gossip")
	if tabs.Active() != "Life" {
		t.Fatalf("expected fallback to first tab, got %q", tabs.Active())
	}
}

func TestPanels_OutOfOrderCompletion(t *testing.T) {
	panels := NewPanels(DefaultCategories)

	for _, name := range DefaultCategories {
		if panels.Panel(name).State() != PanelLoading {
			t.Fatalf("panel %q should start loading", name)
		}
	}

	// Fetches complete in arbitrary order; each writes only its own panel.
	panels.SetNews("Weather", 2)
	panels.SetError("Sports", "failed to load news")
	panels.SetNews("Life", 0)

	if got := panels.Panel("Weather").State(); got != PanelLoaded {
		t.Errorf("Weather state = %v, want loaded", got)
	}
	if got := panels.Panel("Sports").State(); got != PanelFailed {
		t.Errorf("Sports state = %v, want failed", got)
	}
	if got := panels.Panel("Sports").Error(); got != "failed to load news" {
		t.Errorf("Sports error = %q", got)
	}
	if got := panels.Panel("Nature").State(); got != PanelLoading {
		t.Errorf("Nature state = %v, want still loading", got)
	}
	if got := len(panels.Panel("Life").Cards()); got != 0 {
		t.Errorf("Life should have no cards, got %d", got)
	}

	if panels.Panel("Gossip") != nil {
		t.Error("unknown category must have no panel")
	}
}

func TestPanel_CardTogglesAreIndependent(t *testing.T) {
	panels := NewPanels(DefaultCategories)
	panels.SetNews("Life", 3)
	panel := panels.Panel("Life")

	for i, card := range panel.Cards() {
		if card.Expanded() {
			t.Fatalf("card %d should start collapsed", i)
		}
		if card.Label() != "Read more" {
			t.Fatalf("card %d label = %q, want %q", i, card.Label(), "Read more")
		}
	}

	panel.ToggleCard(1)

	cards := panel.Cards()
	if cards[0].Expanded() || cards[2].Expanded() {
		t.Error("toggling one card must not affect others")
	}
	if !cards[1].Expanded() {
		t.Error("expected card 1 expanded")
	}
	if cards[1].Label() != "Collapse" {
		t.Errorf("expanded card label = %q, want %q", cards[1].Label(), "Collapse")
	}

	panel.ToggleCard(1)
	if panel.Cards()[1].Expanded() {
		t.Error("expected card 1 collapsed again")
	}

	// Out-of-range toggles are ignored.
	panel.ToggleCard(-1)
	panel.ToggleCard(99)
}
