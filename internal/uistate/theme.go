package uistate

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const themeKey = "theme"

// Store is the client-local persistent storage the theme preference lives in
// (localStorage in the browser). The theme is the only persisted UI state.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// LoadTheme reads the persisted preference, defaulting to dark on first visit
// or an unrecognized value.
func LoadTheme(store Store) Theme {
	if v, ok := store.Get(themeKey); ok && Theme(v) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleTheme flips the theme and persists the choice.
func ToggleTheme(store Store, current Theme) Theme {
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}

	store.Set(themeKey, string(next))
	return next
}
