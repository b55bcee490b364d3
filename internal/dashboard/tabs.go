package dashboard

import "sync"

// TabSet tracks which dashboard tab is active. Exactly one tab is active at
// a time; activating a tab deactivates the previous one.
type TabSet struct {
	mu     sync.Mutex
	tabs   []string
	active string
}

// NewTabSet creates a tab set with the first tab active. An empty tab list
// yields a set with no active tab.
func NewTabSet(tabs ...string) *TabSet {
	ts := &TabSet{tabs: tabs}
	if len(tabs) > 0 {
		ts.active = tabs[0]
	}
	return ts
}

// Activate switches to the named tab. Unknown names are ignored and leave
// the active tab unchanged; the return reports whether the switch happened.
func (t *TabSet) Activate(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tab := range t.tabs {
		if tab == name {
			t.active = name
			return true
		}
	}
	return false
}

// Active returns the currently active tab.
func (t *TabSet) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Tabs returns the tab names in display order.
func (t *TabSet) Tabs() []string {
	out := make([]string, len(t.tabs))
	copy(out, t.tabs)
	return out
}
