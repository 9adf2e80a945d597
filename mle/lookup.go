package mle

import "github.com/halvard/apostat/model"

// settingsOf returns m's registered "mle" settings group, or a
// default-constructed one if none was registered — spec.md §3.4 groups
// are optional, with documented defaults standing in for an absent group.
func settingsOf(m *model.Model) *Settings {
	if m.Settings != nil {
		if g, ok := m.Settings.Get("mle"); ok {
			if s, ok := g.(*Settings); ok {
				return s
			}
		}
	}
	return New()
}
