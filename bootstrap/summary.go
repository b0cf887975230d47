package bootstrap

import (
	"time"

	"github.com/kbukum/creational/logger"
)

// Summary records what New wired together.
type Summary struct {
	Name          string
	Factories     []string
	Creators      []string
	Selected      string
	Variant       string
	Policy        string
	Pooled        bool
	MaxIdle       int
	SetupDuration time.Duration
}

// Fields returns the summary as log fields.
func (s *Summary) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"name":               s.Name,
		"factories":          s.Factories,
		"creators":           s.Creators,
		logger.FieldFactory:  s.Selected,
		logger.FieldVariant:  s.Variant,
		"collaboration":      s.Policy,
		"pooled":             s.Pooled,
		logger.FieldDuration: s.SetupDuration.Milliseconds(),
	}
	if s.Pooled {
		fields["max_idle"] = s.MaxIdle
	}
	return fields
}

// Log writes the summary as a single info line.
func (s *Summary) Log(log *logger.Logger) {
	log.Info("factories ready", s.Fields())
}
