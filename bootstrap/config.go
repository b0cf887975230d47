package bootstrap

import (
	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/config"
	"github.com/kbukum/creational/variant"
)

// selection is the factory choice derived from config.
type selection struct {
	// pinned is the registry name of an explicitly configured variant.
	pinned string
	// priority lists registry names in preference order.
	priority []string
	policy   abstractfactory.CollaborationPolicy
}

func selectionFromConfig(cfg *config.FactoryConfig) (selection, error) {
	var s selection
	if cfg.Variant != "" {
		id, err := variant.Parse(cfg.Variant)
		if err != nil {
			return s, err
		}
		s.pinned = id.Name()
	}
	for _, raw := range cfg.Priority {
		id, err := variant.Parse(raw)
		if err != nil {
			return s, err
		}
		s.priority = append(s.priority, id.Name())
	}
	policy, err := abstractfactory.ParsePolicy(cfg.Collaboration)
	if err != nil {
		return s, err
	}
	s.policy = policy
	return s, nil
}
