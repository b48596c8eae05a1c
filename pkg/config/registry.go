package config

// Mutation operations and default-service resolution. All mutations are pure
// in-memory state changes; persisting the result is an explicit, separate
// step owned by the caller. Service selectors are 1-based, matching what the
// CLI shows the user.

// checkIndex validates a 1-based selector against the current service list.
func (cfg *Config) checkIndex(index int) error {
	if len(cfg.Services) == 0 {
		return ErrEmptyRegistry
	}
	if index < 1 || index > len(cfg.Services) {
		return &IndexError{Index: index, Len: len(cfg.Services)}
	}
	return nil
}

// Service returns a copy of the entry at the given 1-based index.
func (cfg *Config) Service(index int) (ServiceConfig, error) {
	if err := cfg.checkIndex(index); err != nil {
		return ServiceConfig{}, err
	}
	return cfg.Services[index-1], nil
}

// AddService appends a service to the registry, assigning a fresh ID when the
// entry has none. The first service ever added becomes the default. Returns a
// pointer to the stored entry.
func (cfg *Config) AddService(svc ServiceConfig) *ServiceConfig {
	if svc.ID == "" {
		svc.ID = NewServiceID()
	}
	if len(cfg.Services) == 0 {
		cfg.DefaultServiceID = svc.ID
		cfg.DefaultService = svc.Service
	}
	cfg.Services = append(cfg.Services, svc)
	return &cfg.Services[len(cfg.Services)-1]
}

// EditService replaces the service at the given 1-based index. The original
// ID is preserved unless the replacement explicitly carries a different one,
// so a default that referenced the entry keeps referencing it.
func (cfg *Config) EditService(index int, svc ServiceConfig) error {
	if err := cfg.checkIndex(index); err != nil {
		return err
	}
	if svc.ID == "" {
		svc.ID = cfg.Services[index-1].ID
	}
	cfg.Services[index-1] = svc
	return nil
}

// RemoveService deletes the service at the given 1-based index. If the
// removed entry was the default, the first remaining service is elected as
// the new default; an emptied registry clears the default entirely.
func (cfg *Config) RemoveService(index int) (ServiceConfig, error) {
	if err := cfg.checkIndex(index); err != nil {
		return ServiceConfig{}, err
	}
	removed := cfg.Services[index-1]
	cfg.Services = append(cfg.Services[:index-1], cfg.Services[index:]...)

	if removed.ID == cfg.DefaultServiceID {
		if len(cfg.Services) > 0 {
			cfg.DefaultServiceID = cfg.Services[0].ID
			cfg.DefaultService = cfg.Services[0].Service
		} else {
			cfg.DefaultServiceID = ""
		}
	}
	return removed, nil
}

// SetDefaultService marks the service at the given 1-based index as default,
// updating both the ID and the legacy kind field.
func (cfg *Config) SetDefaultService(index int) error {
	if err := cfg.checkIndex(index); err != nil {
		return err
	}
	cfg.DefaultServiceID = cfg.Services[index-1].ID
	cfg.DefaultService = cfg.Services[index-1].Service
	return nil
}

// GetDefaultService resolves the effective default service:
//
//  1. the entry whose ID matches DefaultServiceID, when set and found;
//  2. otherwise the first entry matching the legacy DefaultService kind
//     (files written before IDs existed);
//  3. otherwise the first entry, so resolution always makes progress even
//     after a hand-edited file left both fields inconsistent.
func (cfg *Config) GetDefaultService() (*ServiceConfig, error) {
	if len(cfg.Services) == 0 {
		return nil, ErrNoServiceConfigured
	}
	if cfg.DefaultServiceID != "" {
		for i := range cfg.Services {
			if cfg.Services[i].ID == cfg.DefaultServiceID {
				return &cfg.Services[i], nil
			}
		}
	}
	for i := range cfg.Services {
		if cfg.Services[i].Service == cfg.DefaultService {
			return &cfg.Services[i], nil
		}
	}
	return &cfg.Services[0], nil
}

// IsDefaultService reports whether svc is the current default, mirroring the
// resolution priority: by ID when DefaultServiceID is set, by legacy kind
// otherwise.
func (cfg *Config) IsDefaultService(svc *ServiceConfig) bool {
	if cfg.DefaultServiceID != "" {
		return svc.ID == cfg.DefaultServiceID
	}
	return svc.Service == cfg.DefaultService
}

// migrate reconciles a freshly loaded registry with the current schema:
// legacy entries without an ID get one, and an unset DefaultServiceID is
// pointed at the first entry. The result is not re-persisted here; the next
// explicit save writes it out.
func (cfg *Config) migrate() {
	for i := range cfg.Services {
		if cfg.Services[i].ID == "" {
			cfg.Services[i].ID = NewServiceID()
		}
	}
	if cfg.DefaultServiceID == "" && len(cfg.Services) > 0 {
		cfg.DefaultServiceID = cfg.Services[0].ID
	}
}
