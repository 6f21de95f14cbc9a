package lint

// Info is a serializable description of a rule.
type Info struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Enabled     bool         `json:"enabled"`
	Severity    string       `json:"severity"`
	Options     []OptionInfo `json:"options,omitempty"`
}

// OptionInfo describes one rule option.
type OptionInfo struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Default     any      `json:"default"`
	Allowed     []string `json:"allowed,omitempty"`
	Description string   `json:"description,omitempty"`
}

// NewInfo builds the registry record for a rule.
func NewInfo(rule Rule) Info {
	info := Info{
		ID:          rule.ID(),
		Name:        rule.Name(),
		Description: rule.Description(),
		Tags:        rule.Tags(),
		Enabled:     rule.DefaultEnabled(),
		Severity:    string(rule.DefaultSeverity()),
	}
	for _, spec := range rule.Schema() {
		info.Options = append(info.Options, OptionInfo{
			Name:        spec.Name,
			Kind:        string(spec.Kind),
			Default:     spec.Default,
			Allowed:     spec.Allowed,
			Description: spec.Description,
		})
	}
	return info
}

// Infos returns the records of every rule in the registry, ordered by ID.
func (r *Registry) Infos() []Info {
	infos := make([]Info, 0, len(r.rules))
	for _, rule := range r.rules {
		infos = append(infos, NewInfo(rule))
	}
	return infos
}
