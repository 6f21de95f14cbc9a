package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
)

func testRegistry() *Registry {
	return MustNewRegistry(
		&mockRule{id: "MD001", name: "heading-increment"},
		&mockRule{
			id:   "MD013",
			name: "line-length",
			schema: Schema{
				{Name: "line_length", Kind: OptionInt, Default: 80, Min: 1},
			},
		},
	)
}

func resolvedIDs(resolved []ResolvedRule) []string {
	ids := make([]string, 0, len(resolved))
	for _, rr := range resolved {
		ids = append(ids, rr.Rule.ID())
	}
	return ids
}

func TestResolveRules_NilConfig(t *testing.T) {
	t.Parallel()

	resolved := ResolveRules(testRegistry(), nil)

	assert.Equal(t, []string{"MD001", "MD013"}, resolvedIDs(resolved))
	assert.Equal(t, 80, resolved[1].Options.Int("line_length", 0))
}

func TestResolveRules_Enablement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  func() *config.Config
		want []string
	}{
		{
			name: "defaults",
			cfg:  config.NewConfig,
			want: []string{"MD001", "MD013"},
		},
		{
			name: "default false disables all",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Default = config.BoolPtr(false)
				return cfg
			},
			want: nil,
		},
		{
			name: "per-rule enable overrides default false",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Default = config.BoolPtr(false)
				cfg.Rules["MD013"] = config.RuleConfig{Enabled: config.BoolPtr(true)}
				return cfg
			},
			want: []string{"MD013"},
		},
		{
			name: "per-rule disable",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Rules["MD001"] = config.RuleConfig{Enabled: config.BoolPtr(false)}
				return cfg
			},
			want: []string{"MD013"},
		},
		{
			name: "cli enable by name",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Default = config.BoolPtr(false)
				cfg.EnableRules = []string{"heading-increment"}
				return cfg
			},
			want: []string{"MD001"},
		},
		{
			name: "cli disable wins over enable",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.EnableRules = []string{"MD013"}
				cfg.DisableRules = []string{"line-length"}
				return cfg
			},
			want: []string{"MD001"},
		},
		{
			name: "unknown cli keys ignored",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.DisableRules = []string{"nonexistent"}
				return cfg
			},
			want: []string{"MD001", "MD013"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved := ResolveRules(testRegistry(), tt.cfg())
			if tt.want == nil {
				assert.Empty(t, resolved)
				return
			}
			assert.Equal(t, tt.want, resolvedIDs(resolved))
		})
	}
}

func TestResolveRules_SeverityAndOptions(t *testing.T) {
	t.Parallel()

	errSev := "error"
	badSev := "fatal"

	cfg := config.NewConfig()
	cfg.Rules["MD013"] = config.RuleConfig{
		Severity: &errSev,
		Options:  map[string]any{"line_length": 120, "unknown": true},
	}
	cfg.Rules["MD001"] = config.RuleConfig{Severity: &badSev}

	resolved := ResolveRules(testRegistry(), cfg)
	require.Len(t, resolved, 2)

	assert.Equal(t, config.SeverityWarning, resolved[0].Severity, "invalid severity keeps default")
	assert.Equal(t, config.SeverityError, resolved[1].Severity)
	assert.Equal(t, 120, resolved[1].Options.Int("line_length", 0))
	_, hasUnknown := resolved[1].Options["unknown"]
	assert.False(t, hasUnknown)
}
