package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format config.RuleFormat
		id     string
		rule   string
		want   string
	}{
		{"name format", config.RuleFormatName, "MD009", "no-trailing-spaces", "no-trailing-spaces"},
		{"id format", config.RuleFormatID, "MD009", "no-trailing-spaces", "MD009"},
		{"combined format", config.RuleFormatCombined, "MD009", "no-trailing-spaces", "MD009/no-trailing-spaces"},
		{"empty name falls back to id", config.RuleFormatName, "MD009", "", "MD009"},
		{"unknown format uses name", config.RuleFormat("bogus"), "MD009", "no-trailing-spaces", "no-trailing-spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, config.FormatRuleID(tt.format, tt.id, tt.rule))
		})
	}
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
flavor: gfm
default: false
rules:
  MD013:
    enabled: true
    severity: error
    options:
      line_length: 120
ignore:
  - vendor/**
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	require.NotNil(t, cfg.Default)
	assert.False(t, *cfg.Default)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)

	rule, ok := cfg.Rules["MD013"]
	require.True(t, ok)
	require.NotNil(t, rule.Enabled)
	assert.True(t, *rule.Enabled)
	require.NotNil(t, rule.Severity)
	assert.Equal(t, "error", *rule.Severity)
	assert.Equal(t, 120, rule.Options["line_length"])
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("rules: [not, a, map]"))
	require.Error(t, err)
}

func TestFromYAMLEmptyInitializesRules(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Rules)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	out, err := cfg.ToYAMLWithHeader("# mdstyle configuration")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# mdstyle configuration\n\n")
	assert.Contains(t, text, "flavor: commonmark")
	assert.NotContains(t, text, "format")

	roundTrip, err := config.FromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Flavor, roundTrip.Flavor)
}

func TestClone(t *testing.T) {
	t.Parallel()

	severity := "error"
	original := config.NewConfig()
	original.Default = config.BoolPtr(true)
	original.Ignore = []string{"a"}
	original.EnableRules = []string{"MD001"}
	original.Rules["MD007"] = config.RuleConfig{
		Enabled:  config.BoolPtr(true),
		Severity: &severity,
		Options:  map[string]any{"indent": 4},
	}

	clone := original.Clone()
	require.NotNil(t, clone)

	clone.Ignore[0] = "b"
	clone.EnableRules[0] = "MD002"
	*clone.Default = false
	clone.Rules["MD007"].Options["indent"] = 2
	*clone.Rules["MD007"].Enabled = false

	assert.Equal(t, "a", original.Ignore[0])
	assert.Equal(t, "MD001", original.EnableRules[0])
	assert.True(t, *original.Default)
	assert.Equal(t, 4, original.Rules["MD007"].Options["indent"])
	assert.True(t, *original.Rules["MD007"].Enabled)

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())
}

func TestSeverityIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SeverityError.IsValid())
	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
}

func TestOutputFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatSummary.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestFlavorIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FlavorGFM.IsValid())
	assert.False(t, config.Flavor("mdx").IsValid())
}
