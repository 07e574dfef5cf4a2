package culture

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.Provider)

	engine, err := cfg.BuildEngine()
	require.NoError(t, err)

	record, err := engine.ResolveCultureByName("ja-JP", false)
	require.NoError(t, err)
	assert.Equal(t, "Japanese (Japan)", record.EnglishName())
	assert.Equal(t, EnglishUS, engine.Provider().UserDefaultID())
}

func TestConfigLocaleData(t *testing.T) {
	engine, err := New(
		WithLocaleData(filepath.Join("testdata", "locales.json")),
		WithUserOverrides(filepath.Join("testdata", "overrides.yaml")),
	)
	require.NoError(t, err)

	dutch, err := engine.ResolveCultureByName("nl-NL", false)
	require.NoError(t, err)
	assert.Equal(t, ",", dutch.NumberFormat().DecimalSeparator)
	assert.Equal(t, "-", engine.ResolveCalendar(0x0413, Gregorian).DateSeparator())

	_, err = engine.ResolveCultureByName("de-DE", false)
	assert.ErrorIs(t, err, ErrInvalidLocaleIdentifier)

	overridden, err := engine.ResolveCulture(UserDefault, true)
	require.NoError(t, err)
	assert.Equal(t, ",", overridden.NumberFormat().DecimalSeparator)
}

func TestConfigDefaultLocales(t *testing.T) {
	engine, err := New(
		WithUserDefaultLocale("de-DE"),
		WithSystemDefaultLocale("fr-FR"),
	)
	require.NoError(t, err)

	assert.Equal(t, LocaleID(0x0407), engine.Provider().UserDefaultID())
	assert.Equal(t, LocaleID(0x040C), engine.Provider().SystemDefaultID())

	record, err := engine.ResolveCulture(SystemDefault, false)
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", record.Name())
}

func TestConfigDetectedUserLocale(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")

	engine, err := New(WithDetectedUserLocale())
	require.NoError(t, err)
	assert.Equal(t, LocaleID(0x0407), engine.Provider().UserDefaultID())

	t.Setenv("LC_ALL", "ko_KR.UTF-8")
	engine, err = New(WithDetectedUserLocale())
	require.NoError(t, err)
	assert.Equal(t, EnglishUS, engine.Provider().UserDefaultID())
}

func TestConfigProvider(t *testing.T) {
	provider := defaultTableProvider(t)

	engine, err := New(WithProvider(provider), WithLocaleData("ignored.yaml"))
	require.NoError(t, err)
	assert.Same(t, provider, engine.Provider())

	_, err = NewConfig(WithProvider(nil))
	assert.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "missing data file", opts: []Option{WithLocaleData(filepath.Join("testdata", "missing.yaml"))}},
		{name: "missing overrides", opts: []Option{WithUserOverrides(filepath.Join("testdata", "missing.yaml"))}},
		{name: "unknown user default", opts: []Option{WithUserDefaultLocale("ko-KR")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			assert.Error(t, err)
		})
	}

	var cfg *Config
	_, err := cfg.BuildEngine()
	assert.Error(t, err)
}

func TestConfigMetricsAndLogger(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger := logrus.New()

	engine, err := New(WithMetrics(reg), WithLogger(logger))
	require.NoError(t, err)

	_, err = engine.ResolveCulture(EnglishUS, false)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "culture_cache_lookups_total")
	assert.Contains(t, names, "culture_cached_records")
}

func TestConfigCLDRNames(t *testing.T) {
	engine, err := New(
		WithLocaleData(filepath.Join("testdata", "locales.json")),
		WithCLDRNames(),
	)
	require.NoError(t, err)

	dutch, err := engine.ResolveCultureByName("nl-NL", false)
	require.NoError(t, err)
	assert.Equal(t, "Dutch (Netherlands)", dutch.EnglishName())
	assert.Equal(t, "EUR", dutch.NumberFormat().ISOCurrencySymbol)
}
