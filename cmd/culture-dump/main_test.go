package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunSingleLocale(t *testing.T) {
	t.Setenv("LC_ALL", "C")

	var buf bytes.Buffer
	err := run(dumpConfig{locales: []string{"de-DE"}, calendars: true}, &buf)
	require.NoError(t, err)

	var view cultureView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "de-DE", view.Name)
	assert.Equal(t, "German (Germany)", view.EnglishName)
	assert.Equal(t, "1.234.567,89", view.Numbers.Sample)
	assert.Equal(t, "1.234,50 €", view.Numbers.Money)
	require.NotEmpty(t, view.Calendars)
	assert.Equal(t, ".", view.Calendars[0].DateSeparator)
}

func TestRunMultipleLocales(t *testing.T) {
	t.Setenv("LC_ALL", "C")

	var buf bytes.Buffer
	err := run(dumpConfig{locales: []string{"en-US", "fr-FR"}}, &buf)
	require.NoError(t, err)

	var views []cultureView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "en-US", views[0].Name)
	assert.Equal(t, "1,234,567.89", views[0].Numbers.Sample)
	assert.Empty(t, views[0].Calendars)
	assert.Equal(t, "fr-FR", views[1].Name)
}

func TestRunList(t *testing.T) {
	t.Setenv("LC_ALL", "C")

	var buf bytes.Buffer
	require.NoError(t, run(dumpConfig{list: true}, &buf))
	assert.Contains(t, buf.String(), "ja-JP")
	assert.Contains(t, buf.String(), "x-contoso")
}

func TestRunUnknownLocale(t *testing.T) {
	t.Setenv("LC_ALL", "C")

	err := run(dumpConfig{locales: []string{"ko-KR"}}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLocaleFlag(t *testing.T) {
	var f localeFlag
	require.NoError(t, f.Set("en-US, de-DE"))
	require.NoError(t, f.Set("ja-JP"))
	assert.Equal(t, []string{"en-US", "de-DE", "ja-JP"}, f.items)
	assert.Equal(t, "en-US,de-DE,ja-JP", f.String())
}
