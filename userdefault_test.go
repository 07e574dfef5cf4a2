package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectUserLocale(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "lang", env: map[string]string{"LANG": "en_US.UTF-8"}, want: "en-US"},
		{name: "lc all wins", env: map[string]string{"LC_ALL": "de_DE", "LANG": "en_US.UTF-8"}, want: "de-DE"},
		{name: "lc messages before lang", env: map[string]string{"LC_MESSAGES": "fr_FR@euro", "LANG": "en_US"}, want: "fr-FR"},
		{name: "posix", env: map[string]string{"LANG": "C.UTF-8"}, want: ""},
		{name: "posix name", env: map[string]string{"LC_ALL": "POSIX"}, want: ""},
		{name: "unset", env: map[string]string{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectUserLocale(func(key string) string { return tt.env[key] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectUserLocaleFromEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ja_JP.UTF-8")

	assert.Equal(t, "ja-JP", DetectUserLocale())
}
