package culture

import (
	"os"
	"strings"
)

// localeEnvs are consulted in POSIX precedence order.
var localeEnvs = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// DetectUserLocale returns the locale name named by the process environment,
// e.g. "en-US" for LANG=en_US.UTF-8. It returns "" when nothing usable is set.
func DetectUserLocale() string {
	return detectUserLocale(os.Getenv)
}

func detectUserLocale(getenv func(string) string) string {
	for _, key := range localeEnvs {
		if v := getenv(key); v != "" {
			return parsePOSIXLocale(v)
		}
	}
	return ""
}

// parsePOSIXLocale strips the codeset and modifier of a POSIX locale value.
// "C" and "POSIX" name no locale.
func parsePOSIXLocale(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
