package culture

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayCollects(t *testing.T) {
	gateway := NewEnumerationGateway(defaultTableProvider(t), nil, nil)

	assert.Equal(t, []string{"HH:mm:ss", "H:mm:ss", "HH:mm' Uhr'"}, gateway.Strings(0x0407, FieldLongTimeFormat))
	assert.Equal(t, []CalendarID{Gregorian, Japan}, gateway.Calendars(0x0411))
	assert.Equal(t, []string{"令和", "平成", "昭和", "大正", "明治"}, gateway.CalendarStrings(0x0411, Japan, CalendarEraName))
	assert.Equal(t, []string{"x-contoso"}, gateway.Locales(UserCustomCulture))
}

func TestGatewayKeepsPartialResults(t *testing.T) {
	tests := []struct {
		name     string
		failWith error
	}{
		{name: "panic"},
		{name: "error", failWith: errors.New("host enumeration failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			logger := logrus.New()
			logger.SetOutput(&out)
			logger.SetLevel(logrus.DebugLevel)

			reg := prometheus.NewRegistry()
			provider := &brokenEnumerations{LocaleProvider: defaultTableProvider(t), failWith: tt.failWith}
			gateway := NewEnumerationGateway(provider, logger, NewMetrics(reg))

			got := gateway.Strings(0x0407, FieldLongTimeFormat)
			assert.Equal(t, []string{"HH:mm:ss"}, got)
			assert.Contains(t, out.String(), "enumeration stopped early")

			families, err := reg.Gather()
			require.NoError(t, err)
			require.Len(t, families, 1)
			assert.Equal(t, "culture_partial_enumerations_total", families[0].GetName())
			assert.Equal(t, float64(1), families[0].GetMetric()[0].GetCounter().GetValue())
		})
	}
}

func TestEngineSurvivesBrokenEnumerations(t *testing.T) {
	provider := &brokenEnumerations{LocaleProvider: defaultTableProvider(t)}
	engine := NewEngine(provider, nil, nil)

	record, err := engine.ResolveCulture(EnglishUS, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"h:mm:ss tt"}, record.LongTimes())
	assert.Equal(t, []string{"h:mm tt"}, record.ShortTimes())

	// The gateway lock is released after a panic.
	assert.Equal(t, []LocaleID{0x1000}, engine.ListCultures(UserCustomCulture))
}

func TestNilGateway(t *testing.T) {
	var gateway *EnumerationGateway
	assert.Nil(t, gateway.Strings(EnglishUS, FieldLongTimeFormat))
	assert.Nil(t, gateway.Calendars(EnglishUS))
	assert.Nil(t, gateway.Locales(AllCultures))
}
