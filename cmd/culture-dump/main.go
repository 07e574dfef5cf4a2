package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	culture "github.com/goliatone/go-culture"
)

type dumpConfig struct {
	dataPath      string
	overridesPath string
	userOverride  bool
	calendars     bool
	list          bool
	verbose       bool
	locales       []string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

type cultureView struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	EnglishName     string         `yaml:"english_name"`
	NativeName      string         `yaml:"native_name"`
	DisplayName     string         `yaml:"display_name"`
	Neutral         bool           `yaml:"neutral"`
	Parent          string         `yaml:"parent"`
	ISOLanguage     string         `yaml:"iso_language"`
	ISORegion       string         `yaml:"iso_region,omitempty"`
	UserOverride    bool           `yaml:"user_override"`
	ListSeparator   string         `yaml:"list_separator"`
	AMDesignator    string         `yaml:"am"`
	PMDesignator    string         `yaml:"pm"`
	LongTimes       []string       `yaml:"long_times"`
	ShortTimes      []string       `yaml:"short_times"`
	FirstDayOfWeek  int            `yaml:"first_day_of_week"`
	RightToLeft     bool           `yaml:"right_to_left"`
	Numbers         numbersView    `yaml:"numbers"`
	DefaultCalendar string         `yaml:"default_calendar"`
	Calendars       []calendarView `yaml:"calendars,omitempty"`
}

type numbersView struct {
	Decimal   string `yaml:"decimal"`
	Group     string `yaml:"group"`
	Grouping  []int  `yaml:"grouping,flow"`
	Currency  string `yaml:"currency"`
	ISO4217   string `yaml:"iso4217"`
	Sample    string `yaml:"sample"`
	Money     string `yaml:"money"`
	Percent   string `yaml:"percent"`
	NegSample string `yaml:"negative_sample"`
}

type calendarView struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	DateSeparator string   `yaml:"date_separator"`
	ShortDates    []string `yaml:"short_dates"`
	LongDates     []string `yaml:"long_dates"`
	Eras          []string `yaml:"eras,flow"`
	Months        []string `yaml:"months,flow"`
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "culture-dump: %v\n", err)
	os.Exit(1)
}

func parseFlags() (dumpConfig, error) {
	var cfg dumpConfig
	var localeList localeFlag

	flag.StringVar(&cfg.dataPath, "data", "", "path to a locale table file (yaml or json); the embedded tables are used when empty")
	flag.StringVar(&cfg.overridesPath, "overrides", "", "path to a user override file applied to the user default locale")
	flag.BoolVar(&cfg.userOverride, "user-override", false, "honor user overrides when resolving")
	flag.BoolVar(&cfg.calendars, "calendars", false, "include every calendar the culture supports")
	flag.BoolVar(&cfg.list, "list", false, "list the known cultures and exit")
	flag.BoolVar(&cfg.verbose, "v", false, "log cache activity to stderr")
	flag.Var(&localeList, "locale", "locale name to dump. Repeat flag or separate with commas to add more.")

	flag.Parse()

	cfg.locales = localeList.items
	if !cfg.list && len(cfg.locales) == 0 {
		return dumpConfig{}, errors.New("at least one -locale value is required")
	}
	return cfg, nil
}

func run(cfg dumpConfig, out io.Writer) error {
	opts := []culture.Option{culture.WithDetectedUserLocale()}
	if cfg.dataPath != "" {
		opts = append(opts, culture.WithLocaleData(cfg.dataPath))
	}
	if cfg.overridesPath != "" {
		opts = append(opts, culture.WithUserOverrides(cfg.overridesPath))
	}
	if cfg.verbose {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, culture.WithLogger(logger))
	}

	engine, err := culture.New(opts...)
	if err != nil {
		return err
	}

	if cfg.list {
		return listCultures(engine, out)
	}

	views := make([]cultureView, 0, len(cfg.locales))
	for _, name := range cfg.locales {
		record, err := engine.ResolveCultureByName(name, cfg.userOverride)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", name, err)
		}
		views = append(views, buildView(record, cfg.calendars))
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	if len(views) == 1 {
		return enc.Encode(views[0])
	}
	return enc.Encode(views)
}

func listCultures(engine *culture.Engine, out io.Writer) error {
	for _, id := range engine.ListCultures(culture.AllCultures | culture.UserCustomCulture) {
		record, err := engine.ResolveCulture(id, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %s  %s\n", record.Name(), id, record.EnglishName())
	}
	return nil
}

func buildView(record *culture.CultureRecord, withCalendars bool) cultureView {
	numbers := record.NumberFormat()
	view := cultureView{
		ID:              record.ID().String(),
		Name:            record.Name(),
		EnglishName:     record.EnglishName(),
		NativeName:      record.NativeName(),
		DisplayName:     record.DisplayName(),
		Neutral:         record.IsNeutral(),
		Parent:          record.ParentID().String(),
		ISOLanguage:     record.TwoLetterISOLanguageName(),
		ISORegion:       record.TwoLetterISORegionName(),
		UserOverride:    record.UsesUserOverride(),
		ListSeparator:   record.ListSeparator(),
		AMDesignator:    record.AMDesignator(),
		PMDesignator:    record.PMDesignator(),
		LongTimes:       record.LongTimes(),
		ShortTimes:      record.ShortTimes(),
		FirstDayOfWeek:  record.FirstDayOfWeek(),
		RightToLeft:     record.IsRightToLeft(),
		DefaultCalendar: record.DefaultCalendar().String(),
		Numbers: numbersView{
			Decimal:   numbers.DecimalSeparator,
			Group:     numbers.GroupSeparator,
			Grouping:  numbers.GroupSizes,
			Currency:  numbers.CurrencySymbol,
			ISO4217:   numbers.ISOCurrencySymbol,
			Sample:    culture.FormatNumber(numbers, 1234567.891, -1),
			NegSample: culture.FormatNumber(numbers, -1234.5, -1),
			Money:     culture.FormatCurrency(numbers, 1234.5),
			Percent:   culture.FormatPercent(numbers, 0.125, 1),
		},
	}

	if !withCalendars {
		return view
	}
	for _, cal := range record.CalendarIDs() {
		calendar := record.Calendar(cal)
		view.Calendars = append(view.Calendars, calendarView{
			ID:            cal.String(),
			Name:          calendar.NativeName(),
			DateSeparator: calendar.DateSeparator(),
			ShortDates:    calendar.ShortDatePatterns(),
			LongDates:     calendar.LongDatePatterns(),
			Eras:          calendar.EraNames(),
			Months:        calendar.MonthNames(),
		})
	}
	return view
}
