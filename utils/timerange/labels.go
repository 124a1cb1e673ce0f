package timerange

import (
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

type labelLayouts struct {
	locale monday.Locale
	day    string
	month  string
}

// Layouts use Go reference-time tokens; monday translates the day and month names.
var labelFormats = map[string]labelLayouts{
	"en": {locale: monday.LocaleEnUS, day: "Monday, January 2, 2006", month: "January 2006"},
	"fr": {locale: monday.LocaleFrFR, day: "Monday 2 January 2006", month: "January 2006"},
	"es": {locale: monday.LocaleEsES, day: "Monday, 2 de January de 2006", month: "January de 2006"},
	"de": {locale: monday.LocaleDeDE, day: "Monday, 2. January 2006", month: "January 2006"},
}

// BaseLanguage reduces a BCP 47 locale ("fr-CA", "en_US") to a supported
// base language, falling back to "en".
func BaseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	if _, ok := labelFormats[base.String()]; ok {
		return base.String()
	}
	return "en"
}

func formatLabel(g models.Granularity, start time.Time, locale string) string {
	f := labelFormats[BaseLanguage(locale)]
	switch g {
	case models.GranularityDay:
		return monday.Format(start, f.day, f.locale)
	case models.GranularityMonth:
		return monday.Format(start, f.month, f.locale)
	}
	return strconv.Itoa(start.Year())
}
