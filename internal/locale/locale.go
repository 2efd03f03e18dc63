package locale

import "fmt"

// Target locales accepted by the Murf dubbing API.
var targetLocales = []string{
	"en_US", "en_UK", "en_IN", "en_SCOTT", "en_AU",
	"fr_FR", "de_DE", "es_ES", "es_MX", "it_IT", "pt_BR", "pl_PL",
	"hi_IN", "ko_KR", "ta_IN", "bn_IN", "ja_JP", "zh_CN", "nl_NL", "fi_FI",
	"ru_RU", "tr_TR", "uk_UA", "da_DK", "id_ID", "ro_RO", "nb_NO",
}

var supported = func() map[string]bool {
	m := make(map[string]bool, len(targetLocales))
	for _, l := range targetLocales {
		m[l] = true
	}
	return m
}()

// InvalidLocaleError reports a target locale outside the supported set.
type InvalidLocaleError struct {
	Locale string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("target locale %q is not supported", e.Locale)
}

// Supported reports whether code is an accepted dubbing target locale.
func Supported(code string) bool {
	return supported[code]
}

// Validate returns an InvalidLocaleError if code is not supported.
func Validate(code string) error {
	if !Supported(code) {
		return &InvalidLocaleError{Locale: code}
	}
	return nil
}

// All returns the supported target locales in their documented order.
func All() []string {
	out := make([]string, len(targetLocales))
	copy(out, targetLocales)
	return out
}
