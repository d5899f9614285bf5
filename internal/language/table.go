// Package language holds the fixed list of languages offered for translation
// and speech output, mapped to the codes both Google services accept.
package language

// DefaultName is the language preselected in the form
const DefaultName = "English"

// DefaultCode is returned for any name outside the table
const DefaultCode = "en"

type entry struct {
	name string
	code string
}

// entries keeps display order for selectors
var entries = []entry{
	{"English", "en"},
	{"Spanish", "es"},
	{"French", "fr"},
	{"German", "de"},
	{"Italian", "it"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Chinese", "zh-CN"},
	{"Russian", "ru"},
	{"Portuguese", "pt"},
	{"Hindi", "hi"},
	{"Arabic", "ar"},
}

var codes = func() map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.name] = e.code
	}
	return m
}()

// CodeFor returns the language code for a display name, or DefaultCode
func CodeFor(name string) string {
	if code, ok := codes[name]; ok {
		return code
	}
	return DefaultCode
}

// Names returns display names in selector order
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
