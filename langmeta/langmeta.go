// Package langmeta provides a shared language metadata registry
// (English names, native names and emoji flags) used by dictionary
// resolution and the CLI UI.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
)

// Info describes language display metadata.
type Info struct {
	// Name is the English language name.
	Name string
	// Native is the language's own name for itself.
	Native string
	// Flag is the emoji flag shown next to the name.
	Flag string
}

// Registry contains canonical language metadata. Regional variants are
// listed only where their display differs from the base language;
// everything else is resolved in Resolve() via canonicalization and
// base fallback.
var Registry = map[string]Info{
	"ar":    {Name: "Arabic", Native: "العربية", Flag: "🇸🇦"},
	"as":    {Name: "Assamese", Native: "অসমীয়া", Flag: "🇮🇳"},
	"bg":    {Name: "Bulgarian", Native: "Български", Flag: "🇧🇬"},
	"bn":    {Name: "Bengali", Native: "বাংলা", Flag: "🇧🇩"},
	"cs":    {Name: "Czech", Native: "Čeština", Flag: "🇨🇿"},
	"da":    {Name: "Danish", Native: "Dansk", Flag: "🇩🇰"},
	"de":    {Name: "German", Native: "Deutsch", Flag: "🇩🇪"},
	"el":    {Name: "Greek", Native: "Ελληνικά", Flag: "🇬🇷"},
	"en":    {Name: "English", Native: "English", Flag: "🇺🇸"},
	"en-GB": {Name: "English (UK)", Native: "English (UK)", Flag: "🇬🇧"},
	"en-IN": {Name: "English (India)", Native: "English (India)", Flag: "🇮🇳"},
	"en-US": {Name: "English (US)", Native: "English (US)", Flag: "🇺🇸"},
	"es":    {Name: "Spanish", Native: "Español", Flag: "🇪🇸"},
	"es-MX": {Name: "Spanish (Mexico)", Native: "Español (México)", Flag: "🇲🇽"},
	"et":    {Name: "Estonian", Native: "Eesti", Flag: "🇪🇪"},
	"fa":    {Name: "Persian", Native: "فارسی", Flag: "🇮🇷"},
	"fi":    {Name: "Finnish", Native: "Suomi", Flag: "🇫🇮"},
	"fr":    {Name: "French", Native: "Français", Flag: "🇫🇷"},
	"fr-CA": {Name: "French (Canada)", Native: "Français (Canada)", Flag: "🇨🇦"},
	"gu":    {Name: "Gujarati", Native: "ગુજરાતી", Flag: "🇮🇳"},
	"he":    {Name: "Hebrew", Native: "עברית", Flag: "🇮🇱"},
	"hi":    {Name: "Hindi", Native: "हिन्दी", Flag: "🇮🇳"},
	"hr":    {Name: "Croatian", Native: "Hrvatski", Flag: "🇭🇷"},
	"hu":    {Name: "Hungarian", Native: "Magyar", Flag: "🇭🇺"},
	"id":    {Name: "Indonesian", Native: "Bahasa Indonesia", Flag: "🇮🇩"},
	"it":    {Name: "Italian", Native: "Italiano", Flag: "🇮🇹"},
	"ja":    {Name: "Japanese", Native: "日本語", Flag: "🇯🇵"},
	"km":    {Name: "Khmer", Native: "ខ្មែរ", Flag: "🇰🇭"},
	"kn":    {Name: "Kannada", Native: "ಕನ್ನಡ", Flag: "🇮🇳"},
	"ko":    {Name: "Korean", Native: "한국어", Flag: "🇰🇷"},
	"lt":    {Name: "Lithuanian", Native: "Lietuvių", Flag: "🇱🇹"},
	"lv":    {Name: "Latvian", Native: "Latviešu", Flag: "🇱🇻"},
	"ml":    {Name: "Malayalam", Native: "മലയാളം", Flag: "🇮🇳"},
	"mr":    {Name: "Marathi", Native: "मराठी", Flag: "🇮🇳"},
	"ms":    {Name: "Malay", Native: "Bahasa Melayu", Flag: "🇲🇾"},
	"my":    {Name: "Burmese", Native: "မြန်မာ", Flag: "🇲🇲"},
	"nb":    {Name: "Norwegian Bokmål", Native: "Norsk bokmål", Flag: "🇳🇴"},
	"ne":    {Name: "Nepali", Native: "नेपाली", Flag: "🇳🇵"},
	"nl":    {Name: "Dutch", Native: "Nederlands", Flag: "🇳🇱"},
	"or":    {Name: "Odia", Native: "ଓଡ଼ିଆ", Flag: "🇮🇳"},
	"pa":    {Name: "Punjabi", Native: "ਪੰਜਾਬੀ", Flag: "🇮🇳"},
	"pl":    {Name: "Polish", Native: "Polski", Flag: "🇵🇱"},
	"pt":    {Name: "Portuguese", Native: "Português", Flag: "🇵🇹"},
	"pt-BR": {Name: "Portuguese (Brazil)", Native: "Português (Brasil)", Flag: "🇧🇷"},
	"ro":    {Name: "Romanian", Native: "Română", Flag: "🇷🇴"},
	"ru":    {Name: "Russian", Native: "Русский", Flag: "🇷🇺"},
	"si":    {Name: "Sinhala", Native: "සිංහල", Flag: "🇱🇰"},
	"sk":    {Name: "Slovak", Native: "Slovenčina", Flag: "🇸🇰"},
	"sl":    {Name: "Slovenian", Native: "Slovenščina", Flag: "🇸🇮"},
	"sr":    {Name: "Serbian", Native: "Српски", Flag: "🇷🇸"},
	"sv":    {Name: "Swedish", Native: "Svenska", Flag: "🇸🇪"},
	"sw":    {Name: "Swahili", Native: "Kiswahili", Flag: "🇹🇿"},
	"ta":    {Name: "Tamil", Native: "தமிழ்", Flag: "🇮🇳"},
	"te":    {Name: "Telugu", Native: "తెలుగు", Flag: "🇮🇳"},
	"th":    {Name: "Thai", Native: "ไทย", Flag: "🇹🇭"},
	"tr":    {Name: "Turkish", Native: "Türkçe", Flag: "🇹🇷"},
	"uk":    {Name: "Ukrainian", Native: "Українська", Flag: "🇺🇦"},
	"ur":    {Name: "Urdu", Native: "اردو", Flag: "🇵🇰"},
	"vi":    {Name: "Vietnamese", Native: "Tiếng Việt", Flag: "🇻🇳"},
	"zh":    {Name: "Chinese", Native: "中文", Flag: "🇨🇳"},
	"zh-CN": {Name: "Chinese (Simplified)", Native: "简体中文", Flag: "🇨🇳"},
	"zh-TW": {Name: "Chinese (Traditional)", Native: "繁體中文", Flag: "🇹🇼"},
}

// Canonical returns the BCP 47 form of a language tag, so "hi_in" and
// "HI-in" both become "hi-IN". Tags the BCP 47 parser rejects are
// normalized by hand and otherwise passed through.
func Canonical(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	if tag, err := language.Parse(normalized); err == nil {
		return tag.String()
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns best-effort language metadata for language codes,
// supporting variants like hi_IN, hi-IN, and locale fallbacks.
func Resolve(lang string) Info {
	if m, ok := Registry[lang]; ok {
		return m
	}
	canon := Canonical(lang)
	if m, ok := Registry[canon]; ok {
		return m
	}
	if parts := strings.SplitN(canon, "-", 2); len(parts) == 2 {
		if m, ok := Registry[parts[0]]; ok {
			return m
		}
	}
	return Info{Name: lang}
}

// Label renders a locale for CLI listings, e.g. "🇮🇳 हिन्दी (hi-IN)".
func Label(lang string) string {
	canon := Canonical(lang)
	if canon == "" {
		return lang
	}

	info := Resolve(canon)
	name := info.Native
	if name == "" {
		name = info.Name
	}

	label := name
	if name != canon {
		label = name + " (" + canon + ")"
	}
	if info.Flag != "" {
		label = info.Flag + " " + label
	}
	return label
}
