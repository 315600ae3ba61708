package model

// ResourceTier classifies a language by the volume of lexical data the graph
// service holds for it.
type ResourceTier string

const (
	TierHigh   ResourceTier = "high_resource"
	TierMedium ResourceTier = "medium_resource"
	TierLow    ResourceTier = "low_resource"
)

// LanguageInfo is one supported language.
type LanguageInfo struct {
	Code string
	Name string
}

// Languages is the full language inventory grouped by resource tier.
var Languages = map[ResourceTier][]LanguageInfo{
	TierHigh: {
		{"en", "English"}, {"es", "Spanish"}, {"fr", "French"}, {"de", "German"},
		{"it", "Italian"}, {"pt", "Portuguese"}, {"ru", "Russian"}, {"zh", "Chinese"},
		{"ja", "Japanese"}, {"ko", "Korean"}, {"ar", "Arabic"}, {"tr", "Turkish"},
		{"nl", "Dutch"}, {"pl", "Polish"}, {"sv", "Swedish"}, {"no", "Norwegian"},
		{"da", "Danish"}, {"fi", "Finnish"}, {"cs", "Czech"}, {"ro", "Romanian"},
		{"hu", "Hungarian"}, {"uk", "Ukrainian"}, {"he", "Hebrew"}, {"bg", "Bulgarian"},
		{"el", "Greek"},
	},
	TierMedium: {
		{"hr", "Croatian"}, {"sr", "Serbian"}, {"sk", "Slovak"}, {"sl", "Slovenian"},
		{"lt", "Lithuanian"}, {"lv", "Latvian"}, {"et", "Estonian"}, {"th", "Thai"},
		{"vi", "Vietnamese"}, {"ms", "Malay"}, {"fa", "Persian"}, {"id", "Indonesian"},
		{"ta", "Tamil"}, {"hi", "Hindi"}, {"bn", "Bengali"},
	},
	TierLow: {
		{"sw", "Swahili"}, {"is", "Icelandic"}, {"mt", "Maltese"}, {"ga", "Irish"},
		{"cy", "Welsh"}, {"bs", "Bosnian"}, {"ka", "Georgian"}, {"am", "Amharic"},
		{"uz", "Uzbek"}, {"tl", "Tagalog"},
	},
}

// TierLanguages returns the language codes of one resource tier, in
// inventory order.
func TierLanguages(tier ResourceTier) []string {
	langs := Languages[tier]
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Code)
	}
	return codes
}

// AllLanguages returns every supported language code, high tier first.
func AllLanguages() []string {
	var codes []string
	for _, tier := range []ResourceTier{TierHigh, TierMedium, TierLow} {
		codes = append(codes, TierLanguages(tier)...)
	}
	return codes
}

// LangInfo looks up the display name and resource tier for a language code.
func LangInfo(code string) (name string, tier ResourceTier, ok bool) {
	for t, langs := range Languages {
		for _, l := range langs {
			if l.Code == code {
				return l.Name, t, true
			}
		}
	}
	return "", "", false
}
