package domain

// Language of the UI string tables.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageAR
}

// Theme of the UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
