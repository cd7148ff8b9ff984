package local

import "fmt"

type Language string

const (
	Ara = Language("ar")
	Eng = Language("en")
)

// Default is the language used when nothing else is known about the user.
const Default = Ara

func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case Ara:
		return Ara, true
	case Eng:
		return Eng, true
	default:
		return Default, false
	}
}

type Localization struct {
	language Language
	text     string
}

// TextSet holds one phrase and its translations. Default is used for any
// language without a translation.
type TextSet struct {
	Default          string
	translationsText map[Language]string
}

func NewTrans(language Language, text string) Localization {
	return Localization{
		language: language,
		text:     text,
	}
}

func NewSet(defaultText string, localizations ...Localization) TextSet {
	set := TextSet{
		Default:          defaultText,
		translationsText: make(map[Language]string),
	}
	for _, localization := range localizations {
		set.translationsText[localization.language] = localization.text
	}
	return set
}

func (l TextSet) Text(language Language) string {
	if text, ok := l.translationsText[language]; ok {
		return text
	}
	return l.Default
}

func (l TextSet) DefaultFormat(a ...any) string {
	return fmt.Sprintf(l.Default, a...)
}

func (l TextSet) Format(language Language, a ...any) string {
	if text, ok := l.translationsText[language]; ok {
		return fmt.Sprintf(text, a...)
	}
	return l.DefaultFormat(a...)
}
