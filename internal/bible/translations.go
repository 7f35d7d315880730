package bible

import "strings"

// Translation は翻訳レジストリの1エントリ。Codeが有効な翻訳トークン。
type Translation struct {
	Code        string
	Description string
}

// DefaultTranslation は未知の翻訳コードに対するフォールバック。
const DefaultTranslation = "ESV"

// translations は有効な翻訳コードのレジストリ。
// CodeはBible Gatewayのversionパラメータと一致する大文字の正準表記。
var translations = []Translation{
	{"ESV", "English Standard Version"},
	{"KJV", "King James Version"},
	{"NKJV", "New King James Version"},
	{"NIV", "New International Version"},
	{"NLT", "New Living Translation"},
	{"NASB", "New American Standard Bible"},
	{"NRSV", "New Revised Standard Version"},
	{"CSB", "Christian Standard Bible"},
	{"AMP", "Amplified Bible"},
	{"MSG", "The Message"},
	{"ASV", "American Standard Version"},
	{"WEB", "World English Bible"},
}

// Translations はレジストリの全エントリを登録順で返す。
func Translations() []Translation {
	return translations
}

// LookupTranslation は翻訳コードを大文字小文字を無視して照合し、
// ヒットした場合は正準コードとtrueを返す。未登録の場合は空文字とfalseを返す。
func LookupTranslation(code string) (string, bool) {
	upper := strings.ToUpper(code)
	for _, t := range translations {
		if t.Code == upper {
			return t.Code, true
		}
	}
	return "", false
}
