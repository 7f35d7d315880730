// Package sanitize は信頼できないパスセグメント文字列を検証済みのドメイン値に変換する。
// すべての関数は全域関数であり、不正な入力に対してはエラーではなく安全な
// デフォルト値を返す（「常にフィードを返す」方針）。
package sanitize

import (
	"strconv"
	"time"

	"github.com/hitoshi/rssbible/internal/bible"
)

const (
	// MinYear と MaxYear は開始日として受理する年の範囲。
	MinYear = 1900
	MaxYear = 2100

	// MaxChaptersPerDay は1日あたりの章数の上限。
	MaxChaptersPerDay = 99
)

// Plan は生のプラン文字列を検証する。
// ot・nt・full のいずれかに正確に一致しない場合はPlanFullを返す。
func Plan(raw string) bible.Plan {
	switch raw {
	case "ot":
		return bible.PlanOldTestament
	case "nt":
		return bible.PlanNewTestament
	case "full":
		return bible.PlanFull
	default:
		return bible.PlanFull
	}
}

// Date は生のYYYYMMDD文字列を検証し、UTC午前0時のtime.Timeを返す。
// 長さが8でない、年が[1900,2100]外、月が[1,12]外、日が[1,31]外、
// または構築した日付が繰り上がる場合（例: 2月30日→3月2日）はnowのUTC日付を返す。
func Date(raw string, now time.Time) time.Time {
	fallback := midnightUTC(now)

	if len(raw) != 8 {
		return fallback
	}

	year, err := strconv.Atoi(raw[0:4])
	if err != nil || year < MinYear || year > MaxYear {
		return fallback
	}
	month, err := strconv.Atoi(raw[4:6])
	if err != nil || month < 1 || month > 12 {
		return fallback
	}
	day, err := strconv.Atoi(raw[6:8])
	if err != nil || day < 1 || day > 31 {
		return fallback
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Dateは存在しない日付を翌月に繰り上げる。
	// 構築後の月を要求された月と比較して繰り上がりを検出する。
	if date.Month() != time.Month(month) {
		return fallback
	}

	return date
}

// Translation は生の翻訳コードをレジストリと照合し、正準コードを返す。
// 未登録のコードにはbible.DefaultTranslationを返す。
func Translation(raw string) string {
	if code, ok := bible.LookupTranslation(raw); ok {
		return code
	}
	return bible.DefaultTranslation
}

// Chapters は生の章数文字列を[1,99]の整数に検証する。
// 巨大な値の攻撃に対する防御として、パース前に3文字以上の入力を拒否する。
// 数値でない、または範囲外の場合は1を返す。
func Chapters(raw string) int {
	if len(raw) > 2 {
		return 1
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxChaptersPerDay {
		return 1
	}

	return n
}

// midnightUTC は時刻をUTCの同日午前0時に切り詰める。
func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
