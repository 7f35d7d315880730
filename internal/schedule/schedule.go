// Package schedule は読書スケジュールの計算とフィードアイテムの組み立てを提供する。
// すべての関数はサニタイズ済みの入力に対する純粋関数であり、失敗しない。
package schedule

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hitoshi/rssbible/internal/bible"
)

// readingServiceBaseURL は各章のリンク先となる外部閲覧サービスの検索エンドポイント。
const readingServiceBaseURL = "https://www.biblegateway.com/passage/?search="

// itemAuthor は全アイテム共通の著者表記。リンク先が固定の外部サービスのため定数。
const itemAuthor = "Bible Gateway"

// FeedItem はフィードの1アイテム。1章につき1アイテムが導出される。
type FeedItem struct {
	Title       string
	Description string
	Link        string
	Author      string
	PubDate     time.Time
}

// BuildFeedItems は読書スケジュールを計算し、「今日」までに読了しているべき章の
// フィードアイテム列を返す。
//
// 経過日数は開始日と現在日のUTC午前0時同士の絶対差で求める。未来の開始日も
// 過去と同様に扱う（対称設計）。出力はbible.FullCatalogLength章を上限とし、
// カタログ長を超えるスライスはカタログ全体のみを返す。
// 開始日が今日の場合は空のアイテム列を返す（正常系）。
func BuildFeedItems(plan bible.Plan, translation string, startDate time.Time, chaptersPerDay int, now time.Time) []FeedItem {
	elapsedDays := elapsedDaysBetween(startDate, now)

	chapterCount := elapsedDays * chaptersPerDay
	if chapterCount > bible.FullCatalogLength {
		chapterCount = bible.FullCatalogLength
	}

	catalog := bible.CatalogFor(plan)
	if chapterCount > len(catalog) {
		chapterCount = len(catalog)
	}

	items := make([]FeedItem, 0, chapterCount)
	for i := 0; i < chapterCount; i++ {
		ref := catalog[i]

		// このアイテムが属する読書日（1始まり）
		dayNumber := (i + chaptersPerDay) / chaptersPerDay

		items = append(items, FeedItem{
			Title:       fmt.Sprintf("%s %d", ref.Book, ref.Chapter),
			Description: fmt.Sprintf("Day %d of %s plan in %s", dayNumber, plan.Label(), translation),
			Link:        BuildReadingURL(ref.Book, ref.Chapter, translation),
			Author:      itemAuthor,
			PubDate:     publishDate(now, elapsedDays, dayNumber),
		})
	}

	return items
}

// BuildReadingURL は外部閲覧サービスの章URLを組み立てる。
// 書巻名は空白を含み得るためパーセントエンコードする（例: "1 Samuel"）。
// 翻訳コードはレジストリで短い英数字トークンに制約済みのためエンコード不要。
func BuildReadingURL(book string, chapter int, translation string) string {
	return fmt.Sprintf("%s%s%%20%d&version=%s",
		readingServiceBaseURL, url.PathEscape(book), chapter, translation)
}

// elapsedDaysBetween はUTC午前0時に切り詰めた2時刻の差を日数の絶対値で返す。
func elapsedDaysBetween(startDate, now time.Time) int {
	diff := midnightUTC(now).Sub(midnightUTC(startDate))
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

// publishDate はアイテムの公開日を返す。dayNumber日目のアイテムは、
// その日に読了予定だった暦日（ローカル午前0時）に遡って日付が付く。
func publishDate(now time.Time, elapsedDays, dayNumber int) time.Time {
	d := now.AddDate(0, 0, -(1 + elapsedDays - dayNumber))
	year, month, day := d.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// midnightUTC は時刻をUTCの同日午前0時に切り詰める。
func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
