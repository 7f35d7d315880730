// Package bible は聖書の書巻・章カタログと翻訳レジストリを提供する。
// すべてのデータはプロセス起動時に構築され、以降イミュータブルとして扱う。
package bible

// Plan は読書プラン（旧約・新約・全巻）を表す。
type Plan string

const (
	// PlanOldTestament は旧約聖書のみの読書プラン。
	PlanOldTestament Plan = "ot"
	// PlanNewTestament は新約聖書のみの読書プラン。
	PlanNewTestament Plan = "nt"
	// PlanFull は旧約・新約を通読する読書プラン。デフォルト。
	PlanFull Plan = "full"
)

// Label はプランの大文字表記を返す。フィードの説明文に使用する。
func (p Plan) Label() string {
	switch p {
	case PlanOldTestament:
		return "OT"
	case PlanNewTestament:
		return "NT"
	default:
		return "FULL"
	}
}

// ChapterRef はカタログ内の1章を表す。1エントリ = 聖書の1章。
type ChapterRef struct {
	Book    string // 書巻名（例: "Genesis", "1 Samuel"）
	Chapter int    // 章番号（1始まり）
}

// book は1書巻のメタデータ。カタログ構築にのみ使用する。
type book struct {
	name     string
	chapters int
}

// oldTestamentBooks は旧約39巻を正典の通読順で保持する。
var oldTestamentBooks = []book{
	{"Genesis", 50},
	{"Exodus", 40},
	{"Leviticus", 27},
	{"Numbers", 36},
	{"Deuteronomy", 34},
	{"Joshua", 24},
	{"Judges", 21},
	{"Ruth", 4},
	{"1 Samuel", 31},
	{"2 Samuel", 24},
	{"1 Kings", 22},
	{"2 Kings", 25},
	{"1 Chronicles", 29},
	{"2 Chronicles", 36},
	{"Ezra", 10},
	{"Nehemiah", 13},
	{"Esther", 10},
	{"Job", 42},
	{"Psalms", 150},
	{"Proverbs", 31},
	{"Ecclesiastes", 12},
	{"Song of Solomon", 8},
	{"Isaiah", 66},
	{"Jeremiah", 52},
	{"Lamentations", 5},
	{"Ezekiel", 48},
	{"Daniel", 12},
	{"Hosea", 14},
	{"Joel", 3},
	{"Amos", 9},
	{"Obadiah", 1},
	{"Jonah", 4},
	{"Micah", 7},
	{"Nahum", 3},
	{"Habakkuk", 3},
	{"Zephaniah", 3},
	{"Haggai", 2},
	{"Zechariah", 14},
	{"Malachi", 4},
}

// newTestamentBooks は新約27巻を正典の通読順で保持する。
var newTestamentBooks = []book{
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
}

// FullCatalogLength は全巻カタログの章数。1リクエストあたりの出力上限でもある。
const FullCatalogLength = 1189

// 各プランのカタログ。init以降は読み取り専用。
var (
	oldTestamentCatalog []ChapterRef
	newTestamentCatalog []ChapterRef
	fullCatalog         []ChapterRef
)

func init() {
	oldTestamentCatalog = expand(oldTestamentBooks)
	newTestamentCatalog = expand(newTestamentBooks)

	fullCatalog = make([]ChapterRef, 0, len(oldTestamentCatalog)+len(newTestamentCatalog))
	fullCatalog = append(fullCatalog, oldTestamentCatalog...)
	fullCatalog = append(fullCatalog, newTestamentCatalog...)
}

// expand は書巻リストを章単位のカタログに展開する。
func expand(books []book) []ChapterRef {
	var refs []ChapterRef
	for _, b := range books {
		for ch := 1; ch <= b.chapters; ch++ {
			refs = append(refs, ChapterRef{Book: b.name, Chapter: ch})
		}
	}
	return refs
}

// CatalogFor はプランに対応するカタログを返す。
// 未知のプランには全巻カタログを返す（サニタイザーを通過した後の防御的冗長性）。
func CatalogFor(plan Plan) []ChapterRef {
	switch plan {
	case PlanOldTestament:
		return oldTestamentCatalog
	case PlanNewTestament:
		return newTestamentCatalog
	case PlanFull:
		return fullCatalog
	default:
		return fullCatalog
	}
}
