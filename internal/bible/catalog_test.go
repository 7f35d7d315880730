package bible

import "testing"

// TestCatalogFor_OldTestamentLength は旧約カタログが929章であることを検証する。
func TestCatalogFor_OldTestamentLength(t *testing.T) {
	catalog := CatalogFor(PlanOldTestament)
	if len(catalog) != 929 {
		t.Errorf("旧約カタログの章数 = %d, 期待 929", len(catalog))
	}
}

// TestCatalogFor_NewTestamentLength は新約カタログが260章であることを検証する。
func TestCatalogFor_NewTestamentLength(t *testing.T) {
	catalog := CatalogFor(PlanNewTestament)
	if len(catalog) != 260 {
		t.Errorf("新約カタログの章数 = %d, 期待 260", len(catalog))
	}
}

// TestCatalogFor_FullLength は全巻カタログが1189章（FullCatalogLength）であることを検証する。
func TestCatalogFor_FullLength(t *testing.T) {
	catalog := CatalogFor(PlanFull)
	if len(catalog) != FullCatalogLength {
		t.Errorf("全巻カタログの章数 = %d, 期待 %d", len(catalog), FullCatalogLength)
	}
}

// TestCatalogFor_UnknownPlanFallsBackToFull は未知のプランで全巻カタログを返すことを検証する。
func TestCatalogFor_UnknownPlanFallsBackToFull(t *testing.T) {
	catalog := CatalogFor(Plan("apocrypha"))
	if len(catalog) != FullCatalogLength {
		t.Errorf("未知プランのカタログ章数 = %d, 期待 %d", len(catalog), FullCatalogLength)
	}
}

// TestCatalogFor_FirstAndLastEntries は各カタログの先頭と末尾が正典順であることを検証する。
func TestCatalogFor_FirstAndLastEntries(t *testing.T) {
	tests := []struct {
		name  string
		plan  Plan
		first ChapterRef
		last  ChapterRef
	}{
		{"旧約", PlanOldTestament, ChapterRef{"Genesis", 1}, ChapterRef{"Malachi", 4}},
		{"新約", PlanNewTestament, ChapterRef{"Matthew", 1}, ChapterRef{"Revelation", 22}},
		{"全巻", PlanFull, ChapterRef{"Genesis", 1}, ChapterRef{"Revelation", 22}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := CatalogFor(tt.plan)
			if catalog[0] != tt.first {
				t.Errorf("先頭 = %v, 期待 %v", catalog[0], tt.first)
			}
			if catalog[len(catalog)-1] != tt.last {
				t.Errorf("末尾 = %v, 期待 %v", catalog[len(catalog)-1], tt.last)
			}
		})
	}
}

// TestCatalogFor_ChapterNumbersAreSequentialPerBook は各書巻内で章番号が1から連番であることを検証する。
func TestCatalogFor_ChapterNumbersAreSequentialPerBook(t *testing.T) {
	catalog := CatalogFor(PlanFull)

	prevBook := ""
	expected := 0
	for i, ref := range catalog {
		if ref.Book != prevBook {
			prevBook = ref.Book
			expected = 1
		}
		if ref.Chapter != expected {
			t.Fatalf("カタログ[%d] %s の章番号 = %d, 期待 %d", i, ref.Book, ref.Chapter, expected)
		}
		expected++
	}
}

// TestLookupTranslation_CaseInsensitive は小文字・混在ケースの入力で正準コードを返すことを検証する。
func TestLookupTranslation_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"esv", "ESV"},
		{"Esv", "ESV"},
		{"kjv", "KJV"},
		{"NIV", "NIV"},
		{"nasb", "NASB"},
	}

	for _, tt := range tests {
		got, ok := LookupTranslation(tt.input)
		if !ok {
			t.Errorf("LookupTranslation(%q) がヒットしなかった", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("LookupTranslation(%q) = %q, 期待 %q", tt.input, got, tt.want)
		}
	}
}

// TestLookupTranslation_UnknownCode は未登録コードでfalseを返すことを検証する。
func TestLookupTranslation_UnknownCode(t *testing.T) {
	if code, ok := LookupTranslation("bogus"); ok {
		t.Errorf("未登録コードがヒットした: %q", code)
	}
}

// TestTranslations_ContainsDefault はレジストリにデフォルト翻訳が含まれることを検証する。
func TestTranslations_ContainsDefault(t *testing.T) {
	if _, ok := LookupTranslation(DefaultTranslation); !ok {
		t.Errorf("デフォルト翻訳 %q がレジストリに存在しない", DefaultTranslation)
	}
}
