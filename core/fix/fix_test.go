package fix

import (
	"reflect"
	"testing"

	"github.com/mushaftools/quranfix/core/quran"
)

const ikhlasText = "قُلْ هُوَ ٱللَّهُ أَحَدٌ"

func strayBasmalaDoc() *quran.Document {
	return &quran.Document{
		Code:   200,
		Status: "OK",
		Data: quran.DocumentData{
			Surahs: []quran.Surah{
				{
					Number: 1,
					Name:   "سُورَةُ ٱلْفَاتِحَةِ",
					Ayahs: []quran.Ayah{
						{Number: 1, Text: quran.Basmala, NumberInSurah: 1},
						{Number: 2, Text: "ٱلْحَمْدُ لِلَّهِ رَبِّ ٱلْعَٰلَمِينَ", NumberInSurah: 2},
					},
				},
				{
					Number: 112,
					Name:   "سُورَةُ ٱلْإِخْلَاصِ",
					Ayahs: []quran.Ayah{
						{Number: 6222, Text: quran.Basmala + " " + ikhlasText, NumberInSurah: 1},
						{Number: 6223, Text: "ٱللَّهُ ٱلصَّمَدُ", NumberInSurah: 2},
					},
				},
			},
		},
	}
}

func TestRemoveStrayBasmala(t *testing.T) {
	doc := strayBasmalaDoc()

	changed := RemoveStrayBasmala(doc)
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}

	// Surah 1 keeps its basmala verbatim.
	if got := doc.Data.Surahs[0].Ayahs[0].Text; got != quran.Basmala {
		t.Errorf("surah 1 ayah 1 = %q, want the basmala untouched", got)
	}

	// The duplicated opening is gone and nothing else in the text moved.
	if got := doc.Data.Surahs[1].Ayahs[0].Text; got != ikhlasText {
		t.Errorf("surah 112 ayah 1 = %q, want %q", got, ikhlasText)
	}

	// Verses that never contained it are untouched.
	if got := doc.Data.Surahs[1].Ayahs[1].Text; got != "ٱللَّهُ ٱلصَّمَدُ" {
		t.Errorf("surah 112 ayah 2 = %q, want unchanged", got)
	}
}

func TestRemoveStrayBasmalaIdempotent(t *testing.T) {
	doc := strayBasmalaDoc()
	RemoveStrayBasmala(doc)

	before := *doc
	beforeSurahs := make([]quran.Surah, len(doc.Data.Surahs))
	copy(beforeSurahs, doc.Data.Surahs)

	changed := RemoveStrayBasmala(doc)
	if changed != 0 {
		t.Errorf("second pass changed %d ayahs, want 0", changed)
	}
	if !reflect.DeepEqual(doc.Data.Surahs, beforeSurahs) {
		t.Error("second pass altered the document")
	}
	if doc.Code != before.Code || doc.Status != before.Status {
		t.Error("second pass altered the document header")
	}
}

func TestRepairHizbStart(t *testing.T) {
	tests := []struct {
		name        string
		verse       quran.Verse
		wantQuarter int
		wantChanged bool
	}{
		{
			name:        "inside range with wrong value",
			verse:       quran.Verse{Number: 40, NumberInSurah: 33, HizbQuarter: 2},
			wantQuarter: 3,
			wantChanged: true,
		},
		{
			name:        "range start",
			verse:       quran.Verse{Number: 33, NumberInSurah: 26, HizbQuarter: 2},
			wantQuarter: 3,
			wantChanged: true,
		},
		{
			name:        "range end",
			verse:       quran.Verse{Number: 50, NumberInSurah: 43, HizbQuarter: 2},
			wantQuarter: 3,
			wantChanged: true,
		},
		{
			name:        "just before range",
			verse:       quran.Verse{Number: 32, NumberInSurah: 25, HizbQuarter: 2},
			wantQuarter: 2,
			wantChanged: false,
		},
		{
			name:        "just after range stays whatever it was",
			verse:       quran.Verse{Number: 51, NumberInSurah: 44, HizbQuarter: 3},
			wantQuarter: 3,
			wantChanged: false,
		},
		{
			name:        "inside range already correct",
			verse:       quran.Verse{Number: 45, NumberInSurah: 38, HizbQuarter: 3},
			wantQuarter: 3,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verses := []quran.Verse{tt.verse}
			changed := RepairHizbStart(verses)
			if got := verses[0].HizbQuarter; got != tt.wantQuarter {
				t.Errorf("hizbQuarter = %d, want %d", got, tt.wantQuarter)
			}
			if (changed == 1) != tt.wantChanged {
				t.Errorf("changed = %d, wantChanged %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestRepairHizbStartIdempotent(t *testing.T) {
	verses := make([]quran.Verse, 0, 60)
	for n := 1; n <= 60; n++ {
		q := 1
		if n > 25 {
			q = 2
		}
		verses = append(verses, quran.Verse{Number: n, NumberInSurah: n, HizbQuarter: q})
	}

	first := RepairHizbStart(verses)
	if first != Quarter3End-Quarter3Start+1 {
		t.Errorf("first pass changed %d verses, want %d", first, Quarter3End-Quarter3Start+1)
	}

	snapshot := make([]quran.Verse, len(verses))
	copy(snapshot, verses)

	second := RepairHizbStart(verses)
	if second != 0 {
		t.Errorf("second pass changed %d verses, want 0", second)
	}
	if !reflect.DeepEqual(verses, snapshot) {
		t.Error("second pass altered the verse list")
	}
}

func TestRepairHizbStartLeavesLaterBoundariesAlone(t *testing.T) {
	// The repair is deliberately partial: a wrong quarter value past
	// the range must survive it.
	verses := []quran.Verse{
		{Number: 50, NumberInSurah: 43, HizbQuarter: 2},
		{Number: 77, NumberInSurah: 70, HizbQuarter: 3}, // should be 4, still not our problem
	}
	RepairHizbStart(verses)
	if verses[1].HizbQuarter != 3 {
		t.Errorf("verse 77 hizbQuarter = %d, the repair must not touch it", verses[1].HizbQuarter)
	}
}
