// Package fix implements the two dataset corrections: removing the
// basmala where it was duplicated into verse text, and repairing the
// verse range where the third hizb quarter begins.
package fix

import (
	"strings"

	"github.com/mushaftools/quranfix/core/quran"
	"github.com/mushaftools/quranfix/core/transform"
)

// Boundary constants for the hizb repair.
//
// Quarter 3 begins at Al-Baqarah ayah 26. Al-Fatihah holds global
// verses 1..7, so that ayah is global verse 33. The source dataset had
// the quarter starting too early; verses 33..50 are the ones known to
// carry the wrong value. Later quarter boundaries are deliberately not
// touched here.
const (
	// HizbQuarter3 is the quarter value assigned across the repair range.
	HizbQuarter3 = 3
	// Quarter3Start is the first global verse number of quarter 3.
	Quarter3Start = 33
	// Quarter3End is the last global verse number the repair reassigns.
	Quarter3End = 50
)

// RemoveStrayBasmala strips the basmala from every ayah outside
// Al-Fatihah whose text contains it, trimming surrounding whitespace.
// Al-Fatihah is skipped entirely; its first ayah legitimately is the
// basmala. Returns the number of ayahs changed.
func RemoveStrayBasmala(doc *quran.Document) int {
	changed := 0
	for i := range doc.Data.Surahs {
		surah := &doc.Data.Surahs[i]
		if surah.Number == quran.FatihaNumber {
			continue
		}
		changed += transform.Apply(surah.Ayahs,
			func(a *quran.Ayah) bool { return strings.Contains(a.Text, quran.Basmala) },
			func(a *quran.Ayah) { a.Text = transform.StripPhrase(a.Text, quran.Basmala) },
		)
	}
	return changed
}

// RepairHizbStart sets hizbQuarter to HizbQuarter3 for every verse
// whose global number falls in [Quarter3Start, Quarter3End]. Verses
// outside the range, including later quarter boundaries that may also
// be wrong, are left unchanged. Returns the number of verses whose
// value actually changed.
func RepairHizbStart(verses []quran.Verse) int {
	return transform.Apply(verses,
		func(v *quran.Verse) bool {
			return v.Number >= Quarter3Start && v.Number <= Quarter3End &&
				v.HizbQuarter != HizbQuarter3
		},
		func(v *quran.Verse) { v.HizbQuarter = HizbQuarter3 },
	)
}
