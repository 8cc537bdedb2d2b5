package quran

import (
	"fmt"

	"github.com/mushaftools/quranfix/core/errors"
)

// Validate checks that a decoded chapter-grouped document has the
// structure the corrections assume. It does not judge the text itself,
// only that the expected nesting is present.
func (d *Document) Validate() error {
	if len(d.Data.Surahs) == 0 {
		return errors.NewShape("chapter-grouped document", "no surahs")
	}
	for _, s := range d.Data.Surahs {
		if s.Number == 0 {
			return errors.NewShape("chapter-grouped document", "surah without a number")
		}
		if len(s.Ayahs) == 0 {
			return errors.NewShape("chapter-grouped document", fmt.Sprintf("surah %d has no ayahs", s.Number))
		}
	}
	return nil
}

// ValidateVerses checks that a decoded flat verse list has the fields
// the corrections assume.
func ValidateVerses(verses []Verse) error {
	if len(verses) == 0 {
		return errors.NewShape("flat verse list", "no verses")
	}
	for i := range verses {
		if verses[i].Number == 0 {
			return errors.NewShape("flat verse list", "verse record without a number")
		}
	}
	return nil
}
