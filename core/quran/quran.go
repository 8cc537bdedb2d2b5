// Package quran defines the document model for the Quran JSON datasets
// maintained by this tool, along with the canonical constants the
// corrections are scoped by.
//
// Two dataset shapes exist:
//   - the chapter-grouped document downloaded from the text API
//     (surahs containing ayahs), and
//   - the flat verse list, one record per verse in mushaf order.
package quran

import "encoding/json"

// Basmala is the opening phrase as it appears in the Uthmani text,
// diacritics included. It canonically prefixes every surah except
// At-Tawbah and belongs inside verse text only at surah 1, ayah 1.
const Basmala = "بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ"

// Surah numbers referenced by the corrections.
const (
	// FatihaNumber is the first surah; its opening ayah legitimately
	// contains the basmala as verse text.
	FatihaNumber = 1
)

// Document is the chapter-grouped dataset shape.
type Document struct {
	Code   int          `json:"code"`
	Status string       `json:"status"`
	Data   DocumentData `json:"data"`
}

// DocumentData holds the surah list plus edition metadata the tool
// never touches. The edition block is kept raw so it round-trips
// byte-exact.
type DocumentData struct {
	Surahs  []Surah         `json:"surahs"`
	Edition json.RawMessage `json:"edition,omitempty"`
}

// Surah is one chapter with its ordered ayahs.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName,omitempty"`
	EnglishNameTranslation string `json:"englishNameTranslation,omitempty"`
	RevelationType         string `json:"revelationType,omitempty"`
	Ayahs                  []Ayah `json:"ayahs"`
}

// Ayah is one verse record inside a surah.
type Ayah struct {
	Number        int             `json:"number"`
	Text          string          `json:"text"`
	NumberInSurah int             `json:"numberInSurah"`
	Juz           int             `json:"juz,omitempty"`
	Manzil        int             `json:"manzil,omitempty"`
	Page          int             `json:"page,omitempty"`
	Ruku          int             `json:"ruku,omitempty"`
	HizbQuarter   int             `json:"hizbQuarter,omitempty"`
	Sajda         json.RawMessage `json:"sajda,omitempty"`
}

// Verse is one record of the flat dataset shape. Number is the global
// position in mushaf order (1..6236) and identifies the record. The
// field set mirrors Ayah so a rewrite carries every per-verse field
// through unchanged; the surah block is kept raw like the edition
// metadata.
type Verse struct {
	Number        int             `json:"number"`
	Text          string          `json:"text,omitempty"`
	NumberInSurah int             `json:"numberInSurah"`
	Juz           int             `json:"juz,omitempty"`
	Manzil        int             `json:"manzil,omitempty"`
	Page          int             `json:"page,omitempty"`
	Ruku          int             `json:"ruku,omitempty"`
	HizbQuarter   int             `json:"hizbQuarter"`
	Sajda         json.RawMessage `json:"sajda,omitempty"`
	Surah         json.RawMessage `json:"surah,omitempty"`
}
