package digest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSum(t *testing.T) {
	data := []byte(`{"status": "OK"}`)

	first := Sum(data)
	second := Sum(data)
	if first != second {
		t.Errorf("digest not stable: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("digest length = %d, want 64 hex characters", len(first))
	}
	if other := Sum([]byte(`{"status": "ok"}`)); other == first {
		t.Error("different content produced the same digest")
	}
}

func TestSumFile(t *testing.T) {
	data := []byte("بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ")
	path := filepath.Join(t.TempDir(), "verse.txt")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	if want := Sum(data); got != want {
		t.Errorf("SumFile = %s, want %s", got, want)
	}
}

func TestSumFileMissing(t *testing.T) {
	if _, err := SumFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
