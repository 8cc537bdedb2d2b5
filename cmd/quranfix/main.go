// Command quranfix applies one-off corrections to the Quran JSON
// datasets kept in this repository: stripping the basmala where it was
// duplicated into verse text, and repairing the verse range where hizb
// quarter 3 begins.
package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/mushaftools/quranfix/core/errors"
	"github.com/mushaftools/quranfix/core/fix"
	"github.com/mushaftools/quranfix/core/quran"
	"github.com/mushaftools/quranfix/internal/digest"
	"github.com/mushaftools/quranfix/internal/fileutil"
	"github.com/mushaftools/quranfix/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for quranfix.
var CLI struct {
	// Global flags
	Verbose   bool   `help:"Enable debug logging" short:"v"`
	LogFormat string `name:"log-format" help:"Log output format" enum:"text,json" default:"text"`

	Fix     FixGroup     `cmd:"" help:"Apply dataset corrections"`
	Inspect InspectGroup `cmd:"" help:"Inspect dataset structure without writing"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// FixGroup contains the dataset corrections.
type FixGroup struct {
	Basmala BasmalaCmd `cmd:"" help:"Strip the basmala from verse text outside surah 1"`
	Hizb    HizbCmd    `cmd:"" help:"Repair the verse range where hizb quarter 3 begins"`
}

// InspectGroup contains read-only dataset reports.
type InspectGroup struct {
	Hizb InspectHizbCmd `cmd:"" help:"Print hizb quarter boundaries"`
}

// BasmalaCmd strips the duplicated basmala from a chapter-grouped
// dataset and writes the file back in place.
type BasmalaCmd struct {
	Path   string `arg:"" optional:"" default:"client/data/quran-uthmani.json" help:"Dataset path" type:"path"`
	DryRun bool   `name:"dry-run" help:"Report matches without rewriting the file"`
}

func (c *BasmalaCmd) Run() error {
	ctx := newRunContext()

	raw, err := fileutil.ReadFile(c.Path)
	if err != nil {
		return err
	}
	logging.DebugContext(ctx, "dataset_loaded",
		"path", c.Path, "bytes", len(raw), "blake3", digest.Sum(raw))

	var doc quran.Document
	if err := fileutil.DecodeJSON(raw, c.Path, &doc); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return errors.Wrapf(err, "validate %s", c.Path)
	}

	changed := fix.RemoveStrayBasmala(&doc)
	logging.FixApplied(ctx, "basmala", c.Path, changed, "dry_run", c.DryRun)

	if c.DryRun {
		fmt.Printf("Dry run: basmala found in %d verses in %s\n", changed, c.Path)
		return nil
	}

	out, err := fileutil.EncodeJSON(&doc)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(c.Path, out); err != nil {
		return err
	}
	// The stored digest differs from the document digest when the
	// path is xz-compressed.
	stored, err := digest.SumFile(c.Path)
	if err != nil {
		return err
	}
	logging.DebugContext(ctx, "dataset_written",
		"path", c.Path, "bytes", len(out), "blake3", digest.Sum(out),
		"stored_blake3", stored)

	fmt.Printf("Fixed: basmala removed from %s\n", c.Path)
	return nil
}

// HizbCmd repairs the start of hizb quarter 3 in a flat verse-list
// dataset and writes the file back in place.
type HizbCmd struct {
	Path   string `arg:"" optional:"" default:"client/data/quran-uthmani.json" help:"Dataset path" type:"path"`
	DryRun bool   `name:"dry-run" help:"Report matches without rewriting the file"`
}

func (c *HizbCmd) Run() error {
	ctx := newRunContext()

	raw, err := fileutil.ReadFile(c.Path)
	if err != nil {
		return err
	}
	logging.DebugContext(ctx, "dataset_loaded",
		"path", c.Path, "bytes", len(raw), "blake3", digest.Sum(raw))

	var verses []quran.Verse
	if err := fileutil.DecodeJSON(raw, c.Path, &verses); err != nil {
		return err
	}
	if err := quran.ValidateVerses(verses); err != nil {
		return errors.Wrapf(err, "validate %s", c.Path)
	}

	changed := fix.RepairHizbStart(verses)
	logging.FixApplied(ctx, "hizb", c.Path, changed, "dry_run", c.DryRun)

	if c.DryRun {
		fmt.Printf("Dry run: %d verses in range %d..%d need hizbQuarter %d in %s\n",
			changed, fix.Quarter3Start, fix.Quarter3End, fix.HizbQuarter3, c.Path)
		return nil
	}

	out, err := fileutil.EncodeJSON(verses)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(c.Path, out); err != nil {
		return err
	}
	// The stored digest differs from the document digest when the
	// path is xz-compressed.
	stored, err := digest.SumFile(c.Path)
	if err != nil {
		return err
	}
	logging.DebugContext(ctx, "dataset_written",
		"path", c.Path, "bytes", len(out), "blake3", digest.Sum(out),
		"stored_blake3", stored)

	fmt.Printf("Fixed: hizbQuarter %d now starts at verse %d in %s\n",
		fix.HizbQuarter3, fix.Quarter3Start, c.Path)
	return nil
}

// InspectHizbCmd prints where each hizb quarter currently begins in a
// flat verse-list dataset. It makes the deliberately unrepaired later
// boundaries visible without judging or changing them.
type InspectHizbCmd struct {
	Path  string `arg:"" optional:"" default:"client/data/quran-uthmani.json" help:"Dataset path" type:"path"`
	Limit int    `help:"Maximum boundaries to print (0 for all)" default:"8"`
}

func (c *InspectHizbCmd) Run() error {
	raw, err := fileutil.ReadFile(c.Path)
	if err != nil {
		return err
	}

	var verses []quran.Verse
	if err := fileutil.DecodeJSON(raw, c.Path, &verses); err != nil {
		return err
	}
	if err := quran.ValidateVerses(verses); err != nil {
		return errors.Wrapf(err, "validate %s", c.Path)
	}

	printed := 0
	prev := 0
	for i := range verses {
		v := &verses[i]
		if v.HizbQuarter == prev {
			continue
		}
		fmt.Printf("hizb quarter %d begins at verse %d (ayah %d in its surah)\n",
			v.HizbQuarter, v.Number, v.NumberInSurah)
		prev = v.HizbQuarter
		printed++
		if c.Limit > 0 && printed >= c.Limit {
			break
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("quranfix version %s\n", version)
	return nil
}

// newRunContext tags one fix run with a fresh ID so its log records
// can be correlated.
func newRunContext() context.Context {
	return logging.WithRunID(context.Background(), uuid.NewString())
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("quranfix"),
		kong.Description("One-off corrections for the Quran JSON datasets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelInfo
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
