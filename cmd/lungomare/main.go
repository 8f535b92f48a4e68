package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/mbeltrami/lungomare/internal/engine"
	"github.com/mbeltrami/lungomare/internal/store"
	"github.com/mbeltrami/lungomare/internal/ui"
	"github.com/mbeltrami/lungomare/internal/util"
)

var (
	version      = "0.1.0"
	seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false, Prefix: "lungomare"})

	seedFlag := flag.String("seed", os.Getenv("LUNGOMARE_SEED"), "run seed string (random if omitted)")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "PostgreSQL DSN (empty disables persistence)")
	theme := flag.String("theme", envOr("LUNGOMARE_THEME", "notte"), "UI theme: riviera|notte|gruvbox")
	content := flag.String("content", os.Getenv("LUNGOMARE_CONTENT"), "optional YAML content pack path")
	steps := flag.Int("steps", 400, "step budget for the sim subcommand")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lungomare [--seed s] [--dsn DSN] [--theme name] [--content pack.yaml] | sim | migrate up|down | version\n")
	}
	flag.Parse()

	if *content != "" {
		pack, err := engine.LoadContentPackFile(*content)
		if err != nil {
			logger.Fatal("content pack rejected", "path", *content, "err", err)
		}
		engine.UseCatalog(pack)
		logger.Info("content pack loaded", "items", len(pack.Items), "events", len(pack.Events))
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("lungomare", version)
			return
		case "migrate":
			runMigrate(logger, *dsn, args[1:])
			return
		case "sim":
			runSim(logger, *seedFlag, *steps)
			return
		default:
			flag.Usage()
			os.Exit(2)
		}
	}

	seedText := strings.TrimSpace(*seedFlag)
	if seedText == "" {
		generated, err := generateSeed()
		if err != nil {
			logger.Fatal("seed generation failed", "err", err)
		}
		seedText = generated
		logger.Info("new run seed", "seed", seedText)
	}

	cfg := util.Config{
		SeedText:     seedText,
		DSN:          *dsn,
		Theme:        *theme,
		ContentPath:  *content,
		RulesVersion: version,
	}

	ctx := context.Background()

	var db *store.DB
	if cfg.DSN != "" {
		mig, err := store.NewMigrator(cfg.DSN)
		if err != nil {
			logger.Fatal("migrations init failed", "err", err)
		}
		migCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := mig.Up(migCtx); err != nil && err != store.ErrNoChange {
			cancel()
			logger.Fatal("migrations failed", "err", err)
		}
		cancel()
		db, err = store.Open(ctx, cfg)
		if err != nil {
			logger.Fatal("database open failed", "err", err)
		}
		defer db.Close()
	} else {
		logger.Info("no DSN; runs will not persist")
	}

	if err := ui.Run(ctx, db, cfg, version); err != nil {
		logger.Fatal("ui exited", "err", err)
	}
}

func runMigrate(logger *log.Logger, dsn string, args []string) {
	if len(args) < 1 {
		logger.Fatal("migrate requires 'up' or 'down'")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	mig, err := store.NewMigrator(dsn)
	if err != nil {
		logger.Fatal("migrator", "err", err)
	}
	switch args[0] {
	case "up":
		if err := mig.Up(ctx); err != nil && err != store.ErrNoChange {
			logger.Fatal("migrate up", "err", err)
		}
		logger.Info("migrations applied")
	case "down":
		if err := mig.Down(ctx); err != nil && err != store.ErrNoChange {
			logger.Fatal("migrate down", "err", err)
		}
		logger.Info("migrations rolled back")
	default:
		logger.Fatal("unknown migrate action; use up|down")
	}
}

// runSim replays a full run headlessly and prints the day-by-day trail. The
// same seed always prints the same trail.
func runSim(logger *log.Logger, seedText string, steps int) {
	if strings.TrimSpace(seedText) == "" {
		generated, err := generateSeed()
		if err != nil {
			logger.Fatal("seed generation failed", "err", err)
		}
		seedText = generated
	}
	seed, err := engine.NewRunSeed(seedText)
	if err != nil {
		logger.Fatal("bad seed", "err", err)
	}
	runLog, err := engine.Simulate(seedText, steps, engine.SeededChoice(seed))
	if err != nil {
		logger.Fatal("sim failed", "err", err)
	}
	fmt.Printf("seed %s\n", seedText)
	for _, snap := range runLog.History {
		fmt.Printf("day %3d  money %5d  rep %3d  sanity %3d  lai %3d\n",
			snap.Day, snap.Stats.Money, snap.Stats.Reputation, snap.Stats.Sanity, snap.LAI)
	}
	if runLog.Ending != nil {
		fmt.Printf("ending: %s — %s\n", runLog.Ending.ID, runLog.Ending.Title)
	} else {
		fmt.Printf("no ending within %d steps\n", steps)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
