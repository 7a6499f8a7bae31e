package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"kanadrill-go/internal/audio"
	"kanadrill-go/internal/config"
	"kanadrill-go/internal/drill"
	"kanadrill-go/internal/journal"
	"kanadrill-go/internal/kana"
	"kanadrill-go/internal/logger"
	"kanadrill-go/internal/worksheet"
)

// --- DATA LOADING ---

func loadDataset(cfg *config.Config) (*kana.Dataset, error) {
	if cfg.DatasetPath == "" {
		return kana.Default(), nil
	}
	return kana.LoadFile(cfg.DatasetPath)
}

func newRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1))
}

func exportWorksheet(cfg *config.Config, ds *kana.Dataset, log *zap.Logger) error {
	dir, err := cfg.Drill.ParsedDirection()
	if err != nil {
		return err
	}
	sheet := worksheet.Generate(ds, worksheet.Options{
		Range:       kana.Range(cfg.Drill.Range),
		Direction:   dir,
		Count:       cfg.Worksheet.Count,
		RandomOrder: cfg.Worksheet.RandomOrder,
		ShowAnswers: cfg.Worksheet.ShowAnswers,
	}, newRand())
	if len(sheet.Items) == 0 {
		return fmt.Errorf("nothing to put on a worksheet for range %q", cfg.Drill.Range)
	}
	if err := worksheet.Export(cfg.Worksheet.Output, sheet); err != nil {
		return err
	}
	log.Info("worksheet written",
		zap.String("path", cfg.Worksheet.Output),
		zap.Int("questions", len(sheet.Items)))
	fmt.Printf("Wrote %d questions to %s\n", len(sheet.Items), cfg.Worksheet.Output)
	return nil
}

// --- MAIN FUNCTION ---

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("Failed to load gojuon dataset: %v", err)
	}

	if cfg.Worksheet.Output != "" {
		if err := exportWorksheet(cfg, ds, zl); err != nil {
			log.Fatalf("Failed to export worksheet: %v", err)
		}
		return
	}

	j, err := journal.Open(context.Background(), zl)
	if err != nil {
		log.Fatalf("Failed to open journal: %v", err)
	}
	defer j.Close()

	dir, err := cfg.Drill.ParsedDirection()
	if err != nil {
		log.Fatalf("Invalid drill direction: %v", err)
	}
	session := drill.NewSession(ds,
		drill.WithRand(newRand()),
		drill.WithRecorder(j),
		drill.WithRange(kana.Range(cfg.Drill.Range)),
		drill.WithDirection(dir),
	)
	player := audio.New(cfg.Audio.Dir, cfg.Audio.Command, zl)

	zl.Info("starting drill",
		zap.String("session_id", j.SessionID().String()),
		zap.String("direction", dir.String()),
		zap.String("range", cfg.Drill.Range),
		zap.Int("pool", session.PoolSize()))

	p := tea.NewProgram(newModel(ds, session, j, player, zl))
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}

	score := session.Score()
	zl.Info("drill finished", zap.Int("correct", score.Correct), zap.Int("total", score.Total))
}
