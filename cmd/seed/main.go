package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"leafscan/internal/assistant"
	"leafscan/internal/repository"
	"leafscan/internal/service"
	"leafscan/pkg/config"
	"leafscan/pkg/logger"
	"leafscan/pkg/metrics"
	"leafscan/pkg/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		packDir     string
		cacheFile   string
		skipBuiltin bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load knowledge packs into the database",
		Long: "Stores the built-in knowledge base and every *.yaml pack found in the pack " +
			"directory. Packs whose file hash has not changed since the last run are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cmd.Flags().Changed("dir") {
				packDir = cfg.Knowledge.PackDir
			}
			if !cmd.Flags().Changed("cache") {
				cacheFile = cfg.Knowledge.CacheFile
			}

			if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			ctx := cmd.Context()
			db, err := postgres.NewPool(ctx, &cfg.Database, logger.Get())
			if err != nil {
				logger.Fatal("Failed to connect to database", zap.Error(err))
			}
			defer db.Close()

			if err := postgres.EnsureSchema(ctx, db, logger.Get()); err != nil {
				logger.Fatal("Failed to apply schema", zap.Error(err))
			}

			knowledgeService := service.NewKnowledgeService(
				repository.NewKnowledgeRepository(db, logger.Get()),
				assistant.NewEngine(nil),
				metrics.New(),
				logger.Named("seed"),
			)

			logger.Info("Starting knowledge seeding", zap.String("dir", packDir))

			if !skipBuiltin {
				if err := knowledgeService.SeedPack(ctx, assistant.DefaultPack()); err != nil {
					return fmt.Errorf("failed to seed built-in pack: %w", err)
				}
				logger.Info("Seeded built-in pack", zap.Int("entries", len(assistant.DefaultPack().Entries)))
			}

			if err := seedPackDir(ctx, knowledgeService, packDir, cacheFile, force); err != nil {
				return err
			}

			logger.Info("Knowledge seeding completed")
			return nil
		},
	}

	cmd.Flags().StringVar(&packDir, "dir", "knowledge", "directory with *.yaml knowledge packs")
	cmd.Flags().StringVar(&cacheFile, "cache", ".seed_cache.json", "file remembering already seeded packs")
	cmd.Flags().BoolVar(&skipBuiltin, "skip-builtin", false, "do not store the built-in knowledge base")
	cmd.Flags().BoolVar(&force, "force", false, "reseed packs even when unchanged")

	return cmd
}

// ProcessedFile is a pack file recorded in the seed cache.
type ProcessedFile struct {
	FilePath    string    `json:"file_path"`
	FileHash    string    `json:"file_hash"`
	Entries     int       `json:"entries"`
	ProcessedAt time.Time `json:"processed_at"`
}

// CacheData maps pack file paths to their last seeded state.
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"`
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.ProcessedFiles == nil {
		cache.ProcessedFiles = make(map[string]ProcessedFile)
	}
	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}
	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// packFiles lists the *.yaml and *.yml files of dir in name order.
func packFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

type packSeeder interface {
	SeedPack(ctx context.Context, pack *assistant.KnowledgePack) error
}

func seedPackDir(ctx context.Context, seeder packSeeder, dir, cacheFile string, force bool) error {
	log := logger.Named("seed")

	files, err := packFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list packs: %w", err)
	}
	if len(files) == 0 {
		log.Info("No knowledge packs found", zap.String("dir", dir))
		return nil
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		log.Warn("Failed to load cache, will process all packs", zap.Error(err))
		cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	}

	for _, path := range files {
		fileHash, err := calculateFileHash(path)
		if err != nil {
			log.Warn("Failed to calculate file hash, will process anyway", zap.String("path", path), zap.Error(err))
		}

		if cached, ok := cache.ProcessedFiles[path]; ok && !force && fileHash != "" && cached.FileHash == fileHash {
			log.Info("Pack unchanged, skipping",
				zap.String("path", path),
				zap.Time("processed_at", cached.ProcessedAt),
			)
			continue
		}

		pack, err := assistant.LoadPackFile(path)
		if err != nil {
			log.Error("Invalid knowledge pack", zap.String("path", path), zap.Error(err))
			continue
		}
		if err := seeder.SeedPack(ctx, pack); err != nil {
			log.Error("Failed to seed pack", zap.String("path", path), zap.Error(err))
			continue
		}

		log.Info("Seeded knowledge pack",
			zap.String("pack", pack.Name),
			zap.Int("priority", pack.Priority),
			zap.Int("entries", len(pack.Entries)),
		)
		cache.ProcessedFiles[path] = ProcessedFile{
			FilePath:    path,
			FileHash:    fileHash,
			Entries:     len(pack.Entries),
			ProcessedAt: time.Now().UTC(),
		}
	}

	if err := saveCache(cacheFile, cache); err != nil {
		log.Warn("Failed to save cache", zap.Error(err))
	} else {
		log.Info("Cache saved", zap.Int("processed_files", len(cache.ProcessedFiles)))
	}
	return nil
}
