package cmd

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/extract"
	"github.com/resumeiq/resumeiq/internal/logger"
	"github.com/resumeiq/resumeiq/internal/segment"
)

var bulletsCmd = &cobra.Command{
	Use:   "bullets <resume folder>",
	Short: "Extract bullet points from a folder of resumes for labeling",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bullets(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(bulletsCmd)

	bulletsCmd.Flags().StringP("output", "o", "unlabeled_bullets.txt", "where to write the collected bullets")
	bulletsCmd.Flags().Int("min-words", segment.DefaultMinBulletWords, "skip bullets shorter than this many words")
}

// bullets walks a folder of resumes and writes every distinct bullet point
// to the output file, one per line, sorted.
func bullets(cmd *cobra.Command, dir string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	output, _ := cmd.Flags().GetString("output")
	minWords, _ := cmd.Flags().GetInt("min-words")

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Fatal("reading resume folder", zap.Error(err))
	}

	unique := make(map[string]struct{})
	parsed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !extract.Supported(path) {
			continue
		}

		text, err := extract.ResumeText(path)
		if err != nil {
			// One unreadable resume should not stop the harvest.
			logger.Warn("skipping resume", zap.String("file", path), zap.Error(err))
			continue
		}

		count := 0
		for _, bullet := range segment.Bullets(extract.CleanText(text), minWords) {
			if _, ok := unique[bullet]; !ok {
				unique[bullet] = struct{}{}
				count++
			}
		}

		parsed++
		logger.Debug("parsed resume", zap.String("file", path), zap.Int("new_bullets", count))
	}

	if parsed == 0 {
		logger.Fatal("no supported resumes found", zap.String("dir", dir))
	}

	collected := make([]string, 0, len(unique))
	for bullet := range unique {
		collected = append(collected, bullet)
	}
	sort.Strings(collected)

	if err := os.WriteFile(output, []byte(strings.Join(collected, "\n")+"\n"), 0o644); err != nil {
		logger.Fatal("writing bullets file", zap.Error(err))
	}

	logger.Info("extracted bullets",
		zap.Int("resumes", parsed),
		zap.Int("bullets", len(collected)),
		zap.String("output", output),
	)
}
