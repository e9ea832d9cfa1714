package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/analysis"
	"github.com/resumeiq/resumeiq/internal/depth"
	"github.com/resumeiq/resumeiq/internal/extract"
	"github.com/resumeiq/resumeiq/internal/logger"
	"github.com/resumeiq/resumeiq/internal/roles"
	"github.com/resumeiq/resumeiq/internal/secrets"
	"github.com/resumeiq/resumeiq/internal/star"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume file>",
	Short: "Score a resume (PDF or DOCX) for STAR-method compliance",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("model", "m", "", "path to the STAR model artifact")
	scoreCmd.Flags().BoolP("breakdown", "b", false, "include the per-sentence breakdown in the report")
	scoreCmd.Flags().Bool("contacts", false, "include emails and links found in the resume")
	scoreCmd.Flags().StringP("role", "r", "", "target role for keyword matching")

	viper.BindPFlag("model", scoreCmd.Flags().Lookup("model"))
	viper.BindPFlag("role", scoreCmd.Flags().Lookup("role"))
}

// score is the main scoring pipeline: extract, segment, classify, report.
func score(cmd *cobra.Command, file string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.Model == "" {
		logger.Fatal("a STAR model artifact is required",
			zap.String("hint", "set --model, the RESUMEIQ_MODEL environment variable or the 'model' key in the configuration file"),
		)
	}

	starModel, err := star.Load(config.Model)
	if err != nil {
		logger.Fatal("loading star model", zap.Error(err))
	}

	logger.Info("scoring resume", zap.String("file", file), zap.String("model", config.Model))

	doc, err := analysis.NewDocument(file, config.MinBulletWords)
	switch {
	case errors.Is(err, extract.ErrNoText):
		// An empty resume is a degenerate zero score, not a failure.
		logger.Warn("resume contains no extractable text", zap.String("file", file))
		doc = &analysis.Document{Path: file}
	case err != nil:
		logger.Fatal("extracting resume", zap.Error(err))
	}

	logger.Info("extracted resume",
		zap.Int("sentences", len(doc.Sentences)),
		zap.Int("bullets", len(doc.Bullets)),
	)

	catalog := roles.Builtin()
	if err := catalog.Merge(config.Roles); err != nil {
		logger.Fatal("merging role overrides", zap.Error(err))
	}

	breakdown, _ := cmd.Flags().GetBool("breakdown")

	steps := []analysis.Step{
		analysis.NewStarStep(starModel, breakdown),
		analysis.NewRoleStep(config.Role, catalog),
		prepareDepthStep(ctx, config.Depth, logger),
	}

	if withContacts, _ := cmd.Flags().GetBool("contacts"); withContacts {
		steps = append(steps, analysis.NewContactsStep())
	}

	report, err := analysis.NewRunner(steps, logger).Run(ctx, doc)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	logger.Info("resume scored",
		zap.Int("total_sentences", report.TotalSentences),
		zap.Int("star_sentences", report.StarSentences),
		zap.Float64("star_percentage", report.StarPercentage),
	)

	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("encoding report", zap.Error(err))
	}

	fmt.Println(string(pretty))
}

// prepareDepthStep builds the depth step from config. Any missing piece
// disables the step instead of failing the whole run.
func prepareDepthStep(ctx context.Context, config *DepthConfig, logger *zap.Logger) analysis.Step {
	if config == nil || !config.Enabled {
		return analysis.NewDepthStep(nil, 0)
	}

	if config.Model == "" {
		logger.Warn("depth analysis enabled but no artifact configured under depth.model")
		return analysis.NewDepthStep(nil, 0)
	}

	embedder, err := newEmbedder(ctx, config.Gemini, logger)
	if err != nil {
		logger.Warn("skipping depth analysis", zap.Error(err))
		return analysis.NewDepthStep(nil, 0)
	}

	model, err := depth.Load(config.Model, embedder)
	if err != nil {
		logger.Warn("skipping depth analysis", zap.Error(err))
		return analysis.NewDepthStep(nil, 0)
	}

	return analysis.NewDepthStep(model, config.Threshold)
}

func newEmbedder(ctx context.Context, config *GeminiConfig, logger *zap.Logger) (depth.Embedder, error) {
	if config == nil {
		return nil, fmt.Errorf("gemini configuration is required for depth analysis")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set depth.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	embedderLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("embedding_model", config.Model),
	)

	return depth.NewGeminiEmbedder(ctx, apiKey, config.Model, config.MaxRetries, embedderLogger)
}
