package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/depth"
	"github.com/resumeiq/resumeiq/internal/logger"
	"github.com/resumeiq/resumeiq/internal/star"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the model artifacts the scorer consumes",
}

var trainStarCmd = &cobra.Command{
	Use:   "star",
	Short: "Train the STAR sentence classifier from a 'sentence | label' data file",
	Run: func(cmd *cobra.Command, _ []string) {
		trainStar(cmd)
	},
}

var trainDepthCmd = &cobra.Command{
	Use:   "depth",
	Short: "Train the bullet depth classifier from a 'sentence | label' data file",
	Run: func(cmd *cobra.Command, _ []string) {
		trainDepth(cmd)
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.AddCommand(trainStarCmd)
	trainCmd.AddCommand(trainDepthCmd)

	trainStarCmd.Flags().String("data", "star_data.txt", "labeled sentences file")
	trainStarCmd.Flags().StringP("output", "o", "star_model.json", "where to write the trained artifact")

	trainDepthCmd.Flags().String("data", "depth_data.txt", "labeled bullets file")
	trainDepthCmd.Flags().StringP("output", "o", "depth_model.json", "where to write the trained artifact")
}

func trainStar(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	dataPath, _ := cmd.Flags().GetString("data")
	output, _ := cmd.Flags().GetString("output")

	sentences, labels, err := star.LoadDataset(dataPath)
	if err != nil {
		logger.Fatal("loading dataset", zap.Error(err))
	}

	logger.Info("loaded dataset", zap.String("data", dataPath), zap.Int("examples", len(sentences)))

	model, summary, err := star.Train(sentences, labels, logger)
	if err != nil {
		logger.Fatal("training star model", zap.Error(err))
	}

	if err := model.Save(output); err != nil {
		logger.Fatal("saving star model", zap.Error(err))
	}

	logger.Info("saved star model", zap.String("output", output))

	printSummary(summary)
}

func trainDepth(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	var geminiConfig *GeminiConfig
	if config.Depth != nil {
		geminiConfig = config.Depth.Gemini
	}

	embedder, err := newEmbedder(ctx, geminiConfig, logger)
	if err != nil {
		logger.Fatal("building embedder", zap.Error(err))
	}

	dataPath, _ := cmd.Flags().GetString("data")
	output, _ := cmd.Flags().GetString("output")

	bullets, labels, err := star.LoadDataset(dataPath)
	if err != nil {
		logger.Fatal("loading dataset", zap.Error(err))
	}

	logger.Info("loaded dataset", zap.String("data", dataPath), zap.Int("examples", len(bullets)))

	model, summary, err := depth.Train(ctx, embedder, bullets, labels, logger)
	if err != nil {
		logger.Fatal("training depth model", zap.Error(err))
	}

	if err := model.Save(output); err != nil {
		logger.Fatal("saving depth model", zap.Error(err))
	}

	logger.Info("saved depth model", zap.String("output", output))

	printSummary(summary)
}

func printSummary(summary any) {
	pretty, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(pretty))
}
