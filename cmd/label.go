package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/logger"
)

const (
	labelPositive = "1 - follows the method"
	labelNegative = "0 - does not"
	labelSkip     = "Skip"
	labelQuit     = "Quit"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Interactively label collected bullets into a training data file",
	Run: func(cmd *cobra.Command, _ []string) {
		label(cmd)
	},
}

func init() {
	rootCmd.AddCommand(labelCmd)

	labelCmd.Flags().StringP("input", "i", "unlabeled_bullets.txt", "file with one bullet per line")
	labelCmd.Flags().StringP("output", "o", "star_data.txt", "labeled data file to append to")
}

// label walks the unlabeled bullets one by one and appends the chosen labels
// to the output file in the 'sentence | label' format the trainers read.
func label(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	bullets, err := readLines(input)
	if err != nil {
		logger.Fatal("reading bullets", zap.Error(err))
	}

	if len(bullets) == 0 {
		logger.Fatal("nothing to label", zap.String("input", input))
	}

	out, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Fatal("opening output file", zap.Error(err))
	}
	defer out.Close()

	labeled := 0

	for i, bullet := range bullets {
		prompt := promptui.Select{
			Label: fmt.Sprintf("[%d/%d] %s", i+1, len(bullets), bullet),
			Items: []string{labelPositive, labelNegative, labelSkip, labelQuit},
		}

		_, choice, err := prompt.Run()
		if err != nil {
			logger.Fatal("prompt failed", zap.Error(err))
		}

		var value string
		switch choice {
		case labelPositive:
			value = "1"
		case labelNegative:
			value = "0"
		case labelSkip:
			continue
		case labelQuit:
			logger.Info("labeled bullets", zap.Int("count", labeled), zap.String("output", output))
			return
		}

		if _, err := fmt.Fprintf(out, "%s | %s\n", bullet, value); err != nil {
			logger.Fatal("appending label", zap.Error(err))
		}
		labeled++
	}

	logger.Info("labeled bullets", zap.Int("count", labeled), zap.String("output", output))
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}
