package star

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadDataset reads a labeled sentence file. Each line holds one example in
// the form "sentence | label" with label 0 or 1; the split is on the last
// pipe so sentences may contain pipes themselves. Lines without a valid
// label are skipped rather than failing the whole file.
func LoadDataset(path string) (sentences []string, labels []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		idx := strings.LastIndex(line, "|")
		if idx < 0 {
			continue
		}

		sentence := strings.TrimSpace(line[:idx])
		label := strings.TrimSpace(line[idx+1:])
		if sentence == "" {
			continue
		}

		switch label {
		case "0":
			labels = append(labels, 0)
		case "1":
			labels = append(labels, 1)
		default:
			continue
		}

		sentences = append(sentences, sentence)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading dataset: %w", err)
	}

	if len(sentences) == 0 {
		return nil, nil, fmt.Errorf("dataset %q contains no labeled sentences", path)
	}

	return sentences, labels, nil
}
