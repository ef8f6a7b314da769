package vocab

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/invoice-scan/internal/logging"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the vocabulary override file looked up in the
// standard config locations.
const DefaultFilename = "vocab.yaml"

// FindConfigFile looks for a vocabulary file in standard locations:
// the path itself, ./config/, and ~/.config/invoice-scan/.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "invoice-scan", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// Load returns the vocabulary from filename, falling back to the
// compiled-in defaults when the file does not exist. Empty sections of a
// partial file are also filled from the defaults so an override may pin
// just the keyword list or just the weight table.
func Load(filename string, log logging.Logger) (Vocabulary, error) {
	if filename == "" {
		filename = DefaultFilename
	}

	path, err := FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("No vocabulary file found, using built-in defaults")
			return Default(), nil
		}
		return Vocabulary{}, fmt.Errorf("error resolving vocabulary file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("error reading vocabulary file %s: %w", path, err)
	}

	// Baseline is a pointer so an explicit "risk_baseline: 0" is
	// distinguishable from an absent key.
	var file struct {
		InvoiceKeywords []string        `yaml:"invoice_keywords"`
		RiskBaseline    *float64        `yaml:"risk_baseline"`
		RiskTopN        int             `yaml:"risk_top_n"`
		RiskWeights     []WeightedToken `yaml:"risk_weights"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Vocabulary{}, fmt.Errorf("error parsing vocabulary file %s: %w", path, err)
	}

	v := Default()
	if len(file.InvoiceKeywords) > 0 {
		v.InvoiceKeywords = file.InvoiceKeywords
	}
	if file.RiskBaseline != nil {
		v.RiskBaseline = *file.RiskBaseline
	}
	if file.RiskTopN > 0 {
		v.RiskTopN = file.RiskTopN
	}
	if len(file.RiskWeights) > 0 {
		v.RiskWeights = file.RiskWeights
	}

	log.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "keywords", Value: len(v.InvoiceKeywords)},
		logging.Field{Key: "weights", Value: len(v.RiskWeights)},
	).Debug("Loaded vocabulary")

	return v, nil
}
