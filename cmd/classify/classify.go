// Package classify implements an offline command that runs the pipeline
// heuristics against a local .eml file, without touching the network.
package classify

import (
	"fmt"
	"os"

	"fjacquet/invoice-scan/cmd/root"
	"fjacquet/invoice-scan/internal/classifier"
	"fjacquet/invoice-scan/internal/extract"
	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/mailparse"
	"fjacquet/invoice-scan/internal/models"
	"fjacquet/invoice-scan/internal/risk"
	"fjacquet/invoice-scan/internal/vocab"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify and score a local .eml file",
	Long: `Classify parses a raw message file from disk and prints what the
scanner would record for it: classification, amount guess and risk score.`,
	RunE: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no input file: pass --input or an argument")
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	vocabulary, err := vocab.Load(root.Cfg.Vocab.File, logger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", input, err)
	}

	parser := mailparse.New(logger)
	email, err := parser.Parse(models.RawMessage{SeqNum: 1, Body: data})
	if err != nil {
		return err
	}

	isInvoice, reason := classifier.New(vocabulary, logger).Match(email.Subject, email.Body)
	score, tokens := risk.NewScorer(vocabulary).Score(email.Subject, email.Body)

	fmt.Printf("Subject:          %s\n", email.Subject)
	fmt.Printf("From:             %s (%s)\n", email.Sender, email.FromDomain())
	if email.ReplyTo != "" {
		fmt.Printf("Reply-To:         %s (%s)\n", email.ReplyTo, email.ReplyDomain())
	}
	fmt.Printf("Date:             %s\n", email.Date)
	fmt.Printf("Attachments:      %d (%s)\n", len(email.Attachments), email.AttachmentTypes())
	fmt.Printf("Has PDF:          %v\n", email.HasPDF())
	fmt.Printf("Invoice:          %v", isInvoice)
	if isInvoice {
		fmt.Printf(" (keyword: %s)", reason)
	}
	fmt.Println()
	if amount, ok := extract.Amount(email.Body); ok {
		fmt.Printf("Amount guess:     %s\n", amount.StringFixed(2))
	} else {
		fmt.Printf("Amount guess:     none\n")
	}
	fmt.Printf("Risk score:       %d\n", score)
	fmt.Printf("Top risk tokens:  %v\n", tokens)

	return nil
}
