// Package scan implements the mailbox scanning command: one linear pass
// from IMAP fetch to spreadsheet export.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fjacquet/invoice-scan/cmd/root"
	"fjacquet/invoice-scan/internal/classifier"
	"fjacquet/invoice-scan/internal/extract"
	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/mailbox"
	"fjacquet/invoice-scan/internal/mailparse"
	"fjacquet/invoice-scan/internal/models"
	"fjacquet/invoice-scan/internal/report"
	"fjacquet/invoice-scan/internal/risk"
	"fjacquet/invoice-scan/internal/scanerror"
	"fjacquet/invoice-scan/internal/vocab"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	limit           int
	mailboxName     string
	address         string
	saveAttachments bool
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the mailbox and export invoice emails",
	Long: `Scan connects to the configured IMAP server, fetches the newest
messages, classifies invoice emails, scores them and writes the report.`,
	RunE: scanFunc,
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of messages to scan")
	Cmd.Flags().StringVarP(&mailboxName, "mailbox", "m", "", "Mailbox to scan")
	Cmd.Flags().StringVarP(&address, "address", "a", "", "Email address to log in with")
	Cmd.Flags().BoolVar(&saveAttachments, "save-attachments", false, "Save PDF attachments of invoice emails")
}

func scanFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	if limit > 0 {
		cfg.Scan.Limit = limit
	}
	if mailboxName != "" {
		cfg.IMAP.Mailbox = mailboxName
	}
	if address != "" {
		cfg.IMAP.Address = address
	}
	if saveAttachments {
		cfg.Scan.SaveAttachments = true
	}

	vocabulary, err := vocab.Load(cfg.Vocab.File, logger)
	if err != nil {
		return err
	}

	user, secret, err := credentials(cfg.IMAP.Address, cfg.IMAP.AppPassword)
	if err != nil {
		return err
	}

	session, err := mailbox.Connect(cfg.IMAP.Host, cfg.IMAP.Port, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Login(user, secret); err != nil {
		return err
	}

	rawMessages, err := session.FetchNewest(cfg.IMAP.Mailbox, cfg.Scan.Limit)
	if err != nil {
		return err
	}

	records := processMessages(rawMessages, cfg.Scan.SaveAttachments, cfg.Scan.AttachmentsDir, vocabulary, logger)

	writer := report.NewWriter(logger)
	writer.Delimiter = []rune(cfg.Report.Delimiter)[0]
	if err := writer.Write(records, cfg.Report.Output); err != nil {
		return err
	}

	logger.WithFields(
		logging.Field{Key: "scanned", Value: len(rawMessages)},
		logging.Field{Key: "invoices", Value: len(records)},
		logging.Field{Key: logging.FieldOutputFile, Value: cfg.Report.Output},
	).Info("Scan complete")

	return nil
}

// processMessages runs the per-message pipeline. Parse failures are
// isolated: the message is skipped and the scan continues.
func processMessages(rawMessages []models.RawMessage, keepAttachments bool, attachmentsDir string, vocabulary vocab.Vocabulary, logger logging.Logger) []models.InvoiceRecord {
	parser := mailparse.New(logger)
	parser.KeepAttachmentData = keepAttachments
	classify := classifier.New(vocabulary, logger)
	scorer := risk.NewScorer(vocabulary)

	var records []models.InvoiceRecord
	for _, raw := range rawMessages {
		email, err := parser.Parse(raw)
		if err != nil {
			logger.WithError(err).WithField(logging.FieldSeqNum, raw.SeqNum).Warn("Skipping unparseable message")
			continue
		}

		isInvoice, reason := classify.Match(email.Subject, email.Body)
		if !isInvoice {
			logger.WithField(logging.FieldSubject, email.Subject).Debug("Skipped: not an invoice")
			continue
		}

		record := models.InvoiceRecord{
			Date:    email.Date,
			Sender:  email.Sender,
			Subject: email.Subject,
			HasPDF:  email.HasPDF(),
		}
		if amount, ok := extract.Amount(email.Body); ok {
			record.AmountGuess = &amount
		}
		record.RiskScore, record.TopTokens = scorer.Score(email.Subject, email.Body)
		records = append(records, record)

		logger.WithFields(
			logging.Field{Key: logging.FieldSender, Value: email.Sender},
			logging.Field{Key: logging.FieldSubject, Value: email.Subject},
			logging.Field{Key: logging.FieldReason, Value: reason},
			logging.Field{Key: logging.FieldScore, Value: record.RiskScore},
		).Info("Saved invoice")

		if keepAttachments && email.HasPDF() {
			if err := email.SaveAttachments(attachmentsDir); err != nil {
				logger.WithError(err).Warn("Could not save attachments")
			}
		}
	}

	return records
}

// credentials returns the login pair, prompting interactively for anything
// not supplied by flag or environment. The password prompt never echoes.
func credentials(address, password string) (string, string, error) {
	if address == "" {
		fmt.Print("Email address: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read email address: %w", err)
		}
		address = strings.TrimSpace(line)
	}
	if address == "" {
		return "", "", fmt.Errorf("no email address provided")
	}

	if password == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return "", "", fmt.Errorf("no app password provided: set IMAP_APP_PASSWORD or run interactively")
		}
		fmt.Print("App password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", fmt.Errorf("failed to read app password: %w", err)
		}
		password = strings.TrimSpace(string(raw))
	}
	if password == "" {
		return "", "", &scanerror.AuthError{User: address, Err: fmt.Errorf("empty app password")}
	}

	return address, password, nil
}
