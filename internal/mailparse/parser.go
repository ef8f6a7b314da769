// Package mailparse decodes raw RFC 822 messages into the pipeline's
// ParsedEmail form: decoded headers, a plain-text body and the attachment
// inventory.
package mailparse

import (
	"bytes"
	"io"
	"strings"

	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/models"
	"fjacquet/invoice-scan/internal/scanerror"

	"github.com/emersion/go-message"
	// Registers decoders for the common non-UTF-8 charsets.
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// Parser turns RawMessages into ParsedEmails.
type Parser struct {
	// KeepAttachmentData retains decoded attachment payloads so they can be
	// saved to disk. Off by default to keep memory flat over a scan.
	KeepAttachmentData bool

	logger logging.Logger
}

// New creates a Parser.
func New(logger logging.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse decodes one raw message. Transfer encodings and MIME words are
// decoded by go-message; multipart bodies prefer the text/plain part and
// fall back to stripped text/html when no plain part exists. Malformed
// MIME yields a *scanerror.ParseError so the caller can skip the message
// without aborting the scan.
func (p *Parser) Parse(raw models.RawMessage) (models.ParsedEmail, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw.Body))
	if err != nil {
		if !message.IsUnknownCharset(err) || mr == nil {
			return models.ParsedEmail{}, &scanerror.ParseError{
				SeqNum: raw.SeqNum,
				Reason: "malformed MIME structure",
				Err:    err,
			}
		}
		// Best effort: the reader is still usable, the body just stays
		// undecoded.
		p.logger.WithError(err).WithField(logging.FieldSeqNum, raw.SeqNum).
			Debug("Unknown charset in message")
	}

	parsed := models.ParsedEmail{}
	parsed.Subject, _ = mr.Header.Subject()
	parsed.Sender, _ = mr.Header.Text("From")
	parsed.ReplyTo, _ = mr.Header.Text("Reply-To")
	parsed.MessageID, _ = mr.Header.MessageID()
	if date, err := mr.Header.Date(); err == nil {
		parsed.Date = date
	}

	var plainText, htmlText strings.Builder
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			if message.IsUnknownCharset(err) {
				// Best effort: the part body is still readable undecoded.
				p.logger.WithError(err).WithField(logging.FieldSeqNum, raw.SeqNum).
					Debug("Unknown charset in message part")
			} else {
				return models.ParsedEmail{}, &scanerror.ParseError{
					SeqNum: raw.SeqNum,
					Reason: "malformed message part",
					Err:    err,
				}
			}
		}
		if part == nil {
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			switch {
			case strings.EqualFold(contentType, "text/plain"):
				_, _ = io.Copy(&plainText, part.Body)
				plainText.WriteByte('\n')
			case strings.EqualFold(contentType, "text/html"):
				_, _ = io.Copy(&htmlText, part.Body)
			}
		case *mail.AttachmentHeader:
			parsed.Attachments = append(parsed.Attachments, p.readAttachment(h, part.Body))
		}
	}

	parsed.Body = strings.TrimSpace(plainText.String())
	if parsed.Body == "" && htmlText.Len() > 0 {
		parsed.Body = StripHTML(htmlText.String())
	}

	return parsed, nil
}

func (p *Parser) readAttachment(h *mail.AttachmentHeader, body io.Reader) models.Attachment {
	filename, _ := h.Filename()
	contentType, _, _ := h.ContentType()

	data, err := io.ReadAll(body)
	if err != nil {
		p.logger.WithError(err).WithField(logging.FieldAttachment, filename).
			Warn("Failed to read attachment body")
	}

	att := models.Attachment{
		Filename: filename,
		Size:     len(data),
		PDF:      IsPDF(contentType, filename),
	}
	if p.KeepAttachmentData {
		att.Data = data
	}
	return att
}

// IsPDF reports whether an attachment is a PDF, by content type or by
// filename extension.
func IsPDF(contentType, filename string) bool {
	return strings.EqualFold(contentType, "application/pdf") ||
		strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".pdf")
}
