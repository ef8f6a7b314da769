// Package models defines the data types flowing through the scan pipeline.
package models

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Attachment describes a single MIME attachment of a message.
// Data is only retained when attachment saving is enabled for the run.
type Attachment struct {
	Filename string
	Size     int
	PDF      bool
	Data     []byte
}

// ParsedEmail is the decoded form of one fetched message. It is immutable
// once constructed and discarded after scoring unless the message is
// classified as an invoice.
type ParsedEmail struct {
	Date        time.Time
	Sender      string
	ReplyTo     string
	Subject     string
	Body        string
	MessageID   string
	Attachments []Attachment
}

// HasPDF reports whether any attachment is a PDF, either by content type
// or by filename extension.
func (e ParsedEmail) HasPDF() bool {
	for _, a := range e.Attachments {
		if a.PDF {
			return true
		}
	}
	return false
}

// FromDomain returns the lowercase domain of the sender address.
func (e ParsedEmail) FromDomain() string {
	return DomainOf(e.Sender)
}

// ReplyDomain returns the lowercase domain of the Reply-To address.
func (e ParsedEmail) ReplyDomain() string {
	return DomainOf(e.ReplyTo)
}

// AttachmentTypes returns the sorted, deduplicated lowercase file extensions
// of all attachments, comma separated. Attachments without an extension are
// omitted.
func (e ParsedEmail) AttachmentTypes() string {
	seen := make(map[string]bool)
	var exts []string
	for _, a := range e.Attachments {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(a.Filename)), "."))
		if ext != "" && !seen[ext] {
			seen[ext] = true
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return strings.Join(exts, ",")
}

// DomainOf extracts the lowercase domain from an address header value such
// as "Name <user@acme.com>". Returns "" when no address is present.
func DomainOf(header string) string {
	addr := header
	if start := strings.LastIndex(header, "<"); start >= 0 {
		if end := strings.Index(header[start:], ">"); end > 0 {
			addr = header[start+1 : start+end]
		}
	}
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(addr[at+1:]))
}

// SaveAttachments writes attachment payloads below dir, creating it when
// needed. Attachments without data are skipped. Filenames are flattened to
// their base name so a crafted name cannot escape the directory.
func (e ParsedEmail) SaveAttachments(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	for _, a := range e.Attachments {
		if len(a.Data) == 0 {
			continue
		}
		name := filepath.Base(strings.TrimSpace(a.Filename))
		if name == "" || name == "." || name == string(filepath.Separator) {
			name = "unnamed"
		}
		if err := os.WriteFile(filepath.Join(dir, name), a.Data, 0600); err != nil {
			return err
		}
	}
	return nil
}
