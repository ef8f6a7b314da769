// Package mailbox wraps the IMAP transport. It owns the one authenticated
// session of a run and hands raw message bytes to the parser; nothing here
// is persisted and the credential lives only for the session.
package mailbox

import (
	"fmt"
	"io"

	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/models"
	"fjacquet/invoice-scan/internal/scanerror"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

// HardCap bounds a single scan regardless of configuration, as a guard
// against accidentally pulling a whole mailbox over one session.
const HardCap = 200

// Session is one authenticated IMAP session.
type Session struct {
	client *client.Client
	logger logging.Logger
}

// Connect dials the server over TLS. Network and TLS failures yield a
// *scanerror.ConnectionError.
func Connect(host string, port int, logger logging.Logger) (*Session, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	logger.WithField(logging.FieldHost, addr).Info("Connecting to IMAP server")

	c, err := client.DialTLS(addr, nil)
	if err != nil {
		return nil, &scanerror.ConnectionError{Host: addr, Err: err}
	}

	return &Session{client: c, logger: logger}, nil
}

// Login authenticates the session. The secret is held only for the call
// and never logged. Rejected credentials yield a *scanerror.AuthError.
func (s *Session) Login(user, secret string) error {
	if err := s.client.Login(user, secret); err != nil {
		return &scanerror.AuthError{User: user, Err: err}
	}
	s.logger.WithField("user", user).Info("Authenticated")
	return nil
}

// FetchNewest selects the mailbox read-only and returns the newest limit
// messages, newest first, each as the full RFC 822 bytes. Unexpected
// server responses yield a *scanerror.ProtocolError.
func (s *Session) FetchNewest(mailbox string, limit int) ([]models.RawMessage, error) {
	status, err := s.client.Select(mailbox, true)
	if err != nil {
		return nil, &scanerror.ProtocolError{Op: "select " + mailbox, Err: err}
	}

	from, to := seqRange(status.Messages, limit)
	if to == 0 {
		s.logger.WithField(logging.FieldMailbox, mailbox).Info("Mailbox is empty")
		return nil, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldMailbox, Value: mailbox},
		logging.Field{Key: "total", Value: status.Messages},
		logging.Field{Key: logging.FieldCount, Value: to - from + 1},
	).Info("Fetching newest messages")

	seqset := new(imap.SeqSet)
	seqset.AddRange(from, to)

	// Peek keeps the scan side-effect free: no \Seen flags are set.
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem()}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- s.client.Fetch(seqset, items, messages)
	}()

	var raw []models.RawMessage
	for msg := range messages {
		body := msg.GetBody(section)
		if body == nil {
			s.logger.WithField(logging.FieldSeqNum, msg.SeqNum).Warn("Server returned no body for message")
			continue
		}
		data, err := io.ReadAll(body)
		if err != nil {
			s.logger.WithError(err).WithField(logging.FieldSeqNum, msg.SeqNum).Warn("Failed to read message body")
			continue
		}
		raw = append(raw, models.RawMessage{SeqNum: msg.SeqNum, Body: data})
	}

	if err := <-done; err != nil {
		return nil, &scanerror.ProtocolError{Op: "fetch", Err: err}
	}

	reverse(raw)
	return raw, nil
}

// Close logs out of the session. Safe to call on an already closed session.
func (s *Session) Close() {
	if s.client == nil {
		return
	}
	if err := s.client.Logout(); err != nil {
		s.logger.WithError(err).Debug("Logout failed")
	}
	s.client = nil
}

// seqRange returns the sequence number range covering the newest limit
// messages of a mailbox holding total messages. A zero "to" means there is
// nothing to fetch. The limit is clamped to HardCap.
func seqRange(total uint32, limit int) (from, to uint32) {
	if total == 0 || limit <= 0 {
		return 0, 0
	}
	if limit > HardCap {
		limit = HardCap
	}
	to = total
	if uint32(limit) >= total {
		return 1, to
	}
	return total - uint32(limit) + 1, to
}

func reverse(msgs []models.RawMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
