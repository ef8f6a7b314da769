package models

// RawMessage is one message as returned by the mailbox transport: the full
// RFC 822 bytes plus the server sequence number for diagnostics. Transient;
// consumed once by the message parser.
type RawMessage struct {
	SeqNum uint32
	Body   []byte
}
