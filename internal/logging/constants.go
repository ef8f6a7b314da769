package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the scanner's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldMailbox    = "mailbox"
	FieldHost       = "host"
	FieldSeqNum     = "seq_num"
	FieldSubject    = "subject"
	FieldSender     = "sender"
	FieldReason     = "reason"
	FieldKeyword    = "keyword"
	FieldScore      = "risk_score"
	FieldCount      = "count"
	FieldOutputFile = "output_file"
	FieldAttachment = "attachment"
)
