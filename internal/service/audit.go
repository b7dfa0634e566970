package service

import (
	"encoding/hex"
	"log"

	"golang.org/x/crypto/blake2b"
)

// Auditor writes one line per state-changing call. Participant ids are hashed
// and nothing else about the request is logged.
type Auditor struct {
	logger *log.Logger
}

// NewAuditor wraps logger; nil uses the standard logger
func NewAuditor(logger *log.Logger) *Auditor {
	if logger == nil {
		logger = log.Default()
	}
	return &Auditor{logger: logger}
}

// Record logs op against room for participantID
func (a *Auditor) Record(roomCode, participantID, op string) {
	a.logger.Printf("[AUDIT] room=%s participant=%s op=%s", roomCode, RedactID(participantID), op)
}

// RedactID returns the first 8 hex chars of the id's blake2b digest
func RedactID(id string) string {
	if id == "" {
		return "-"
	}
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])[:8]
}
