package domain

import (
	"encoding/json"
	"errors"
)

// ErrEmptyWordList is returned when a word source yields no entries
var ErrEmptyWordList = errors.New("word list is empty")

// WordEntry is one numbered item of the source vocabulary list
type WordEntry struct {
	ID      int    `json:"id"`
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}

// UnmarshalJSON also accepts the en/jp keys written by older caches.
func (e *WordEntry) UnmarshalJSON(data []byte) error {
	type plain WordEntry
	var raw struct {
		plain
		En string `json:"en"`
		Jp string `json:"jp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = WordEntry(raw.plain)
	if e.Term == "" {
		e.Term = raw.En
	}
	if e.Meaning == "" {
		e.Meaning = raw.Jp
	}
	return nil
}
