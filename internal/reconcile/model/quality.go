package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Quality is a match score that renders as a number, or as the sentinel when there is no match.
type Quality struct {
	score    int
	ok       bool
	sentinel string
}

func QualityOf(score int) Quality { return Quality{score: score, ok: true} }

func NoQuality(sentinel string) Quality { return Quality{sentinel: sentinel} }

// QualityFrom maps a result score onto a Quality, keeping nil apart from 0.
func QualityFrom(score *int, sentinel string) Quality {
	if score == nil {
		return NoQuality(sentinel)
	}
	return QualityOf(*score)
}

func (q Quality) Score() (int, bool) { return q.score, q.ok }

func (q Quality) String() string {
	if !q.ok {
		return q.sentinel
	}
	return strconv.Itoa(q.score)
}

func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.ok {
		return json.Marshal(q.sentinel)
	}
	return []byte(strconv.Itoa(q.score)), nil
}

func (q *Quality) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = NoQuality(s)
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*q = QualityOf(n)
	return nil
}
