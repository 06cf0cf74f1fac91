package model

import (
	"encoding/json"
	"fmt"
)

// Tier names the rule that produced a candidate.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierClean
	TierPartial // manufacturer token-set match
	TierPartialForward
	TierPartialReverse
	TierSubstring
)

// ExactScore outranks every fuzzy score.
const ExactScore = 101

var tierNames = map[Tier]string{
	TierNone:           "",
	TierExact:          "EXACT",
	TierClean:          "CLEAN",
	TierPartial:        "PARTIAL",
	TierPartialForward: "PARTIAL_FWD",
	TierPartialReverse: "PARTIAL_REV",
	TierSubstring:      "SUBSTRING",
}

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if name == s {
			return t, nil
		}
	}
	return TierNone, fmt.Errorf("unknown tier %q", s)
}

func (t Tier) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Tier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
