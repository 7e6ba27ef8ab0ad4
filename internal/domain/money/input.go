package money

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Input is a lenient JSON amount. Numbers and numeric strings are accepted; null, empty and
// malformed values become zero instead of failing the request.
type Input struct {
	value decimal.Decimal
	set   bool
}

func NewInput(d decimal.Decimal) Input {
	return Input{value: d, set: true}
}

func (i Input) Decimal() decimal.Decimal { return i.value }

// IsSet reports whether the field was present in the payload (even if it was coerced to zero).
func (i Input) IsSet() bool { return i.set }

func (i *Input) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*i = Input{}
		return nil
	}
	*i = Input{value: ParseLenient(string(b)), set: true}
	return nil
}

func (i Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value.String())
}

// ParseLenient parses s as a decimal, returning zero for anything unparseable.
func ParseLenient(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
