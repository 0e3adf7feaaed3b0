package schema

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ResultType is why the model stopped generating a message
type ResultType uint

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ResultStop      ResultType = iota // answered
	ResultMaxTokens                   // truncated
	ResultBlocked                     // content filter
	ResultToolCall                    // wants tool results
	ResultOther                       // any other finish reason
)

var resultNames = [...]string{
	ResultStop:      "stop",
	ResultMaxTokens: "max_tokens",
	ResultBlocked:   "blocked",
	ResultToolCall:  "tool_call",
	ResultOther:     "other",
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ResultType) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

func (r ResultType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ResultType) UnmarshalText(data []byte) error {
	for i, name := range resultNames {
		if name == string(data) {
			*r = ResultType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown result type: %q", string(data))
}
