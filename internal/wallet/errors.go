package wallet

import (
	"errors"
	"fmt"
	"strings"
)

// EIP-1193 / JSON-RPC error codes.
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnsupportedMethod = 4200
	CodeUnrecognizedChain = 4902
	CodeInvalidParams     = -32602
)

// RPCError is a provider error with a numeric code, as a browser wallet would reject with.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string { return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message) }

// ErrorCode lets go-ethereum's rpc.Error consumers read the code.
func (e *RPCError) ErrorCode() int { return e.Code }

var errUserRejected = &RPCError{Code: CodeUserRejected, Message: "user rejected the request"}

// IsUserRejected reports whether err carries the 4001 code.
func IsUserRejected(err error) bool { return HasCode(err, CodeUserRejected) }

// HasCode reports whether err (or anything it wraps) is an RPCError with code.
func HasCode(err error, code int) bool {
	var re *RPCError
	return errors.As(err, &re) && re.Code == code
}

// isRateLimitError matches the throttling responses public RPC endpoints send.
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "Too Many Requests") || strings.Contains(s, "-32005") || strings.Contains(s, "429")
}
