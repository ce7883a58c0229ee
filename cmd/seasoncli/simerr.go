package main

import (
	"errors"
	"strings"

	"github.com/ligun0805/season-mint/internal/mint"
	"github.com/ligun0805/season-mint/internal/wallet"
)

// friendlyErr normalizes common wallet and node errors for readable CLI output.
func friendlyErr(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case wallet.IsUserRejected(err):
		return "request rejected"
	case wallet.HasCode(err, wallet.CodeUnauthorized):
		return "no account available (set PRIVATE_KEY)"
	case wallet.HasCode(err, wallet.CodeUnrecognizedChain):
		return "network unknown to the wallet (add it to NETWORKS)"
	case errors.Is(err, mint.ErrNoAccounts):
		return "wallet returned no accounts"
	case errors.Is(err, mint.ErrMintInFlight):
		return "a mint is already being sent"
	}
	ls := strings.ToLower(err.Error())
	switch {
	case strings.Contains(ls, "insufficient funds"):
		return "insufficient POL for gas"
	case strings.Contains(ls, "execution reverted"):
		return "contract rejected the request: " + err.Error()
	case strings.Contains(ls, "notifications not supported"):
		return "endpoint cannot stream events (set WS_URL)"
	case strings.Contains(ls, "invalid character '<'"):
		return "non-JSON/HTML response (proxy/cf?)"
	case strings.Contains(ls, "dial tcp"), strings.Contains(ls, "lookup "):
		return "network/DNS error"
	}
	return err.Error()
}
