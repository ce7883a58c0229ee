package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

// Wallet methods handled by the provider itself. Everything else goes to the node.
const (
	MethodChainID         = "eth_chainId"
	MethodAccounts        = "eth_accounts"
	MethodRequestAccounts = "eth_requestAccounts"
	MethodSwitchChain     = "wallet_switchEthereumChain"
)

//go:generate mockgen -source=provider.go -destination=../mocks/provider_mock.go -package=mocks

// Provider is the EIP-1193 surface the dapp components consume.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
	// SubscribeChainChanged delivers the new hex chain id after every switch.
	SubscribeChainChanged(ch chan<- string) event.Subscription
}

// SwitchChainParams is the single element of wallet_switchEthereumChain params.
type SwitchChainParams struct {
	ChainID string `json:"chainId"`
}

// ChainID asks the provider for the active chain id as a lower-case hex string.
func ChainID(ctx context.Context, p Provider) (string, error) {
	raw, err := p.Request(ctx, MethodChainID)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", fmt.Errorf("decode %s: %w", MethodChainID, err)
	}
	return strings.ToLower(strings.TrimSpace(id)), nil
}

// RequestAccounts asks the provider to expose its accounts.
func RequestAccounts(ctx context.Context, p Provider) ([]common.Address, error) {
	raw, err := p.Request(ctx, MethodRequestAccounts)
	if err != nil {
		return nil, err
	}
	var hexes []string
	if err := json.Unmarshal(raw, &hexes); err != nil {
		return nil, fmt.Errorf("decode %s: %w", MethodRequestAccounts, err)
	}
	out := make([]common.Address, 0, len(hexes))
	for _, h := range hexes {
		if !common.IsHexAddress(h) {
			return nil, fmt.Errorf("decode %s: bad address %q", MethodRequestAccounts, h)
		}
		out = append(out, common.HexToAddress(h))
	}
	return out, nil
}

// SwitchChain asks the provider to make chainIDHex the active chain.
func SwitchChain(ctx context.Context, p Provider, chainIDHex string) error {
	_, err := p.Request(ctx, MethodSwitchChain, SwitchChainParams{ChainID: chainIDHex})
	return err
}

// decodeSwitchParams accepts SwitchChainParams, a map or raw JSON as first param.
func decodeSwitchParams(params []any) (string, error) {
	if len(params) != 1 {
		return "", &RPCError{Code: CodeInvalidParams, Message: "expected [{chainId}]"}
	}
	b, err := json.Marshal(params[0])
	if err != nil {
		return "", &RPCError{Code: CodeInvalidParams, Message: err.Error()}
	}
	var p SwitchChainParams
	if err := json.Unmarshal(b, &p); err != nil || strings.TrimSpace(p.ChainID) == "" {
		return "", &RPCError{Code: CodeInvalidParams, Message: "chainId is required"}
	}
	return p.ChainID, nil
}
