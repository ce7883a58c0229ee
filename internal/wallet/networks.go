package wallet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Network is one chain the wallet can switch to.
type Network struct {
	Name       string
	ChainID    uint64
	RPCURL     string
	WSURL      string
	Explorer   string
	MinTipGwei int64 // priority fee floor enforced by the chain's validators
}

// ChainIDHex renders the chain id the way eth_chainId does ("0x89").
func (n Network) ChainIDHex() string { return hexutil.EncodeUint64(n.ChainID) }

// Endpoint prefers the websocket URL because log subscriptions need it.
func (n Network) Endpoint() string {
	if strings.TrimSpace(n.WSURL) != "" {
		return n.WSURL
	}
	return n.RPCURL
}

const (
	PolygonChainID  uint64 = 137
	AmoyChainID     uint64 = 80002
	EthereumChainID uint64 = 1
)

// ParseChainID accepts "0x89", "0X89" or "137".
func ParseChainID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty chain id")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// ParseNetwork reads "name|chainId|rpcURL[|wsURL[|minTipGwei]]".
func ParseNetwork(spec string) (Network, error) {
	parts := strings.Split(spec, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 || parts[0] == "" || parts[2] == "" {
		return Network{}, fmt.Errorf("network %q: want name|chainId|rpc[|ws[|minTipGwei]]", spec)
	}
	id, err := ParseChainID(parts[1])
	if err != nil {
		return Network{}, fmt.Errorf("network %q: chain id: %w", spec, err)
	}
	n := Network{Name: parts[0], ChainID: id, RPCURL: parts[2]}
	if len(parts) > 3 {
		n.WSURL = parts[3]
	}
	if len(parts) > 4 && parts[4] != "" {
		tip, err := strconv.ParseInt(parts[4], 10, 64)
		if err != nil {
			return Network{}, fmt.Errorf("network %q: min tip: %w", spec, err)
		}
		n.MinTipGwei = tip
	}
	return n, nil
}

// Registry holds the networks the wallet recognises, keyed by chain id.
type Registry struct {
	mu   sync.RWMutex
	byID map[uint64]Network
}

func NewRegistry(networks ...Network) *Registry {
	r := &Registry{byID: make(map[uint64]Network)}
	for _, n := range networks {
		r.Add(n)
	}
	return r
}

// DefaultRegistry knows Polygon, Amoy and Ethereum mainnet on public endpoints.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Network{Name: "polygon", ChainID: PolygonChainID, RPCURL: "https://polygon-rpc.com", Explorer: "https://polygonscan.com", MinTipGwei: 30},
		Network{Name: "amoy", ChainID: AmoyChainID, RPCURL: "https://rpc-amoy.polygon.technology", Explorer: "https://amoy.polygonscan.com", MinTipGwei: 25},
		Network{Name: "ethereum", ChainID: EthereumChainID, RPCURL: "https://eth.llamarpc.com", Explorer: "https://etherscan.io"},
	)
}

// Add inserts or replaces a network; replacing keeps unset URLs from the old entry.
func (r *Registry) Add(n Network) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byID[n.ChainID]; ok {
		if n.Name == "" {
			n.Name = old.Name
		}
		if n.RPCURL == "" {
			n.RPCURL = old.RPCURL
		}
		if n.WSURL == "" {
			n.WSURL = old.WSURL
		}
		if n.Explorer == "" {
			n.Explorer = old.Explorer
		}
		if n.MinTipGwei == 0 {
			n.MinTipGwei = old.MinTipGwei
		}
	}
	r.byID[n.ChainID] = n
}

// ByChainID resolves a hex or decimal chain id.
func (r *Registry) ByChainID(s string) (Network, bool) {
	id, err := ParseChainID(s)
	if err != nil {
		return Network{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byID[id]
	return n, ok
}

func (r *Registry) ByName(name string) (Network, bool) {
	name = strings.TrimSpace(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.byID {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Network{}, false
}

// Lookup tries the chain id form first, then the name.
func (r *Registry) Lookup(nameOrID string) (Network, bool) {
	if n, ok := r.ByChainID(nameOrID); ok {
		return n, true
	}
	return r.ByName(nameOrID)
}

// All returns the networks ordered by chain id.
func (r *Registry) All() []Network {
	r.mu.RLock()
	out := make([]Network, 0, len(r.byID))
	for _, n := range r.byID {
		out = append(out, n)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}
