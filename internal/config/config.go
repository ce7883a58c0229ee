package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings keeps all configuration options.
// Keys are read in both UPPER_CASE and lower_case form.
type Settings struct {
	RPCURL          string
	WSURL           string
	ExpectedChainID string // hex, e.g. 0x89
	InitialChain    string // name or chain id the wallet starts on
	Networks        []string
	ContractAddress string
	PrivateKeyHex   string
	MintAmount      int64
	FromBlock       uint64
	RPCRetries      int
	LogLevel        string
	LogJSON         bool
	FeedAddr        string
	AutoApprove     bool
}

// Load reads settings from environment supporting both UPPER_CASE and lower_case keys.
func Load() Settings {
	get := func(keys []string, def string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				return v
			}
		}
		return def
	}
	getInt := func(keys []string, def int) int {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return def
	}
	getInt64 := func(keys []string, def int64) int64 {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		return def
	}
	getUint64 := func(keys []string, def uint64) uint64 {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.ParseUint(s, 0, 64); err == nil {
			return n
		}
		return def
	}
	getBool := func(keys []string, def bool) bool {
		s := strings.ToLower(get(keys, ""))
		if s == "" {
			return def
		}
		return s == "1" || s == "true" || s == "yes" || s == "on"
	}
	splitCSV := func(s string) []string {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	st := Settings{}
	st.RPCURL = get([]string{"rpc_url", "RPC_URL"}, "")
	st.WSURL = get([]string{"ws_url", "WS_URL"}, "")
	st.ExpectedChainID = strings.ToLower(get([]string{"expected_chain_id", "EXPECTED_CHAIN_ID"}, "0x89"))
	st.InitialChain = get([]string{"initial_chain", "INITIAL_CHAIN"}, st.ExpectedChainID)
	st.Networks = splitCSV(get([]string{"networks", "NETWORKS"}, ""))
	st.ContractAddress = get([]string{"contract_address", "CONTRACT_ADDRESS"}, "")
	st.PrivateKeyHex = get([]string{"private_key", "PRIVATE_KEY"}, "")

	st.MintAmount = getInt64([]string{"mint_amount", "MINT_AMOUNT"}, 1)
	if st.MintAmount <= 0 {
		st.MintAmount = 1
	}
	st.FromBlock = getUint64([]string{"from_block", "FROM_BLOCK"}, 0)
	st.RPCRetries = getInt([]string{"rpc_retries", "RPC_RETRIES"}, 3)

	st.LogLevel = get([]string{"log_level", "LOG_LEVEL"}, "info")
	st.LogJSON = getBool([]string{"log_json", "LOG_JSON"}, false)
	st.FeedAddr = get([]string{"feed_addr", "FEED_ADDR"}, ":8089")
	st.AutoApprove = getBool([]string{"auto_approve", "AUTO_APPROVE"}, false)

	return st
}
