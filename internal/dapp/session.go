package dapp

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/config"
	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/guard"
	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/seasonnft"
	"github.com/ligun0805/season-mint/internal/wallet"
)

// BuildRegistry starts from the default networks, adds NETWORKS entries and
// points the expected chain at RPC_URL / WS_URL when they are set.
func BuildRegistry(cfg config.Settings) (*wallet.Registry, error) {
	reg := wallet.DefaultRegistry()
	for _, spec := range cfg.Networks {
		n, err := wallet.ParseNetwork(spec)
		if err != nil {
			return nil, err
		}
		reg.Add(n)
	}
	if cfg.RPCURL != "" || cfg.WSURL != "" {
		id, err := wallet.ParseChainID(cfg.ExpectedChainID)
		if err != nil {
			return nil, fmt.Errorf("EXPECTED_CHAIN_ID: %w", err)
		}
		n := wallet.Network{ChainID: id, RPCURL: cfg.RPCURL, WSURL: cfg.WSURL}
		if _, known := reg.ByChainID(cfg.ExpectedChainID); !known {
			if cfg.RPCURL == "" {
				return nil, fmt.Errorf("EXPECTED_CHAIN_ID %s is not a known network and RPC_URL is empty", cfg.ExpectedChainID)
			}
			n.Name = fmt.Sprintf("chain-%d", id)
		}
		reg.Add(n)
	}
	return reg, nil
}

// Session is the wallet plus the contract binding a front end works with.
type Session struct {
	Wallet   *wallet.Wallet
	Contract *seasonnft.SeasonNFT // nil when CONTRACT_ADDRESS is empty
	Address  common.Address
	cfg      config.Settings
	logger   *zap.Logger
}

// OpenSession builds the local wallet and binds the contract. Nothing is
// dialed until the first request. extra is applied after the options derived
// from cfg.
func OpenSession(cfg config.Settings, approver wallet.Approver, l *zap.Logger, extra ...wallet.Option) (*Session, error) {
	l = logger.OrNop(l)
	reg, err := BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	opts := []wallet.Option{wallet.WithLogger(l.Named("wallet"))}
	if cfg.RPCRetries >= 0 {
		opts = append(opts, wallet.WithMaxRetries(uint64(cfg.RPCRetries)))
	}
	if approver != nil {
		opts = append(opts, wallet.WithApprover(approver))
	}
	opts = append(opts, extra...)
	w, err := wallet.New(cfg.PrivateKeyHex, reg, cfg.InitialChain, opts...)
	if err != nil {
		return nil, err
	}

	s := &Session{Wallet: w, cfg: cfg, logger: l}
	if addr := strings.TrimSpace(cfg.ContractAddress); addr != "" {
		if !common.IsHexAddress(addr) {
			w.Close()
			return nil, fmt.Errorf("CONTRACT_ADDRESS %q is not an address", addr)
		}
		s.Address = common.HexToAddress(addr)
		c, err := seasonnft.NewSeasonNFT(s.Address, w.ContractBackend())
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("bind contract: %w", err)
		}
		s.Contract = c
	}
	return s, nil
}

// Deps fills the App dependencies from the session and configuration.
func (s *Session) Deps(view guard.View) Deps {
	d := Deps{
		Provider:      s.Wallet,
		View:          view,
		Signer:        s.Wallet,
		ExpectedChain: s.cfg.ExpectedChainID,
		MintAmount:    s.cfg.MintAmount,
		Logger:        s.logger,
	}
	if s.Contract != nil {
		d.Contract = s.Contract
		d.Events = events.NewBindingSource(&s.Contract.SeasonNFTFilterer)
	}
	if s.cfg.FromBlock > 0 {
		from := s.cfg.FromBlock
		d.FromBlock = &from
	}
	return d
}

func (s *Session) Close() { s.Wallet.Close() }
