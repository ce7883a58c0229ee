package wallet

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Parse hex ECDSA private key (with / without 0x).
func hexToECDSAPriv(s string) (*ecdsa.PrivateKey, error) {
	h := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if len(h) == 0 {
		return nil, errors.New("empty private key")
	}
	return gethcrypto.HexToECDSA(h)
}

// AddressFromHex derives the account address of a hex private key.
func AddressFromHex(pkHex string) (common.Address, error) {
	prv, err := hexToECDSAPriv(pkHex)
	if err != nil {
		return common.Address{}, err
	}
	return gethcrypto.PubkeyToAddress(prv.PublicKey), nil
}

// MaskHex hides all but the edges of a secret for printing.
func MaskHex(h string) string {
	h = strings.TrimSpace(h)
	if len(h) <= 10 {
		return "***"
	}
	return h[:6] + "…" + h[len(h)-4:]
}

func gweiToWei(g int64) *big.Int {
	x := new(big.Int).SetInt64(g)
	return x.Mul(x, big.NewInt(1_000_000_000))
}

// newTransactor builds *bind.TransactOpts for key on chainID.
func newTransactor(key *ecdsa.PrivateKey, chainID uint64) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
}
