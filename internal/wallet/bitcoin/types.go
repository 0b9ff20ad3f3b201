package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

type (
	// KeyStore resolves wallet-owned public keys.
	KeyStore interface {
		PublicKeyByKeyHash(keyHash []byte) (*model.PublicKey, bool)
		PublicKeyByScriptHash(scriptHash []byte) (*model.PublicKey, bool)
	}
	// PrivateKeyStore resolves signing keys by derivation path.
	PrivateKeyStore interface {
		PrivateKey(path string) (*btcec.PrivateKey, bool)
	}
)
