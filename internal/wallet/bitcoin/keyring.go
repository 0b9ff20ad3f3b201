package bitcoin

import (
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// Keyring is an in-memory key store holding private keys by path.
type Keyring struct {
	mu           sync.RWMutex
	private      map[string]*btcec.PrivateKey
	byPath       map[string]*model.PublicKey
	byKeyHash    map[string]*model.PublicKey
	byScriptHash map[string]*model.PublicKey
}

// NewKeyring returns an empty Keyring.
func NewKeyring() *Keyring {
	return &Keyring{
		private:      make(map[string]*btcec.PrivateKey),
		byPath:       make(map[string]*model.PublicKey),
		byKeyHash:    make(map[string]*model.PublicKey),
		byScriptHash: make(map[string]*model.PublicKey),
	}
}

// Add stores key under path and returns its public half.
func (k *Keyring) Add(path string, key *btcec.PrivateKey) *model.PublicKey {
	raw := key.PubKey().SerializeCompressed()
	keyHash := btcutil.Hash160(raw)
	publicKey := &model.PublicKey{
		Path:                path,
		Raw:                 raw,
		KeyHash:             keyHash,
		ScriptHashForP2WPKH: btcutil.Hash160(nestedWitnessScript(keyHash)),
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.private[path] = key
	k.byPath[path] = publicKey
	k.byKeyHash[string(keyHash)] = publicKey
	k.byScriptHash[string(publicKey.ScriptHashForP2WPKH)] = publicKey
	return publicKey
}

// PublicKeyByPath looks a key up by its derivation path.
func (k *Keyring) PublicKeyByPath(path string) (*model.PublicKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	publicKey, ok := k.byPath[path]
	return publicKey, ok
}

// PublicKeyByKeyHash looks a key up by the HASH160 of its compressed form.
func (k *Keyring) PublicKeyByKeyHash(keyHash []byte) (*model.PublicKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	publicKey, ok := k.byKeyHash[string(keyHash)]
	return publicKey, ok
}

// PublicKeyByScriptHash looks a key up by the script hash of its nested witness program.
func (k *Keyring) PublicKeyByScriptHash(scriptHash []byte) (*model.PublicKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	publicKey, ok := k.byScriptHash[string(scriptHash)]
	return publicKey, ok
}

// PrivateKey returns the signing key stored under path.
func (k *Keyring) PrivateKey(path string) (*btcec.PrivateKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	key, ok := k.private[path]
	return key, ok
}
