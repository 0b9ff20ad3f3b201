package bitcoin

import "github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"

// SingleKeyManager serves a wallet holding one key. Change returns to that key
// and the key set never grows, so the peer filter is never outdated by a gap shift.
type SingleKeyManager struct {
	publicKey *model.PublicKey
}

// NewSingleKeyManager builds a manager around publicKey.
func NewSingleKeyManager(publicKey *model.PublicKey) *SingleKeyManager {
	return &SingleKeyManager{publicKey: publicKey}
}

func (m *SingleKeyManager) ChangePublicKey() (*model.PublicKey, error) {
	if m.publicKey == nil {
		return nil, ErrNoPrivateKey
	}
	return m.publicKey, nil
}

func (m *SingleKeyManager) GapShifts() bool {
	return false
}
