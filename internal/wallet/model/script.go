package model

import "fmt"

// ScriptType is the locking-script pattern of an output.
type ScriptType int

const (
	ScriptUnknown ScriptType = iota
	ScriptP2PKH
	ScriptP2PK
	ScriptP2MultiSig
	ScriptP2SH
	ScriptP2WSH
	ScriptP2WPKH
	// ScriptP2WPKHSH is pay-to-witness-pubkey-hash nested in pay-to-script-hash.
	ScriptP2WPKHSH
	ScriptNullData
)

func (t ScriptType) String() string {
	switch t {
	case ScriptP2PKH:
		return "p2pkh"
	case ScriptP2PK:
		return "p2pk"
	case ScriptP2MultiSig:
		return "p2multi"
	case ScriptP2SH:
		return "p2sh"
	case ScriptP2WSH:
		return "p2wsh"
	case ScriptP2WPKH:
		return "p2wpkh"
	case ScriptP2WPKHSH:
		return "p2wpkh-sh"
	case ScriptNullData:
		return "nulldata"
	default:
		return "unknown"
	}
}

// IsWitness reports whether spending the script type requires witness data.
func (t ScriptType) IsWitness() bool {
	switch t {
	case ScriptP2WPKH, ScriptP2WSH, ScriptP2WPKHSH:
		return true
	default:
		return false
	}
}

// Address is a decoded destination.
type Address struct {
	Encoded    string
	KeyHash    []byte
	ScriptType ScriptType
}

func (a Address) String() string {
	return a.Encoded
}

// ParseScriptType resolves the name produced by ScriptType.String.
func ParseScriptType(name string) (ScriptType, error) {
	for t := ScriptP2PKH; t <= ScriptNullData; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return ScriptUnknown, fmt.Errorf("unknown script type %q", name)
}
