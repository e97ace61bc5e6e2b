package seed

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// Length is the BIP39 seed size in bytes (512 bits).
	Length = 64

	pbkdf2Iterations = 2048 // BIP39 standard iterations
	saltPrefix       = "mnemonic"
)

// Derive converts a mnemonic phrase and an optional passphrase into a
// 64-byte seed using PBKDF2 (BIP39 standard):
//
//	seed = PBKDF2(NFKD(mnemonic), NFKD("mnemonic" + passphrase), 2048, 64, SHA512)
//
// The mnemonic is not validated against a wordlist; any string is accepted.
// The result is deterministic for identical inputs. Callers holding the seed
// past key derivation should clear it with Zero.
func Derive(mnemonic string, passphrase string) []byte {
	password := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String(saltPrefix + passphrase)

	return pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, Length, sha512.New)
}

// Zero overwrites key material in place so it does not linger in memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
