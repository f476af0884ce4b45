package auth

import "golang.org/x/crypto/bcrypt"

// PasswordChecker abstracts how passwords are stored and verified so the
// mock contract (verbatim storage, string equality) and the hardened mode
// (bcrypt) share the same handler code.
type PasswordChecker interface {
	Hash(password string) (string, error)
	Compare(stored, supplied string) bool
}

// PlainChecker stores passwords verbatim and compares by string equality.
// Mock mode only.
type PlainChecker struct{}

func (PlainChecker) Hash(password string) (string, error) { return password, nil }

func (PlainChecker) Compare(stored, supplied string) bool { return stored == supplied }

// BcryptChecker stores bcrypt hashes.
type BcryptChecker struct{}

func (BcryptChecker) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (BcryptChecker) Compare(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
