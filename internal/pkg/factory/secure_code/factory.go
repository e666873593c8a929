package secure_code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeFactory выдает шестизначные коды (OTP, tracking code) из
// криптографического ГСЧ. Код - единственный артефакт авторизации
// подтверждения доставки, поэтому math/rand здесь не годится.
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

const (
	codeMin  = 100000
	codeSpan = 900000
)

func (f *CodeFactory) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("random code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
