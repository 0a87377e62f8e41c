package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"arihant/internal/domain"
)

// AdminGate checks the shared admin secret. With neither a plain key nor a
// bcrypt hash configured the gate is open.
type AdminGate struct {
	key  []byte
	hash []byte
}

func NewAdminGate(key, bcryptHash string) *AdminGate {
	g := &AdminGate{}
	if key != "" {
		g.key = []byte(key)
	}
	if bcryptHash != "" {
		g.hash = []byte(bcryptHash)
	}
	return g
}

func (g *AdminGate) Open() bool {
	return g == nil || (len(g.key) == 0 && len(g.hash) == 0)
}

func (g *AdminGate) Check(supplied string) error {
	if g.Open() {
		return nil
	}
	if len(g.key) > 0 && subtle.ConstantTimeCompare([]byte(supplied), g.key) == 1 {
		return nil
	}
	if len(g.hash) > 0 && supplied != "" && bcrypt.CompareHashAndPassword(g.hash, []byte(supplied)) == nil {
		return nil
	}
	return domain.ErrUnauthorized
}

// HashAdminKey produces a value suitable for ADMIN_API_KEY_BCRYPT.
func HashAdminKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), 12)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
