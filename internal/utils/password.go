package utils

import "golang.org/x/crypto/bcrypt"

// passwordCost pins the bcrypt work factor so existing user hashes stay
// comparable across library upgrades.
const passwordCost = 10

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
