// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

var bcryptGenerateFromPassword = bcrypt.GenerateFromPassword

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password []byte) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}
