package utils

import "github.com/matthewhartstonge/argon2"

// hashConfig is shared so every row in users.password is encoded with
// the same parameters.
var hashConfig = argon2.DefaultConfig()

func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
