package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword şifreyi bcrypt ile tuzlayarak hashler.
// bcrypt girdi olarak en fazla 72 byte kabul eder; daha uzun şifrelerde
// GenerateFromPassword sessizce kırpmak yerine hata döner.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword karşılaştırmayı bcrypt'in kendi rutinine bırakır.
// Bozuk hash dahil her hata durumunda false döner, asla panic etmez.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
