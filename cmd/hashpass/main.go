package main

import (
	"fmt"
	"log"
	"os"

	"personel-backend/internal/auth"
)

// Verilen şifrenin bcrypt hash'ini basar. Elle kullanıcı açarken işe yarar.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("Kullanım: hashpass <şifre>")
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("Şifre hashlenemedi: %v", err)
	}

	fmt.Println(hash)
}
