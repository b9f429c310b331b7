package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	Port      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	Port = GetEnv("PORT", "3000")

	// Tanpa secret, token yang diterbitkan tidak akan pernah bisa diverifikasi.
	// Proses harus berhenti di sini, bukan jalan setengah hidup.
	if JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET belum diset!")
	}
	log.Println("✅ JWT_SECRET berhasil dimuat.")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
