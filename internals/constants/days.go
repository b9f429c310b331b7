package constants

import "strings"

// Days adalah urutan hari sekolah yang dipakai tabel jadwal.
// Nilai hari disimpan persis seperti di sini (kapital di depan).
var Days = []string{
	"Senin",
	"Selasa",
	"Rabu",
	"Kamis",
	"Jumat",
	"Sabtu",
	"Minggu",
}

// NormalizeDay mencocokkan input path/body (case-insensitive) ke nama hari
// kanonik. Hari yang tidak dikenal ditolak di sini, bukan dibiarkan
// match kosong di query.
func NormalizeDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Days {
		if strings.EqualFold(s, d) {
			return d, true
		}
	}
	return "", false
}
