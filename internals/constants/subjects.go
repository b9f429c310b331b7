package constants

// Subjects adalah daftar mapel tetap yang dibuat saat inisialisasi nilai
// per siswa. Update nilai hanya mengena baris (student_name, subject)
// yang sudah dibuat dari daftar ini.
var Subjects = []string{
	"Matematika",
	"IPA",
	"IPS",
	"Bahasa Indonesia",
	"Bahasa Inggris",
	"PKN",
	"Olahraga",
	"Agama",
}
