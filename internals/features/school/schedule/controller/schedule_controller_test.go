package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	m "sekolahku_backend/internals/features/school/schedule/model"
	"sekolahku_backend/internals/features/school/schedule/route"
)

type apiResp struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newScheduleApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&m.ScheduleModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	route.ScheduleRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, apiResp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out apiResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response %s %s: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func addSchedule(t *testing.T, app *fiber.App, username, day, subject, period string) {
	t.Helper()
	status, _ := doJSON(t, app, http.MethodPost, "/add-schedule", fiber.Map{
		"username": username, "day": day, "subject": subject, "period": period,
	})
	if status != http.StatusCreated {
		t.Fatalf("add-schedule %s/%s = %d, want 201", username, day, status)
	}
}

func TestViewSchedule_GroupedByDay(t *testing.T) {
	app, _ := newScheduleApp(t)

	addSchedule(t, app, "bob", "Senin", "Matematika", "1")
	addSchedule(t, app, "bob", "Senin", "IPA", "2")
	addSchedule(t, app, "bob", "Rabu", "Olahraga", "3")
	addSchedule(t, app, "lain", "Kamis", "IPS", "1")

	status, resp := doJSON(t, app, http.MethodGet, "/view-schedule/bob", nil)
	if status != http.StatusOK {
		t.Fatalf("view-schedule = %d, want 200", status)
	}

	var grouped map[string][]m.ScheduleModel
	if err := json.Unmarshal(resp.Data, &grouped); err != nil {
		t.Fatalf("decode grouped: %v", err)
	}

	if len(grouped) != 2 {
		t.Errorf("jumlah key hari = %d, want 2 (%v)", len(grouped), grouped)
	}
	if len(grouped["Senin"]) != 2 {
		t.Errorf("Senin = %d entri, want 2", len(grouped["Senin"]))
	}
	if len(grouped["Rabu"]) != 1 {
		t.Errorf("Rabu = %d entri, want 1", len(grouped["Rabu"]))
	}
	// urutan entri mengikuti urutan kembalinya storage (insert order di sini)
	if len(grouped["Senin"]) == 2 && grouped["Senin"][0].Subject != "Matematika" {
		t.Errorf("Senin[0].Subject = %q, want Matematika", grouped["Senin"][0].Subject)
	}
}

func TestViewSchedule_ByDay(t *testing.T) {
	app, _ := newScheduleApp(t)

	addSchedule(t, app, "bob", "Senin", "Matematika", "1")
	addSchedule(t, app, "bob", "Rabu", "IPA", "2")

	// parameter hari case-insensitive, dinormalisasi ke bentuk kanonik
	status, resp := doJSON(t, app, http.MethodGet, "/view-schedule/bob/senin", nil)
	if status != http.StatusOK {
		t.Fatalf("view by day = %d, want 200", status)
	}
	var data struct {
		Day       string            `json:"day"`
		Schedules []m.ScheduleModel `json:"schedules"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Day != "Senin" {
		t.Errorf("day = %q, want Senin", data.Day)
	}
	if len(data.Schedules) != 1 {
		t.Errorf("schedules = %d, want 1", len(data.Schedules))
	}

	// hari tidak dikenal → 400, bukan list kosong
	status, _ = doJSON(t, app, http.MethodGet, "/view-schedule/bob/harlibur", nil)
	if status != http.StatusBadRequest {
		t.Errorf("hari tak dikenal = %d, want 400", status)
	}
}

func TestEditSchedule_OwnershipMatch(t *testing.T) {
	app, db := newScheduleApp(t)

	addSchedule(t, app, "bob", "Senin", "Matematika", "1")
	var sched m.ScheduleModel
	if err := db.Take(&sched).Error; err != nil {
		t.Fatalf("ambil schedule: %v", err)
	}

	// username tidak cocok → 404, sama persis dengan id yang tidak ada
	status, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/edit-schedule/%d", sched.ScheduleID), fiber.Map{
		"username": "bukan-bob", "day": "Selasa", "subject": "IPA", "period": "2",
	})
	if status != http.StatusNotFound {
		t.Errorf("edit bukan pemilik = %d, want 404", status)
	}

	status, _ = doJSON(t, app, http.MethodPut, "/edit-schedule/99999", fiber.Map{
		"username": "bob", "day": "Selasa", "subject": "IPA", "period": "2",
	})
	if status != http.StatusNotFound {
		t.Errorf("edit id tak ada = %d, want 404", status)
	}

	// kombinasi yang benar → 200 dan baris berubah
	status, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/edit-schedule/%d", sched.ScheduleID), fiber.Map{
		"username": "bob", "day": "Selasa", "subject": "IPA", "period": "2",
	})
	if status != http.StatusOK {
		t.Fatalf("edit pemilik = %d, want 200", status)
	}
	var updated m.ScheduleModel
	if err := db.Take(&updated, "schedule_id = ?", sched.ScheduleID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.Day != "Selasa" || updated.Subject != "IPA" {
		t.Errorf("baris tidak berubah: %+v", updated)
	}

	// field kurang → 400 sebelum menyentuh storage
	status, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/edit-schedule/%d", sched.ScheduleID), fiber.Map{
		"username": "bob", "day": "Selasa",
	})
	if status != http.StatusBadRequest {
		t.Errorf("edit field kurang = %d, want 400", status)
	}
}

func TestDeleteSchedule_OwnershipMatch(t *testing.T) {
	app, db := newScheduleApp(t)

	addSchedule(t, app, "bob", "Senin", "Matematika", "1")
	var sched m.ScheduleModel
	if err := db.Take(&sched).Error; err != nil {
		t.Fatalf("ambil schedule: %v", err)
	}

	status, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/del-schedule/%d", sched.ScheduleID), fiber.Map{
		"username": "bukan-bob",
	})
	if status != http.StatusNotFound {
		t.Errorf("delete bukan pemilik = %d, want 404", status)
	}

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/del-schedule/%d", sched.ScheduleID), fiber.Map{
		"username": "bob",
	})
	if status != http.StatusOK {
		t.Fatalf("delete pemilik = %d, want 200", status)
	}

	var count int64
	if err := db.Model(&m.ScheduleModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("baris tersisa = %d, want 0", count)
	}
}

func TestAddSchedule_Validation(t *testing.T) {
	app, _ := newScheduleApp(t)

	status, resp := doJSON(t, app, http.MethodPost, "/add-schedule", fiber.Map{
		"username": "bob", "day": "Senin",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("add field kurang = %d, want 400", status)
	}
	if resp.Message != "All fields are required" {
		t.Errorf("message = %q", resp.Message)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/add-schedule", fiber.Map{
		"username": "bob", "day": "Harlibur", "subject": "X", "period": "1",
	})
	if status != http.StatusBadRequest {
		t.Errorf("add hari tak dikenal = %d, want 400", status)
	}
}
