package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"suratku_backend/internals/features/letters/service"
	helper "suratku_backend/internals/helpers"
	routes "suratku_backend/internals/route"
)

// mockRenderer menggantikan Chrome headless pada test end-to-end.
type mockRenderer struct {
	output []byte
	err    error
}

func (m *mockRenderer) RenderHTML(_ context.Context, _ string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func (m *mockRenderer) Close() error { return nil }

func newTestApp(t *testing.T, renderer service.HTMLRenderer) (*fiber.App, string) {
	t.Helper()
	store, err := service.NewTemplateStore()
	if err != nil {
		t.Fatalf("NewTemplateStore: %v", err)
	}
	outputDir := t.TempDir()
	svc, err := service.NewPDFService(store, renderer, outputDir, t.TempDir())
	if err != nil {
		t.Fatalf("NewPDFService: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, svc)
	return app, outputDir
}

func newMockApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	return newTestApp(t, &mockRenderer{output: []byte("%PDF-1.4 mock")})
}

/* ===================== PAYLOAD FIXTURES ===================== */

func suratTugasPayload() map[string]any {
	return map[string]any{
		"nomor_surat":   "800/042/SMK-1/2026",
		"tanggal_surat": "12 Januari 2026",
		"tempat_surat":  "Malang",
		"school_info": map[string]any{
			"nama_sekolah": "SMK Negeri 1 Malang",
			"alamat_jalan": "Jl. Sonokembang No. 1",
			"kab_kota":     "Malang",
			"provinsi":     "Jawa Timur",
		},
		"penandatangan": map[string]any{
			"nama":    "Drs. Budi Santoso, M.Pd.",
			"jabatan": "Kepala Sekolah",
			"nip":     "19650101 199003 1 001",
		},
		"assignees": []map[string]any{
			{"nama": "Siti Aminah, S.Pd.", "jabatan": "Guru Pembimbing"},
		},
		"students": []map[string]any{
			{"nama": "Ahmad Fauzi", "nis": "2021001", "kelas": "XII RPL 1"},
		},
	}
}

func lembarPersetujuanPayload() map[string]any {
	return map[string]any{
		"school_info": map[string]any{
			"nama_sekolah": "SMK Negeri 1 Malang",
			"alamat_jalan": "Jl. Sonokembang No. 1",
			"kab_kota":     "Malang",
			"provinsi":     "Jawa Timur",
		},
		"students": []map[string]any{
			{"nama": "Ahmad Fauzi", "nis": "2021001", "kelas": "XII RPL 1"},
		},
		"nama_perusahaan": "PT Maju Teknologi Nusantara",
		"tempat_tanggal":  "Malang, 12 Januari 2026",
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

type errorEnvelope struct {
	Code    int                 `json:"code"`
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  []helper.FieldError `json:"errors"`
}

func decodeError(t *testing.T, resp *http.Response) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func errorFields(env errorEnvelope) map[string]string {
	out := make(map[string]string, len(env.Errors))
	for _, fe := range env.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func countPDFs(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	n := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".pdf") {
			n++
		}
	}
	return n
}

/* ===================== GENERATE + DOWNLOAD ===================== */

func TestBuatSuratTugasEndToEnd(t *testing.T) {
	app, outputDir := newMockApp(t)

	resp := postJSON(t, app, "/api/v1/letters/surat-tugas", suratTugasPayload())
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, ingin 201; body: %s", resp.StatusCode, raw)
	}

	var pdfResp struct {
		Filename    string `json:"filename"`
		DownloadURL string `json:"download_url"`
		FileSize    int64  `json:"file_size"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&pdfResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !strings.HasPrefix(pdfResp.Filename, "surat_tugas_") || !strings.HasSuffix(pdfResp.Filename, ".pdf") {
		t.Errorf("filename = %q, ingin surat_tugas_*.pdf", pdfResp.Filename)
	}
	if pdfResp.DownloadURL != "/api/v1/letters/download/"+pdfResp.Filename {
		t.Errorf("download_url = %q tidak cocok dengan filename", pdfResp.DownloadURL)
	}
	if pdfResp.FileSize <= 0 {
		t.Errorf("file_size = %d, ingin > 0", pdfResp.FileSize)
	}
	if n := countPDFs(t, outputDir); n != 1 {
		t.Errorf("jumlah PDF di output = %d, ingin 1", n)
	}

	// Unduh lewat URL yang dikembalikan
	dl := getPath(t, app, pdfResp.DownloadURL)
	if dl.StatusCode != http.StatusOK {
		t.Fatalf("download status = %d, ingin 200", dl.StatusCode)
	}
	if ct := dl.Header.Get("Content-Type"); !strings.Contains(ct, "application/pdf") {
		t.Errorf("Content-Type = %q, ingin application/pdf", ct)
	}
	if cd := dl.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, ingin attachment", cd)
	}
	raw, err := io.ReadAll(dl.Body)
	if err != nil {
		t.Fatalf("membaca body: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Errorf("body tidak berawalan %%PDF")
	}

	// Preview harus inline
	pv := getPath(t, app, "/api/v1/letters/preview/"+pdfResp.Filename)
	if pv.StatusCode != http.StatusOK {
		t.Fatalf("preview status = %d, ingin 200", pv.StatusCode)
	}
	if cd := pv.Header.Get("Content-Disposition"); !strings.Contains(cd, "inline") {
		t.Errorf("Content-Disposition preview = %q, ingin inline", cd)
	}
}

func TestBuatLembarPersetujuanEndToEnd(t *testing.T) {
	app, _ := newMockApp(t)

	resp := postJSON(t, app, "/api/v1/letters/lembar-persetujuan", lembarPersetujuanPayload())
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, ingin 201; body: %s", resp.StatusCode, raw)
	}

	var pdfResp struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&pdfResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(pdfResp.Filename, "lembar_persetujuan_") {
		t.Errorf("filename = %q, ingin berawalan lembar_persetujuan_", pdfResp.Filename)
	}
}

/* ===================== VALIDASI ===================== */

func TestBuatSuratTugasTanggalTidakValid(t *testing.T) {
	app, outputDir := newMockApp(t)

	payload := suratTugasPayload()
	payload["tanggal_surat"] = "31 Februari 2025"

	resp := postJSON(t, app, "/api/v1/letters/surat-tugas", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, ingin 400", resp.StatusCode)
	}

	env := decodeError(t, resp)
	if env.Status != "error" || env.Message != "Validasi gagal" {
		t.Errorf("envelope = %+v", env)
	}
	if _, ok := errorFields(env)["tanggal_surat"]; !ok {
		t.Errorf("errors harus memuat tanggal_surat, dapat %+v", env.Errors)
	}
	if n := countPDFs(t, outputDir); n != 0 {
		t.Errorf("tidak boleh ada PDF yang tertulis, ada %d", n)
	}
}

func TestBuatSuratTugasFieldWajibKosong(t *testing.T) {
	app, _ := newMockApp(t)

	payload := suratTugasPayload()
	delete(payload, "nomor_surat")
	payload["assignees"] = []map[string]any{{"nama": "", "jabatan": "Guru"}}

	resp := postJSON(t, app, "/api/v1/letters/surat-tugas", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, ingin 400", resp.StatusCode)
	}

	fields := errorFields(decodeError(t, resp))
	for _, want := range []string{"nomor_surat", "assignees[0].nama"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("errors harus memuat %q, dapat %v", want, fields)
		}
	}
}

func TestBuatLembarPersetujuanTanpaSiswa(t *testing.T) {
	app, _ := newMockApp(t)

	payload := lembarPersetujuanPayload()
	payload["students"] = []map[string]any{}

	resp := postJSON(t, app, "/api/v1/letters/lembar-persetujuan", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, ingin 400", resp.StatusCode)
	}
	if _, ok := errorFields(decodeError(t, resp))["students"]; !ok {
		t.Errorf("errors harus memuat students")
	}
}

func TestPayloadBukanJSON(t *testing.T) {
	app, _ := newMockApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/letters/surat-tugas", strings.NewReader("bukan json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, ingin 400", resp.StatusCode)
	}
	if env := decodeError(t, resp); env.Message != "Payload tidak valid" {
		t.Errorf("message = %q", env.Message)
	}
}

/* ===================== ERROR PIPELINE ===================== */

func TestRenderGagalJadi500(t *testing.T) {
	app, outputDir := newTestApp(t, &mockRenderer{
		err: fmt.Errorf("%w: chrome mati", service.ErrPDFGeneration),
	})

	resp := postJSON(t, app, "/api/v1/letters/surat-tugas", suratTugasPayload())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, ingin 500", resp.StatusCode)
	}
	if env := decodeError(t, resp); env.Message != "Gagal membuat PDF" {
		t.Errorf("message = %q", env.Message)
	}
	if n := countPDFs(t, outputDir); n != 0 {
		t.Errorf("tidak boleh ada PDF yang tertulis, ada %d", n)
	}
}

/* ===================== DOWNLOAD / PREVIEW ===================== */

func TestDownloadFileTidakAda(t *testing.T) {
	app, _ := newMockApp(t)

	resp := getPath(t, app, "/api/v1/letters/download/surat_tugas_20990101T000000_x.pdf")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, ingin 404", resp.StatusCode)
	}
	if env := decodeError(t, resp); env.Message != "File tidak ditemukan" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestDownloadNamaTidakAman(t *testing.T) {
	app, _ := newMockApp(t)

	for _, path := range []string{
		"/api/v1/letters/download/..%2F..%2Fetc%2Fpasswd",
		"/api/v1/letters/download/catatan.txt",
		"/api/v1/letters/download/surat%20tugas.pdf",
		"/api/v1/letters/preview/..%2Fmain.go",
	} {
		resp := getPath(t, app, path)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s status = %d, ingin 404", path, resp.StatusCode)
		}
	}
}

/* ===================== TEMPLATES ===================== */

func TestDaftarTemplate(t *testing.T) {
	app, _ := newMockApp(t)

	resp := getPath(t, app, "/api/v1/letters/templates")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, ingin 200", resp.StatusCode)
	}

	var env struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
		Data   struct {
			Templates []string `json:"templates"`
			Count     int      `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Status != "success" {
		t.Errorf("status = %q, ingin success", env.Status)
	}
	if env.Data.Count != 2 || len(env.Data.Templates) != 2 {
		t.Errorf("count = %d, templates = %v, ingin 2 jenis", env.Data.Count, env.Data.Templates)
	}
	found := map[string]bool{}
	for _, name := range env.Data.Templates {
		found[name] = true
	}
	if !found["surat_tugas"] || !found["lembar_persetujuan"] {
		t.Errorf("templates = %v, ingin memuat surat_tugas dan lembar_persetujuan", env.Data.Templates)
	}
}
