// internals/features/letters/service/logo.go
package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Sisi terpanjang logo pada kop surat. Logo asli bisa besar sekali,
// 256px sudah lebih dari cukup untuk cetakan A4.
const logoMaxDimension = 256

/* =======================================================
   RESOLUSI LOGO KOP SURAT
   ======================================================= */

// resolveLogo mengubah logo_url dari payload menjadi nilai src yang aman
// untuk tag <img> di template. Tiga kemungkinan hasil:
//
//  1. URL http/https diteruskan apa adanya (Chrome yang mengunduh).
//  2. Nama file lokal dibaca dari staticDir, di-decode, diperkecil,
//     lalu di-embed sebagai data URI PNG.
//  3. String kosong bila logo tidak ada atau tidak valid. Surat tetap
//     dirender tanpa logo, jangan sampai kop gagal hanya karena gambar.
func resolveLogo(staticDir, logoURL string) string {
	logoURL = strings.TrimSpace(logoURL)
	if logoURL == "" {
		return ""
	}

	if strings.HasPrefix(logoURL, "http://") || strings.HasPrefix(logoURL, "https://") {
		return logoURL
	}

	// Hanya nama file polos yang boleh, tolak path traversal
	if strings.Contains(logoURL, "..") || strings.ContainsAny(logoURL, `/\`) {
		log.Printf("[LETTERS] Logo dilewati, nama file tidak aman: %q", logoURL)
		return ""
	}

	raw, err := os.ReadFile(filepath.Join(staticDir, logoURL))
	if err != nil {
		log.Printf("[LETTERS] Logo dilewati, gagal membaca %q: %v", logoURL, err)
		return ""
	}

	dataURI, err := encodeLogoDataURI(raw, logoURL)
	if err != nil {
		log.Printf("[LETTERS] Logo dilewati, gagal memproses %q: %v", logoURL, err)
		return ""
	}
	return dataURI
}

// encodeLogoDataURI men-decode gambar, memperkecil bila perlu, lalu
// mengembalikan data URI PNG siap pakai di atribut src.
func encodeLogoDataURI(raw []byte, filename string) (string, error) {
	img, err := decodeLogo(raw, filename)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	if bounds.Dx() > logoMaxDimension || bounds.Dy() > logoMaxDimension {
		img = imaging.Fit(img, logoMaxDimension, logoMaxDimension, imaging.CatmullRom)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode PNG gagal: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeLogo mengenali format dari isi file (sniff), bukan cuma ekstensi.
// Mendukung JPEG, PNG, dan WebP.
func decodeLogo(raw []byte, filename string) (image.Image, error) {
	contentType := http.DetectContentType(raw)

	switch {
	case strings.Contains(contentType, "jpeg"):
		return jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(contentType, "png"):
		return png.Decode(bytes.NewReader(raw))
	case strings.Contains(contentType, "webp"):
		return webp.Decode(bytes.NewReader(raw))
	}

	// Fallback ke ekstensi kalau sniffing tidak meyakinkan
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(raw))
	case ".png":
		return png.Decode(bytes.NewReader(raw))
	case ".webp":
		return webp.Decode(bytes.NewReader(raw))
	}
	return nil, fmt.Errorf("format gambar tidak didukung: %s", contentType)
}
