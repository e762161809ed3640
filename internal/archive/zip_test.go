package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildZip(t *testing.T) {
	srcDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(srcDir, "OUTROS"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join("OUTROS", "ACME_LTDA - 10,00.txt"): "conteudo a",
		"avulso.txt": "conteudo b",
	}
	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(srcDir, rel), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	zipPath := filepath.Join(t.TempDir(), "saida.zip")
	if err := BuildZip(srcDir, zipPath); err != nil {
		t.Fatalf("BuildZip: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer zr.Close()

	got := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		got[f.Name] = string(data)
	}

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(got), got)
	}
	if got["OUTROS/ACME_LTDA - 10,00.txt"] != "conteudo a" {
		t.Errorf("nested entry missing or wrong, got %v", got)
	}
	if got["avulso.txt"] != "conteudo b" {
		t.Errorf("top-level entry missing or wrong, got %v", got)
	}
}

func TestBuildZipEmptyDir(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "vazio.zip")
	if err := BuildZip(t.TempDir(), zipPath); err != nil {
		t.Fatalf("BuildZip: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("empty archive should still be readable: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 0 {
		t.Errorf("got %d entries, want 0", len(zr.File))
	}
}

func TestBuildZipOverwrites(t *testing.T) {
	srcDir := t.TempDir()
	zipPath := filepath.Join(t.TempDir(), "saida.zip")

	if err := os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := BuildZip(srcDir, zipPath); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(srcDir, "a.txt")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "b.txt"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := BuildZip(srcDir, zipPath); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "b.txt" {
		t.Errorf("stale entries survived the rebuild: %v", zr.File)
	}
}
