package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func projectDoc(title, date string, featured bool, tags ...string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + title + "\n")
	b.WriteString("description: about " + title + "\n")
	b.WriteString("date: " + date + "\n")
	b.WriteString("tags: [" + strings.Join(tags, ", ") + "]\n")
	if featured {
		b.WriteString("featured: true\n")
	}
	b.WriteString("---\n\nbody\n")
	return b.String()
}

func TestLoadSortsProjects(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "projects", "older.md"), projectDoc("Older", "2022-01-01", false, "go"))
	writeTestFile(t, filepath.Join(dir, "projects", "newer.md"), projectDoc("Newer", "2024-06-01", false, "go"))
	writeTestFile(t, filepath.Join(dir, "projects", "pinned.md"), projectDoc("Pinned", "2021-01-01", true, "go"))

	lib, err := Load(LoadConfig{ContentDir: dir})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(lib.Projects) != 3 {
		t.Fatalf("projects = %d, want 3", len(lib.Projects))
	}
	got := []string{lib.Projects[0].Slug, lib.Projects[1].Slug, lib.Projects[2].Slug}
	want := []string{"pinned", "newer", "older"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestLoadInvalidProjectFailsWithField(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "projects", "bad.md"), "---\ndescription: d\ndate: 2024-01-01\ntags: [go]\n---\n")

	_, err := Load(LoadConfig{ContentDir: dir})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "projects/bad.md") || !strings.Contains(err.Error(), `"title"`) {
		t.Errorf("error = %q, want file and field named", err.Error())
	}
}

func TestLoadDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	// Same basename in different subdirectories produces the same slug.
	writeTestFile(t, filepath.Join(dir, "projects", "a", "thing.md"), projectDoc("A", "2024-01-01", false, "go"))
	writeTestFile(t, filepath.Join(dir, "projects", "b", "thing.md"), projectDoc("B", "2024-01-01", false, "go"))

	_, err := Load(LoadConfig{ContentDir: dir})
	if err == nil || !strings.Contains(err.Error(), "duplicate project slug") {
		t.Errorf("error = %v, want duplicate slug", err)
	}
}

func TestLoadEmptyContentDir(t *testing.T) {
	lib, err := Load(LoadConfig{ContentDir: filepath.Join(t.TempDir(), "missing")})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(lib.Projects) != 0 || len(lib.Certificates) != 0 {
		t.Error("missing content dir should load as empty")
	}
}

func TestLoadCertificates(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "certificates.yml"), `certificates:
  - id: 1
    title: Cloud Architect
    issuer: Example Cloud
    description: Professional certification
    date: "2023-11"
    image: /images/certs/cloud.png
    link: https://example.com/verify/1
  - id: 2
    title: Kubernetes Administrator
    issuer: CNCF
    date: "2024-02"
`)

	certs, err := LoadCertificates(filepath.Join(dir, "certificates.yml"))
	if err != nil {
		t.Fatalf("LoadCertificates error: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("certs = %d, want 2", len(certs))
	}
	if certs[0].Issuer != "Example Cloud" {
		t.Errorf("issuer = %q, want Example Cloud", certs[0].Issuer)
	}
	if certs[1].ID != 2 {
		t.Errorf("id = %d, want 2", certs[1].ID)
	}
}

func TestLoadCertificatesMissingFile(t *testing.T) {
	certs, err := LoadCertificates(filepath.Join(t.TempDir(), "certificates.yml"))
	if err != nil {
		t.Fatalf("LoadCertificates error: %v", err)
	}
	if certs != nil {
		t.Errorf("certs = %v, want nil for missing file", certs)
	}
}

func TestLoadCertificatesDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "certificates.yml"), `certificates:
  - id: 1
    title: A
    issuer: X
  - id: 1
    title: B
    issuer: Y
`)
	_, err := LoadCertificates(filepath.Join(dir, "certificates.yml"))
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("error = %v, want duplicate id", err)
	}
}
