package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedSchemaVersions(t *testing.T) {
	m := &Migrator{files: schemaFS}

	versions, err := m.Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(versions) == 0 || versions[0] != "001" {
		t.Fatalf("versions = %v, want first 001", versions)
	}
}

func TestInitSchemaDeclaresTables(t *testing.T) {
	content, err := fs.ReadFile(schemaFS, "schema/001_init.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	sql := string(content)

	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS students",
		"CREATE TABLE IF NOT EXISTS faculty",
		"CREATE TABLE IF NOT EXISTS teachers",
		"CREATE TABLE IF NOT EXISTS feedback",
		"feedback_student_teacher_semester_key UNIQUE (student_id, teacher_id, semester)",
		"q10 INTEGER",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("schema missing %q", want)
		}
	}
}

func TestVersionOf(t *testing.T) {
	if got := versionOf("002_add_index.sql"); got != "002" {
		t.Errorf("versionOf = %q", got)
	}
}
