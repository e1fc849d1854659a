package version

import "testing"

func TestVersionIsTrimmed(t *testing.T) {
	t.Parallel()

	v := Version()
	if v == "" {
		t.Fatal("version must not be empty")
	}
	if v != "0.1.0" {
		t.Fatalf("version mismatch: got=%q", v)
	}
}
