package utils

import "testing"

func TestHashPassword(t *testing.T) {
	t.Parallel()

	digest := HashPassword("password")

	// 摘要是确定的，同一输入永远得到同一输出
	if digest != HashPassword("password") {
		t.Fatalf("digest is not deterministic")
	}
	if len(digest) != 64 {
		t.Fatalf("unexpected digest length: %d", len(digest))
	}
	if digest == HashPassword("Password") {
		t.Fatalf("different inputs produced the same digest")
	}
	if digest == "password" {
		t.Fatalf("digest must not equal the raw password")
	}
}
