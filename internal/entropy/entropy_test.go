package entropy

import (
	"bytes"
	"testing"
)

func TestRead(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	if err := Read(a); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if err := Read(b); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two 16-byte draws collided, source is not random")
	}
}

func TestReadFuncStub(t *testing.T) {
	previous := ReadFunc
	defer func() { ReadFunc = previous }()

	ReadFunc = func(b []byte) error {
		for i := range b {
			b[i] = 0xab
		}
		return nil
	}
	b := make([]byte, 4)
	if err := Read(b); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	for _, v := range b {
		if v != 0xab {
			t.Fatalf("stub not applied: %v", b)
		}
	}
}
