package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsNewline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("alice\n"))

	got, err := GetSimpleText(r, "Username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("want %q, got %q", "alice", got)
	}
	if !strings.Contains(out.String(), "Username") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("alice"))

	got, err := GetSimpleText(r, "Username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("want %q, got %q", "alice", got)
	}
}

func TestGetSimpleText_EmptyInputReturnsError(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(r, "Username", &out); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestGetPassword_UsesStubbedReader(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "secret" {
		t.Fatalf("want %q, got %q", "secret", pw)
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetPassword_PropagatesError(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	wantErr := errors.New("no tty")
	readPassword = func(fd int) ([]byte, error) {
		return nil, wantErr
	}

	var out bytes.Buffer
	if _, err := GetPassword(&out); !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
}
