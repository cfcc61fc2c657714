package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runCLI(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String() + stderr.String()
}

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPadAndCheck(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "boot2.bin", []byte{0xDE, 0xAD, 0xBE, 0xEF})
	out := filepath.Join(dir, "boot2_padded.bin")

	if code, msg := runCLI(t, "pad", in, out); code != 0 {
		t.Fatalf("pad: exit %d: %s", code, msg)
	}

	code, msg := runCLI(t, "check", out)
	if code != 0 {
		t.Fatalf("check: exit %d: %s", code, msg)
	}
	if !strings.Contains(msg, "OK 1ad0d175") {
		t.Errorf("check output: %q", msg)
	}

	if code, _ := runCLI(t, "pad", "--no-clobber", in, out); code != 1 {
		t.Errorf("pad --no-clobber over existing output: exit %d", code)
	}
}

func TestCheckFailures(t *testing.T) {
	dir := t.TempDir()
	img := make([]byte, 256)
	bad := writeFile(t, dir, "bad.bin", img)
	short := writeFile(t, dir, "short.bin", img[:100])

	code, msg := runCLI(t, "check", bad, short)
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if strings.Count(msg, "FAIL") != 2 {
		t.Errorf("check output: %q", msg)
	}
}

func TestLength(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "boot2.bin", make([]byte, 300))
	out := filepath.Join(dir, "out.bin")

	if code, msg := runCLI(t, "pad", in, out); code != 1 {
		t.Errorf("default length: exit %d: %s", code, msg)
	}

	if code, msg := runCLI(t, "--length=0x200", "pad", in, out); code != 0 {
		t.Fatalf("length 0x200: exit %d: %s", code, msg)
	}
	if code, msg := runCLI(t, "--length=512", "check", out); code != 0 {
		t.Errorf("check length 512: exit %d: %s", code, msg)
	}
	if code, _ := runCLI(t, "check", out); code != 1 {
		t.Errorf("check default length: exit %d", code)
	}

	for _, l := range []string{"--length=255", "--length=4", "--length=abc"} {
		if code, _ := runCLI(t, l, "check", out); code != 1 {
			t.Errorf("%s: exit %d", l, code)
		}
	}
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	img := append([]byte{0xDE, 0xAD, 0xBE, 0xEF}, make([]byte, 248)...)
	img = append(img, 0x75, 0xD1, 0xD0, 0x1A)
	path := writeFile(t, dir, "img.bin", img)

	code, msg := runCLI(t, "dump", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, msg)
	}
	if !strings.HasPrefix(msg, "00000000  de ad be ef 00") {
		t.Errorf("dump output: %q", msg)
	}
	if !strings.Contains(msg, "Payload 4 bytes, padding 248 bytes, checksum 1ad0d175 (computed 1ad0d175) OK") {
		t.Errorf("dump summary: %q", msg)
	}

	img[0] = 0
	writeFile(t, dir, "img.bin", img)
	_, msg = runCLI(t, "dump", path)
	if !strings.Contains(msg, "MISMATCH") {
		t.Errorf("dump summary: %q", msg)
	}

	if code, _ := runCLI(t, "dump", "--loop=3", path); code != 1 {
		t.Errorf("--loop=3: exit %d", code)
	}
}

func TestCRC(t *testing.T) {
	path := writeFile(t, t.TempDir(), "check.txt", []byte("123456789"))

	code, msg := runCLI(t, "crc", "--reference", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, msg)
	}
	if strings.Count(msg, "0376e6e7") != 2 {
		t.Errorf("crc output: %q", msg)
	}
}

func TestUsage(t *testing.T) {
	if code, _ := runCLI(t); code != 1 {
		t.Errorf("no command: exit %d", code)
	}
	if code, _ := runCLI(t, "pad", "only-one"); code != 1 {
		t.Errorf("missing argument: exit %d", code)
	}
}

func TestHexdump(t *testing.T) {
	out := hexdump(0x10, []byte("AB\x00"), nil)
	if !strings.HasPrefix(out, "00000010  41 42 00 ") {
		t.Errorf("hexdump prefix: %q", out)
	}
	if !strings.HasSuffix(out, "|AB."+strings.Repeat(" ", 29)+"|\n") {
		t.Errorf("hexdump ascii column: %q", out)
	}

	lines := strings.Split(strings.TrimSuffix(hexdump(0, make([]byte, 64), nil), "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "00000020  ") {
		t.Errorf("hexdump lines: %q", lines)
	}
	if len(lines[0]) != len(strings.Split(out, "\n")[0]) {
		t.Errorf("line widths differ")
	}
}
