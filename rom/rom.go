// Package rom loads UXN ROM files from disk (§6): raw bytes, no
// header, no checksum, laid out starting at the CPU's entry address.
package rom

import (
	"errors"
	"fmt"
	"os"

	"uxngo/uxn"
)

// ErrNotFound wraps any failure to read the ROM path.
var ErrNotFound = errors.New("rom: file not found or unreadable")

// ErrTooLarge reports a ROM that would not fit below the 64KiB
// address space once loaded at the entry offset.
var ErrTooLarge = errors.New("rom: exceeds maximum ROM size")

// Load reads the ROM at path and validates its size. It does not
// touch a CPU's memory; callers pass the returned bytes to
// uxn.CPU.LoadROM once a machine exists.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if len(data) > uxn.MaxROMSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, max is %d", ErrTooLarge, path, len(data), uxn.MaxROMSize)
	}
	return data, nil
}
