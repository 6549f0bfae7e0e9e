package fileops

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestBlockSize(t *testing.T) {
	want := map[int]int{2: 1, 3: 1, 4: 2, 5: 4, 6: 8}
	for bits, size := range want {
		assert.Equal(t, size, BlockSize(bits), "BlockSize(%d)", bits)
	}
}

func TestDigestReaderEmpty(t *testing.T) {
	for bits := MinBits; bits <= MaxBits; bits++ {
		d, err := DigestReader(bytes.NewReader(nil), bits)
		require.NoError(t, err)
		assert.True(t, d.Empty(), "bits=%d", bits)
	}
}

func TestDigestReaderSelfCancels(t *testing.T) {
	for bits := 3; bits <= MaxBits; bits++ {
		size := BlockSize(bits)
		data := make([]byte, 3*size)
		for i := range data {
			data[i] = byte(i*37 + 11)
		}
		doubled := append(append([]byte{}, data...), data...)

		d, err := DigestReader(bytes.NewReader(doubled), bits)
		require.NoError(t, err)
		assert.Equal(t, 6, d.Blocks)
		assert.Equal(t, make([]byte, size), d.Sum, "bits=%d", bits)
	}
}

func TestDigestReader(t *testing.T) {
	tests := []struct {
		name string
		bits int
		data []byte
		want string
	}{
		{"one byte keeps low nibble", 2, []byte{0xAB}, "b"},
		// b ^ c ^ d
		{"nibbles after first byte xor in", 2, []byte{0xAB, 0xCD}, "a"},
		// 2 ^ 3 ^ 4 ^ 5 ^ 6
		{"three bytes", 2, []byte{0x12, 0x34, 0x56}, "6"},
		{"single block is copied", 3, []byte{0x5A}, "5a"},
		{"bytes xor", 3, []byte{0xF0, 0x0F, 0x01}, "fe"},
		{"short final block is zero padded", 4, []byte{0x12, 0x34, 0x56}, "4434"},
		{"32-bit blocks", 5, []byte{1, 2, 3, 4, 1, 2, 3, 4, 0xFF}, "ff000000"},
		{"64-bit block", 6, []byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DigestReader(bytes.NewReader(tt.data), tt.bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Hex())
		})
	}
}

func TestDigestReaderRejectsBits(t *testing.T) {
	for _, bits := range []int{-1, 0, 1, 7, 64} {
		_, err := DigestReader(bytes.NewReader([]byte{1}), bits)
		assert.ErrorIs(t, err, ErrInvalidBits)
		assert.ErrorIs(t, err, ErrUsage)
	}
}

func TestDigestReaderReadError(t *testing.T) {
	// TimeoutReader returns data on the first read and fails on the second.
	r := iotest.TimeoutReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))

	d, err := DigestReader(r, 3)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
	assert.False(t, d.Empty())
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "one.bin", []byte{0xAB})

	d, err := DigestFile(path, 2)
	require.NoError(t, err)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, "b", d.Hex())

	_, err = DigestFile(filepath.Join(dir, "missing.bin"), 2)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestXOR(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.bin", nil)
	data := writeFile(t, dir, "data.bin", []byte{0x12, 0x34, 0x56})
	missing := filepath.Join(dir, "missing.bin")

	var out bytes.Buffer
	require.NoError(t, XOR(&out, []string{empty, missing, data}, 4))

	want := "No data in " + empty + "\n" +
		"Computed XOR for " + data + ": 4434\n"
	assert.Equal(t, want, out.String())
}

func TestXORRejectsBitsBeforeReading(t *testing.T) {
	var out bytes.Buffer
	err := XOR(&out, []string{"does-not-matter"}, 7)
	assert.ErrorIs(t, err, ErrInvalidBits)
	assert.Empty(t, out.String())
}
