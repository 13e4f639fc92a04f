package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	keccak "github.com/Giulio2002/keccakxof"
)

func TestOutputLength(t *testing.T) {
	n, err := outputLength(keccak.SHAKE128, 0)
	require.NoError(t, err)
	assert.Equal(t, 32, n)

	n, err = outputLength(keccak.SHAKE256, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	n, err = outputLength(keccak.SHA3_512, 0)
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	_, err = outputLength(keccak.Keccak256, 16)
	assert.Error(t, err)
	_, err = outputLength(keccak.SHAKE128, -1)
	assert.Error(t, err)
}

func TestSumReusesSponge(t *testing.T) {
	var buf bytes.Buffer
	s := keccak.SHAKE256.New()
	require.NoError(t, sum(&buf, s, 40, strings.NewReader("first"), "a"))
	require.NoError(t, sum(&buf, s, 40, strings.NewReader("second"), "b"))

	want1, want2 := make([]byte, 40), make([]byte, 40)
	sha3.ShakeSum256(want1, []byte("first"))
	sha3.ShakeSum256(want2, []byte("second"))
	assert.Equal(t,
		hex.EncodeToString(want1)+"  a\n"+hex.EncodeToString(want2)+"  b\n",
		buf.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestSumReadError(t *testing.T) {
	var buf bytes.Buffer
	s := keccak.SHA3_256.New()
	err := sum(&buf, s, 32, io.MultiReader(strings.NewReader("partial"), failingReader{}), "bad")
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Empty(t, buf.String())
	assert.Equal(t, keccak.SHA3_256.New(), s)
}

func TestSumFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "msg")
	require.NoError(t, os.WriteFile(name, []byte("file contents"), 0644))

	var buf bytes.Buffer
	require.NoError(t, sumFile(&buf, keccak.Keccak256.New(), 32, name))

	want := sha3.NewLegacyKeccak256()
	want.Write([]byte("file contents"))
	assert.Equal(t, hex.EncodeToString(want.Sum(nil))+"  "+name+"\n", buf.String())

	assert.Error(t, sumFile(&buf, keccak.Keccak256.New(), 32, filepath.Join(t.TempDir(), "missing")))
}

func TestSumStreamsLongOutput(t *testing.T) {
	var buf bytes.Buffer
	s := keccak.SHAKE128.New()
	n := 3*s.Rate() + 5
	require.NoError(t, sum(&buf, s, n, strings.NewReader("long"), "-"))

	want := make([]byte, n)
	sha3.ShakeSum128(want, []byte("long"))
	assert.Equal(t, hex.EncodeToString(want)+"  -\n", buf.String())
	assert.Equal(t, keccak.SHAKE128.New(), s)
}
