package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// readInput loads the whole input in memory, decompressing it when asked to
// or when it looks like zstd.
func readInput(path string, compressed bool, stdin io.Reader) ([]byte, error) {
	var (
		buf []byte
		err error
	)
	if path == "-" {
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if !compressed && !strings.HasSuffix(path, ".zst") && !bytes.HasPrefix(buf, zstdMagic) {
		return buf, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "decompressing zstd input")
	}
	return out, nil
}
