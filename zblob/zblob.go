// seehuhn.de/go/resbake - embed resource files into C++ headers at build time
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package zblob compresses resource data for embedding.
//
// Blobs are zlib streams written at the best compression level.  The zlib
// framing does not record the length of the uncompressed data, so a Blob
// carries both sizes: code which later inflates the data needs to allocate
// the destination buffer in advance.
package zblob

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// Blob is a compressed byte sequence together with its sizes.
type Blob struct {
	// UncompressedSize is the length of the data before compression.
	UncompressedSize int

	// CompressedSize equals len(Data).
	CompressedSize int

	Data []byte
}

// NewBlob compresses data and records both sizes.
func NewBlob(data []byte) (*Blob, error) {
	z, err := Compress(data)
	if err != nil {
		return nil, err
	}
	return &Blob{
		UncompressedSize: len(data),
		CompressedSize:   len(z),
		Data:             z,
	}, nil
}

// Decompress returns the original data of the blob.
func (b *Blob) Decompress() ([]byte, error) {
	return Decompress(b.Data, b.UncompressedSize)
}

// Compress returns the zlib-compressed form of data, using the strongest
// compression level.
func Compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ErrSizeMismatch is returned by Decompress if the stream does not inflate
// to the expected number of bytes.
var ErrSizeMismatch = errors.New("zblob: uncompressed size mismatch")

// Decompress inflates a zlib stream into a buffer of the given size.
func Decompress(data []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("zblob: invalid size %d", size)
	}
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out := make([]byte, size)
	_, err = io.ReadFull(zr, out)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, ErrSizeMismatch
	} else if err != nil {
		return nil, err
	}

	// The stream must end exactly here.
	var extra [1]byte
	n, err := zr.Read(extra[:])
	if n > 0 {
		return nil, ErrSizeMismatch
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	return out, nil
}
