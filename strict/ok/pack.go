package ok

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"

	"github.com/LerianStudio/lib-strict/strict"
)

// Pack encodes fixed-size values (or slices of them) back to back in the
// given byte order.
func Pack(order binary.ByteOrder, values ...any) ([]byte, error) {
	if order == nil {
		return nil, strict.NewInvalidArgument("Pack", "nil byte order")
	}

	var buf bytes.Buffer

	for _, v := range values {
		if err := binary.Write(&buf, order, v); err != nil {
			return nil, strict.NewUnexpectedFailure("Pack", err)
		}
	}

	return buf.Bytes(), nil
}

// Unpack decodes data into dst, which must be pointers to fixed-size values
// or slices of them, in order. Running out of data fails; trailing data is
// ignored.
func Unpack(order binary.ByteOrder, data []byte, dst ...any) error {
	if order == nil {
		return strict.NewInvalidArgument("Unpack", "nil byte order")
	}

	r := bytes.NewReader(data)

	for _, d := range dst {
		if err := binary.Read(r, order, d); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return strict.NewUnexpectedFailure("Unpack", err)
		}
	}

	return nil
}

// HexDecode decodes a hexadecimal string.
func HexDecode(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("HexDecode", err)
	}

	return data, nil
}

// Base64Decode decodes standard padded base64, rejecting characters outside
// the alphabet.
func Base64Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("Base64Decode", err)
	}

	return data, nil
}
