//go:build unit

package ok

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/kind"
)

func TestSockets(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l, err := Listen(ctx, "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	accepted := make(chan error, 1)

	go func() {
		conn, err := Accept(l)
		if err != nil {
			accepted <- err
			return
		}
		defer conn.Close()

		_, err = Write(conn, "pong")
		accepted <- err
	}()

	conn, err := Dial(ctx, "tcp", l.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	assert.True(t, kind.Socket.Is(conn))
	assert.True(t, kind.Handle.Is(l))

	got, err := Read(conn, 4)
	require.NoError(t, err)
	assert.Equal(t, "pong", got)
	require.NoError(t, <-accepted)
}

func TestSockets_Failures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := Listen(ctx, "nope", "127.0.0.1:0")
	requireFailure(t, err, "Listen")

	_, err = Dial(ctx, "tcp", "127.0.0.1:bad")
	requireFailure(t, err, "Dial")

	l, err := Listen(ctx, "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, l.Close())

	_, err = Accept(l)
	requireFailure(t, err, "Accept")

	_, err = Accept(nil)
	assert.ErrorIs(t, err, strict.ErrInvalidArgument)
}

func TestPack(t *testing.T) {
	t.Parallel()

	data, err := Pack(binary.BigEndian, uint16(0x0102), int32(-1), []uint8{9, 8})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0xff, 0xff, 0xff, 0xff, 9, 8}, data)

	var (
		a uint16
		b int32
		c = make([]uint8, 2)
	)

	require.NoError(t, Unpack(binary.BigEndian, data, &a, &b, c))
	assert.Equal(t, uint16(0x0102), a)
	assert.Equal(t, int32(-1), b)
	assert.Equal(t, []uint8{9, 8}, c)

	err = Unpack(binary.LittleEndian, []byte{1}, &a)
	requireFailure(t, err, "Unpack")

	_, err = Pack(binary.BigEndian, "string")
	requireFailure(t, err, "Pack")

	_, err = Pack(nil, uint8(1))
	assert.ErrorIs(t, err, strict.ErrInvalidArgument)
}

func TestHexAndBase64(t *testing.T) {
	t.Parallel()

	data, err := HexDecode("cafe")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, data)

	_, err = HexDecode("xyz")
	requireFailure(t, err, "HexDecode")

	data, err = Base64Decode("aGk=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), data)

	_, err = Base64Decode("aGk")
	requireFailure(t, err, "Base64Decode")

	_, err = Base64Decode("a G k=")
	requireFailure(t, err, "Base64Decode")
}
