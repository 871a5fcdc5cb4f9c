package ok

import (
	"context"
	"net"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/internal/nilcheck"
)

// Dial connects to address on the named network ("tcp", "udp", "unix", ...).
func Dial(ctx context.Context, network, address string) (net.Conn, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("Dial", err)
	}

	return conn, nil
}

// Listen announces on address. Use port 0 to let the system pick one.
func Listen(ctx context.Context, network, address string) (net.Listener, error) {
	var lc net.ListenConfig

	l, err := lc.Listen(ctx, network, address)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("Listen", err)
	}

	return l, nil
}

// Accept waits for the next connection on l.
func Accept(l net.Listener) (net.Conn, error) {
	if nilcheck.Interface(l) {
		return nil, strict.NewInvalidArgument("Accept", "nil listener")
	}

	conn, err := l.Accept()
	if err != nil {
		return nil, strict.NewUnexpectedFailure("Accept", err)
	}

	return conn, nil
}
