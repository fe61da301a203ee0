package relay

import (
	"errors"
	"io"
	"net"
)

func isDisconnect(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}
