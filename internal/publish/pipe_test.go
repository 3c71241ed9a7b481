package publish

import (
	"io"
	"strings"
)

type pipeConn struct {
	io.Reader
	io.WriteCloser
}

// pipePair returns two connected in-memory connections.
func pipePair() (*pipeConn, *pipeConn) {
	clientRead, serverWrite := io.Pipe()
	serverRead, clientWrite := io.Pipe()

	return &pipeConn{Reader: clientRead, WriteCloser: clientWrite},
		&pipeConn{Reader: serverRead, WriteCloser: serverWrite}
}

func stringReader(s string) io.Reader {
	return strings.NewReader(s)
}
