package publish

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/sftp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	disabled := Settings{}
	assert.False(t, disabled.Enabled())
	assert.NoError(t, disabled.Check())

	s := Settings{Host: "reports.example.com", Port: 2222, RemoteDir: "runs/nightly"}
	assert.Equal(t, "reports.example.com:2222", s.FullHost())
	assert.Equal(t, "runs/nightly/run.yaml", s.RemotePath("/tmp/out/run.yaml"))
	assert.ErrorContains(t, s.Check(), "requires a user")

	s.User = "ci"
	assert.ErrorContains(t, s.Check(), "requires a private key")

	s.PrivateKeyPath = "/keys/id_ed25519"
	assert.NoError(t, s.Check())
}

func TestUploadMissingKey(t *testing.T) {
	report := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(report, []byte("suite: x\n"), 0o644))

	_, err := Upload(Settings{
		Host:           "127.0.0.1",
		User:           "ci",
		PrivateKeyPath: filepath.Join(t.TempDir(), "missing"),
	}, report, logrus.New())
	assert.ErrorContains(t, err, "failed to read SSH key file")
}

// Exercises the copy against an in-process SFTP server backed by the local
// file system.
func TestCopyToRemote(t *testing.T) {
	clientConn, serverConn := pipePair()

	server, err := sftp.NewServer(serverConn)
	require.NoError(t, err)
	go server.Serve()
	defer server.Close()

	client, err := sftp.NewClientPipe(clientConn, clientConn)
	require.NoError(t, err)
	defer client.Close()

	remoteDir := filepath.Join(t.TempDir(), "remote", "reports")
	log := logrus.New()
	log.SetOutput(io.Discard)

	remotePath, err := copyToRemote(sftpFS{client}, Settings{Host: "local", RemoteDir: remoteDir}, stringReader("result: ok\n"), "/tmp/run.yaml", log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(remoteDir, "run.yaml"), remotePath)

	data, err := os.ReadFile(remotePath)
	require.NoError(t, err)
	assert.Equal(t, "result: ok\n", string(data))
}

type closeFailingFile struct {
	bytes.Buffer
}

func (f *closeFailingFile) Close() error {
	return errors.New("connection lost")
}

type closeFailingFS struct {
	file closeFailingFile
}

func (fs *closeFailingFS) MkdirAll(string) error {
	return nil
}

func (fs *closeFailingFS) Create(string) (io.WriteCloser, error) {
	return &fs.file, nil
}

func TestCopyToRemoteCloseError(t *testing.T) {
	fs := &closeFailingFS{}
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := copyToRemote(fs, Settings{Host: "local", RemoteDir: "reports"}, stringReader("result: ok\n"), "/tmp/run.yaml", log)
	assert.ErrorContains(t, err, "failed to close remote file 'reports/run.yaml'")
	assert.ErrorContains(t, err, "connection lost")
	assert.Equal(t, "result: ok\n", fs.file.String())
}
