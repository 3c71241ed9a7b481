// Package publish copies run reports to a remote host over SFTP.
package publish

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/sftp"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

type Settings struct {
	Host           string        `name:"publish-host" help:"Host to upload the report to. Publishing is disabled when empty." env:"UTEST_PUBLISH_HOST"`
	User           string        `name:"publish-user" help:"User for the SSH connection" env:"UTEST_PUBLISH_USER"`
	Port           uint16        `name:"publish-port" help:"Port of the SSH server" default:"22"`
	PrivateKeyPath string        `name:"publish-key" help:"Path to the SSH private key" type:"path" env:"UTEST_PUBLISH_KEY"`
	RemoteDir      string        `name:"publish-dir" help:"Remote directory receiving the report" default:"utest-reports"`
	Timeout        time.Duration `name:"publish-timeout" help:"Timeout of the SSH connection" default:"30s"`
}

func (s *Settings) Enabled() bool {
	return s.Host != ""
}

func (s *Settings) FullHost() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RemotePath returns where the local file ends up on the remote host.
func (s *Settings) RemotePath(localPath string) string {
	return path.Join(s.RemoteDir, filepath.Base(localPath))
}

func (s *Settings) Check() error {
	if !s.Enabled() {
		return nil
	}

	if s.User == "" {
		return fmt.Errorf("publishing to '%s' requires a user", s.Host)
	}

	if s.PrivateKeyPath == "" {
		return fmt.Errorf("publishing to '%s' requires a private key", s.Host)
	}

	return nil
}

func openSshClient(settings Settings) (*ssh.Client, error) {
	privateKey, err := os.ReadFile(settings.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH key file '%s': %w", settings.PrivateKeyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SSH key: %w", err)
	}

	clientConfig := &ssh.ClientConfig{
		User: settings.User,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         settings.Timeout,
	}

	client, err := ssh.Dial("tcp", settings.FullHost(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH server '%s': %w", settings.FullHost(), err)
	}

	return client, nil
}

// Upload copies the file at localPath into the remote directory and
// returns the remote path.
func Upload(settings Settings, localPath string, log *logrus.Logger) (string, error) {
	if err := settings.Check(); err != nil {
		return "", err
	}

	local, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open report '%s': %w", localPath, err)
	}
	defer local.Close()

	client, err := openSshClient(settings)
	if err != nil {
		return "", err
	}
	defer client.Close()

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		return "", fmt.Errorf("failed to create SFTP client: %w", err)
	}
	defer sftpClient.Close()

	return copyToRemote(sftpFS{sftpClient}, settings, local, localPath, log)
}

// remoteFS is the part of an SFTP session used to store a report.
type remoteFS interface {
	MkdirAll(path string) error
	Create(path string) (io.WriteCloser, error)
}

type sftpFS struct {
	client *sftp.Client
}

func (fs sftpFS) MkdirAll(path string) error {
	return fs.client.MkdirAll(path)
}

func (fs sftpFS) Create(path string) (io.WriteCloser, error) {
	return fs.client.Create(path)
}

func copyToRemote(client remoteFS, settings Settings, local io.Reader, localPath string, log *logrus.Logger) (string, error) {
	if err := client.MkdirAll(settings.RemoteDir); err != nil {
		return "", fmt.Errorf("failed to create remote directory '%s': %w", settings.RemoteDir, err)
	}

	remotePath := settings.RemotePath(localPath)
	remote, err := client.Create(remotePath)
	if err != nil {
		return "", fmt.Errorf("failed to create remote file '%s': %w", remotePath, err)
	}

	written, err := io.Copy(remote, local)
	if err != nil {
		remote.Close()
		return "", fmt.Errorf("failed to upload report to '%s': %w", remotePath, err)
	}

	if err := remote.Close(); err != nil {
		return "", fmt.Errorf("failed to close remote file '%s': %w", remotePath, err)
	}

	log.Infof("Uploaded report (%s) to %s:%s", humanize.Bytes(uint64(written)), settings.Host, remotePath)
	return remotePath, nil
}
