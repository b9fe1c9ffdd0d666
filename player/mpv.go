package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV implements Player using mpv's JSON-IPC protocol. One mpv window is kept
// for the whole session; later streams are swapped in with loadfile.
type MPV struct {
	// Executable is the mpv binary, "mpv" by default.
	Executable string

	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits
	mu         sync.Mutex    // Protects socket writes
}

// NewMPV creates a new MPV player instance (does not start playback).
func NewMPV() *MPV {
	exited := make(chan struct{})
	close(exited)
	return &MPV{
		Executable: "mpv",
		exited:     exited,
	}
}

func (m *MPV) Name() string {
	return "mpv"
}

// Available checks that mpv is in PATH.
func (m *MPV) Available() error {
	return lookPath(m.Executable)
}

// Play loads url into the running mpv window, or starts mpv when none is running.
func (m *MPV) Play(rawURL, title string) error {
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	safeTitle := sanitizeTitle(title)

	if m.IsRunning() {
		if _, err := m.sendCommand([]interface{}{"loadfile", safeURL, "replace"}); err != nil {
			return fmt.Errorf("load %s: %w", safeTitle, err)
		}
		_ = m.Set("force-media-title", safeTitle)
		return m.SetPaused(false)
	}

	return m.start(safeURL, safeTitle)
}

func (m *MPV) start(safeURL, safeTitle string) error {
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.Adreel, randomBytes))
	}

	// Only the socket, title and URL are passed so the user's mpv.conf is respected.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--force-media-title=%s", safeTitle),
		fmt.Sprintf("--title=%s", safeTitle),
		"--force-window=yes",
		"--idle=yes",
		"--",
		safeURL,
	}

	m.cmd = exec.Command(m.Executable, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.Infof("mpv started on %s", m.socketPath)
	return nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// GetPausedStatus returns whether playback is currently paused.
func (m *MPV) GetPausedStatus() (bool, error) {
	data, err := m.sendCommand([]interface{}{"get_property", "pause"})
	if err != nil {
		return false, err
	}
	paused, _ := data.(bool)
	return paused, nil
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Close shuts down the mpv process and cleans up resources.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand([]interface{}{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	m.socketPath = ""
	return nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// SetPaused sets the pause property.
func (m *MPV) SetPaused(paused bool) error {
	return m.Set("pause", paused)
}

// TogglePause cycles the pause property.
func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]interface{}{"cycle", "pause"})
	return err
}

// Set a property
func (m *MPV) Set(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// sanitizeMediaTarget validates that a URL is safe to pass to a player.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
