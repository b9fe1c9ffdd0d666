package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/where"
)

// VLC implements Player through VLC's rc interface on a unix socket.
// The rc interface has no property queries, so the pause state is tracked locally.
type VLC struct {
	// Executable is the vlc binary, "vlc" by default.
	Executable string

	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	paused     bool
	mu         sync.Mutex
}

// NewVLC creates a VLC player instance (does not start playback).
func NewVLC() *VLC {
	exited := make(chan struct{})
	close(exited)
	return &VLC{
		Executable: "vlc",
		exited:     exited,
	}
}

func (v *VLC) Name() string {
	return "vlc"
}

// Available checks that vlc is in PATH.
func (v *VLC) Available() error {
	return lookPath(v.Executable)
}

// Play replaces the playlist of the running VLC with url, or starts VLC.
func (v *VLC) Play(rawURL, title string) error {
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if v.IsRunning() {
		if err := v.send("clear", "add "+safeURL); err != nil {
			return fmt.Errorf("load %s: %w", title, err)
		}
		v.paused = false
		return nil
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	v.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-vlc-%x.sock", constant.Adreel, randomBytes))

	v.cmd = exec.Command(v.Executable,
		"--extraintf=oldrc",
		"--rc-unix="+v.socketPath,
		"--rc-fake-tty",
		"--meta-title="+sanitizeTitle(title),
		safeURL,
	)
	v.cmd.SysProcAttr = sysProcAttr()

	if err := v.cmd.Start(); err != nil {
		return fmt.Errorf("start vlc: %w", err)
	}

	exited := make(chan struct{})
	v.exited = exited
	cmd := v.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)
		if v.IsRunning() {
			v.paused = false
			log.Infof("vlc started on %s", v.socketPath)
			return nil
		}
	}

	_ = killProcess(v.cmd)
	return fmt.Errorf("vlc rc socket %s not ready", v.socketPath)
}

// SetPaused pauses or resumes; the rc "pause" command toggles.
func (v *VLC) SetPaused(paused bool) error {
	if v.paused == paused {
		return nil
	}
	return v.TogglePause()
}

// TogglePause flips the pause state.
func (v *VLC) TogglePause() error {
	if err := v.send("pause"); err != nil {
		return err
	}
	v.paused = !v.paused
	return nil
}

// IsRunning reports whether the rc socket accepts connections.
func (v *VLC) IsRunning() bool {
	if v.socketPath == "" {
		return false
	}

	select {
	case <-v.exited:
		return false
	default:
	}

	conn, err := net.Dial("unix", v.socketPath)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Wait returns a channel closed when the vlc process exits.
func (v *VLC) Wait() <-chan struct{} {
	return v.exited
}

// Close quits VLC and removes its socket.
func (v *VLC) Close() error {
	if v.socketPath == "" {
		return nil
	}

	_ = v.send("quit")

	select {
	case <-v.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(v.cmd)
	}

	_ = os.Remove(v.socketPath)
	v.socketPath = ""
	return nil
}

func (v *VLC) send(lines ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	conn, err := net.Dial("unix", v.socketPath)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintf(conn, "%s\n", line); err != nil {
			return fmt.Errorf("write %q: %w", line, err)
		}
	}
	return nil
}
