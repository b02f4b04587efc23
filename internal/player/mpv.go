// internal/player/mpv.go
package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"
)

// ErrLoadTimeout is returned when the media process does not report a loaded
// track within loadTimeout.
var ErrLoadTimeout = errors.New("timed out waiting for track to load")

const (
	dialRetryInterval = 50 * time.Millisecond
	dialTimeout       = 5 * time.Second
	loadTimeout       = 15 * time.Second
)

// MPV controls an external mpv process over its JSON IPC socket.
//
// The process is started idle with video disabled; tracks are resolved to
// stream URIs by the catalog and handed to loadfile. Position and duration
// are tracked through property observers, end-of-track through the end-file
// event.
type MPV struct {
	mu sync.Mutex

	cmd  *exec.Cmd
	conn net.Conn

	state    State
	position time.Duration
	duration time.Duration
	volume   int

	loadResult chan error
	finishedCh chan struct{}
	done       chan struct{}
	closed     bool
}

// MPVOptions configures the external process.
type MPVOptions struct {
	Binary    string // mpv binary, defaults to "mpv" on PATH
	SocketDir string // directory for the IPC socket, defaults to os.TempDir()
}

// mpvMessage is a single line received on the IPC socket: either a command
// response or an asynchronous event.
type mpvMessage struct {
	Event     string          `json:"event"`
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Reason    string          `json:"reason"`
	RequestID int             `json:"request_id"`
	Error     string          `json:"error"`
}

// Property observer IDs registered at startup.
const (
	obsTimePos = iota + 1
	obsDuration
)

// NewMPV spawns the mpv process and connects to its IPC socket.
// The child runs with LC_NUMERIC=C so progress values parse identically in
// every locale; all values crossing the socket are JSON, which is
// locale-independent by definition.
func NewMPV(opts MPVOptions) (*MPV, error) {
	binary := opts.Binary
	if binary == "" {
		binary = "mpv"
	}
	socketDir := opts.SocketDir
	if socketDir == "" {
		socketDir = os.TempDir()
	}
	socket := filepath.Join(socketDir, fmt.Sprintf("harmonix-mpv-%d.sock", os.Getpid()))

	cmd := exec.Command(binary,
		"--idle=yes",
		"--no-video",
		"--no-terminal",
		"--input-ipc-server="+socket,
	)
	cmd.Env = append(os.Environ(), "LC_NUMERIC=C")

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	conn, err := dialWithRetry(socket)
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("connect to mpv ipc: %w", err)
	}

	p := &MPV{
		cmd:        cmd,
		conn:       conn,
		state:      Stopped,
		volume:     100,
		finishedCh: make(chan struct{}, 1),
		done:       make(chan struct{}),
	}

	go p.readLoop()

	if err := p.command("observe_property", obsTimePos, "time-pos"); err != nil {
		p.Close()
		return nil, err
	}
	if err := p.command("observe_property", obsDuration, "duration"); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// dialWithRetry polls the socket until mpv has created it.
func dialWithRetry(socket string) (net.Conn, error) {
	deadline := time.Now().Add(dialTimeout)
	for {
		conn, err := net.Dial("unix", socket)
		if err == nil {
			return conn, nil
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		time.Sleep(dialRetryInterval)
	}
}

// Play loads the URI and starts playback, blocking until mpv reports the
// track loaded or failed.
func (p *MPV) Play(uri string) error {
	p.mu.Lock()
	result := make(chan error, 1)
	p.loadResult = result
	p.position = 0
	p.duration = 0
	p.mu.Unlock()

	if err := p.command("loadfile", uri, "replace"); err != nil {
		return err
	}
	if err := p.command("set_property", "pause", false); err != nil {
		return err
	}

	select {
	case err := <-result:
		if err != nil {
			return err
		}
	case <-time.After(loadTimeout):
		return ErrLoadTimeout
	case <-p.done:
		return errors.New("player closed")
	}

	p.mu.Lock()
	p.state = Playing
	p.mu.Unlock()
	return nil
}

// Stop stops playback and returns mpv to idle.
func (p *MPV) Stop() {
	p.mu.Lock()
	if p.state == Stopped {
		p.mu.Unlock()
		return
	}
	p.state = Stopped
	p.position = 0
	p.duration = 0
	p.mu.Unlock()

	_ = p.command("stop")
}

// Pause pauses playback.
func (p *MPV) Pause() {
	p.mu.Lock()
	if !p.state.CanPause() {
		p.mu.Unlock()
		return
	}
	p.state = Paused
	p.mu.Unlock()

	_ = p.command("set_property", "pause", true)
}

// Resume resumes paused playback.
func (p *MPV) Resume() {
	p.mu.Lock()
	if !p.state.CanResume() {
		p.mu.Unlock()
		return
	}
	p.state = Playing
	p.mu.Unlock()

	_ = p.command("set_property", "pause", false)
}

// Toggle toggles between playing and paused states.
func (p *MPV) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

// State returns the current playback state.
func (p *MPV) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the last observed playback position.
func (p *MPV) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Duration returns the last observed track duration (0 if unknown).
func (p *MPV) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// Seek moves the playback position by the given delta.
func (p *MPV) Seek(delta time.Duration) {
	if p.State() == Stopped {
		return
	}
	_ = p.command("seek", delta.Seconds(), "relative")
}

// SetVolume sets the output volume as a percentage.
// Range clamping is the controller's job; values are passed through.
func (p *MPV) SetVolume(percent int) {
	p.mu.Lock()
	p.volume = percent
	p.mu.Unlock()

	_ = p.command("set_property", "volume", percent)
}

// Volume returns the current volume percentage.
func (p *MPV) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// FinishedChan returns the channel that signals natural end of track.
func (p *MPV) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// Close terminates the mpv process and the IPC connection.
func (p *MPV) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	_ = p.command("quit")
	_ = p.conn.Close()

	// Give mpv a moment to exit cleanly before killing it.
	waited := make(chan error, 1)
	go func() { waited <- p.cmd.Wait() }()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		_ = p.cmd.Process.Kill()
		<-waited
	}
	return nil
}

// command writes a single IPC command line.
func (p *MPV) command(args ...any) error {
	payload, err := json.Marshal(map[string]any{"command": args})
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("player closed")
	}
	_, err = p.conn.Write(append(payload, '\n'))
	return err
}

// readLoop consumes IPC messages until the connection closes.
func (p *MPV) readLoop() {
	scanner := bufio.NewScanner(p.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var msg mpvMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		p.handleMessage(msg)
	}
}

// handleMessage applies one event or response to the player state.
func (p *MPV) handleMessage(msg mpvMessage) {
	switch msg.Event {
	case "property-change":
		p.handlePropertyChange(msg)

	case "file-loaded":
		p.mu.Lock()
		result := p.loadResult
		p.loadResult = nil
		p.mu.Unlock()
		if result != nil {
			result <- nil
		}

	case "end-file":
		p.handleEndFile(msg)
	}
}

func (p *MPV) handlePropertyChange(msg mpvMessage) {
	value, ok := decodeSeconds(msg.Data)
	if !ok {
		return
	}
	p.mu.Lock()
	switch msg.ID {
	case obsTimePos:
		p.position = value
	case obsDuration:
		p.duration = value
	}
	p.mu.Unlock()
}

func (p *MPV) handleEndFile(msg mpvMessage) {
	p.mu.Lock()
	// Replacing a playing track emits end-file for the old one first; only a
	// reason of "error" fails a pending load.
	var result chan error
	if msg.Reason == "error" {
		result = p.loadResult
		p.loadResult = nil
	}
	finished := msg.Reason == "eof" && p.state == Playing && p.loadResult == nil
	if finished || msg.Reason == "error" {
		p.state = Stopped
		p.position = 0
	}
	p.mu.Unlock()

	if result != nil {
		result <- errors.New("mpv could not load track")
		return
	}
	if finished {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	}
}

// decodeSeconds decodes a numeric property value. mpv sends null when a
// property is unavailable; that and non-numeric payloads are ignored.
func decodeSeconds(raw json.RawMessage) (time.Duration, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err != nil {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}
