package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"unhook/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("lockfile missing", func(t *testing.T) {
		if _, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "nope.lock")); err == nil {
			t.Error("expected error for missing lockfile")
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		for _, content := range []string{"8080|12345", "invalid", ""} {
			writeLockfile(content)
			if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
				t.Errorf("expected error for lockfile %q", content)
			}
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		writeLockfile("8080|12345|")
		_, _, err := findAndValidateTrayProcess(lockfilePath)
		if err == nil || !strings.Contains(err.Error(), "secret") {
			t.Errorf("expected secret error, got %v", err)
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		writeLockfile("99999|12345|secret123")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for port out of range")
		}
	})

	t.Run("process not running", func(t *testing.T) {
		writeLockfile("8080|12345|secret123")
		findProcessFunc = func(pid int) (ps.Process, error) { return nil, nil }
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for missing process")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		writeLockfile("8080|12345|secret123")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "other-app"}, nil
		}
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for wrong executable")
		}
	})

	t.Run("valid tray process", func(t *testing.T) {
		writeLockfile("8080|12345|secret123")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: constants.TrayAppIdentifier}, nil
		}
		port, secret, err := findAndValidateTrayProcess(lockfilePath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" || secret != "secret123" {
			t.Errorf("got port %q secret %q, want 8080 secret123", port, secret)
		}
	})
}

func TestSendNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Unhook-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]

	if err := sendNotification(port, "test-secret", WebhookPayload{Title: "Day 2", Text: "hello"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := sendNotification(port, "wrong-secret", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	if err := sendNotification(port, "test-secret", WebhookPayload{Text: "fail"}); err == nil {
		t.Error("expected error for server failure")
	}
}

func TestAvailable(t *testing.T) {
	oldUserConfigDirFunc := userConfigDirFunc
	oldFindProcessFunc := findProcessFunc
	defer func() {
		userConfigDirFunc = oldUserConfigDirFunc
		findProcessFunc = oldFindProcessFunc
	}()

	configDir := t.TempDir()
	userConfigDirFunc = func() (string, error) { return configDir, nil }

	n := New()

	if n.Available() {
		t.Error("Available() = true with no lockfile")
	}

	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lockfile := filepath.Join(trayDir, constants.NotifierLockfileName)
	if err := os.WriteFile(lockfile, []byte("8080|12345|secret123"), 0644); err != nil {
		t.Fatal(err)
	}
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: constants.TrayAppIdentifier}, nil
	}

	if !n.Available() {
		t.Error("Available() = false with a valid lockfile and process")
	}
}
