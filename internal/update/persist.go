package update

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/mirror"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

const (
	saveTimeout   = 5 * time.Second
	mirrorTimeout = 10 * time.Second
)

// persist writes the whole state to the local store and, when a real mirror
// is configured, pushes a snapshot to it in the background. The local save is
// the source of truth; a mirror failure is logged and otherwise ignored.
func (m *Model) persist() tea.Cmd {
	m.State.LastVisitDateKey = dateutil.DateKey(m.now())

	if m.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := m.Store.Save(ctx, m.State)
		cancel()
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
			m.LastError = err
			return nil
		}
	}

	if m.Mirror == nil {
		return nil
	}
	if _, nop := m.Mirror.(mirror.Nop); nop {
		return nil
	}
	snapshot, err := cloneState(m.State)
	if err != nil {
		log.Printf("mirror snapshot failed: %v", err)
		return nil
	}
	m.spinnerActive = true
	return tea.Batch(m.syncSpinner.Tick, pushMirrorCmd(m.Mirror, m.UserID, snapshot))
}

func pushMirrorCmd(mr mirror.Mirror, userID string, state *model.State) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := mr.Push(ctx, userID, state); err != nil {
			log.Printf("mirror push failed: %v", err)
			return MirrorDoneMsg{Err: err}
		}
		return MirrorDoneMsg{}
	}
}

// cloneState deep-copies the state via its JSON form. The background push
// must not share pointers with the record the update loop keeps mutating.
func cloneState(state *model.State) (*model.State, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	out := &model.State{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// readImageDataURL loads an image file and encodes it the way the persisted
// format stores photos: a data URL carried inside the day record.
func readImageDataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := mimeForExtension(filepath.Ext(path))
	if mime == "" {
		mime = http.DetectContentType(raw)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func mimeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
