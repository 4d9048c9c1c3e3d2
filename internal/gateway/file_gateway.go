package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// FileGateway grava o snapshot JSON em disco, para rodar sem Redis.
// A escrita é atômica: arquivo temporário + rename no mesmo diretório.
type FileGateway struct {
	path string
}

func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

func (g *FileGateway) Load(_ context.Context) (*model.Snapshot, error) {
	raw, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		return nil, ErrSemSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("gateway file: read: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("gateway file: decode snapshot: %w", err)
	}
	return &snap, nil
}

func (g *FileGateway) Save(_ context.Context, snap *model.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("gateway file: encode snapshot: %w", err)
	}
	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("gateway file: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "estado-*.json")
	if err != nil {
		return fmt.Errorf("gateway file: temp: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("gateway file: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("gateway file: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), g.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("gateway file: rename: %w", err)
	}
	return nil
}
