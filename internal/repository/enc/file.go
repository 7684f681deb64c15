package enc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"manage-updates/internal/domain/updates"
)

// Repository defines persistence operations for host ENC documents.
type Repository interface {
	LoadAll(ctx context.Context) ([]*updates.Host, error)
	Save(ctx context.Context, host *updates.Host) error
}

// DirRepository reads and writes per-host YAML documents in one directory.
// Every "<host>.yaml" file in the directory is one host; nothing else in
// the directory is touched.
type DirRepository struct {
	// dir is the ENC directory managed by the configuration agent.
	dir string
}

const (
	// fileExtension is the suffix selecting host documents in the directory.
	fileExtension = ".yaml"

	// DefaultFilePermissions keeps host files readable by the agent.
	DefaultFilePermissions = 0o644
)

var (
	// ErrNotFound is returned when the ENC directory does not exist.
	ErrNotFound = errors.New("enc directory not found")
	// ErrMalformed is returned when a host file is not a valid YAML mapping.
	ErrMalformed = errors.New("malformed host document")
)

// NewDirRepository creates a repository over the provided ENC directory.
func NewDirRepository(dir string) *DirRepository {
	return &DirRepository{
		dir: filepath.Clean(dir),
	}
}

// LoadAll reads every host document in the directory, sorted by host name.
func (r *DirRepository) LoadAll(_ context.Context) ([]*updates.Host, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.dir)
		}

		return nil, fmt.Errorf("read enc directory: %w", err)
	}

	hosts := make([]*updates.Host, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}

		contents, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read host file %s: %w", entry.Name(), err)
		}

		var document map[string]any
		if err = yaml.Unmarshal(contents, &document); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, entry.Name(), err)
		}

		hosts = append(hosts, updates.NewHost(strings.TrimSuffix(entry.Name(), fileExtension), document))
	}

	sort.Slice(hosts, func(i, j int) bool {
		return hosts[i].Name() < hosts[j].Name()
	})

	return hosts, nil
}

// Save writes one host document back to its file.
func (r *DirRepository) Save(_ context.Context, host *updates.Host) error {
	data, err := yaml.Marshal(host.Document())
	if err != nil {
		return fmt.Errorf("encode host %s: %w", host.Name(), err)
	}

	path := filepath.Join(r.dir, host.Name()+fileExtension)
	if err = os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write host file: %w", err)
	}

	return nil
}
