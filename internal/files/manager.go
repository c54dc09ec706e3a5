package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/faizmokh/daysplit/internal/calendar"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where split journals live on disk and how files are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to the location determined by ResolveBasePath.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath("", "")
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all day files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DayDir resolves root/YYYY/MM for the supplied date.
func (m *Manager) DayDir(d calendar.Date) string {
	return filepath.Join(m.basePath, fmt.Sprintf("%04d", d.Year), fmt.Sprintf("%02d", int(d.Month)))
}

// DayPath resolves root/YYYY/MM/journal_YYYY-MM-DD.md. The file may not exist yet.
func (m *Manager) DayPath(d calendar.Date) string {
	return filepath.Join(m.DayDir(d), "journal_"+d.String()+".md")
}

// EnsureDayDir creates the directory holding the day file, including parents.
func (m *Manager) EnsureDayDir(d calendar.Date) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	dir := m.DayDir(d)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	return dir, nil
}

// CreateDayFile opens the day file for writing, truncating any previous
// content. The directory must already exist.
func (m *Manager) CreateDayFile(d calendar.Date) (*os.File, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	file, err := os.OpenFile(m.DayPath(d), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("open day file: %w", err)
	}
	return file, nil
}

// ReadDay returns the contents of the day file. Missing files surface as
// fs.ErrNotExist.
func (m *Manager) ReadDay(d calendar.Date) ([]byte, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}
	return os.ReadFile(m.DayPath(d))
}

var dayFilePattern = regexp.MustCompile(`^journal_(\d{4}-\d{2}-\d{2})\.md$`)

// ListDays walks the root and returns every date that has a day file stored
// where the layout expects it, in ascending order.
func (m *Manager) ListDays() ([]calendar.Date, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	var days []calendar.Date
	err := filepath.WalkDir(m.basePath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == m.basePath {
				return filepath.SkipDir
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}

		matches := dayFilePattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			return nil
		}
		d, err := calendar.ParseISO(matches[1])
		if err != nil {
			return nil
		}
		if m.DayPath(d) != path {
			return nil
		}
		days = append(days, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list day files: %w", err)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, nil
}
