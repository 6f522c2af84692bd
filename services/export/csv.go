package exportsvc

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

// ErrNoData is returned when a report has no rows to export.
var ErrNoData = errors.New("no attendance data to export")

// FileExporter writes monthly reports as CSV files into a directory,
// for hand-off to whatever sharing mechanism the platform offers.
type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

// Export renders rows to attendance_<month>_<year>.csv in the export
// directory and returns the file's path. Export failures never touch
// attendance state.
func (svc *FileExporter) Export(rows []attendance.ReportRow, year, month int) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoData
	}
	if err := os.MkdirAll(svc.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating export directory")
	}

	path := filepath.Join(svc.dir, attendance.CSVFilename(year, month))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating export file")
	}
	defer func() { _ = f.Close() }()

	if err := attendance.WriteCSV(f, rows); err != nil {
		return "", errors.Wrap(err, "writing csv")
	}
	return path, nil
}
