package service

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// LogIssue describes one problem row. Line is 1-based; the header is line 1.
type LogIssue struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type DoctorReport struct {
	Rows          int        `json:"rows"`
	MissingHeader bool       `json:"missing_header"`
	BadHeader     bool       `json:"bad_header"`
	InvalidRows   []LogIssue `json:"invalid_rows,omitempty"`
}

func (r DoctorReport) OK() bool {
	return !r.MissingHeader && !r.BadHeader && len(r.InvalidRows) == 0
}

// CheckLog reads the submission log and reports structural problems. A log
// that does not exist yet is reported as healthy and empty.
func CheckLog(path string) (DoctorReport, error) {
	var report DoctorReport
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("open submission log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	line := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			report.InvalidRows = append(report.InvalidRows, LogIssue{Line: line, Reason: err.Error()})
			continue
		}
		if line == 1 {
			switch {
			case slices.Equal(row, LogHeader):
				continue
			case looksLikeHeader(row):
				report.BadHeader = true
				continue
			default:
				report.MissingHeader = true
			}
		}
		report.Rows++
		rec, err := ParseLogRow(row)
		if err != nil {
			report.InvalidRows = append(report.InvalidRows, LogIssue{Line: line, Reason: err.Error()})
			continue
		}
		if err := ValidateSubmission(rec); err != nil {
			report.InvalidRows = append(report.InvalidRows, LogIssue{Line: line, Reason: err.Error()})
		}
	}
	return report, nil
}

func looksLikeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := ParseLogRow(row)
	return err != nil && slices.Contains(LogHeader, strings.TrimSpace(row[0]))
}

// CreateBackup copies the log to outPath and writes a sha256 sidecar file.
func CreateBackup(logPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(logPath) == "" {
		return BackupInfo{}, fmt.Errorf("log path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(logPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}
	items := make([]BackupInfo, 0)
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".sha256") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat backup %s: %w", e.Name(), err)
		}
		sum, _ := os.ReadFile(path + ".sha256")
		items = append(items, BackupInfo{
			Path:      path,
			Checksum:  strings.TrimSpace(string(sum)),
			CreatedAt: info.ModTime(),
			SizeBytes: info.Size(),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
