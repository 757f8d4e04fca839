package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	mb                = 1000000
	defaultMaxLogSize = 1 * mb
	defaultMaxLogs    = 3
)

// rollingFileWriter appends to {dir}/{name}.log. Once that file reaches maxSize it is archived
// as {name}-1.log, older archives shift up by one, and only the newest maxLogs files are kept.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	maxSize int64
	maxLogs int
}

func NewRollingFileWriter(fileDir string, fileName string) (*rollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving log dir %s", fileDir)
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return nil, errors.Wrapf(err, "creating log dir %s", absFileDir)
	}

	return &rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       defaultMaxLogSize,
		maxLogs:       defaultMaxLogs,
	}, nil
}

func (w *rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, w.FileName+".log")
}

func (w *rollingFileWriter) indexedLog(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w *rollingFileWriter) Write(b []byte) (int, error) {
	stats, err := os.Stat(w.getFullFilePath())
	if err == nil && stats.Size() >= w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// archivedLogs returns the indices of every {name}-N.log, oldest (highest index) first.
// Files with a broken index are removed.
func (w *rollingFileWriter) archivedLogs() ([]int, error) {
	matches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(matches))
	for _, match := range matches {
		index, ok := logIndex(w.FileName, match)
		if !ok {
			if err := os.Remove(filepath.Join(w.FileDirectory, match)); err != nil {
				return nil, err
			}
			continue
		}

		indices = append(indices, index)
	}

	slices.Sort(indices)
	slices.Reverse(indices)

	return indices, nil
}

func (w *rollingFileWriter) rotate() error {
	indices, err := w.archivedLogs()
	if err != nil {
		return errors.Wrap(err, "listing archived logs")
	}

	// the main log becomes archive 1, so archives at maxLogs-1 and above have no room left
	stale, kept := lo.FilterReject(indices, func(index int, _ int) bool {
		return index >= w.maxLogs-1
	})

	for _, index := range stale {
		if err := os.Remove(w.indexedLog(index)); err != nil {
			return errors.Wrap(err, "removing old log")
		}
	}

	// highest first so a rename never lands on a file that still has to move
	for _, index := range kept {
		if err := os.Rename(w.indexedLog(index), w.indexedLog(index+1)); err != nil {
			return errors.Wrap(err, "shifting archived log")
		}
	}

	if w.maxLogs < 2 {
		return os.Remove(w.getFullFilePath())
	}

	return os.Rename(w.getFullFilePath(), w.indexedLog(1))
}

func logIndex(baseFileName string, fileName string) (int, bool) {
	name, _ := strings.CutSuffix(filepath.Base(fileName), ".log")
	indexStr, ok := strings.CutPrefix(name, baseFileName+"-")
	if !ok {
		return 0, false
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 1 {
		return 0, false
	}

	return index, true
}
