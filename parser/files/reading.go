package files

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"

	"github.com/redwire/wiretalk/util"
)

//logExtensions lists the file suffixes treated as parseable log input
var logExtensions = []string{".log", ".txt", ".csv", ".json", ".jsonl", ".gz"}

func hasLogExtension(name string) bool {
	for _, ext := range logExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// GatherLogFiles reads the files and directories looking for parseable log files
func GatherLogFiles(paths []string, logger *log.Logger) []string {
	var toReturn []string

	for _, path := range paths {
		if util.IsDir(path) {
			toReturn = append(toReturn, gatherDir(path, logger)...)
		} else if hasLogExtension(path) {
			toReturn = append(toReturn, path)
		} else {
			logger.WithFields(log.Fields{
				"path": path,
			}).Warn("Ignoring file with unrecognized extension")
		}
	}

	return toReturn
}

// gatherDir reads the directory looking for log files, without following
// symlinks or descending into subdirectories
func gatherDir(cpath string, logger *log.Logger) []string {
	var toReturn []string
	files, err := ioutil.ReadDir(cpath)
	if err != nil {
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"path":  cpath,
		}).Error("Error when reading directory")
	}

	for _, file := range files {
		if !file.IsDir() && hasLogExtension(file.Name()) {
			toReturn = append(toReturn, path.Join(cpath, file.Name()))
		}
	}
	return toReturn
}

// GetFileScanner returns a buffered scanner for a log file, transparently
// decompressing gzip input, along with a function to close the underlying
// stream
func GetFileScanner(fileHandle *os.File) (scanner *bufio.Scanner, closer func() error, err error) {
	// by default just close out the underlying file handle
	closer = fileHandle.Close

	if !hasLogExtension(fileHandle.Name()) {
		return nil, closer, errors.New("filetype not recognized")
	}

	if strings.HasSuffix(fileHandle.Name(), ".gz") {
		gzipReader, err := gzip.NewReader(fileHandle)
		if err != nil {
			return nil, closer, err
		}
		closer = func() error {
			errGzip := gzipReader.Close()
			errFile := fileHandle.Close()
			if errGzip != nil {
				return errGzip
			}
			return errFile
		}
		scanner = bufio.NewScanner(gzipReader)
	} else {
		scanner = bufio.NewScanner(fileHandle)
	}

	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner, closer, nil
}

// ReadAllLines gathers every line from the given log files in order
func ReadAllLines(paths []string, logger *log.Logger) []string {
	checkInputSize(paths, logger)

	var lines []string
	for _, filePath := range paths {
		fileHandle, err := os.Open(filePath)
		if err != nil {
			logger.WithFields(log.Fields{
				"error": err.Error(),
				"path":  filePath,
			}).Error("Could not open log file")
			continue
		}

		scanner, closer, err := GetFileScanner(fileHandle)
		if err != nil {
			logger.WithFields(log.Fields{
				"error": err.Error(),
				"path":  filePath,
			}).Error("Could not read log file")
			closer()
			continue
		}

		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			logger.WithFields(log.Fields{
				"error": err.Error(),
				"path":  filePath,
			}).Error("Error while scanning log file")
		}
		closer()
	}
	return lines
}

// checkInputSize warns when the given files are large relative to system
// memory since all parsed messages are held in memory at once
func checkInputSize(paths []string, logger *log.Logger) {
	var total uint64
	for _, filePath := range paths {
		if info, err := os.Stat(filePath); err == nil {
			total += uint64(info.Size())
		}
	}

	if sysMem := memory.TotalMemory(); sysMem > 0 && total > sysMem/4 {
		logger.WithFields(log.Fields{
			"input_bytes":  total,
			"system_bytes": sysMem,
		}).Warn("Input is large relative to system memory")
	}
}
