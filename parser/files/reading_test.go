package files

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func TestGatherLogFiles(t *testing.T) {
	dir := t.TempDir()

	wanted := []string{"conn.log", "capture.txt", "flows.csv", "events.jsonl", "old.log.gz"}
	for _, name := range wanted {
		assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
	}
	assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, "notes.md"), []byte("x\n"), 0644))

	found := GatherLogFiles([]string{dir}, quietLogger())
	assert.Len(t, found, len(wanted))
	for _, path := range found {
		assert.NotContains(t, path, "notes.md")
	}
}

func TestGatherLogFilesRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "data.bin")
	assert.Nil(t, ioutil.WriteFile(badPath, []byte("x\n"), 0644))

	found := GatherLogFiles([]string{badPath}, quietLogger())
	assert.Empty(t, found)
}

func TestReadAllLinesGzip(t *testing.T) {
	dir := t.TempDir()
	gzPath := filepath.Join(dir, "capture.log.gz")

	fileHandle, err := os.Create(gzPath)
	assert.Nil(t, err)
	writer := gzip.NewWriter(fileHandle)
	_, err = writer.Write([]byte("first line\nsecond line\n"))
	assert.Nil(t, err)
	assert.Nil(t, writer.Close())
	assert.Nil(t, fileHandle.Close())

	plainPath := filepath.Join(dir, "plain.log")
	assert.Nil(t, ioutil.WriteFile(plainPath, []byte("third line\n"), 0644))

	lines := ReadAllLines([]string{gzPath, plainPath}, quietLogger())
	assert.Equal(t, []string{"first line", "second line", "third line"}, lines)
}

func TestGetFileScannerRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "data.bin")
	assert.Nil(t, ioutil.WriteFile(badPath, []byte("x\n"), 0644))

	fileHandle, err := os.Open(badPath)
	assert.Nil(t, err)
	defer fileHandle.Close()

	_, _, err = GetFileScanner(fileHandle)
	assert.NotNil(t, err)
}
