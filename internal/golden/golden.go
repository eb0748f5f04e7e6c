package golden

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	callsMu sync.Mutex
	calls   = make(map[string]int)
)

// Validate compares the indented JSON of obj with testdata/<test name>-<call>.json.
// A missing file is written from obj. Set UPDATE_GOLDEN=1 to rewrite every file.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", fileSafe(t.Name()), nextCall(t.Name())))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if !assert.NoError(t, err) {
		return false
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv("UPDATE_GOLDEN") == "1" {
		return assert.NoError(t, write(filename, objJSON))
	}

	if !assert.NoError(t, err) {
		return false
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("golden file %s", filename)
		return false
	}

	return true
}

func nextCall(name string) int {
	callsMu.Lock()
	defer callsMu.Unlock()

	call := calls[name]
	calls[name] = call + 1
	return call
}

func fileSafe(name string) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(name)
}

func write(filename string, b []byte) error {
	logrus.WithField("filename", filename).Info("writing golden file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(b, '\n'), 0644)
}
