package golden

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	a.NoError(err)
	a.NoError(os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	obj := map[string]int{"a": 1}
	a.True(Validate(t, obj))

	b, err := os.ReadFile(filepath.Join("testdata", "TestValidate-0.json"))
	a.NoError(err)
	a.Equal("{\n  \"a\": 1\n}\n", string(b))

	a.True(Validate(t, obj))
	a.FileExists(filepath.Join("testdata", "TestValidate-1.json"))

	a.Equal(0, nextCall("other"), "calls are counted per test")
	a.Equal(2, nextCall("TestValidate"))
}
