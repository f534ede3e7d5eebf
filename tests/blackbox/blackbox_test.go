//go:build blackbox

package blackbox

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var deskBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "paperdesk-blackbox-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	deskBin = filepath.Join(tmp, "paperdesk")

	// Build the binary once for all tests.
	cmd := exec.Command("go", "build", "-o", deskBin, "../../cmd/paperdesk")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
