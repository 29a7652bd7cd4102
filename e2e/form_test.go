//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startForm(t *testing.T, extraUI string) (*TUITestFramework, string) {
	t.Helper()
	tf := NewTUITest(t)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	path, err := tf.WriteForm(fmt.Sprintf(lunchForm, extraUI))
	require.NoError(t, err, "Failed to write form")

	require.NoError(t, tf.StartApp("--config", path, "--log", ""), "Failed to start app")
	require.True(t, tf.Ready("Lunch order"), "Should show the form title")
	return tf, path
}

func TestFilterAndCommit(t *testing.T) {
	t.Parallel()
	tf, _ := startForm(t, "")
	defer tf.Cleanup()

	require.True(t, tf.SeePlain("Select a fruit"), "placeholder is shown before a choice")

	require.NoError(t, tf.Press(KeyEnter))
	require.True(t, tf.SeePlain("Cherry"), "opening shows the option list")

	require.NoError(t, tf.Type("an"))
	require.True(t, tf.SeePlain("› an"), "search box echoes the term")

	require.NoError(t, tf.Press(KeyDown, KeyEnter))
	require.True(t, tf.SeePlain("Fruit: Banana"), "status confirms the commit")
}

func TestSubmitPrintsValues(t *testing.T) {
	t.Parallel()
	tf, _ := startForm(t, "")
	defer tf.Cleanup()

	require.NoError(t, tf.Press(KeyCtrlS))
	require.True(t, tf.SeePlain("Fruit is required"), "submit is blocked until fruit is chosen")

	require.NoError(t, tf.Press(KeyEnter))
	require.NoError(t, tf.Type("che"))
	require.NoError(t, tf.Press(KeyDown, KeyEnter, KeyCtrlS))

	exited, err := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "app should exit after a valid submit")
	assert.NoError(t, err)

	out := tf.SnapshotPlain()
	assert.Regexp(t, regexp.MustCompile(`fruit = ['"]c['"]`), out)
	assert.Regexp(t, regexp.MustCompile(`size = ['"]m['"]`), out)
}

func TestPersistOnSubmit(t *testing.T) {
	t.Parallel()
	tf, path := startForm(t, "persist_on_submit = true")
	defer tf.Cleanup()

	require.NoError(t, tf.Press(KeyEnter, KeyDown, KeyEnter, KeyCtrlS))

	exited, err := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "app should exit after a valid submit")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`value = ['"]a['"]`), string(data))
}

func TestEscapeClosesPanel(t *testing.T) {
	t.Parallel()
	tf, _ := startForm(t, "")
	defer tf.Cleanup()

	require.NoError(t, tf.Press(KeyEnter))
	require.True(t, tf.SeePlain("Apple"))

	require.NoError(t, tf.Press(KeyEsc, KeyQuit))
	exited, _ := tf.WaitExit(3 * time.Second)
	if !exited {
		tf.DumpTailOnFail(t, "escape-failure", 4096)
	}
	require.True(t, exited, "q quits once the panel is closed")
}

func TestReloadOnFileChange(t *testing.T) {
	t.Parallel()
	tf, path := startForm(t, "")
	defer tf.Cleanup()

	updated := regexp.MustCompile(`Lunch order`).ReplaceAllString(fmt.Sprintf(lunchForm, ""), "Dinner order")
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	require.True(t, tf.OutputContainsPlain("Dinner order", 5*time.Second), "form reloads from disk")
}
