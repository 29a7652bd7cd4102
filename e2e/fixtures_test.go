//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const lunchForm = `title = "Lunch order"

[ui]
max_visible = 5
mouse = true
%s

[[fields]]
name = "fruit"
label = "Fruit"
placeholder = "Select a fruit"
required = true

  [[fields.options]]
  value = "a"
  label = "Apple"

  [[fields.options]]
  value = "b"
  label = "Banana"

  [[fields.options]]
  value = "c"
  label = "Cherry"

  [[fields.options]]
  value = "d"
  label = "Durian"
  disabled = true

[[fields]]
name = "size"
label = "Size"
value = "m"

  [[fields.options]]
  value = "s"
  label = "Small"

  [[fields.options]]
  value = "m"
  label = "Medium"
`

// CreateTestWorkspace creates a temporary directory for the form and log
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteForm writes a form definition into the workspace and returns its path
func (tf *TUITestFramework) WriteForm(content string) (string, error) {
	path := filepath.Join(tf.workspace, "form.toml")
	return path, os.WriteFile(path, []byte(content), 0644)
}
