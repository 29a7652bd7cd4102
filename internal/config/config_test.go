package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeahead/internal/eventbus"
)

const sampleForm = `
title = "Lunch"

[ui]
max_visible = 4

[[fields]]
name = "fruit"
label = "Fruit"
required = true

  [[fields.options]]
  value = "a"
  label = "Apple"

  [[fields.options]]
  value = "d"
  label = "Durian"
  disabled = true
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleForm))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "Lunch", cfg.Title)
	assert.Equal(t, 4, cfg.UISettings.MaxVisible)
	assert.Equal(t, 32, cfg.UISettings.Width)

	f, ok := cfg.Field("fruit")
	require.True(t, ok)
	assert.True(t, f.Required)
	require.Len(t, f.Options, 2)
	assert.True(t, f.Options[1].Disabled)

	label, ok := f.LabelFor("d")
	assert.True(t, ok)
	assert.Equal(t, "Durian", label)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`title = "empty"`))
	assert.ErrorIs(t, err, ErrNoFields)

	_, err = Parse([]byte(`
[[fields]]
name = "x"
[[fields]]
name = "x"
`))
	assert.ErrorIs(t, err, ErrDuplicateField)

	_, err = Parse([]byte(`[[fields]]
label = "nameless"`))
	assert.Error(t, err)

	_, err = Parse([]byte(`not = [valid`))
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "form.toml")
	svc := NewConfigServiceForPath(path)

	cfg := DefaultConfig()
	cfg.Fields[0].Value = "b"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, map[string]string{"fruit": "b", "size": "m"}, loaded.Values())
}

func TestSetValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetValues(map[string]string{"fruit": "g", "colour": "red"})

	assert.Equal(t, map[string]string{"fruit": "g", "size": "m"}, cfg.Values())
}

func TestLoadMissingFallsBackToDefault(t *testing.T) {
	svc := NewConfigServiceForPath(filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = svc.LoadFromPath(svc.Path())
	assert.Error(t, err)
}

func TestWatcherPublishesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleForm), 0644))

	bus := eventbus.New()
	changed := make(chan string, 8)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		changed <- e.(eventbus.ConfigChangedEvent).Path
	})

	w, err := NewWatcher(path, bus)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte(sampleForm+"\n"), 0644))

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a config change event")
	}
}
