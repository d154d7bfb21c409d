package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("shop", flag.ContinueOnError)
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	o, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, StoreJSON, o.Store)
	assert.Equal(t, "info", o.LogLevel)
	assert.Equal(t, "classic", o.Theme)
	assert.Equal(t, "₹", o.Currency)
	assert.Equal(t, 1500*time.Millisecond, o.Feedback)
	assert.Equal(t, filepath.Join(o.DataDir, "shop.log"), o.LogFile)
}

func TestEnvThenFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	t.Setenv("SHOP_DATA_DIR", dir)
	t.Setenv("SHOP_STORE", "sqlite")
	t.Setenv("SHOP_THEME", "neon")
	t.Setenv("SHOP_FEEDBACK", "2s")

	fs := newFlagSet()
	o, err := Load(fs, []string{"-theme", "mono", "cart"})
	require.NoError(t, err)
	assert.Equal(t, dir, o.DataDir)
	assert.Equal(t, StoreSQLite, o.Store)
	assert.Equal(t, "mono", o.Theme)
	assert.Equal(t, 2*time.Second, o.Feedback)
	assert.Equal(t, filepath.Join(dir, "shop.db"), o.SQLitePath())
	assert.Equal(t, []string{"cart"}, fs.Args())
}

func TestDotEnvFile(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("SHOP_CURRENCY=$\nSHOP_DATA_DIR="+wd+"\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SHOP_CURRENCY")
		os.Unsetenv("SHOP_DATA_DIR")
	})

	o, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "$", o.Currency)
	assert.Equal(t, wd, o.DataDir)
}

func TestValidate(t *testing.T) {
	base := Options{DataDir: "/tmp/x", Store: StoreJSON, Theme: "classic", Feedback: time.Second}
	require.NoError(t, base.Validate())

	bad := base
	bad.Store = "redis"
	assert.ErrorIs(t, bad.Validate(), ErrInvalid)

	bad = base
	bad.Theme = "sparkly"
	assert.ErrorIs(t, bad.Validate(), ErrInvalid)

	bad = base
	bad.Feedback = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalid)

	bad = base
	bad.DataDir = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalid)

	mem := bad
	mem.Store = StoreMemory
	assert.NoError(t, mem.Validate())
}

func TestBadFeedbackEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SHOP_FEEDBACK", "soon")
	_, err := Load(newFlagSet(), nil)
	assert.ErrorIs(t, err, ErrInvalid)
}
