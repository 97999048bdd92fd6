package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("ttp.host", "ttp.local"))
	require.NoError(t, store.Set("ttp.port", 5000))
	require.NoError(t, store.Set("ttp.secure", true))
	require.NoError(t, store.Set("ttp.rate_limit", 2.5))
	require.NoError(t, store.Set("ttp.timeout", "1m"))

	assert.Equal(t, "ttp.local", store.GetString("ttp.host"))
	assert.Equal(t, 5000, store.GetInt("ttp.port"))
	assert.True(t, store.GetBool("ttp.secure"))
	assert.InDelta(t, 2.5, store.GetFloat("ttp.rate_limit"), 1e-9)
	assert.Equal(t, time.Minute, store.GetDuration("ttp.timeout"))

	val, ok := store.Get("ttp.host")
	assert.True(t, ok)
	assert.Equal(t, "ttp.local", val)
}

func TestConfigStore_TypeConversions(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("int64", int64(7))
	_ = store.Set("float", 9.0)
	_ = store.Set("duration", 2*time.Second)
	_ = store.Set("bad_duration", "soon")

	assert.Equal(t, 7, store.GetInt("int64"))
	assert.InDelta(t, 7.0, store.GetFloat("int64"), 1e-9)
	assert.Equal(t, 9, store.GetInt("float"))
	assert.Equal(t, 2*time.Second, store.GetDuration("duration"))

	// Wrong types read as zero values.
	assert.Equal(t, "", store.GetString("int64"))
	assert.False(t, store.GetBool("float"))
	assert.Zero(t, store.GetFloat("bad_duration"))
	assert.Zero(t, store.GetDuration("bad_duration"))
	assert.Zero(t, store.GetDuration("missing"))
}

func TestConfigStore_UnsetAndKeys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("ttp.port", 5000)
	_ = store.Set("journal.backend", "memory")
	_ = store.Set("ttp.host", "h")

	assert.Equal(t, []string{"journal.backend", "ttp.host", "ttp.port"}, store.Keys())

	require.NoError(t, store.Unset("ttp.host"))
	_, ok := store.Get("ttp.host")
	assert.False(t, ok)
	assert.Equal(t, []string{"journal.backend", "ttp.port"}, store.Keys())

	// Unsetting a missing key is not an error.
	assert.NoError(t, store.Unset("ttp.host"))
}

func TestConfigStore_SnapshotAndReplace(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("ttp.host", "a")

	snap := store.Snapshot()
	snap["ttp.host"] = "changed"
	assert.Equal(t, "a", store.GetString("ttp.host"))

	store.Replace(map[string]any{"ttp.port": 1})
	assert.Equal(t, []string{"ttp.port"}, store.Keys())

	store.Replace(nil)
	assert.Empty(t, store.Keys())
	assert.NoError(t, store.Set("ttp.host", "b"))
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("ttp.port", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("ttp.port")
			_ = store.Keys()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	_, ok := store.Get("ttp.port")
	assert.True(t, ok)
}
