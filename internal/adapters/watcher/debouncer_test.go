package watcher_test

import (
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/autoload/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var fired atomic.Int32
		d := watcher.NewDebouncer(50*time.Millisecond, func() {
			fired.Add(1)
		})

		d.Trigger()
		time.Sleep(10 * time.Millisecond)
		d.Trigger()
		time.Sleep(10 * time.Millisecond)
		d.Trigger()

		// Still inside the quiet window of the last trigger.
		time.Sleep(40 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(0), fired.Load())

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), fired.Load())
	})
}

func TestDebouncer_SeparateWindowsFireSeparately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var fired atomic.Int32
		d := watcher.NewDebouncer(50*time.Millisecond, func() {
			fired.Add(1)
		})

		d.Trigger()
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), fired.Load())

		d.Trigger()
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(2), fired.Load())
	})
}

func TestDebouncer_FlushRunsPendingImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var fired atomic.Int32
		d := watcher.NewDebouncer(time.Hour, func() {
			fired.Add(1)
		})

		d.Trigger()
		d.Flush()
		assert.Equal(t, int32(1), fired.Load())

		// Nothing pending anymore.
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Equal(t, int32(1), fired.Load())
	})
}

func TestDebouncer_FlushWithoutTriggerIsNoop(t *testing.T) {
	var fired atomic.Int32
	d := watcher.NewDebouncer(time.Hour, func() {
		fired.Add(1)
	})

	d.Flush()
	assert.Equal(t, int32(0), fired.Load())
}
