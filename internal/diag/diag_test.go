package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleKeepsInsertionOrder(t *testing.T) {
	c := NewConsole(10)
	c.Infof("search", "first")
	c.Errorf("search", "second")

	entries := c.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, LevelError, entries[1].Level)
}

func TestConsoleEvictsOldest(t *testing.T) {
	c := NewConsole(3)
	for i := 0; i < 5; i++ {
		c.Infof("flow", "entry %d", i)
	}

	entries := c.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, "entry 2", entries[0].Message)
	assert.Equal(t, "entry 4", entries[2].Message)
	assert.Equal(t, 3, c.Len())
}

func TestConsoleMinimumCapacity(t *testing.T) {
	c := NewConsole(0)
	c.Infof("flow", "only")
	c.Infof("flow", "latest")

	entries := c.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "latest", entries[0].Message)
}
