package version

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	ChangeKindModified ChangeKind = "modified"
	ChangeKindDeleted  ChangeKind = "deleted"
)

type (
	Version struct {
		SCN int64 `yaml:"SCN,omitempty"` //sequence change number
	}

	//ChangeKind defines change types
	ChangeKind string

	Control struct {
		mux        sync.RWMutex
		Version    `yaml:",inline"`
		changeKind ChangeKind
		modTime    time.Time
		revision   string
	}
)

func (c *Control) SetChangeKind(kind ChangeKind) {
	c.mux.Lock()
	c.changeKind = kind
	c.mux.Unlock()
}

func (c *Control) ChangeKind() ChangeKind {
	c.mux.RLock()
	ret := c.changeKind
	c.mux.RUnlock()
	return ret
}

func (c *Control) SetModTime(modTime time.Time) {
	c.mux.Lock()
	c.modTime = modTime
	c.mux.Unlock()
}

func (c *Control) ModTime() time.Time {
	c.mux.RLock()
	ret := c.modTime
	c.mux.RUnlock()
	return ret
}

// Revision returns the revision stamp of the last reload
func (c *Control) Revision() string {
	c.mux.RLock()
	ret := c.revision
	c.mux.RUnlock()
	return ret
}

// Touch records a change, rotating the revision stamp and increasing the SCN
func (c *Control) Touch(kind ChangeKind, modTime time.Time) {
	c.mux.Lock()
	c.changeKind = kind
	c.modTime = modTime
	c.revision = uuid.New().String()
	c.mux.Unlock()
	c.Increase()
}

func (c *Control) HasChanged(since time.Time) bool {
	return !c.ModTime().Equal(since)
}

func (c *Version) Increase() {
	atomic.AddInt64(&c.SCN, 1)
}
