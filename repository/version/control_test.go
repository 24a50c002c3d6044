package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestControl_Touch(t *testing.T) {
	control := &Control{}
	modTime := time.Now()
	control.Touch(ChangeKindModified, modTime)

	assert.Equal(t, ChangeKindModified, control.ChangeKind())
	assert.Equal(t, modTime, control.ModTime())
	assert.Equal(t, int64(1), control.SCN)
	revision := control.Revision()
	assert.NotEqual(t, "", revision)

	control.Touch(ChangeKindDeleted, modTime.Add(time.Second))
	assert.Equal(t, ChangeKindDeleted, control.ChangeKind())
	assert.Equal(t, int64(2), control.SCN)
	assert.NotEqual(t, revision, control.Revision())
	assert.True(t, control.HasChanged(modTime))
}
