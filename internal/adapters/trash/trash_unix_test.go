//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fclean/internal/adapters/trash"
	"go.trai.ch/fclean/internal/core/domain"
)

type call struct {
	name string
	args []string
}

type fakeSystem struct {
	installed map[string]bool
	failing   map[string]bool
	calls     []call
}

func (f *fakeSystem) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if f.failing[name] {
		return []byte("helper exploded\n"), errors.New("exit status 1")
	}
	return nil, nil
}

func (f *fakeSystem) lookPath(file string) (string, error) {
	if f.installed[file] {
		return "/usr/bin/" + file, nil
	}
	return "", exec.ErrNotFound
}

func TestTrash_MoveToTrash_UsesGio(t *testing.T) {
	sys := &fakeSystem{installed: map[string]bool{"gio": true, "trash-put": true}}
	tr := trash.NewWithRunner(sys.run, sys.lookPath)

	require.NoError(t, tr.MoveToTrash(context.Background(), "/home/dev/app/build"))

	require.Len(t, sys.calls, 1)
	assert.Equal(t, call{name: "gio", args: []string{"trash", "/home/dev/app/build"}}, sys.calls[0])
}

func TestTrash_MoveToTrash_FallsThroughMissingHelpers(t *testing.T) {
	sys := &fakeSystem{installed: map[string]bool{"kioclient5": true}}
	tr := trash.NewWithRunner(sys.run, sys.lookPath)

	require.NoError(t, tr.MoveToTrash(context.Background(), "/p"))

	require.Len(t, sys.calls, 1)
	assert.Equal(t, call{name: "kioclient5", args: []string{"move", "/p", "trash:/"}}, sys.calls[0])
}

func TestTrash_MoveToTrash_TriesNextHelperOnFailure(t *testing.T) {
	sys := &fakeSystem{
		installed: map[string]bool{"gio": true, "trash-put": true},
		failing:   map[string]bool{"gio": true},
	}
	tr := trash.NewWithRunner(sys.run, sys.lookPath)

	require.NoError(t, tr.MoveToTrash(context.Background(), "/p"))

	require.Len(t, sys.calls, 2)
	assert.Equal(t, "trash-put", sys.calls[1].name)
	assert.Equal(t, []string{"/p"}, sys.calls[1].args)
}

func TestTrash_MoveToTrash_AllHelpersFail(t *testing.T) {
	sys := &fakeSystem{
		installed: map[string]bool{"gio": true},
		failing:   map[string]bool{"gio": true},
	}
	tr := trash.NewWithRunner(sys.run, sys.lookPath)

	err := tr.MoveToTrash(context.Background(), "/p")

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTrashFailed.Error())
}

func TestTrash_MoveToTrash_NoHelperInstalled(t *testing.T) {
	sys := &fakeSystem{}
	tr := trash.NewWithRunner(sys.run, sys.lookPath)

	err := tr.MoveToTrash(context.Background(), "/p")

	require.ErrorIs(t, err, domain.ErrTrashUnavailable)
	assert.Empty(t, sys.calls)
}
