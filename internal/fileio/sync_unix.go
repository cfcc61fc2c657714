//go:build linux || darwin || freebsd

package fileio

import "golang.org/x/sys/unix"

func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	return unix.Fsync(fd)
}
