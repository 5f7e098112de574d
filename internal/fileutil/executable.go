package fileutil

import "io/fs"

// execBits covers the owner, group and other execute permissions.
const execBits fs.FileMode = 0o111

// IsRunnable reports whether an entry with the given permission bits could be
// executed. Symbolic links are accepted so that links to executables show up;
// directories and special files are rejected whatever their mode.
func IsRunnable(perm fs.FileMode, isRegular, isSymlink bool) bool {
	if perm&execBits == 0 {
		return false
	}
	return isRegular || isSymlink
}

// IsRunnableMode applies IsRunnable to a full file mode as returned by Lstat.
func IsRunnableMode(mode fs.FileMode) bool {
	return IsRunnable(mode.Perm(), mode.IsRegular(), mode&fs.ModeSymlink != 0)
}
