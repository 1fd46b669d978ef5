package target

import (
	"fmt"
	"path/filepath"
)

const chrootBin = "chroot"

// BuildCommand returns the program and arguments that run argv inside the
// system mounted at root. A root of "/" runs argv directly.
func BuildCommand(root string, argv []string) (string, []string, error) {
	if root == "" {
		return "", nil, fmt.Errorf("target root is required")
	}
	if len(argv) == 0 {
		return "", nil, fmt.Errorf("command is required")
	}
	if !filepath.IsAbs(root) {
		return "", nil, fmt.Errorf("target root must be absolute: %s", root)
	}

	if filepath.Clean(root) == "/" {
		return argv[0], append([]string(nil), argv[1:]...), nil
	}

	args := make([]string, 0, len(argv)+1)
	args = append(args, filepath.Clean(root))
	args = append(args, argv...)
	return chrootBin, args, nil
}
