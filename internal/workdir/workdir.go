// Package workdir resolves the basket home directory, following a
// .basket-root redirect file when one is present.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const rootFile = ".basket-root"

// DefaultHome returns ~/.config/basket.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "basket"), nil
}

// Resolve picks the home directory: explicit flag, then environment, then
// the default. The chosen directory may redirect elsewhere via .basket-root.
func Resolve(flagDir, envDir string) (string, error) {
	dir := strings.TrimSpace(flagDir)
	if dir == "" {
		dir = strings.TrimSpace(envDir)
	}
	if dir == "" {
		var err error
		if dir, err = DefaultHome(); err != nil {
			return "", err
		}
	}
	return FollowRedirect(dir), nil
}

// FollowRedirect returns the directory named in dir/.basket-root, or dir
// itself when there is no usable redirect. Relative targets resolve against
// dir.
func FollowRedirect(dir string) string {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return dir
	}
	target := strings.TrimSpace(string(content))
	if target == "" {
		return dir
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target)
}
