package scan

import "os"

// IdentityFunc reports whether two paths name the same underlying file.
type IdentityFunc func(a, b string) (bool, error)

// SameFile follows symlinks on both paths and compares device and inode.
func SameFile(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ai, bi), nil
}
