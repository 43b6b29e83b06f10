package diskcache

import "path/filepath"

// Resolve returns the file that holds key for category c under root.
// Only categories with a suffix in the policy table get an extension.
func Resolve(root string, c Category, key string, h KeyHasher) string {
	return filepath.Join(root, h.Hash(key)+c.policy().suffix)
}

// namespaceDir returns the directory name of a category namespace.
func namespaceDir(base, prefix string, c Category) string {
	return filepath.Join(base, prefix+c.String())
}
