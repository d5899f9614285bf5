//go:build notranslate

package translate

// NewDefaultBackend returns nil: this binary was built without translation
func NewDefaultBackend(tries int) Backend {
	return nil
}
