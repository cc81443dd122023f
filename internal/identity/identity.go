// Package identity provides the process-stable identity string mixed into
// enhanced entropy generation. The identity is opaque and not secret; it
// only binds the mixer's output to this process. It is never a source of
// entropy.
package identity

import (
	"sync"

	"github.com/google/uuid"
)

var (
	once    sync.Once
	value   []byte
	initErr error
)

// Bytes returns the process identity, initializing it on first use. The
// identity is stable for the process lifetime. An initialization failure is
// latched and re-returned on every subsequent call.
func Bytes() ([]byte, error) {
	once.Do(func() {
		id, err := uuid.NewRandom()
		if err != nil {
			initErr = err
			return
		}

		value = []byte(id.String())
	})

	return value, initErr
}
