package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A serialização por recurso depende da chave do advisory lock:
// duas escritas guardadas do mesmo recurso precisam colidir na mesma
// chave, e recursos distintos não podem se bloquear entre si.
func TestResourceLockKey(t *testing.T) {
	ana := uint(7)
	bruno := uint(8)

	// recurso compartilhado (sem staff) tem chave própria e estável
	assert.Equal(t, int32(0), resourceLockKey(nil))

	// cada profissional mapeia para a própria chave
	assert.Equal(t, int32(7), resourceLockKey(&ana))
	assert.Equal(t, int32(8), resourceLockKey(&bruno))

	// compartilhado nunca colide com um profissional (ids começam em 1)
	assert.NotEqual(t, resourceLockKey(nil), resourceLockKey(&ana))
	assert.NotEqual(t, resourceLockKey(&ana), resourceLockKey(&bruno))
}
