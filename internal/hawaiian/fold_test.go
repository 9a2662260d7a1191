package hawaiian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "ALOHA", Fold("  aloha\n"))
	assert.Equal(t, "KO'U", Fold("Ko'u"))
	assert.Equal(t, "E KOMO MAI", Fold("e komo mai"))
	assert.Equal(t, "AH-LOH-HAH", Pronounce(Fold("aloha")))
}
