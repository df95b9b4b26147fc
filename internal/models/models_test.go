package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModels(t *testing.T) {
	t.Run("Shipping TableName", func(t *testing.T) {
		shipping := Shipping{}
		assert.Equal(t, "shippings", shipping.TableName())
	})
}
