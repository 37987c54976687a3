package validated

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("batches multiple writes", func(t *testing.T) {
		log := []string{}

		count := NewCell(0, Min(0))

		Watch(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		Batch(func() {
			count.Set(10)
			count.Set(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("batches multiple cells", func(t *testing.T) {
		log := []string{}

		email := NewCell("", NonEmpty())
		age := NewCell(0, Min(18))

		Watch(func() {
			log = append(log, fmt.Sprintf("email %v", email.IsValid()))
		})

		Watch(func() {
			log = append(log, fmt.Sprintf("age %v", age.IsValid()))
		})

		Batch(func() {
			email.Set("gopher@example.com")
			age.Set(21)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"email false",
			"age false",
			"updated",
			"email true",
			"age true",
		}, log)
	})

	t.Run("nested batches", func(t *testing.T) {
		log := []string{}

		count := NewCell(0, Min(0))

		Watch(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		Batch(func() {
			count.Set(10)
			Batch(func() {
				count.Set(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("form submit gate", func(t *testing.T) {
		log := []string{}

		email := NewCell("", Match(`^\S+@\S+$`))
		password := NewCell("", MinLen(8))

		Watch(func() {
			ok := email.IsValid() && password.IsValid()
			log = append(log, fmt.Sprintf("submit %v", ok))
		})

		// one re-render for the whole form update
		Batch(func() {
			email.Set("gopher@example.com")
			password.Set("correct horse")
		})

		assert.Equal(t, []string{
			"submit false",
			"submit true",
		}, log)
	})
}
