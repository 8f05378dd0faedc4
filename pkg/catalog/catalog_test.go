package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStore(t *testing.T) {
	s := NewSeededStore()

	products := s.List()
	require.Len(t, products, 4)
	assert.Equal(t, Product{ID: 1, Name: "Classic Burger", Price: 15.50}, products[0])
	assert.Equal(t, Product{ID: 2, Name: "Cheese Burger", Price: 17.50}, products[1])
	assert.Equal(t, Product{ID: 3, Name: "Fries", Price: 6.00}, products[2])
	assert.Equal(t, Product{ID: 4, Name: "Soda", Price: 4.50}, products[3])
}

func TestListReturnsCopy(t *testing.T) {
	s := NewSeededStore()

	first := s.List()
	first[0].Name = "Veggie Burger"

	second := s.List()
	require.Len(t, second, 4)
	assert.Equal(t, "Classic Burger", second[0].Name)
}

func TestNewStoreCopiesInput(t *testing.T) {
	in := []Product{{ID: 9, Name: "Shake", Price: 5}}
	s := NewStore(in)
	in[0].Price = 99

	assert.Equal(t, 5.0, s.List()[0].Price)
}

func TestEmptyStore(t *testing.T) {
	products := NewStore(nil).List()
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestConcurrentList(t *testing.T) {
	s := NewSeededStore()
	want := Seed()

	var wg sync.WaitGroup
	results := make([][]Product, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.List()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
