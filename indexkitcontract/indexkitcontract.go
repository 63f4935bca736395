// Package indexkitcontract provides the behavioural contract of index-call iterators.
package indexkitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/port/contract"

	"go.llib.dev/indexkit"
)

// Iter validates that the index-call iterators made by mk uphold the length-aware iteration laws.
// The maker is called once per test case and should return a freshly constructed iterator.
func Iter[T any](mk func(testing.TB) *indexkit.Iter[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) *indexkit.Iter[T] {
		return mk(t)
	})

	s.Then("the reported length equals the number of values the iterator produces", func(t *testcase.T) {
		itr := subject.Get(t)
		expected := itr.Len()
		var produced int
		for itr.Next() {
			_ = itr.Value()
			produced++
		}
		assert.Equal(t, expected, produced)
	})

	s.Then("the remaining length decreases by exactly one per produced value", func(t *testcase.T) {
		itr := subject.Get(t)
		remaining := itr.Len()
		for itr.Next() {
			remaining--
			assert.Equal(t, remaining, itr.Len())
		}
		assert.Equal(t, 0, itr.Len())
	})

	s.Then("an exhausted iterator stays exhausted", func(t *testcase.T) {
		itr := subject.Get(t)
		for itr.Next() {
		}
		assert.False(t, itr.Next())
		assert.False(t, itr.Next())
		assert.Equal(t, 0, itr.Len())
	})

	s.Then("the total is unaffected by consumption", func(t *testcase.T) {
		itr := subject.Get(t)
		total := itr.Total()
		assert.Equal(t, total, itr.Len())
		for itr.Next() {
			assert.Equal(t, total, itr.Total())
		}
		assert.Equal(t, total, itr.Total())
	})

	s.Then("the iteration is free of errors", func(t *testcase.T) {
		itr := subject.Get(t)
		for itr.Next() {
			assert.NoError(t, itr.Err())
		}
		assert.NoError(t, itr.Err())
	})

	s.Then("close exhausts the iterator and is repeatable", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.False(t, itr.Next())
		assert.Equal(t, 0, itr.Len())
		assert.NoError(t, itr.Close())
	})

	return s.AsSuite("indexkit.Iter")
}
