package anagram_test

import (
	"fmt"

	"github.com/joshuapare/anagramkit/pkg/anagram"
)

// ExampleAreAnagrams compares words without a corpus.
func ExampleAreAnagrams() {
	fmt.Println(anagram.AreAnagrams("listen", "silent"))
	fmt.Println(anagram.AreAnagrams("store", "stare"))
	// Output:
	// true
	// false
}

// ExampleGroup groups a word list in first-seen order.
func ExampleGroup() {
	groups, err := anagram.Group([]string{"stare", "store", "tears", "rotes", "rates"}, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, words := range groups.All() {
		fmt.Println(words)
	}
	// Output:
	// [stare tears rates]
	// [store rotes]
}
