package sorter_test

import (
	"fmt"

	"github.com/lanrat/sorter"
)

func ExampleSort() {
	words := []string{"zebra", "apple", "banana", "cherry"}

	sorted, err := sorter.Sort(words, sorter.Ordered[string], "Insertion")
	if err != nil {
		panic(err)
	}
	fmt.Println(sorted)
	fmt.Println(words)
	// Output:
	// [apple banana cherry zebra]
	// [zebra apple banana cherry]
}

func ExampleSort_invalid() {
	_, err := sorter.Sort([]int{1, 2, 3}, sorter.Ordered[int], "quick")
	fmt.Println(err)
	// Output:
	// unknown sort method: "quick", use one of: merge, insertion, bubble
}

func ExampleMerge() {
	type person struct {
		Name string
		Age  int
	}
	people := []person{
		{"Alice", 30},
		{"Bob", 25},
		{"Charlie", 35},
		{"Diana", 25},
	}

	byAge := func(a, b person) bool { return a.Age <= b.Age }
	for _, p := range sorter.Merge(people, byAge) {
		fmt.Println(p.Name, p.Age)
	}
	// Output:
	// Bob 25
	// Diana 25
	// Alice 30
	// Charlie 35
}

func ExampleNew() {
	s, err := sorter.New(sorter.Ordered[int], &sorter.Config{
		Method:  "bubble",
		Reverse: true,
		Unique:  true,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Sort([]int{3, 1, 3, 2, 1}))
	// Output:
	// [3 2 1]
}
