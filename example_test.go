package collutils

import (
	"context"
	"fmt"
	"strings"
)

func Example() {
	type employee struct {
		name   string
		dept   string
		salary float64
	}

	employees := []employee{
		{name: "muruga", dept: "IT", salary: 100},
		{name: "anna", dept: "IT", salary: 200},
		{name: "bob", dept: "HR", salary: 150},
	}

	dept := func(e employee) string {
		return e.dept
	}

	// sum salaries per department
	salaries, _ := GroupBySum(context.Background(), employees, dept, func(e employee) float64 {
		return e.salary
	})

	fmt.Println(salaries.OrElse(nil))

	// concatenate upper-cased names per department, in parallel
	names, _ := GroupByJoin(context.Background(), employees, dept, func(e employee) string {
		return strings.ToUpper(e.name)
	}, Joiner{Delimiter: ", ", Prefix: "[", Suffix: "]"}, WithParallel())

	fmt.Println(names.OrElse(nil))

	// Output:
	// map[HR:150 IT:300]
	// map[HR:[BOB] IT:[MURUGA, ANNA]]
}

func ExampleGroupBy_absent() {
	absent, _ := GroupByCount(context.Background(), nil, strings.ToLower)
	empty, _ := GroupByCount(context.Background(), []string{}, strings.ToLower)

	fmt.Println(absent.IsPresent(), empty.IsPresent(), len(empty.OrElse(nil)))
	// Output: false true 0
}

func ExampleCollect() {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}

	firstLetter := func(s string) byte {
		return s[0]
	}

	longest := CollectingAndThen(MaximumByValue(func(s string) int {
		return len(s)
	}), func(o Optional[string]) string {
		return o.OrElse("")
	})

	result, _ := Collect(context.Background(), words, GroupingBy(firstLetter, longest))

	fmt.Println(result.OrElse(nil)['a'])
	fmt.Println(result.OrElse(nil)['b'])
	// Output:
	// avocado
	// blueberry
}
