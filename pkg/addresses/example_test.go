package addresses_test

import (
	"errors"
	"fmt"

	"outageschedule/pkg/addresses"
)

func ExampleParse() {
	row, err := addresses.Parse("  MAIN ST  : BB,284,294-296F,  SIDE ST: 36A/1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, entry := range row.All() {
		fmt.Printf("%s:", entry.Street)
		for _, spec := range entry.Numbers {
			switch s := spec.(type) {
			case addresses.NoNumber:
				fmt.Print(" no number;")
			case addresses.Single:
				fmt.Printf(" %d ext %q;", s.Value, s.Extension)
			case addresses.Range:
				fmt.Printf(" %v to %v;", s.From, s.To)
			}
		}
		fmt.Println()
	}
	// Output:
	// MAIN ST: no number; 284 ext ""; 294 to 296F;
	// SIDE ST: 36 ext "A/1";
}

func ExampleWithStrict() {
	line := "A ST: 1-5, B ST 7"

	row, _ := addresses.Parse(line)
	fmt.Printf("%d entry, dropped %q\n", row.Len(), row.Rest())

	_, err := addresses.Parse(line, addresses.WithStrict())
	fmt.Println(errors.Is(err, addresses.ErrMalformedEntry))
	// Output:
	// 1 entry, dropped "B ST 7"
	// true
}
