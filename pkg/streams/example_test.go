package streams_test

import (
	"context"
	"fmt"
	"strings"

	"outageschedule/pkg/streams"
)

func ExampleNewCsvStream() {
	csvData := "date,time,addresses\n12.03.,08:30-14:00,\"MAIN ST: 1-5,\"\n13.03.,09:00-12:00,OAK AVE: BB\n"
	s, err := streams.NewCsvStream(strings.NewReader(csvData), streams.WithHeader())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print header
	fmt.Println(s.GetHeader())

	// Read records
	rec1, _ := s.ReadRecord(context.Background())
	fmt.Println(rec1)
	rec2, _ := s.ReadRecord(context.Background())
	fmt.Println(rec2)

	// Output:
	// [date time addresses]
	// [12.03. 08:30-14:00 MAIN ST: 1-5,]
	// [13.03. 09:00-12:00 OAK AVE: BB]
}

func ExampleNewJsonStream() {
	jsonData := `[["12.03.","08:30-14:00","MAIN ST: 1-5,"],["13.03.","09:00-12:00","OAK AVE: BB"]]`
	s, err := streams.NewJsonStream(strings.NewReader(jsonData))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ctx := context.Background()

	count := 0
	for {
		_, err := s.ReadRecord(ctx)
		if err != nil {
			break
		}
		count++
	}
	fmt.Println(count)
	// Output:
	// 2
}
