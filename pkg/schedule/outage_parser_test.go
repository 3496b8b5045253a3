package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"outageschedule/pkg/addresses"
	attr "outageschedule/pkg/api/attribute"
	apiStreams "outageschedule/pkg/api/streams"
	"outageschedule/pkg/timewindow"
)

// MockRecordStream is a mock implementation of the RecordStream interface for testing
type MockRecordStream struct {
	header     []string
	records    [][]string
	currentRow int
}

var _ apiStreams.RecordStream = (*MockRecordStream)(nil)

// NewMockRecordStream creates a new mock stream with the given header and records
func NewMockRecordStream(header []string, records [][]string) *MockRecordStream {
	return &MockRecordStream{
		header:  header,
		records: records,
	}
}

// GetHeader returns the header
func (m *MockRecordStream) GetHeader() []string {
	return m.header
}

// ReadRecord reads the next record
func (m *MockRecordStream) ReadRecord(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.currentRow >= len(m.records) {
		return nil, io.EOF
	}
	record := m.records[m.currentRow]
	m.currentRow++
	return record, nil
}

// MockErrorStream fails after yielding its records
type MockErrorStream struct {
	MockRecordStream
	err error
}

func (m *MockErrorStream) ReadRecord(ctx context.Context) ([]string, error) {
	rec, err := m.MockRecordStream.ReadRecord(ctx)
	if err == io.EOF {
		return nil, m.err
	}
	return rec, err
}

func collect(t *testing.T, parser interface {
	ParseOutages(context.Context, chan<- attr.Outage) error
}) ([]attr.Outage, error) {
	t.Helper()
	out := make(chan attr.Outage)
	var results []attr.Outage
	done := make(chan struct{})
	go func() {
		for o := range out {
			results = append(results, o)
		}
		close(done)
	}()
	err := parser.ParseOutages(context.Background(), out)
	<-done
	return results, err
}

func TestNewOutageParser(t *testing.T) {
	header := []string{"Datum", "Vreme", "Ulice"}
	tests := []struct {
		name    string
		stream  apiStreams.RecordStream
		opts    []OutageParserOption
		wantErr error
	}{
		{"Defaults", NewMockRecordStream(nil, nil), nil, nil},
		{"Nil stream", nil, nil, errNilRecordStream},
		{"Column names", NewMockRecordStream(header, nil), []OutageParserOption{WithColNames("datum", "VREME", " Ulice ")}, nil},
		{"Empty header", NewMockRecordStream(nil, nil), []OutageParserOption{WithColNames("a", "b", "c")}, errNoHeader},
		{"Missing column", NewMockRecordStream(header, nil), []OutageParserOption{WithColNames("Datum", "Vreme", "Adrese")}, errColumnMissing},
		{"Blank column name", NewMockRecordStream(header, nil), []OutageParserOption{WithColNames("Datum", "", "Ulice")}, errColumnNotSpecified},
		{"Equal column names", NewMockRecordStream(header, nil), []OutageParserOption{WithColNames("Datum", "datum", "Ulice")}, errColumnNamesEqual},
		{"Column indexes", NewMockRecordStream(nil, nil), []OutageParserOption{WithColIndexes(2, 0, 1)}, nil},
		{"Negative index", NewMockRecordStream(nil, nil), []OutageParserOption{WithColIndexes(-1, 0, 1)}, errColumnIndexNotSpecified},
		{"Equal indexes", NewMockRecordStream(nil, nil), []OutageParserOption{WithColIndexes(0, 1, 1)}, errColumnIndexesEqual},
		{"Zero workers", NewMockRecordStream(nil, nil), []OutageParserOption{WithWorkers(0)}, errInvalidWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := NewOutageParser(tt.stream, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewOutageParser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && parser == nil {
				t.Errorf("NewOutageParser() returned nil parser with no error")
			}
			if err != nil && parser != nil {
				t.Errorf("NewOutageParser() returned parser with error: %v", err)
			}
		})
	}
}

func TestWithColNamesSelectsColumns(t *testing.T) {
	stream := NewMockRecordStream(
		[]string{"Ulice", "Datum", "Vreme"},
		[][]string{{"MAIN ST: 1", "12.03.", "08:00-09:30"}},
	)
	parser, err := NewOutageParser(stream, WithColNames("Datum", "Vreme", "Ulice"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := collect(t, parser)
	if err != nil {
		t.Fatalf("ParseOutages() error = %v", err)
	}
	if len(got) != 1 || got[0].Date() != "12.03." || got[0].Window().String() != "08:00-09:30" {
		t.Fatalf("ParseOutages() = %v", got)
	}
}

func TestParseOutages(t *testing.T) {
	tests := []struct {
		name        string
		records     [][]string
		opts        []OutageParserOption
		wantIndexes []int
		wantStreets [][]string
	}{
		{
			name: "Valid records",
			records: [][]string{
				{"12.03.", "08:30-14:00", "MAIN ST: BB,284,294-296F,"},
				{"13.03.", "09:00-12:00", "OAK AVE: 1-5, ELM RD: 7"},
			},
			wantIndexes: []int{0, 1},
			wantStreets: [][]string{{"MAIN ST"}, {"OAK AVE", "ELM RD"}},
		},
		{
			name: "Cyrillic addresses are transliterated",
			records: [][]string{
				{"12.03.", "08:30-14:00", "Жупана Прибила: 1-3, Његошева: бб"},
			},
			wantIndexes: []int{0},
			wantStreets: [][]string{{"ŽUPANA PRIBILA", "NJEGOŠEVA"}},
		},
		{
			name: "Malformed records are skipped",
			records: [][]string{
				{"12.03.", "08:30-14:00"},
				{"12.03.", "8:30 do 14", "MAIN ST: 1"},
				{"12.03.", "25:00-26:00", "MAIN ST: 1"},
				{"12.03.", "08:30-14:00", "NO NUMBERS"},
				{"12.03.", "08:30-14:00", "OAK AVE: 2"},
			},
			wantIndexes: []int{4},
			wantStreets: [][]string{{"OAK AVE"}},
		},
		{
			name: "Strict mode rejects a tail",
			records: [][]string{
				{"12.03.", "08:30-14:00", "MAIN ST: 1, NASELJE ZEMUN: UGRINOVAČKA"},
				{"12.03.", "08:30-14:00", "OAK AVE: 2"},
			},
			opts:        []OutageParserOption{WithStrict()},
			wantIndexes: []int{1},
			wantStreets: [][]string{{"OAK AVE"}},
		},
		{
			name: "Lenient mode drops a tail",
			records: [][]string{
				{"12.03.", "08:30-14:00", "MAIN ST: 1, NASELJE ZEMUN: UGRINOVAČKA"},
			},
			wantIndexes: []int{0},
			wantStreets: [][]string{{"MAIN ST"}},
		},
		{
			name: "Raw mode leaves lowercase text alone",
			records: [][]string{
				{"12.03.", "08:30-14:00", "Main St: bb"},
			},
			opts:        []OutageParserOption{WithoutTransliteration()},
			wantIndexes: []int{0},
			wantStreets: [][]string{{"Main St"}},
		},
		{
			name:    "Empty stream",
			records: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := NewOutageParser(NewMockRecordStream(nil, tt.records), tt.opts...)
			if err != nil {
				t.Fatalf("NewOutageParser() error = %v", err)
			}
			got, err := collect(t, parser)
			if err != nil {
				t.Fatalf("ParseOutages() error = %v", err)
			}

			var indexes []int
			var streets [][]string
			for _, o := range got {
				indexes = append(indexes, o.Index())
				var names []string
				for _, e := range o.Addresses().All() {
					names = append(names, e.Street)
				}
				streets = append(streets, names)
			}
			if !reflect.DeepEqual(indexes, tt.wantIndexes) {
				t.Errorf("ParseOutages() indexes = %v, want %v", indexes, tt.wantIndexes)
			}
			if !reflect.DeepEqual(streets, tt.wantStreets) {
				t.Errorf("ParseOutages() streets = %q, want %q", streets, tt.wantStreets)
			}
		})
	}
}

func TestParseOutagesKeepsOrder(t *testing.T) {
	var records [][]string
	for i := range 500 {
		addrs := fmt.Sprintf("STREET %d: %d-%dA,BB", i, i, i+10)
		if i%7 == 0 {
			addrs = "broken"
		}
		records = append(records, []string{"12.03.", "08:00-10:00", addrs})
	}
	parser, err := NewOutageParser(NewMockRecordStream(nil, records), WithWorkers(8))
	if err != nil {
		t.Fatal(err)
	}
	got, err := collect(t, parser)
	if err != nil {
		t.Fatalf("ParseOutages() error = %v", err)
	}

	prev := -1
	for _, o := range got {
		if o.Index() <= prev {
			t.Fatalf("outage %d emitted after %d", o.Index(), prev)
		}
		if o.Index()%7 == 0 {
			t.Fatalf("broken record %d was emitted", o.Index())
		}
		want := fmt.Sprintf("STREET %d", o.Index())
		if street := o.Addresses().Entry(0).Street; street != want {
			t.Fatalf("outage %d street = %q, want %q", o.Index(), street, want)
		}
		prev = o.Index()
	}
	if want := 500 - 72; len(got) != want {
		t.Errorf("ParseOutages() got %d outages, want %d", len(got), want)
	}
}

func TestParseOutagesErrors(t *testing.T) {
	t.Run("Stream read error", func(t *testing.T) {
		stream := &MockErrorStream{
			MockRecordStream: MockRecordStream{records: [][]string{{"12.03.", "08:00-10:00", "A: 1"}}},
			err:              errors.New("read error"),
		}
		parser, err := NewOutageParser(stream)
		if err != nil {
			t.Fatal(err)
		}
		_, err = collect(t, parser)
		if err == nil || !errors.Is(err, stream.err) {
			t.Errorf("ParseOutages() error = %v, want %v", err, stream.err)
		}
	})

	t.Run("Nil parser", func(t *testing.T) {
		var p *outageParser
		_, err := collect(t, p)
		if !errors.Is(err, errNilParserOrStream) {
			t.Errorf("ParseOutages() error = %v, want %v", err, errNilParserOrStream)
		}
	})

	t.Run("Canceled context", func(t *testing.T) {
		parser, err := NewOutageParser(NewMockRecordStream(nil, [][]string{{"12.03.", "08:00-10:00", "A: 1"}}))
		if err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out := make(chan attr.Outage, 1)
		if err := parser.ParseOutages(ctx, out); !errors.Is(err, context.Canceled) {
			t.Errorf("ParseOutages() error = %v, want %v", err, context.Canceled)
		}
		if _, ok := <-out; ok {
			t.Errorf("ParseOutages() emitted after cancel")
		}
	})
}

func TestClassify(t *testing.T) {
	_, windowErr := timewindow.Parse("8-9")
	_, rangeErr := timewindow.Parse("24:00-25:00")
	_, listErr := addresses.Parse("MAIN: X")
	_, entryErr := addresses.Parse("MAIN")
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: got 1", errMissingColumns), "columns"},
		{windowErr, "window"},
		{rangeErr, "window"},
		{listErr, "list"},
		{entryErr, "entry"},
		{errors.New("other"), "unknown"},
	}
	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestCause(t *testing.T) {
	_, listErr := addresses.Parse("MAIN: X")
	_, entryErr := addresses.Parse("MAIN")
	_, windowErr := timewindow.Parse("8-9")
	tests := []struct {
		err  error
		want string
	}{
		{listErr, "token"},
		{entryErr, "entry"},
		{windowErr, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Cause(tt.err); got != tt.want {
			t.Errorf("Cause(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
