package temporal

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func ExampleDate_Until() {
	a, _ := ParseDate("2020-02-01")
	b, _ := ParseDate("2021-02-01")

	days, _ := a.Until(b)
	years, _ := a.Until(b, WithLargestUnit(Year))
	fmt.Println(days, years)
	// Output: P366D P1Y
}

func ExampleDate_Add() {
	d, _ := ParseDate("2020-01-31")
	month, _ := ParseDuration("P1M")

	constrained, _ := d.Add(month)
	_, err := d.Add(month, WithOverflow(OverflowReject))
	fmt.Println(constrained, errors.Is(err, ErrOutOfRange))
	// Output: 2020-02-29 true
}

func ExampleWeekdayConstraint() {
	weekdays := WeekdayConstraint[Date](1, 2, 3, 4, 5)

	_, err := NewDate("2020-02-29", weekdays)
	fmt.Println(err != nil)

	d, err := NewDate("2020-03-02", weekdays)
	fmt.Println(d, err)
	// Output:
	// true
	// 2020-03-02 <nil>
}

func TestParseDate(t *testing.T) {
	for idx, tc := range []struct {
		input string
		want  string
		err   error
	}{
		{input: "2020-02-29", want: "2020-02-29"},
		{input: "20200229", want: "2020-02-29"},
		{input: "+002020-02-29", want: "2020-02-29"},
		{input: "-000001-01-01", want: "-000001-01-01"},
		{input: "−000001-01-01", want: "-000001-01-01"},
		{input: "0000-01-01", want: "0000-01-01"},
		{input: "+010000-01-01", want: "+010000-01-01"},
		{input: "2020-02-29T12:00Z", want: "2020-02-29"},
		{input: "2020-02-29T12:00+05:00[Asia/Karachi]", want: "2020-02-29"},
		{input: "2020-02-29[c=iso8601]", want: "2020-02-29"},
		{input: "+275760-09-13", want: "+275760-09-13"},
		{input: "-271821-04-19", want: "-271821-04-19"},
		{input: "+275760-09-14", err: ErrOutOfRange},
		{input: "-271821-04-18", err: ErrOutOfRange},
		{input: "2019-02-29", err: ErrOutOfRange},
		{input: "2020-13-01", err: ErrOutOfRange},
		{input: "2020-02-29T25:00", err: ErrOutOfRange},
		{input: "-000000-01-01", err: ErrMalformedText},
		{input: "2020-1-01", err: ErrMalformedText},
		{input: "2020-02-29x", err: ErrMalformedText},
		{input: "", err: ErrMalformedText},
	} {
		got, err := ParseDate(tc.input)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s[%d] failed: %q want %v, got %v", t.Name(), idx, tc.input, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s[%d] failed: %q: %v", t.Name(), idx, tc.input, err)
		} else if got.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestNewDate(t *testing.T) {
	d, err := NewDate(time.Date(2021, 7, 4, 23, 0, 0, 0, time.FixedZone("x", -3600)))
	if err != nil || d.String() != "2021-07-04" {
		t.Errorf("%s failed: time.Time gave %s, %v", t.Name(), d, err)
	}
	d, err = NewDate(ISODate{Year: 2021, Month: 7, Day: 4})
	if err != nil || d.String() != "2021-07-04" {
		t.Errorf("%s failed: ISODate gave %s, %v", t.Name(), d, err)
	}
	if _, err = NewDate(ISODate{Year: 2021, Month: 2, Day: 30}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%s failed: want ErrOutOfRange, got %v", t.Name(), err)
	}
	if _, err = NewDate(42); !errors.Is(err, ErrMissingField) {
		t.Errorf("%s failed: want ErrMissingField, got %v", t.Name(), err)
	}

	lo, hi := mustDate("2020-01-01"), mustDate("2020-12-31")
	if _, err = NewDate("2021-01-01", BetweenConstraint(lo, hi)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%s failed: want ErrOutOfRange, got %v", t.Name(), err)
	}
}

func TestDate_properties(t *testing.T) {
	for idx, tc := range []struct {
		input                   string
		dow, doy, woy, dim, diy int
		leap                    bool
	}{
		{"2020-01-01", 3, 1, 1, 31, 366, true},
		{"2020-12-31", 4, 366, 53, 31, 366, true},
		{"2021-01-01", 5, 1, 53, 31, 365, false},
		{"2019-12-30", 1, 364, 1, 31, 365, false},
		{"2021-02-14", 7, 45, 6, 28, 365, false},
	} {
		d := mustDate(tc.input)
		got := [5]int{d.DayOfWeek(), d.DayOfYear(), d.WeekOfYear(), d.DaysInMonth(), d.DaysInYear()}
		want := [5]int{tc.dow, tc.doy, tc.woy, tc.dim, tc.diy}
		if got != want || d.InLeapYear() != tc.leap || d.MonthsInYear() != 12 {
			t.Errorf("%s[%d] failed: %s\n\twant: %v %t\n\tgot:  %v %t",
				t.Name(), idx, tc.input, want, tc.leap, got, d.InLeapYear())
		}
	}
}

func TestDate_AddSubtract(t *testing.T) {
	for idx, tc := range []struct {
		start, dur string
		sub        bool
		want       string
		err        error
	}{
		{start: "2020-01-31", dur: "P1M", want: "2020-02-29"},
		{start: "2020-02-29", dur: "P1Y", want: "2021-02-28"},
		{start: "2020-03-01", dur: "P1D", sub: true, want: "2020-02-29"},
		{start: "2020-01-01", dur: "P1W2D", want: "2020-01-10"},
		{start: "2020-01-01", dur: "PT47H", want: "2020-01-02"},
		{start: "2020-01-01", dur: "-P1Y1M", want: "2018-12-01"},
		{start: "2020-12-31", dur: "P2M", want: "2021-02-28"},
		{start: "+275760-09-13", dur: "P1D", err: ErrOutOfRange},
		{start: "-271821-04-19", dur: "P1D", sub: true, err: ErrOutOfRange},
	} {
		d := mustDate(tc.start)
		dur, _ := ParseDuration(tc.dur)

		var (
			got Date
			err error
		)
		if tc.sub {
			got, err = d.Subtract(dur)
		} else {
			got, err = d.Add(dur)
		}
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s[%d] failed: want %v, got %v", t.Name(), idx, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDate_UntilSince(t *testing.T) {
	a, b := mustDate("2020-01-01"), mustDate("2020-02-20")
	for idx, tc := range []struct {
		since bool
		opts  []Option
		want  string
		err   error
	}{
		{want: "P50D"},
		{since: true, want: "-P50D"},
		{opts: []Option{WithLargestUnit(Week)}, want: "P7W1D"},
		{opts: []Option{WithLargestUnit(Month)}, want: "P1M19D"},
		{opts: []Option{WithSmallestUnit(Month)}, want: "P2M"},
		{opts: []Option{WithSmallestUnit(Month), WithRoundingMode(RoundTrunc)}, want: "P1M"},
		{opts: []Option{WithSmallestUnit(Month), WithRoundingMode(RoundNearest)}, want: "P2M"},
		{opts: []Option{WithSmallestUnit(Week), WithRoundingMode(RoundCeil)}, want: "P8W"},
		{opts: []Option{WithSmallestUnit(Day), WithIncrement(7)}, want: "P49D"},
		{since: true, opts: []Option{WithSmallestUnit(Month), WithRoundingMode(RoundFloor)}, want: "-P2M"},
		{opts: []Option{WithSmallestUnit(Hour)}, err: ErrInvalidOption},
		{opts: []Option{WithSmallestUnit(Year), WithLargestUnit(Month)}, err: ErrInvalidOption},
	} {
		var (
			got Duration
			err error
		)
		if tc.since {
			got, err = a.Since(b, tc.opts...)
		} else {
			got, err = a.Until(b, tc.opts...)
		}
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s[%d] failed: want %v, got %v", t.Name(), idx, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDate_untilMonthEnd(t *testing.T) {
	for idx, tc := range []struct {
		from, to string
		largest  Unit
		want     string
	}{
		{"2020-01-31", "2020-02-29", Month, "P29D"},
		{"2020-02-29", "2020-01-31", Month, "-P29D"},
		{"2020-01-31", "2020-02-29", Year, "P29D"},
		{"2020-02-29", "2020-01-31", Year, "-P29D"},
		{"2020-01-31", "2020-03-01", Month, "P1M1D"},
		{"2020-03-01", "2020-01-31", Month, "-P1M1D"},
		{"2020-01-31", "2020-03-31", Month, "P2M"},
		{"2019-01-31", "2019-02-28", Month, "P28D"},
	} {
		a, b := mustDate(tc.from), mustDate(tc.to)
		d, err := a.Until(b, WithLargestUnit(tc.largest))
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, d)
		}
		back, err := a.Add(d)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if !back.Equal(b) {
			t.Errorf("%s[%d] failed: %s + %s = %s, want %s", t.Name(), idx, a, d, back, b)
		}
	}
}

func TestDate_conversions(t *testing.T) {
	d := mustDate("2020-02-29")

	w, err := d.With(Fields{FieldYear: 2021}, OverflowConstrain)
	if err != nil || w.String() != "2021-02-28" {
		t.Errorf("%s failed: With gave %s, %v", t.Name(), w, err)
	}
	if _, err = d.With(Fields{FieldYear: 2021}, OverflowReject); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%s failed: want ErrOutOfRange, got %v", t.Name(), err)
	}

	noon, _ := ParseTimeOfDay("12:00")
	dt, err := d.ToDateTime(noon)
	if err != nil || dt.String() != "2020-02-29T12:00:00" {
		t.Errorf("%s failed: ToDateTime gave %s, %v", t.Name(), dt, err)
	}

	ym, err := d.ToYearMonth()
	if err != nil || ym.String() != "2020-02" {
		t.Errorf("%s failed: ToYearMonth gave %s, %v", t.Name(), ym, err)
	}

	md, err := d.ToMonthDay()
	if err != nil || md.String() != "02-29" {
		t.Errorf("%s failed: ToMonthDay gave %s, %v", t.Name(), md, err)
	}

	f := d.Fields()
	if f[FieldYear] != 2020 || f[FieldMonth] != 2 || f[FieldDay] != 29 {
		t.Errorf("%s failed: Fields gave %v", t.Name(), f)
	}

	if _, err = DateFromFields(Fields{FieldYear: 2020, FieldMonth: 2}, nil, OverflowReject); !errors.Is(err, ErrMissingField) {
		t.Errorf("%s failed: want ErrMissingField, got %v", t.Name(), err)
	}
	got, err := DateFromFields(Fields{FieldYear: 2020, FieldMonth: 2, FieldDay: 31}, nil, OverflowConstrain)
	if err != nil || !got.Equal(d) {
		t.Errorf("%s failed: DateFromFields gave %s, %v", t.Name(), got, err)
	}
}

func TestISODate_epochDays(t *testing.T) {
	for _, n := range []int64{-100000001, -719528, -1, 0, 1, 18321, 100000000} {
		d := ISODateFromEpochDays(n)
		if got := d.EpochDays(); got != n {
			t.Errorf("%s failed: %d -> %s -> %d", t.Name(), n, d, got)
		}
	}
	if got := ISODateFromEpochDays(0).String(); got != "1970-01-01" {
		t.Errorf("%s failed: epoch gave %s", t.Name(), got)
	}
	if got := ISODateFromEpochDays(-719528).String(); got != "0000-01-01" {
		t.Errorf("%s failed: year zero gave %s", t.Name(), got)
	}
}
