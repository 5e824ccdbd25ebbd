package temporal

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func ExampleTimeOfDay_Round() {
	t, _ := ParseTimeOfDay("14:23:30")

	ceil, _ := t.Round(WithSmallestUnit(Minute), WithIncrement(15), WithRoundingMode(RoundCeil))
	floor, _ := t.Round(WithSmallestUnit(Minute), WithIncrement(15), WithRoundingMode(RoundFloor))
	fmt.Println(ceil, floor)
	// Output: 14:30:00 14:15:00
}

func ExampleTimeOfDay_Until() {
	a, _ := ParseTimeOfDay("10:00")
	b, _ := ParseTimeOfDay("12:30:15")

	d, _ := a.Until(b)
	m, _ := a.Until(b, WithLargestUnit(Minute))
	fmt.Println(d, m)
	// Output: PT2H30M15S PT150M15S
}

func TestParseTimeOfDay(t *testing.T) {
	for idx, tc := range []struct {
		input string
		want  string
		err   error
	}{
		{input: "14:23:30.5", want: "14:23:30.5"},
		{input: "142330", want: "14:23:30"},
		{input: "1423", want: "14:23:00"},
		{input: "14", want: "14:00:00"},
		{input: "12:00:00,25", want: "12:00:00.25"},
		{input: "00:00:00.000000001", want: "00:00:00.000000001"},
		{input: "23:59:60", want: "23:59:59"},
		{input: "12:00Z", want: "12:00:00"},
		{input: "12:00+05:30", want: "12:00:00"},
		{input: "12:00[c=iso8601]", want: "12:00:00"},
		{input: "2020-01-01T14:23:30Z", want: "14:23:30"},
		{input: "2020-01-01 14:23", want: "14:23:00"},
		{input: "24:00", err: ErrOutOfRange},
		{input: "12:61", err: ErrOutOfRange},
		{input: "2020-01-01", err: ErrMalformedText},
		{input: "noon", err: ErrMalformedText},
		{input: "12:00[c=nonesuch]", err: ErrOutOfRange},
	} {
		got, err := ParseTimeOfDay(tc.input)
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

func TestMakeTimeOfDay(t *testing.T) {
	tod, err := MakeTimeOfDay(25, 70, 0, 0, 0, 0, OverflowConstrain)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	} else if tod.String() != "23:59:00" {
		t.Errorf("%s failed: want 23:59:00, got %s", t.Name(), tod)
	}

	if _, err = MakeTimeOfDay(25, 0, 0, 0, 0, 0, OverflowReject); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%s failed: want ErrOutOfRange, got %v", t.Name(), err)
	}

	tod, _ = MakeTimeOfDay(1, 2, 3, 4, 5, 6, OverflowReject)
	f := tod.Fields()
	for k, want := range map[Field]int{
		FieldHour: 1, FieldMinute: 2, FieldSecond: 3,
		FieldMillisecond: 4, FieldMicrosecond: 5, FieldNanosecond: 6,
	} {
		if f[k] != want {
			t.Errorf("%s failed: %s want %d, got %d", t.Name(), k, want, f[k])
		}
	}

	w, err := tod.With(Fields{FieldHour: 13}, OverflowReject)
	if err != nil || w.String() != "13:02:03.004005006" {
		t.Errorf("%s failed: With gave %s, %v", t.Name(), w, err)
	}
}

func TestNewTimeOfDay(t *testing.T) {
	tod, err := NewTimeOfDay(time.Date(2020, 1, 1, 8, 15, 0, 500, time.UTC))
	if err != nil || tod.String() != "08:15:00.0000005" {
		t.Errorf("%s failed: got %s, %v", t.Name(), tod, err)
	}

	tod, err = NewTimeOfDay(Fields{FieldHour: 9})
	if err != nil || tod.String() != "09:00:00" {
		t.Errorf("%s failed: got %s, %v", t.Name(), tod, err)
	}

	nine, _ := ParseTimeOfDay("09:00")
	five, _ := ParseTimeOfDay("17:00")
	office := BetweenConstraint(nine, five)
	if _, err = NewTimeOfDay("08:59:59", office); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%s failed: want ErrOutOfRange, got %v", t.Name(), err)
	}
	if _, err = NewTimeOfDay([]byte("12:00"), office); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
	if _, err = NewTimeOfDay(12); err == nil {
		t.Errorf("%s failed: expected error for int input", t.Name())
	}
}

func TestTimeOfDay_AddSubtract(t *testing.T) {
	eleven, _ := ParseTimeOfDay("23:00")
	half, _ := ParseTimeOfDay("00:30")

	twoHours, _ := ParseDuration("PT2H")
	oneHour, _ := ParseDuration("PT1H")
	oneDay, _ := ParseDuration("P1D")

	if got := eleven.Add(twoHours).String(); got != "01:00:00" {
		t.Errorf("%s failed: want 01:00:00, got %s", t.Name(), got)
	}
	if got := half.Subtract(oneHour).String(); got != "23:30:00" {
		t.Errorf("%s failed: want 23:30:00, got %s", t.Name(), got)
	}
	if got := half.Add(oneDay); !got.Equal(half) {
		t.Errorf("%s failed: days must be ignored, got %s", t.Name(), got)
	}
	if half.Compare(eleven) != -1 || eleven.Compare(half) != 1 || half.Compare(half) != 0 {
		t.Errorf("%s failed: Compare", t.Name())
	}
}

func TestTimeOfDay_Round(t *testing.T) {
	for idx, tc := range []struct {
		input string
		opts  []Option
		want  string
		err   error
	}{
		{input: "14:23:30", opts: []Option{WithSmallestUnit(Minute), WithIncrement(15)}, want: "14:30:00"},
		{input: "14:22", opts: []Option{WithSmallestUnit(Minute), WithIncrement(15)}, want: "14:15:00"},
		{input: "14:22:30", opts: []Option{WithSmallestUnit(Minute)}, want: "14:23:00"},
		{input: "23:30", opts: []Option{WithSmallestUnit(Hour)}, want: "00:00:00"},
		{input: "12:00:00.123456789", opts: []Option{WithSmallestUnit(Millisecond)}, want: "12:00:00.123"},
		{input: "12:00:00.123456789", opts: []Option{WithSmallestUnit(Microsecond), WithRoundingMode(RoundCeil)}, want: "12:00:00.123457"},
		{input: "12:00", err: ErrInvalidOption},
		{input: "12:00", opts: []Option{WithSmallestUnit(Day)}, err: ErrInvalidOption},
		{input: "12:00", opts: []Option{WithSmallestUnit(Minute), WithIncrement(7)}, err: ErrInvalidIncrement},
		{input: "12:00", opts: []Option{WithSmallestUnit(Hour), WithIncrement(24)}, err: ErrInvalidIncrement},
	} {
		tod, _ := ParseTimeOfDay(tc.input)
		got, err := tod.Round(tc.opts...)
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

func TestTimeOfDay_UntilSince(t *testing.T) {
	early, _ := ParseTimeOfDay("10:00")
	late, _ := ParseTimeOfDay("12:30:45")

	d, err := late.Since(early, WithSmallestUnit(Minute), WithRoundingMode(RoundFloor))
	if err != nil || d.String() != "PT2H30M" {
		t.Errorf("%s failed: Since floor gave %s, %v", t.Name(), d, err)
	}

	d, err = late.Since(early, WithSmallestUnit(Minute), WithRoundingMode(RoundCeil))
	if err != nil || d.String() != "PT2H31M" {
		t.Errorf("%s failed: Since ceil gave %s, %v", t.Name(), d, err)
	}

	d, err = early.Since(late)
	if err != nil || d.String() != "-PT2H30M45S" {
		t.Errorf("%s failed: negative Since gave %s, %v", t.Name(), d, err)
	}

	d, err = early.Until(late, WithSmallestUnit(Minute), WithRoundingMode(RoundTrunc))
	if err != nil || d.String() != "PT2H30M" {
		t.Errorf("%s failed: truncating Until gave %s, %v", t.Name(), d, err)
	}

	if _, err = early.Until(late, WithLargestUnit(Day)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("%s failed: want ErrInvalidOption, got %v", t.Name(), err)
	}
}
