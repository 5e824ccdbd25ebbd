package temporal

/*
constr.go contains constraint and constraint group components which
serve to restrict the values accepted by the constructors of this
package.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}
	debugConstraint(len(r), x, err)

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
PropertyConstraint returns a [Constraint] which applies a user-defined
check function, which returns nil if the property is satisfied.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = rangeErrorf("value is out of range")
		}
		return
	}
}

/*
Ordered is qualified through any value of this package which bears a
"Compare(T) int" method, such as [Instant], [Date], [DateTime],
[TimeOfDay], [YearMonth] and [ZonedDateTime].
*/
type Ordered[T any] interface {
	Compare(T) int
	String() string
}

/*
BetweenConstraint returns an instance of [Constraint] that checks if a
value falls within [min, max], inclusive, per its Compare method.
*/
func BetweenConstraint[T Ordered[T]](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			err = rangeErrorf(val.String(), " is not in allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return
	}
}

/*
DurationRangeConstraint returns a [Constraint] which ensures that a
[Duration] is not less than min and not greater than max. Durations
with calendar units require [WithRelativeTo] among opts; see
[CompareDurations].
*/
func DurationRangeConstraint(min, max Duration, opts ...Option) Constraint[Duration] {
	return func(val Duration) error {
		lo, err := CompareDurations(val, min, opts...)
		if err != nil {
			return err
		}
		hi, err := CompareDurations(val, max, opts...)
		if err != nil {
			return err
		}
		if lo < 0 || hi > 0 {
			return rangeErrorf("duration ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
SignConstraint returns a [Constraint] which requires a [Duration] to
bear one of the given signs (-1, 0 or 1).
*/
func SignConstraint(signs ...int) Constraint[Duration] {
	return func(val Duration) error {
		s := val.Sign()
		for _, want := range signs {
			if s == want {
				return nil
			}
		}
		return rangeErrorf("duration ", val.String(), " has disallowed sign ", s)
	}
}

/*
WeekdayConstraint returns a [Constraint] which requires a value to fall
on one of the given days of the week, numbered 1 (Monday) through 7
(Sunday) in the ISO-8601 calendar.
*/
func WeekdayConstraint[T interface {
	DayOfWeek() int
	String() string
}](days ...int) Constraint[T] {
	return func(val T) error {
		dow := val.DayOfWeek()
		for _, d := range days {
			if dow == d {
				return nil
			}
		}
		return rangeErrorf(val.String(), " falls on disallowed weekday ", dow)
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = rangeErrorf("union failed all ", itoa(len(constraints)), " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}
