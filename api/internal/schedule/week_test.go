package schedule

import (
	"reflect"
	"testing"
)

func entries(days ...string) []Entry {
	out := make([]Entry, 0, len(days))
	for _, d := range days {
		out = append(out, Entry{Day: d, Location: "Store 12", Hours: "9-5"})
	}
	return out
}

func TestWeekIdentity_FullWorkWeek(t *testing.T) {
	t.Parallel()

	d := Data{
		EmployeeName: "Jane Doe",
		Schedule:     entries("Monday", "Tuesday", "Wednesday", "Thursday", "Friday"),
	}
	got := WeekIdentity(d)
	want := []string{"friday", "monday", "thursday", "tuesday", "wednesday"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeekIdentity=%v, want %v", got, want)
	}
}

func TestWeekIdentity_PartialWeekIsNone(t *testing.T) {
	t.Parallel()

	d := Data{Schedule: entries("Monday", "Tuesday", "Wednesday")}
	if got := WeekIdentity(d); got != nil {
		t.Fatalf("WeekIdentity=%v, want nil for partial week", got)
	}
}

func TestWeekIdentity_IgnoresCaseWhitespaceAndUnknownDays(t *testing.T) {
	t.Parallel()

	d := Data{Schedule: entries(" MONDAY ", "tuesday", "Wednesday", "Thu", "Thursday", "Friday", "Payday")}
	got := WeekIdentity(d)
	want := []string{"friday", "monday", "thursday", "tuesday", "wednesday"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeekIdentity=%v, want %v", got, want)
	}
}

func TestWeekIdentity_DuplicateDaysCountOnce(t *testing.T) {
	t.Parallel()

	d := Data{Schedule: entries("Monday", "Monday", "Tuesday", "Wednesday", "Thursday")}
	if got := WeekIdentity(d); got != nil {
		t.Fatalf("WeekIdentity=%v, want nil (4 distinct days)", got)
	}
}

func TestSameWeek(t *testing.T) {
	t.Parallel()

	a := []string{"friday", "monday", "thursday", "tuesday", "wednesday"}
	b := []string{"friday", "monday", "thursday", "tuesday", "wednesday"}
	if !SameWeek(a, b) {
		t.Fatal("identical sets must match")
	}
	if SameWeek(a, append(b[:4:4], "saturday")) {
		t.Fatal("different sets must not match")
	}
	if SameWeek(nil, b) || SameWeek(a, nil) {
		t.Fatal("nil identity never matches")
	}
}

func TestSafeFolderName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Jane O'Doe!", "jane_o_doe_"},
		{"Jane Doe", "jane_doe"},
		{"BOB", "bob"},
		{"x9 7", "x9_7"},
		{"", ""},
	}
	for _, c := range cases {
		if got := SafeFolderName(c.in); got != c.want {
			t.Errorf("SafeFolderName(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}
