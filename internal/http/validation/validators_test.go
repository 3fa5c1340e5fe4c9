package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	v := Required("Name")
	assert.NotEmpty(t, v(""))
	assert.NotEmpty(t, v("   "))
	assert.Empty(t, v("yoga"))
}

func TestMinRunes(t *testing.T) {
	t.Parallel()

	v := MinRunes("Password", 6)
	assert.NotEmpty(t, v("12345"))
	assert.Empty(t, v("123456"))
	// Rune count, not byte count
	assert.Empty(t, v("пароль"))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	v := Email("Email")
	assert.NotEmpty(t, v("a@b"), "domain without TLD must fail")
	assert.NotEmpty(t, v("not-an-email"))
	assert.NotEmpty(t, v("@b.com"))
	assert.Empty(t, v("a@b.com"))
	assert.Empty(t, v("first.last+tag@sub.example.co"))
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	v := AbsoluteURL("Image")
	assert.NotEmpty(t, v("assets/img/yoga.png"), "relative path must fail")
	assert.NotEmpty(t, v("ftp://example.com/a.png"))
	assert.NotEmpty(t, v("https://"), "missing host must fail")
	assert.Empty(t, v("http://example.com/a.png"))
	assert.Empty(t, v("https://cdn.example.com/img/yoga.png?s=200"))
}

func TestIntMin(t *testing.T) {
	t.Parallel()

	v := IntMin("Class size", 1)
	assert.NotEmpty(t, v("abc"))
	assert.NotEmpty(t, v("0"), "zero capacity must fail")
	assert.NotEmpty(t, v("-3"))
	assert.Empty(t, v("1"))
	assert.Empty(t, v("20"))
}

func TestTimeRange(t *testing.T) {
	t.Parallel()

	v := TimeRange("Time")
	assert.Empty(t, v("08:00 - 09:00"))
	assert.Empty(t, v("23:30 - 23:59"))
	assert.NotEmpty(t, v("8:00 - 9:00"), "hours must be zero-padded")
	assert.NotEmpty(t, v("08:00-09:00"), "separator spacing is fixed")
	assert.NotEmpty(t, v("25:00 - 26:00"))
}

func TestDate(t *testing.T) {
	t.Parallel()

	v := Date("Date")
	assert.Empty(t, v("05-01-2024"))
	assert.NotEmpty(t, v("2024-05-01"), "ISO input must be normalized before validation")
	assert.NotEmpty(t, v("13-45-2024"))
	assert.NotEmpty(t, v("not a date"))
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	v := OneOf("Teacher", []string{"1", "42"})
	assert.Empty(t, v("42"))
	assert.NotEmpty(t, v("7"))
	assert.NotEmpty(t, v(""))
}

func TestNormalizeDateInput(t *testing.T) {
	t.Parallel()

	// The exact wire literal for 2024-05-01
	assert.Equal(t, "05-01-2024", NormalizeDateInput("2024-05-01"))
	// Already in wire format passes through
	assert.Equal(t, "05-01-2024", NormalizeDateInput("05-01-2024"))
	// Garbage passes through for the Date validator to report
	assert.Equal(t, "yesterday", NormalizeDateInput("yesterday"))
	assert.Equal(t, "", NormalizeDateInput("  "))
}

func TestFieldValidatorStopsAtFirstErrorPerField(t *testing.T) {
	t.Parallel()

	errs := New().
		Validate("email", "", Required("Email"), Email("Email")).
		Validate("image", "https://example.com/a.png", Required("Image"), AbsoluteURL("Image")).
		Errors()

	// Required reported first; the format check never ran
	assert.Equal(t, "Email is required.", errs["email"])
	assert.NotContains(t, errs, "image")
}
