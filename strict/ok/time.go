package ok

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/LerianStudio/lib-strict/strict"
)

// ErrUnparsableTime is the cause when ParseTime does not understand its input.
var ErrUnparsableTime = errors.New("unparsable date/time")

var clockLayouts = []string{"15:04:05", "15:04"}

const relativePattern = `^([+-]?\d+)\s*(sec|secs|second|seconds|min|mins|minute|minutes|hour|hours|day|days|week|weeks|fortnight|fortnights|month|months|year|years)$`

// ParseTime parses an absolute or relative date/time description and returns
// Unix seconds. Relative forms resolve against base, or the current time when
// base is zero.
//
// Accepted forms: now, today, midnight, tomorrow, yesterday, @<unix seconds>,
// any absolute layout dateparse recognizes, a bare clock time ("18:00", on
// base's date) and relative offsets such as "+1 day", "-2 weeks",
// "next month" or "3 hours ago", optionally after an anchor
// ("tomorrow +2 hours"). "ago" applies to offsets only, never to an anchor.
func ParseTime(value string, base time.Time) (int64, error) {
	if base.IsZero() {
		base = time.Now()
	}

	text := strings.TrimSpace(value)
	if text == "" {
		return 0, strict.NewUnexpectedFailure("ParseTime", fmt.Errorf("%w: empty input", ErrUnparsableTime))
	}

	if rest, isUnix := strings.CutPrefix(text, "@"); isUnix {
		sec, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return 0, strict.NewUnexpectedFailure("ParseTime", fmt.Errorf("%w: %q", ErrUnparsableTime, value))
		}

		return sec, nil
	}

	for _, layout := range clockLayouts {
		if t, err := time.ParseInLocation(layout, text, base.Location()); err == nil {
			y, m, d := base.Date()

			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, base.Location()).Unix(), nil
		}
	}

	if t, err := dateparse.ParseIn(text, base.Location()); err == nil {
		return t.Unix(), nil
	}

	t, err := parseRelative(strings.ToLower(text), base)
	if err != nil {
		return 0, strict.NewUnexpectedFailure("ParseTime", fmt.Errorf("%w: %q", ErrUnparsableTime, value))
	}

	return t.Unix(), nil
}

func parseRelative(text string, base time.Time) (time.Time, error) {
	fields := strings.Fields(text)

	t := base
	anchored := false

	if len(fields) > 0 {
		if at, found := anchor(fields[0], base); found {
			t, anchored = at, true
			fields = fields[1:]
		}
	}

	ago := false
	if len(fields) > 0 && fields[len(fields)-1] == "ago" {
		ago = true
		fields = fields[:len(fields)-1]

		if anchored || len(fields) == 0 {
			return time.Time{}, ErrUnparsableTime
		}
	}

	re, err := compile("ParseTime", relativePattern)
	if err != nil {
		return time.Time{}, err
	}

	for i := 0; i < len(fields); i++ {
		term := fields[i]

		switch term {
		case "next", "last":
			if i+1 >= len(fields) {
				return time.Time{}, ErrUnparsableTime
			}

			sign := "+1"
			if term == "last" {
				sign = "-1"
			}

			term = sign + fields[i+1]
			i++
		default:
			// "+1 day" arrives as two fields.
			if i+1 < len(fields) && !re.MatchString(term) {
				term += fields[i+1]
				i++
			}
		}

		groups := re.FindStringSubmatch(term)
		if groups == nil {
			return time.Time{}, ErrUnparsableTime
		}

		n, err := strconv.Atoi(groups[1])
		if err != nil {
			return time.Time{}, ErrUnparsableTime
		}

		if ago {
			n = -n
		}

		t = shift(t, n, groups[2])
	}

	return t, nil
}

func anchor(word string, base time.Time) (time.Time, bool) {
	y, m, d := base.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, base.Location())

	switch word {
	case "now":
		return base, true
	case "today", "midnight":
		return midnight, true
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), true
	case "yesterday":
		return midnight.AddDate(0, 0, -1), true
	default:
		return time.Time{}, false
	}
}

func shift(t time.Time, n int, unit string) time.Time {
	switch strings.TrimSuffix(unit, "s") {
	case "sec", "second":
		return t.Add(time.Duration(n) * time.Second)
	case "min", "minute":
		return t.Add(time.Duration(n) * time.Minute)
	case "hour":
		return t.Add(time.Duration(n) * time.Hour)
	case "day":
		return t.AddDate(0, 0, n)
	case "week":
		return t.AddDate(0, 0, 7*n)
	case "fortnight":
		return t.AddDate(0, 0, 14*n)
	case "month":
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}
