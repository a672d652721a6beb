package password

import (
	"testing"
	"unicode/utf8"
)

func FuzzEvaluate(f *testing.F) {
	seeds := []string{
		"",
		"password123",
		"Str0ng!Pass",
		"XyZ!9adminQ#",
		"密码密码密码密码",
		"\x00\xff\xfe",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, pw string) {
		res := Evaluate(pw)

		if res.Score < -1 || res.Score > 6 {
			t.Fatalf("score %d out of range for %q", res.Score, pw)
		}
		if _, hit := MatchCommonPattern(pw); hit && res.Score > 0 {
			t.Fatalf("blacklisted %q kept positive score %d", pw, res.Score)
		}
		if utf8.RuneCountInString(pw) < MinRecommendedLength && !containsString(res.Feedback, FeedbackLength) {
			t.Fatalf("short password %q missing length feedback", pw)
		}

		switch res.Strength {
		case Strong:
			if res.Score < 5 {
				t.Fatalf("Strong with score %d", res.Score)
			}
		case Moderate:
			if res.Score != 4 {
				t.Fatalf("Moderate with score %d", res.Score)
			}
		case Weak:
			if res.Score >= 4 {
				t.Fatalf("Weak with score %d", res.Score)
			}
		default:
			t.Fatalf("unknown strength %q", res.Strength)
		}

		if len(res.Checks) != 6 {
			t.Fatalf("expected 6 checks, got %d", len(res.Checks))
		}
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
