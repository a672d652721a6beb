// pkg/password/strength.go

package password

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	cerr "github.com/cockroachdb/errors"
)

const (
	// MinRecommendedLength earns the first length point.
	MinRecommendedLength = 8
	// LongLength earns the second length point.
	LongLength = 12
)

// Strength is the qualitative rating derived from a score.
type Strength string

const (
	Weak     Strength = "Weak"
	Moderate Strength = "Moderate"
	Strong   Strength = "Strong"
)

// ParseStrength accepts a rating name in any case.
func ParseStrength(s string) (Strength, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weak":
		return Weak, nil
	case "moderate":
		return Moderate, nil
	case "strong":
		return Strong, nil
	default:
		return "", cerr.Newf("unknown strength %q (want weak, moderate or strong)", s)
	}
}

// Rank orders ratings so callers can compare them; unknown values rank lowest.
func (s Strength) Rank() int {
	switch s {
	case Strong:
		return 2
	case Moderate:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is as strong as min or stronger.
func (s Strength) AtLeast(min Strength) bool {
	return s.Rank() >= min.Rank()
}

// Feedback and status messages, in check order.
const (
	FeedbackLength    = "Password should be at least 8 characters long."
	FeedbackUppercase = "Include at least one uppercase letter."
	FeedbackLowercase = "Include at least one lowercase letter."
	FeedbackDigit     = "Add at least one number (0-9)."
	FeedbackSpecial   = "Include at least one special character (!@#$%^&*)."
	FeedbackCommon    = "Avoid common password patterns."

	StatusStrong   = "Excellent! Your password is highly secure."
	StatusModerate = "Good password, but consider adding complexity."
	StatusWeak     = "Weak Password - Please improve using suggestions."
)

// Check names used in CheckResult.
const (
	CheckLength    = "length"
	CheckUppercase = "uppercase"
	CheckLowercase = "lowercase"
	CheckDigit     = "digit"
	CheckSpecial   = "special"
	CheckCommon    = "common_pattern"
)

// CheckResult records one rule's outcome. Points is the change the rule made
// to the running score; for the blacklist rule it is zero or negative.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Points int    `json:"points"`
	Detail string `json:"detail,omitempty"`
}

// Result is the outcome of Evaluate. Treat it as read-only.
type Result struct {
	Score         int           `json:"score"`
	Strength      Strength      `json:"strength"`
	StatusMessage string        `json:"status_message"`
	Feedback      []string      `json:"feedback"`
	Checks        []CheckResult `json:"checks"`
}

// MarshalJSON keeps feedback an array even when there is nothing to suggest.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	if r.Feedback == nil {
		r.Feedback = []string{}
	}
	return json.Marshal(plain(r))
}

// Evaluate scores pw against the fixed rule set. It accepts any string,
// including the empty string, and never fails.
func Evaluate(pw string) Result {
	var (
		score    int
		feedback []string
		checks   = make([]CheckResult, 0, 6)
	)

	presence := func(name, charset, advice string) {
		if containsAny(pw, charset) {
			score++
			checks = append(checks, CheckResult{Name: name, Passed: true, Points: 1})
			return
		}
		feedback = append(feedback, advice)
		checks = append(checks, CheckResult{Name: name, Passed: false})
	}

	// Length counts characters, not bytes.
	length := utf8.RuneCountInString(pw)
	if length >= MinRecommendedLength {
		points := 1
		if length >= LongLength {
			points++
		}
		score += points
		checks = append(checks, CheckResult{Name: CheckLength, Passed: true, Points: points})
	} else {
		feedback = append(feedback, FeedbackLength)
		checks = append(checks, CheckResult{Name: CheckLength, Passed: false})
	}

	presence(CheckUppercase, Uppercase, FeedbackUppercase)
	presence(CheckLowercase, Lowercase, FeedbackLowercase)
	presence(CheckDigit, Digits, FeedbackDigit)
	presence(CheckSpecial, Special, FeedbackSpecial)

	// A blacklist hit caps the score at zero no matter what was earned above.
	if pattern, hit := MatchCommonPattern(pw); hit {
		before := score
		score = min(score-1, 0)
		feedback = append(feedback, FeedbackCommon)
		checks = append(checks, CheckResult{
			Name:   CheckCommon,
			Passed: false,
			Points: score - before,
			Detail: pattern,
		})
	} else {
		checks = append(checks, CheckResult{Name: CheckCommon, Passed: true})
	}

	strength, status := rate(score)
	return Result{
		Score:         score,
		Strength:      strength,
		StatusMessage: status,
		Feedback:      feedback,
		Checks:        checks,
	}
}

func rate(score int) (Strength, string) {
	switch {
	case score >= 5:
		return Strong, StatusStrong
	case score == 4:
		return Moderate, StatusModerate
	default:
		return Weak, StatusWeak
	}
}
